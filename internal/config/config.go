package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds the application settings, read once from the environment at startup
type Config struct {
	ServerPort string

	// Session tokens
	JWTSecret          string
	JWTExpirationHours int64

	// Storage
	StorageDriver string
	MongoURI      string
	MongoDatabase string
	DB            *DBConfig // set only for the postgres driver
	StoreTimeout  time.Duration

	// HTTP
	CORSAllowedOrigins  []string
	AuthRateLimitPerMin int

	LogLevel string
}

// LoadEnvFile loads variables from a .env file if present. Real environment variables win.
func LoadEnvFile(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		slog.Info("no .env file found, using environment variables")
	}
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	var missing []string
	cfg.JWTSecret = os.Getenv("JWT_SECRET_KEY")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	cfg.JWTExpirationHours = getEnvInt64("JWT_EXPIRATION_HOURS", 24)
	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.StorageDriver = strings.ToLower(getEnvString("STORAGE_DRIVER", DriverMongo))
	cfg.MongoURI = getEnvString("MONGO_URI", "mongodb://localhost:27017")
	cfg.MongoDatabase = getEnvString("MONGO_DATABASE", "jobboard")
	cfg.StoreTimeout = getEnvDuration("STORE_TIMEOUT", 5*time.Second)
	cfg.CORSAllowedOrigins = splitList(getEnvString("CORS_ALLOWED_ORIGINS", "*"))
	cfg.AuthRateLimitPerMin = getEnvInt("AUTH_RATE_LIMIT_PER_MIN", 30)
	cfg.LogLevel = getEnvString("LOG_LEVEL", "info")

	switch cfg.StorageDriver {
	case DriverMongo, DriverMemory:
	case DriverPostgres:
		dbCfg, err := LoadDBConfig()
		if err != nil {
			return nil, err
		}
		cfg.DB = dbCfg
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q (want %s, %s or %s)",
			cfg.StorageDriver, DriverMongo, DriverPostgres, DriverMemory)
	}

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		return defaultVal
	}
	return i
}

func getEnvInt64(key string, defaultVal int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil || i <= 0 {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
