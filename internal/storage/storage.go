// Package storage opens the repositories for the configured driver.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	"jobboard/internal/config"
	"jobboard/internal/repository"

	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Store bundles the repositories with a health check and a shutdown hook.
type Store struct {
	Driver string
	Users  repository.UserRepository
	Jobs   repository.JobRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping reports whether the backing store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases connections held by the store.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the store named by cfg.StorageDriver and prepares its schema.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StorageDriver {
	case config.DriverMongo:
		return openMongo(ctx, cfg)
	case config.DriverPostgres:
		return openPostgres(ctx, cfg)
	case config.DriverMemory:
		slog.Warn("using in-memory storage, data is lost on restart")
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

// NewMemory returns a Store backed by process memory.
func NewMemory() *Store {
	return &Store{
		Driver: config.DriverMemory,
		Users:  repository.NewMemoryUserRepository(),
		Jobs:   repository.NewMemoryJobRepository(),
	}
}

func openMongo(ctx context.Context, cfg *config.Config) (*Store, error) {
	client, err := config.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		return nil, err
	}

	db := client.Database(cfg.MongoDatabase)
	users := repository.NewMongoUserRepository(db)
	jobs := repository.NewMongoJobRepository(db)

	if err := users.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	if err := jobs.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Store{
		Driver: config.DriverMongo,
		Users:  users,
		Jobs:   jobs,
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		close: client.Disconnect,
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Store, error) {
	if cfg.DB == nil {
		return nil, fmt.Errorf("postgres driver selected without database configuration")
	}

	pool, err := config.ConnectDB(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	if err := config.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &Store{
		Driver: config.DriverPostgres,
		Users:  repository.NewPostgresUserRepository(pool),
		Jobs:   repository.NewPostgresJobRepository(pool),
		ping:   pool.Ping,
		close: func(context.Context) error {
			pool.Close()
			return nil
		},
	}, nil
}
