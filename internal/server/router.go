// Package server wires handlers and middleware into the HTTP router.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"jobboard/internal/handler"
	"jobboard/internal/metrics"
	"jobboard/internal/middleware"
	"jobboard/internal/service"
	"jobboard/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Deps is everything the router needs.
type Deps struct {
	Logger      *slog.Logger
	AuthService service.AuthService
	JobService  service.JobService
	JWTUtil     *utils.JWTUtil

	// Optional.
	Metrics     metrics.Recorder
	Gatherer    prometheus.Gatherer
	AuthLimiter *middleware.RateLimiter
	HealthCheck func(ctx context.Context) error
	CORSOrigins []string
}

// NewRouter builds the gin engine serving the users and jobs APIs.
func NewRouter(d Deps) *gin.Engine {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Metrics == nil {
		d.Metrics = metrics.Nop{}
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Logger),
		middleware.Metrics(d.Metrics),
		middleware.Recovery(d.Logger),
		corsMiddleware(d.CORSOrigins),
	)

	authHandler := handler.NewAuthHandler(d.AuthService)
	jobHandler := handler.NewJobHandler(d.JobService)

	limit := func(c *gin.Context) { c.Next() }
	if d.AuthLimiter != nil {
		limit = d.AuthLimiter.Middleware()
	}

	api := router.Group("/api")
	authHandler.RegisterAuthRoutes(api, limit, middleware.JWTAuthMiddleware(d.JWTUtil))
	jobHandler.RegisterJobRoutes(api)

	router.GET("/health", healthHandler(d.HealthCheck))
	if d.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(d.Gatherer)))
	}

	return router
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func healthHandler(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				slog.WarnContext(ctx, "health check failed", slog.Any("error", err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	}
}
