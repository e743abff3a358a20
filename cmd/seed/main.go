// Command seed resets the job store and inserts the sample postings.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/fixtures"
	"jobboard/internal/logging"
	"jobboard/internal/storage"
)

func main() {
	config.LoadEnvFile()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger := logging.SetupDefault(os.Stdout, cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	jobs, err := fixtures.ResetJobs(ctx, store.Jobs)
	if err != nil {
		return err
	}

	for _, j := range jobs {
		logger.Info("job seeded", slog.String("id", j.ID), slog.String("title", j.Title))
	}
	logger.Info("seed complete", slog.String("driver", store.Driver), slog.Int("jobs", len(jobs)))
	return nil
}
