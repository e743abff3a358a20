package config

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// ConnectMongo creates a MongoDB client and waits until the server answers a ping
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("invalid mongo configuration: %w", err)
	}

	for i := 0; i < maxConnectAttempts; i++ {
		err = client.Ping(ctx, readpref.Primary())
		if err == nil {
			slog.Info("connected to MongoDB")
			return client, nil
		}
		slog.Warn("failed to ping MongoDB",
			slog.Int("attempt", i+1),
			slog.Int("max_attempts", maxConnectAttempts),
			slog.Any("error", err),
		)
		if err := sleepCtx(ctx, connectRetryDelay); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
	}

	_ = client.Disconnect(context.Background())
	return nil, fmt.Errorf("unable to connect to MongoDB after %d attempts: %w", maxConnectAttempts, err)
}
