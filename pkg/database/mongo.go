package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"semicolon_service/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ErrEmptyURI no connection string configured
var ErrEmptyURI = errors.New("mongo connection string is empty")

// NewMongoDB create a new MongoDB connection
func NewMongoDB(ctx context.Context, c Connection, dbName string) (*MongoDB, error) {
	if c.ConnectStr == "" {
		return nil, ErrEmptyURI
	}

	clientOpts := options.Client().ApplyURI(c.ConnectStr)
	// the driver never queues operations, but without these it waits up to 30s per operation for a server
	if c.ServerSelectionTimeout > 0 {
		clientOpts.SetServerSelectionTimeout(c.ServerSelectionTimeout)
	}
	if c.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(c.ConnectTimeout)
	}

	var err error
	for i := 0; i <= c.RetryCount; i++ {
		var client *mongo.Client
		client, err = mongo.Connect(ctx, clientOpts)
		if err == nil {
			// Ping the database to verify the connection
			pingErr := client.Ping(ctx, readpref.Primary())
			if pingErr == nil {
				return &MongoDB{
					Client:   client,
					Database: client.Database(dbName),
				}, nil
			}
			_ = client.Disconnect(context.Background())
			err = pingErr
		}

		if i < c.RetryCount {
			logger.Log.Warn(
				"Failed to connect to mongoDB, retrying...",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("failed to connect to MongoDB: %w", ctx.Err())
			case <-time.After(c.RetryInterval):
			}
		}
	}

	return nil, fmt.Errorf("failed to connect to MongoDB after retries: %w", err)
}

// Close disenable mongoDB connection
func (m *MongoDB) Close(ctx context.Context) error {
	if m == nil || m.Client == nil {
		return nil
	}
	return m.Client.Disconnect(ctx)
}
