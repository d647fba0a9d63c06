package database

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// Connection definition document store setting
type Connection struct {
	ConnectStr string

	// ConnectTimeout bounds one whole attempt (all retries included)
	ConnectTimeout time.Duration
	// ServerSelectionTimeout bounds each operation while the server is unreachable
	ServerSelectionTimeout time.Duration

	RetryCount    int
	RetryInterval time.Duration
}

// MongoDB definition mongo db
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// State connection manager state
type State string

const (
	// StateUninitialized no handle and no attempt in flight
	StateUninitialized State = "uninitialized"
	// StateConnecting one attempt in flight
	StateConnecting State = "connecting"
	// StateConnected handle cached for the rest of the process
	StateConnected State = "connected"
)
