package database

import (
	"context"
	"sync"
	"time"

	"semicolon_service/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Provider hands out the process-wide database handle
type Provider interface {
	Acquire(ctx context.Context) (*MongoDB, error)
}

// ConnectFunc dials the document store
type ConnectFunc func(ctx context.Context, c Connection, dbName string) (*MongoDB, error)

// Manager owns one lazily established MongoDB handle per process.
//
// The first Acquire dials; concurrent callers join that same attempt. A successful handle
// is kept until Reset, a failed attempt is forgotten so the next Acquire dials again.
type Manager struct {
	conn   Connection
	dbName string
	dial   ConnectFunc

	mu    sync.RWMutex
	db    *MongoDB
	state State

	group singleflight.Group
}

// ManagerOption configure Manager
type ManagerOption func(*Manager)

// WithConnectFunc replace the dialer, NewMongoDB by default
func WithConnectFunc(f ConnectFunc) ManagerOption {
	return func(m *Manager) {
		m.dial = f
	}
}

const flightKey = "mongo"

// NewManager create a Manager, nothing is dialed until the first Acquire
func NewManager(c Connection, dbName string, opts ...ManagerOption) *Manager {
	m := &Manager{
		conn:   c,
		dbName: dbName,
		dial:   NewMongoDB,
		state:  StateUninitialized,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Acquire return the cached handle or join/start the single connection attempt.
// ctx only bounds how long this caller waits, the attempt itself is bounded by ConnectTimeout.
func (m *Manager) Acquire(ctx context.Context) (*MongoDB, error) {
	m.mu.RLock()
	db := m.db
	m.mu.RUnlock()
	if db != nil {
		return db, nil
	}

	ch := m.group.DoChan(flightKey, m.connect)
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*MongoDB), nil
	}
}

func (m *Manager) connect() (interface{}, error) {
	m.mu.Lock()
	if m.db != nil {
		db := m.db
		m.mu.Unlock()
		return db, nil
	}
	m.state = StateConnecting
	m.mu.Unlock()

	ctx := context.Background()
	if m.conn.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.conn.ConnectTimeout)
		defer cancel()
	}

	start := time.Now()
	db, err := m.dial(ctx, m.conn, m.dbName)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.state = StateUninitialized
		logger.Log.Error("mongo connect failed",
			zap.String("database", m.dbName),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	m.db = db
	m.state = StateConnected
	logger.Log.Info("mongo connected (new)",
		zap.String("database", m.dbName),
		zap.Duration("elapsed", time.Since(start)),
	)
	return db, nil
}

// State report current manager state
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Reset drop the cached handle and disconnect it.
// An attempt already in flight is not cancelled and may still populate the cache.
func (m *Manager) Reset(ctx context.Context) error {
	m.mu.Lock()
	db := m.db
	m.db = nil
	if m.state == StateConnected {
		m.state = StateUninitialized
	}
	m.mu.Unlock()

	return db.Close(ctx)
}
