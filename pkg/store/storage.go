// Package store provides the string key-value storage the luggage data is
// persisted in, and the configuration that selects a backend.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Storage is a minimal string key-value store.
type Storage interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// Closer is implemented by backends holding connections or handles.
type Closer interface {
	Close() error
}

// Close releases s if it holds resources.
func Close(s Storage) error {
	if c, ok := s.(Closer); ok {
		return c.Close()
	}
	return nil
}

// ErrUnknownBackend is returned for unsupported backend names.
var ErrUnknownBackend = errors.New("store: unknown backend")

// Memory is a map backed Storage. The zero value is ready to use.
type Memory struct {
	mu   sync.Mutex
	data map[string]string

	// FailWrites makes Set return an error; used to exercise write failures.
	FailWrites error
}

// NewMemory returns an empty in-memory store, optionally seeded.
func NewMemory(seed map[string]string) *Memory {
	m := &Memory{data: make(map[string]string, len(seed))}
	for k, v := range seed {
		m.data[k] = v
	}
	return m
}

// Get implements Storage.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements Storage.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	if m.data == nil {
		m.data = make(map[string]string)
	}
	m.data[key] = value
	return nil
}

// Remove implements Storage.
func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Has reports whether key is present.
func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

// OpenDurable opens the store for the collection according to cfg.Storage.
func OpenDurable(cfg *Config) (Storage, error) {
	switch cfg.Storage {
	case "", BackendDisk:
		return NewDisk(cfg.BasePath()), nil
	case BackendSQLite:
		return OpenSQLite(cfg.SQLite.Path)
	case BackendMemory:
		return NewMemory(nil), nil
	default:
		return nil, fmt.Errorf("%w: storage %q", ErrUnknownBackend, cfg.Storage)
	}
}

// OpenSession opens the session-scoped store according to cfg.Session.
func OpenSession(ctx context.Context, cfg *Config) (Storage, error) {
	switch cfg.Session.Backend {
	case "", BackendDisk:
		return NewDisk(cfg.SessionPath()), nil
	case BackendRedis:
		return OpenRedis(ctx, cfg.Redis, cfg.Session.ID, cfg.Session.TTL)
	case BackendMemory:
		return NewMemory(nil), nil
	default:
		return nil, fmt.Errorf("%w: session backend %q", ErrUnknownBackend, cfg.Session.Backend)
	}
}
