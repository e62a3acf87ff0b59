package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	pkgerrors "github.com/midnightshuttle/storefront-core/pkg/errors"
	"github.com/midnightshuttle/storefront-core/pkg/logger"
)

// ErrKeyNotFound is returned by backends when a key has no value.
var ErrKeyNotFound = errors.New("kvstore: key not found")

// Backend persists raw bytes under string keys.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}

// Store is the JSON key-value facade handed to domain code. Backend failures
// are logged and swallowed here: a read falls back to the caller's default
// and a write becomes a no-op, so storage trouble never unwinds an
// in-memory mutation.
type Store struct {
	backend Backend
	logg    *logger.Logger
}

// New builds a Store over the given backend.
func New(backend Backend, logg *logger.Logger) (*Store, error) {
	if backend == nil {
		return nil, fmt.Errorf("kvstore backend required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Store{backend: backend, logg: logg}, nil
}

// Get unmarshals the value stored under key into dest and reports whether a
// value was found. dest is left untouched on miss or failure.
func (s *Store) Get(ctx context.Context, key string, dest any) bool {
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.logg.Error(s.logg.WithStorageKey(ctx, key), "kvstore read failed",
				pkgerrors.Wrap(pkgerrors.CodeStorage, err, "read value"))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.logg.Error(s.logg.WithStorageKey(ctx, key), "kvstore value corrupt", err)
		return false
	}
	return true
}

// Set marshals value and stores it under key.
func (s *Store) Set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logg.Error(s.logg.WithStorageKey(ctx, key), "kvstore marshal failed", err)
		return
	}
	if err := s.backend.Set(ctx, key, raw); err != nil {
		s.logg.Error(s.logg.WithStorageKey(ctx, key), "kvstore write failed",
			pkgerrors.Wrap(pkgerrors.CodeStorage, err, "write value"))
	}
}

// Remove deletes the value stored under key.
func (s *Store) Remove(ctx context.Context, key string) {
	if err := s.backend.Remove(ctx, key); err != nil {
		s.logg.Error(s.logg.WithStorageKey(ctx, key), "kvstore remove failed",
			pkgerrors.Wrap(pkgerrors.CodeStorage, err, "remove value"))
	}
}

// Clear drops every key owned by the backend namespace.
func (s *Store) Clear(ctx context.Context) {
	if err := s.backend.Clear(ctx); err != nil {
		s.logg.Error(ctx, "kvstore clear failed",
			pkgerrors.Wrap(pkgerrors.CodeStorage, err, "clear namespace"))
	}
}

// Close releases backend resources.
func (s *Store) Close() error {
	return s.backend.Close()
}
