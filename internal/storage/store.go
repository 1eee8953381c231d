// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/billsplit/internal/models"
)

// ErrNotFound is returned by KeyValueStore.Get for a missing key.
var ErrNotFound = errors.New("key not found")

// KeyValueStore persists opaque values under string keys.
// This abstraction allows swapping storage backends without changing the
// service layer.
type KeyValueStore interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByEmail and GetUserByID return nil, nil when no user matches.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Store is the full storage backend used by the server.
type Store interface {
	KeyValueStore
	UserStore

	// Close releases any resources held by the store.
	Close() error
}
