// Package storage wraps the client's durable local state: a small key-value
// store backed by sqlite, plus a payloadless change notifier so other parts
// of the process (and, through the shared database file, other running
// clients) can re-read the store after a write.
package storage

import (
	"context"
	"errors"
)

// Keys used by the client. KeyUser is a legacy mirror of the session user:
// the transport still clears it alongside the token on an auth failure, but
// nothing writes it anymore; the in-memory session owns the user record.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyCart  = "cart"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// Store is the durable key-value contract. Implementations return errors
// rather than panicking when the underlying storage is unavailable.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
