// Package kvstore provides the opaque key-value persistence layer the
// schedule and roster repositories write their JSON blobs through. Drivers
// exist for in-memory, filesystem, Redis and PostgreSQL backends.
package kvstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Read when no value exists for the key.
var ErrKeyNotFound = errors.New("kvstore: key not found")

// Store reads and writes opaque blobs. Callers own serialization.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
