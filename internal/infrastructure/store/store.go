// internal/infrastructure/store/store.go
package store

import (
	"context"
	"errors"
	"fmt"
)

// Logical collection keys used by the order engine.
const (
	KeyCart     = "cart"
	KeyWishlist = "wishlist"
	KeyOrders   = "orders"
)

// ErrNotFound is returned by Load when no value exists for the key.
var ErrNotFound = errors.New("key not found")

// Store is the persistence collaborator of the order engine. Values are
// opaque JSON documents keyed by logical collection. Writes are
// last-write-wins; SaveAll must apply all entries atomically.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	SaveAll(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
}

// PersistenceError wraps a failed store operation. Callers may safely
// retry the same operation.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("store %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// interface guards
var (
	_ Store = (*RedisStore)(nil)
	_ Store = (*GormStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
