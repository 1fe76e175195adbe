// internal/infrastructure/store/redis_store.go
package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists engine collections in Redis. Keys are namespaced
// so multiple engine instances (one per session/tenant) can share a
// single Redis database.
type RedisStore struct {
	client    *redis.Client
	namespace string
}

// NewRedisStore creates a Redis-backed store. The namespace is
// typically a session or tenant identifier.
func NewRedisStore(client *redis.Client, namespace string) *RedisStore {
	return &RedisStore{
		client:    client,
		namespace: namespace,
	}
}

func (s *RedisStore) redisKey(key string) string {
	return fmt.Sprintf("engine:%s:%s", s.namespace, key)
}

// Load retrieves a value by key
func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.redisKey(key)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "load", Key: key, Err: err}
	}
	return data, nil
}

// Save stores a value without expiration; orders must outlive the session.
func (s *RedisStore) Save(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.redisKey(key), value, 0).Err(); err != nil {
		return &PersistenceError{Op: "save", Key: key, Err: err}
	}
	return nil
}

// SaveAll writes all entries in a single transactional pipeline.
func (s *RedisStore) SaveAll(ctx context.Context, values map[string][]byte) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for key, value := range values {
			pipe.Set(ctx, s.redisKey(key), value, 0)
		}
		return nil
	})
	if err != nil {
		return &PersistenceError{Op: "save-all", Key: keysOf(values), Err: err}
	}
	return nil
}

// Delete removes a key; deleting an absent key is not an error.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.redisKey(key)).Err(); err != nil {
		return &PersistenceError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func keysOf(values map[string][]byte) string {
	keys := ""
	for key := range values {
		if keys != "" {
			keys += ","
		}
		keys += key
	}
	return keys
}
