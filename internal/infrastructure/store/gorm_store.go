// internal/infrastructure/store/gorm_store.go
package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is a persisted key-value row
type Entry struct {
	Namespace string    `gorm:"primaryKey;size:100" json:"namespace"`
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     []byte    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (Entry) TableName() string {
	return "kv_entries"
}

// GormStore persists engine collections in a relational database
// through GORM. Postgres backs production; sqlite serves the tests.
type GormStore struct {
	db        *gorm.DB
	namespace string
}

// NewGormStore creates a database-backed store
func NewGormStore(db *gorm.DB, namespace string) *GormStore {
	return &GormStore{
		db:        db,
		namespace: namespace,
	}
}

// Load retrieves a value by key
func (s *GormStore) Load(ctx context.Context, key string) ([]byte, error) {
	var entry Entry
	err := s.db.WithContext(ctx).
		Where("namespace = ? AND key = ?", s.namespace, key).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &PersistenceError{Op: "load", Key: key, Err: err}
	}
	return entry.Value, nil
}

// Save upserts a single entry
func (s *GormStore) Save(ctx context.Context, key string, value []byte) error {
	if err := s.upsert(s.db.WithContext(ctx), key, value); err != nil {
		return &PersistenceError{Op: "save", Key: key, Err: err}
	}
	return nil
}

// SaveAll upserts all entries within one database transaction.
func (s *GormStore) SaveAll(ctx context.Context, values map[string][]byte) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			if err := s.upsert(tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &PersistenceError{Op: "save-all", Key: keysOf(values), Err: err}
	}
	return nil
}

// Delete removes a key; deleting an absent key is not an error.
func (s *GormStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).
		Where("namespace = ? AND key = ?", s.namespace, key).
		Delete(&Entry{}).Error
	if err != nil {
		return &PersistenceError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

func (s *GormStore) upsert(tx *gorm.DB, key string, value []byte) error {
	entry := Entry{
		Namespace: s.namespace,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}
