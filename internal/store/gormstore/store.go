// Package gormstore is the GORM-backed storage adapter for the bakery.
package gormstore

import (
	"github.com/matthewmachida/yumis-bakery/internal/store"

	"gorm.io/gorm"
)

type GormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Atomically runs fn against a store bound to one database transaction.
func (s *GormStore) Atomically(fn func(store.Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
