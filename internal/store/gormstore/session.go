package gormstore

import (
	"errors"
	"fmt"

	"github.com/matthewmachida/yumis-bakery/internal/models"
	"github.com/matthewmachida/yumis-bakery/internal/store"

	"gorm.io/gorm"
)

func (s *GormStore) CreateSession(sess *models.Session) error {
	if err := s.db.Create(sess).Error; err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (s *GormStore) SessionByID(id string) (*models.Session, error) {
	var sess models.Session
	if err := s.db.First(&sess, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return &sess, nil
}

// RevokeSessions marks every session of the user revoked.
func (s *GormStore) RevokeSessions(username string) error {
	if err := s.db.Model(&models.Session{}).
		Where("username = ?", username).
		Update("revoked", true).Error; err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	return nil
}
