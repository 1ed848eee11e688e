package gormstore

import (
	"errors"
	"fmt"

	"github.com/matthewmachida/yumis-bakery/internal/models"
	"github.com/matthewmachida/yumis-bakery/internal/store"

	"gorm.io/gorm"
)

func (s *GormStore) UserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &user, nil
}

// CredentialsTaken reports whether the username or the email already
// belongs to an existing account.
func (s *GormStore) CredentialsTaken(username, email string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check credentials: %w", err)
	}
	return count > 0, nil
}

func (s *GormStore) CreateUser(u *models.User) error {
	if err := s.db.Create(u).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *GormStore) SetLoggedIn(username string, loggedIn bool) error {
	if err := s.db.Model(&models.User{}).
		Where("username = ?", username).
		Update("loggedin", loggedIn).Error; err != nil {
		return fmt.Errorf("set loggedin: %w", err)
	}
	return nil
}
