package service

import (
	"fmt"

	"github.com/matthewmachida/yumis-bakery/internal/logger"
	"github.com/matthewmachida/yumis-bakery/internal/models"
	"github.com/matthewmachida/yumis-bakery/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// AccountService creates accounts, authenticates credential pairs and
// tracks the per-user logged-in flag.
type AccountService struct {
	Store store.Store
}

func NewAccountService(st store.Store) *AccountService {
	return &AccountService{Store: st}
}

// Exists reports whether the username or the email is already taken.
func (s *AccountService) Exists(username, email string) (bool, error) {
	return s.Store.CredentialsTaken(username, email)
}

// Create registers a new, logged-out account. Passwords are stored as
// bcrypt hashes; the credential check contract is unchanged.
func (s *AccountService) Create(username, password, email string) error {
	if username == "" || password == "" || email == "" {
		return ErrValidation
	}

	taken, err := s.Exists(username, email)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	if taken {
		return ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: hash password: %v", ErrStore, err)
	}

	user := models.User{
		Username: username,
		Password: string(hash),
		Email:    email,
	}
	if err := s.Store.CreateUser(&user); err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	logger.Log.Infow("account created", "username", username)
	return nil
}

// Authenticate checks the credential pair. On success it sets the
// logged-in flag as a side effect; a mismatch returns false without
// touching the flag.
func (s *AccountService) Authenticate(username, password string) (bool, error) {
	user, err := s.Store.UserByUsername(username)
	if err != nil {
		if err == store.ErrNotFound {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrStore, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return false, nil
	}

	if err := s.Store.SetLoggedIn(username, true); err != nil {
		return false, fmt.Errorf("%w: %v", ErrStore, err)
	}
	logger.Log.Infow("user logged in", "username", username)
	return true, nil
}

// IsLoggedIn returns the stored flag. A missing user or any read failure
// yields false, never an error.
func (s *AccountService) IsLoggedIn(username string) bool {
	user, err := s.Store.UserByUsername(username)
	if err != nil {
		return false
	}
	return user.LoggedIn
}

// Logout clears the logged-in flag and revokes any issued sessions.
func (s *AccountService) Logout(username string) error {
	if err := s.Store.SetLoggedIn(username, false); err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	if err := s.Store.RevokeSessions(username); err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	logger.Log.Infow("user logged out", "username", username)
	return nil
}
