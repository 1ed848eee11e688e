package service

import (
	"fmt"

	"github.com/matthewmachida/yumis-bakery/internal/models"
	"github.com/matthewmachida/yumis-bakery/internal/store"
)

// HistoryService produces per-transaction purchase summaries for a user.
type HistoryService struct {
	Accounts *AccountService
	Store    store.Store
}

func NewHistoryService(accounts *AccountService, st store.Store) *HistoryService {
	return &HistoryService{Accounts: accounts, Store: st}
}

// HistoryFor returns every past transaction of the user, each joined with
// its line items and the current flavor prices. The user must be logged
// in; an empty history is a valid answer.
func (s *HistoryService) HistoryFor(username string) ([]models.TransactionSummary, error) {
	if !s.Accounts.IsLoggedIn(username) {
		return nil, ErrNotLoggedIn
	}

	summaries, err := s.Store.TransactionsFor(username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return summaries, nil
}
