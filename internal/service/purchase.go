package service

import (
	"encoding/json"
	"fmt"

	"github.com/matthewmachida/yumis-bakery/internal/models"
)

// PurchaseService composes the account check, the stock pre-check and
// the transaction recorder into the end-to-end checkout sequence.
type PurchaseService struct {
	Accounts *AccountService
	Ledger   *StockLedger
	Recorder *TransactionRecorder
}

func NewPurchaseService(accounts *AccountService, ledger *StockLedger, recorder *TransactionRecorder) *PurchaseService {
	return &PurchaseService{
		Accounts: accounts,
		Ledger:   ledger,
		Recorder: recorder,
	}
}

// Purchase runs the linear checkout pipeline. Every request reaches
// exactly one terminal outcome:
//
//	missing fields   -> ErrValidation
//	not logged in    -> ErrNotLoggedIn
//	malformed cart   -> ErrStore (not distinguished from a store fault)
//	empty cart       -> ErrEmptyCart
//	non-positive qty -> ErrValidation
//	unavailable item -> ErrOutOfStock
//	commit fault     -> ErrStore
func (s *PurchaseService) Purchase(username, cartJSON string) (*models.PurchaseSummary, error) {
	if username == "" || cartJSON == "" {
		return nil, ErrValidation
	}

	if !s.Accounts.IsLoggedIn(username) {
		return nil, ErrNotLoggedIn
	}

	var cart []models.CartItem
	if err := json.Unmarshal([]byte(cartJSON), &cart); err != nil {
		return nil, fmt.Errorf("%w: parse cart: %v", ErrStore, err)
	}
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}
	for _, it := range cart {
		// quantity must be a positive integer; a negative one would
		// raise stock through the guarded decrement
		if it.Quantity <= 0 {
			return nil, ErrValidation
		}
	}

	ok, err := s.Ledger.CheckAvailability(cart)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOutOfStock
	}

	return s.Recorder.Record(username, cart)
}
