package service

import (
	"errors"
	"fmt"

	"github.com/matthewmachida/yumis-bakery/internal/models"
	"github.com/matthewmachida/yumis-bakery/internal/store"
)

// StockLedger reads and decrements the per-flavor stock counters.
type StockLedger struct {
	Store store.Store
}

func NewStockLedger(st store.Store) *StockLedger {
	return &StockLedger{Store: st}
}

// CheckAvailability reads the current stock for every cart entry and
// reports true only if all entries can be satisfied. An unknown item id
// counts as unavailable. The reads are a pre-check against a fresh
// snapshot; the decrement itself is guarded separately.
func (l *StockLedger) CheckAvailability(cart []models.CartItem) (bool, error) {
	for _, it := range cart {
		stock, err := l.Store.StockFor(it.Item)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return false, nil
			}
			return false, fmt.Errorf("%w: %v", ErrStore, err)
		}
		if it.Quantity > stock {
			return false, nil
		}
	}
	return true, nil
}

// Decrement applies stock = stock - quantity for each entry, in cart
// order. Each update is conditional on stock >= quantity, so a counter
// can never go negative; a failed entry surfaces as ErrOutOfStock.
func (l *StockLedger) Decrement(cart []models.CartItem) error {
	for _, it := range cart {
		if err := l.Store.DecrementStock(it.Item, it.Quantity); err != nil {
			if errors.Is(err, store.ErrInsufficientStock) {
				return ErrOutOfStock
			}
			return fmt.Errorf("%w: %v", ErrStore, err)
		}
	}
	return nil
}
