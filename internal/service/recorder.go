package service

import (
	"errors"
	"fmt"

	"github.com/matthewmachida/yumis-bakery/internal/logger"
	"github.com/matthewmachida/yumis-bakery/internal/models"
	"github.com/matthewmachida/yumis-bakery/internal/store"
)

// TransactionRecorder persists one checkout: header row, line items,
// running total, stock decrement.
type TransactionRecorder struct {
	Store store.Store
}

func NewTransactionRecorder(st store.Store) *TransactionRecorder {
	return &TransactionRecorder{Store: st}
}

// Record writes the whole checkout inside a single store transaction, so
// a fault partway through leaves no header without its line items and no
// partial stock decrement behind.
func (r *TransactionRecorder) Record(username string, cart []models.CartItem) (*models.PurchaseSummary, error) {
	summary := &models.PurchaseSummary{
		Username: username,
		Items:    []models.CartItem{},
	}

	err := r.Store.Atomically(func(tx store.Store) error {
		id, err := tx.InsertTransaction(username)
		if err != nil {
			return err
		}
		summary.TransactionID = id

		for _, it := range cart {
			price, err := tx.PriceFor(it.Item)
			if err != nil {
				return err
			}
			if err := tx.InsertLineItem(&models.TransactionItem{
				TransactionID: id,
				ItemID:        it.Item,
				Quantity:      it.Quantity,
				Modifications: it.Modifications,
			}); err != nil {
				return err
			}
			summary.Items = append(summary.Items, it)
			summary.TotalCost += price * float64(it.Quantity)
		}

		return NewStockLedger(tx).Decrement(cart)
	})
	if err != nil {
		if errors.Is(err, ErrOutOfStock) {
			return nil, ErrOutOfStock
		}
		return nil, fmt.Errorf("%w: record transaction: %v", ErrStore, err)
	}

	logger.Log.Infow("purchase recorded",
		"username", username,
		"transaction_id", summary.TransactionID,
		"items", len(cart),
		"total_cost", summary.TotalCost,
	)
	return summary, nil
}
