package gormstore

import (
	"fmt"

	"github.com/matthewmachida/yumis-bakery/internal/models"
)

// InsertTransaction creates a new header row and returns the id the
// store assigned to it.
func (s *GormStore) InsertTransaction(username string) (int64, error) {
	t := models.Transaction{Username: username}
	if err := s.db.Create(&t).Error; err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}
	return t.TransactionID, nil
}

func (s *GormStore) InsertLineItem(item *models.TransactionItem) error {
	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("insert line item: %w", err)
	}
	return nil
}

// TransactionsFor joins each of the user's transaction headers with its
// line items and the current flavor price, producing one summary per
// transaction. Headers without line items are skipped.
func (s *GormStore) TransactionsFor(username string) ([]models.TransactionSummary, error) {
	var headers []models.Transaction
	if err := s.db.Where("username = ?", username).
		Order("transaction_id").
		Find(&headers).Error; err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}

	summaries := []models.TransactionSummary{}
	for _, h := range headers {
		var items []models.PurchasedItem
		if err := s.db.Table("itemhistory").
			Select("itemhistory.transaction_id", "itemhistory.item_id", "itemhistory.quantity",
				"itemhistory.modifications", "itemflavors.price").
			Joins("JOIN itemflavors ON itemflavors.id = itemhistory.item_id").
			Where("itemhistory.transaction_id = ?", h.TransactionID).
			Scan(&items).Error; err != nil {
			return nil, fmt.Errorf("query line items: %w", err)
		}
		if len(items) == 0 {
			continue
		}

		summary := models.TransactionSummary{
			TransactionID: h.TransactionID,
			Items:         items,
		}
		for _, it := range items {
			summary.TotalCost += it.Price * float64(it.Quantity)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// ReportRows flattens every transaction into sales-report lines.
func (s *GormStore) ReportRows() ([]models.ReportRow, error) {
	rows := []models.ReportRow{}
	if err := s.db.Table("itemhistory").
		Select("itemhistory.transaction_id", "history.username", "itemflavors.name",
			"itemflavors.flavor", "itemhistory.quantity", "itemflavors.price",
			"itemhistory.modifications").
		Joins("JOIN history ON history.transaction_id = itemhistory.transaction_id").
		Joins("JOIN itemflavors ON itemflavors.id = itemhistory.item_id").
		Order("itemhistory.transaction_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query report rows: %w", err)
	}
	return rows, nil
}
