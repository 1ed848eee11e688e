package gormstore

import (
	"errors"
	"fmt"

	"github.com/matthewmachida/yumis-bakery/internal/models"
	"github.com/matthewmachida/yumis-bakery/internal/store"

	"gorm.io/gorm"
)

func (s *GormStore) StockFor(itemID int64) (int, error) {
	var f models.ItemFlavor
	if err := s.db.Select("stock").Where("id = ?", itemID).Take(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, store.ErrNotFound
		}
		return 0, fmt.Errorf("query stock %d: %w", itemID, err)
	}
	return f.Stock, nil
}

func (s *GormStore) PriceFor(itemID int64) (float64, error) {
	var f models.ItemFlavor
	if err := s.db.Select("price").Where("id = ?", itemID).Take(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, store.ErrNotFound
		}
		return 0, fmt.Errorf("query price %d: %w", itemID, err)
	}
	return f.Price, nil
}

// DecrementStock applies a conditional update so the counter can never go
// negative, even under concurrent checkouts. Zero rows affected means
// the stock was insufficient (or the item does not exist).
func (s *GormStore) DecrementStock(itemID int64, quantity int) error {
	res := s.db.Model(&models.ItemFlavor{}).
		Where("id = ? AND stock >= ?", itemID, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return fmt.Errorf("decrement stock %d: %w", itemID, res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrInsufficientStock
	}
	return nil
}

// Restock raises the stock counter and returns the new value.
func (s *GormStore) Restock(itemID int64, quantity int) (int, error) {
	res := s.db.Model(&models.ItemFlavor{}).
		Where("id = ?", itemID).
		UpdateColumn("stock", gorm.Expr("stock + ?", quantity))
	if res.Error != nil {
		return 0, fmt.Errorf("restock %d: %w", itemID, res.Error)
	}
	if res.RowsAffected == 0 {
		return 0, store.ErrNotFound
	}
	return s.StockFor(itemID)
}

func (s *GormStore) Flavors() ([]models.ItemFlavor, error) {
	flavors := []models.ItemFlavor{}
	if err := s.db.Order("name, flavor").Find(&flavors).Error; err != nil {
		return nil, fmt.Errorf("list flavors: %w", err)
	}
	return flavors, nil
}
