package service

import (
	"fmt"

	"github.com/matthewmachida/yumis-bakery/internal/models"
	"github.com/matthewmachida/yumis-bakery/internal/store"
)

// CatalogService reads dessert metadata and shapes it for the frontend.
type CatalogService struct {
	Store store.Store
}

func NewCatalogService(st store.Store) *CatalogService {
	return &CatalogService{Store: st}
}

// GetAll returns one card per dessert type. An empty result set is
// reported as not found, not as an empty list.
func (s *CatalogService) GetAll() ([]models.DessertCard, error) {
	cards, err := s.Store.DessertCards()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if len(cards) == 0 {
		return nil, ErrNotFound
	}
	return cards, nil
}

// GetOne returns the detail view for a single dessert type with its
// flavor list.
func (s *CatalogService) GetOne(name string) (*models.DessertDetail, error) {
	detail, err := s.Store.DessertByName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if detail == nil {
		return nil, ErrNotFound
	}
	return detail, nil
}

// SearchText does a substring match on the dessert name. An empty result
// list is a valid answer here, not an error.
func (s *CatalogService) SearchText(input string) ([]models.DessertCard, error) {
	cards, err := s.Store.SearchCards(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return cards, nil
}

// SearchFilters matches the small/large flags exactly; customizable is
// only applied when supplied.
func (s *CatalogService) SearchFilters(small, large bool, customizable *bool) ([]models.DessertCard, error) {
	cards, err := s.Store.FilterCards(small, large, customizable)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return cards, nil
}
