package gormstore

import (
	"fmt"

	"github.com/matthewmachida/yumis-bakery/internal/models"
)

func (s *GormStore) DessertCards() ([]models.DessertCard, error) {
	cards := []models.DessertCard{}
	if err := s.db.Model(&models.ItemInfo{}).
		Select("name", "img").
		Scan(&cards).Error; err != nil {
		return nil, fmt.Errorf("list desserts: %w", err)
	}
	return cards, nil
}

// DessertByName condenses every flavor row of one dessert type plus its
// shared metadata into a single nested response. A nil result means the
// dessert does not exist.
func (s *GormStore) DessertByName(name string) (*models.DessertDetail, error) {
	type row struct {
		Name   string
		Flavor string
		Price  float64
		Img    string
		Max    int
	}

	var rows []row
	if err := s.db.Table("itemflavors").
		Select("itemflavors.name", "itemflavors.flavor", "itemflavors.price", "iteminfo.img", "iteminfo.max").
		Joins("JOIN iteminfo ON iteminfo.name = itemflavors.name").
		Where("itemflavors.name = ?", name).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("query dessert %q: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	detail := &models.DessertDetail{
		Name:    rows[0].Name,
		Img:     rows[0].Img,
		Max:     rows[0].Max,
		Flavors: make([]models.FlavorOption, 0, len(rows)),
	}
	for _, r := range rows {
		detail.Flavors = append(detail.Flavors, models.FlavorOption{Flavor: r.Flavor, Price: r.Price})
	}
	return detail, nil
}

func (s *GormStore) SearchCards(input string) ([]models.DessertCard, error) {
	cards := []models.DessertCard{}
	if err := s.db.Model(&models.ItemInfo{}).
		Select("name", "img").
		Where("name LIKE ?", "%"+input+"%").
		Scan(&cards).Error; err != nil {
		return nil, fmt.Errorf("search desserts: %w", err)
	}
	return cards, nil
}

// FilterCards matches the boolean filter flags exactly. The customizable
// flag is only applied when the caller supplied it.
func (s *GormStore) FilterCards(small, large bool, customizable *bool) ([]models.DessertCard, error) {
	q := s.db.Model(&models.ItemInfo{}).
		Select("name", "img").
		Where("small = ? AND large = ?", small, large)
	if customizable != nil {
		q = q.Where("customizable = ?", *customizable)
	}

	cards := []models.DessertCard{}
	if err := q.Scan(&cards).Error; err != nil {
		return nil, fmt.Errorf("filter desserts: %w", err)
	}
	return cards, nil
}
