package database

import (
	"fmt"

	"github.com/matthewmachida/yumis-bakery/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.ItemInfo{},
		&models.ItemFlavor{},
		&models.Transaction{},
		&models.TransactionItem{},
		&models.Session{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Seed fills the catalog tables with the bakery lineup if they are empty.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ItemInfo{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count iteminfo: %w", err)
	}
	if count > 0 {
		return nil
	}

	infos := []models.ItemInfo{
		{Name: "cupcake", Img: "cupcake.jpg", Max: 12, Small: true, Customizable: true},
		{Name: "cookie", Img: "cookie.jpg", Max: 24, Small: true},
		{Name: "macaron", Img: "macaron.jpg", Max: 12, Small: true},
		{Name: "cake", Img: "cake.jpg", Max: 2, Large: true, Customizable: true},
		{Name: "pie", Img: "pie.jpg", Max: 3, Large: true},
		{Name: "croissant", Img: "croissant.jpg", Max: 6, Small: true},
	}
	flavors := []models.ItemFlavor{
		{Name: "cupcake", Flavor: "vanilla", Price: 3.50, Stock: 36},
		{Name: "cupcake", Flavor: "chocolate", Price: 3.50, Stock: 36},
		{Name: "cupcake", Flavor: "red velvet", Price: 4.00, Stock: 24},
		{Name: "cookie", Flavor: "chocolate chip", Price: 2.00, Stock: 48},
		{Name: "cookie", Flavor: "snickerdoodle", Price: 2.25, Stock: 36},
		{Name: "macaron", Flavor: "pistachio", Price: 2.75, Stock: 30},
		{Name: "macaron", Flavor: "raspberry", Price: 2.75, Stock: 30},
		{Name: "cake", Flavor: "matcha", Price: 32.00, Stock: 4},
		{Name: "cake", Flavor: "strawberry shortcake", Price: 30.00, Stock: 4},
		{Name: "pie", Flavor: "apple", Price: 18.00, Stock: 6},
		{Name: "croissant", Flavor: "plain", Price: 3.25, Stock: 20},
		{Name: "croissant", Flavor: "almond", Price: 3.75, Stock: 16},
	}

	if err := db.Create(&infos).Error; err != nil {
		return fmt.Errorf("seed iteminfo: %w", err)
	}
	if err := db.Create(&flavors).Error; err != nil {
		return fmt.Errorf("seed itemflavors: %w", err)
	}
	return nil
}
