package service

import (
	"testing"

	"github.com/matthewmachida/yumis-bakery/internal/database"
	"github.com/matthewmachida/yumis-bakery/internal/logger"
	"github.com/matthewmachida/yumis-bakery/internal/models"
	"github.com/matthewmachida/yumis-bakery/internal/store/gormstore"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.InitLoggerDev()
}

// newTestDB opens an in-memory SQLite database with the bakery schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	// a single connection keeps every query on the same :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// seedCatalog inserts two desserts with three flavors. Flavor 1 has
// stock 5, flavor 2 is sold out, flavor 3 has stock 10.
func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	infos := []models.ItemInfo{
		{Name: "cupcake", Img: "cupcake.jpg", Max: 12, Small: true, Customizable: true},
		{Name: "cake", Img: "cake.jpg", Max: 2, Large: true},
	}
	flavors := []models.ItemFlavor{
		{ID: 1, Name: "cupcake", Flavor: "vanilla", Price: 2.50, Stock: 5},
		{ID: 2, Name: "cupcake", Flavor: "chocolate", Price: 4.00, Stock: 0},
		{ID: 3, Name: "cake", Flavor: "matcha", Price: 32.00, Stock: 10},
	}
	if err := db.Create(&infos).Error; err != nil {
		t.Fatalf("seed iteminfo: %v", err)
	}
	if err := db.Create(&flavors).Error; err != nil {
		t.Fatalf("seed itemflavors: %v", err)
	}
}

// newAccounts builds an AccountService over a fresh store.
func newAccounts(t *testing.T) (*AccountService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewAccountService(gormstore.New(db)), db
}

// newCheckout builds the full checkout stack over a seeded catalog.
func newCheckout(t *testing.T) (*PurchaseService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	seedCatalog(t, db)

	st := gormstore.New(db)
	accounts := NewAccountService(st)
	ledger := NewStockLedger(st)
	recorder := NewTransactionRecorder(st)
	return NewPurchaseService(accounts, ledger, recorder), db
}

// loginUser creates an account and flips it to logged in.
func loginUser(t *testing.T, svc *AccountService, username string) {
	t.Helper()
	if err := svc.Create(username, "Password1", username+"@x.com"); err != nil {
		t.Fatalf("create %s: %v", username, err)
	}
	ok, err := svc.Authenticate(username, "Password1")
	if err != nil || !ok {
		t.Fatalf("authenticate %s: ok=%v err=%v", username, ok, err)
	}
}

func stockOf(t *testing.T, db *gorm.DB, id int64) int {
	t.Helper()
	var f models.ItemFlavor
	if err := db.First(&f, id).Error; err != nil {
		t.Fatalf("read stock %d: %v", id, err)
	}
	return f.Stock
}
