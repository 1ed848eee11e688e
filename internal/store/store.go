package store

import (
	"errors"

	"github.com/matthewmachida/yumis-bakery/internal/models"
)

var (
	// ErrNotFound is returned when a looked-up row does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrInsufficientStock is returned when a guarded decrement would
	// drive a stock counter negative.
	ErrInsufficientStock = errors.New("store: insufficient stock")
)

// Store is the capability set the services run against. It is implemented
// by a single storage adapter so the orchestration logic has no direct
// dependency on any particular store technology.
type Store interface {
	// accounts
	UserByUsername(username string) (*models.User, error)
	CredentialsTaken(username, email string) (bool, error)
	CreateUser(u *models.User) error
	SetLoggedIn(username string, loggedIn bool) error

	// catalog
	DessertCards() ([]models.DessertCard, error)
	DessertByName(name string) (*models.DessertDetail, error)
	SearchCards(input string) ([]models.DessertCard, error)
	FilterCards(small, large bool, customizable *bool) ([]models.DessertCard, error)

	// stock
	StockFor(itemID int64) (int, error)
	PriceFor(itemID int64) (float64, error)
	DecrementStock(itemID int64, quantity int) error
	Restock(itemID int64, quantity int) (int, error)
	Flavors() ([]models.ItemFlavor, error)

	// transactions
	InsertTransaction(username string) (int64, error)
	InsertLineItem(item *models.TransactionItem) error
	TransactionsFor(username string) ([]models.TransactionSummary, error)
	ReportRows() ([]models.ReportRow, error)

	// sessions
	CreateSession(s *models.Session) error
	SessionByID(id string) (*models.Session, error)
	RevokeSessions(username string) error

	// Atomically runs fn against a store bound to a single transaction.
	// Any error rolls every write inside fn back.
	Atomically(fn func(Store) error) error
}
