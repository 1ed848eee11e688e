package service

import (
	"errors"
	"testing"

	"github.com/matthewmachida/yumis-bakery/internal/store/gormstore"
)

func newCatalog(t *testing.T) *CatalogService {
	t.Helper()
	db := newTestDB(t)
	seedCatalog(t, db)
	return NewCatalogService(gormstore.New(db))
}

func TestGetAllCards(t *testing.T) {
	catalog := newCatalog(t)

	cards, err := catalog.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(cards) != 2 {
		t.Fatalf("cards = %d, want 2", len(cards))
	}
	for _, card := range cards {
		if card.Name == "" || card.Img == "" {
			t.Errorf("card missing fields: %+v", card)
		}
	}
}

func TestGetAllEmptyCatalogIsNotFound(t *testing.T) {
	catalog := NewCatalogService(gormstore.New(newTestDB(t)))

	if _, err := catalog.GetAll(); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetAll on empty catalog error = %v, want ErrNotFound", err)
	}
}

func TestGetOneShape(t *testing.T) {
	catalog := newCatalog(t)

	detail, err := catalog.GetOne("cupcake")
	if err != nil {
		t.Fatalf("GetOne failed: %v", err)
	}
	if detail.Name != "cupcake" || detail.Img != "cupcake.jpg" || detail.Max != 12 {
		t.Errorf("detail metadata wrong: %+v", detail)
	}
	if len(detail.Flavors) != 2 {
		t.Fatalf("flavors = %d, want 2", len(detail.Flavors))
	}
	if detail.Flavors[0].Flavor == "" || detail.Flavors[0].Price == 0 {
		t.Errorf("flavor option incomplete: %+v", detail.Flavors[0])
	}
}

func TestGetOneUnknownDessert(t *testing.T) {
	catalog := newCatalog(t)

	if _, err := catalog.GetOne("donut"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetOne(donut) error = %v, want ErrNotFound", err)
	}
}

func TestSearchText(t *testing.T) {
	catalog := newCatalog(t)

	cards, err := catalog.SearchText("cup")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(cards) != 1 || cards[0].Name != "cupcake" {
		t.Errorf("SearchText(cup) = %+v, want [cupcake]", cards)
	}

	// no match is an empty list, not an error
	cards, err = catalog.SearchText("donut")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if cards == nil || len(cards) != 0 {
		t.Errorf("SearchText(donut) = %+v, want empty list", cards)
	}
}

func TestSearchFilters(t *testing.T) {
	catalog := newCatalog(t)

	// small, not large
	cards, err := catalog.SearchFilters(true, false, nil)
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(cards) != 1 || cards[0].Name != "cupcake" {
		t.Errorf("small filter = %+v, want [cupcake]", cards)
	}

	// large + customizable: cake is large but not customizable
	custom := true
	cards, err = catalog.SearchFilters(false, true, &custom)
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("large+customizable filter = %+v, want empty", cards)
	}

	custom = false
	cards, err = catalog.SearchFilters(false, true, &custom)
	if err != nil {
		t.Fatalf("filter failed: %v", err)
	}
	if len(cards) != 1 || cards[0].Name != "cake" {
		t.Errorf("large filter = %+v, want [cake]", cards)
	}
}
