package service

import (
	"errors"
	"math"
	"testing"

	"github.com/matthewmachida/yumis-bakery/internal/models"
)

func TestPurchaseMissingFields(t *testing.T) {
	svc, _ := newCheckout(t)

	if _, err := svc.Purchase("", `[{"item":1,"quantity":1}]`); !errors.Is(err, ErrValidation) {
		t.Errorf("missing username error = %v, want ErrValidation", err)
	}
	if _, err := svc.Purchase("ana", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("missing cart error = %v, want ErrValidation", err)
	}
}

func TestPurchaseRequiresLogin(t *testing.T) {
	svc, _ := newCheckout(t)

	_, err := svc.Purchase("ghost", `[{"item":1,"quantity":1}]`)
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("error = %v, want ErrNotLoggedIn", err)
	}
}

func TestPurchaseMalformedCart(t *testing.T) {
	svc, _ := newCheckout(t)
	loginUser(t, svc.Accounts, "ana")

	_, err := svc.Purchase("ana", `{not json`)
	if !errors.Is(err, ErrStore) {
		t.Errorf("error = %v, want ErrStore", err)
	}
}

func TestPurchaseEmptyCart(t *testing.T) {
	svc, _ := newCheckout(t)
	loginUser(t, svc.Accounts, "ana")

	_, err := svc.Purchase("ana", `[]`)
	if !errors.Is(err, ErrEmptyCart) {
		t.Errorf("error = %v, want ErrEmptyCart", err)
	}
}

func TestPurchaseRejectsNonPositiveQuantity(t *testing.T) {
	svc, db := newCheckout(t)
	loginUser(t, svc.Accounts, "ana")

	// a negative quantity would raise stock through the guarded decrement
	cases := []string{
		`[{"item":1,"quantity":0}]`,
		`[{"item":1,"quantity":-3}]`,
		`[{"item":1,"quantity":1},{"item":3,"quantity":-1}]`,
	}
	for _, cart := range cases {
		if _, err := svc.Purchase("ana", cart); !errors.Is(err, ErrValidation) {
			t.Errorf("cart %s: error = %v, want ErrValidation", cart, err)
		}
	}
	if got := stockOf(t, db, 1); got != 5 {
		t.Errorf("stock(1) = %d after rejected carts, want 5", got)
	}
	if got := stockOf(t, db, 3); got != 10 {
		t.Errorf("stock(3) = %d after rejected carts, want 10", got)
	}
}

func TestPurchaseOutOfStock(t *testing.T) {
	svc, db := newCheckout(t)
	loginUser(t, svc.Accounts, "ana")

	// flavor 2 is sold out; the whole cart must fail
	_, err := svc.Purchase("ana", `[{"item":1,"quantity":2},{"item":2,"quantity":1}]`)
	if !errors.Is(err, ErrOutOfStock) {
		t.Errorf("error = %v, want ErrOutOfStock", err)
	}
	if got := stockOf(t, db, 1); got != 5 {
		t.Errorf("stock(1) = %d after rejected purchase, want 5", got)
	}
}

func TestPurchaseSuccess(t *testing.T) {
	svc, db := newCheckout(t)
	loginUser(t, svc.Accounts, "ana")

	summary, err := svc.Purchase("ana", `[{"item":1,"quantity":2,"modifications":"extra sprinkles"},{"item":3,"quantity":1}]`)
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}

	if summary.Username != "ana" {
		t.Errorf("username = %q, want ana", summary.Username)
	}
	if summary.TransactionID == 0 {
		t.Error("transaction id not assigned")
	}
	if len(summary.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(summary.Items))
	}
	// 2 * 2.50 + 1 * 32.00
	if math.Abs(summary.TotalCost-37.00) > 1e-9 {
		t.Errorf("total_cost = %v, want 37.00", summary.TotalCost)
	}

	if got := stockOf(t, db, 1); got != 3 {
		t.Errorf("stock(1) = %d, want 3", got)
	}
	if got := stockOf(t, db, 3); got != 9 {
		t.Errorf("stock(3) = %d, want 9", got)
	}

	var items []models.TransactionItem
	if err := db.Where("transaction_id = ?", summary.TransactionID).Find(&items).Error; err != nil {
		t.Fatalf("read line items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("line items = %d, want 2", len(items))
	}
	if items[0].Modifications != "extra sprinkles" {
		t.Errorf("modifications = %q, want %q", items[0].Modifications, "extra sprinkles")
	}
}

func TestPurchaseIsNotIdempotent(t *testing.T) {
	svc, db := newCheckout(t)
	loginUser(t, svc.Accounts, "ana")

	cart := `[{"item":1,"quantity":2}]`
	first, err := svc.Purchase("ana", cart)
	if err != nil {
		t.Fatalf("first purchase failed: %v", err)
	}
	second, err := svc.Purchase("ana", cart)
	if err != nil {
		t.Fatalf("second purchase failed: %v", err)
	}

	if first.TransactionID == second.TransactionID {
		t.Error("repeated purchase reused a transaction id")
	}
	if got := stockOf(t, db, 1); got != 1 {
		t.Errorf("stock(1) = %d after two purchases, want 1", got)
	}
}

func TestRecordRollsBackOnFault(t *testing.T) {
	svc, db := newCheckout(t)
	loginUser(t, svc.Accounts, "ana")

	// second entry references a missing flavor; the whole commit must
	// roll back, header included
	_, err := svc.Recorder.Record("ana", []models.CartItem{
		{Item: 1, Quantity: 1},
		{Item: 99, Quantity: 1},
	})
	if err == nil {
		t.Fatal("Record with unknown item succeeded, want error")
	}

	var headers int64
	db.Model(&models.Transaction{}).Count(&headers)
	if headers != 0 {
		t.Errorf("transaction headers = %d after rollback, want 0", headers)
	}
	var lines int64
	db.Model(&models.TransactionItem{}).Count(&lines)
	if lines != 0 {
		t.Errorf("line items = %d after rollback, want 0", lines)
	}
	if got := stockOf(t, db, 1); got != 5 {
		t.Errorf("stock(1) = %d after rollback, want 5", got)
	}
}
