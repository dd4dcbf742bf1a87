package repos_test

import (
	"errors"
	"testing"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"tillpoint/internal/repos"
)

func TestSaleRepo_RecordAndStock(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	prods := repos.NewProductRepo(db)
	sales := repos.NewSaleRepo(db)

	id, err := prods.Insert("Pen", "Stationery", 1.50, 10)
	if err != nil {
		t.Fatal(err)
	}

	// more than on hand: no decrement, no sale row
	if err := sales.Record("INV-X", id, 11, 16.50, "CASHIER"); !errors.Is(err, repos.ErrInsufficientStock) {
		t.Fatalf("want ErrInsufficientStock, got %v", err)
	}
	qty, err := prods.Qty(id)
	if err != nil {
		t.Fatal(err)
	}
	if qty != 10 {
		t.Fatalf("stock changed on failed sale: %d", qty)
	}
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM sales`); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("sale row inserted on failure: %d", n)
	}

	// unknown product
	if err := sales.Record("INV-Y", 9999, 1, 1.50, "CASHIER"); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	// a valid sale decrements exactly and inserts one row
	if err := sales.Record("INV1", id, 5, 7.50, "CASHIER"); err != nil {
		t.Fatalf("record: %v", err)
	}
	qty, err = prods.Qty(id)
	if err != nil {
		t.Fatal(err)
	}
	if qty != 5 {
		t.Fatalf("want stock 5, got %d", qty)
	}

	recs, err := sales.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("want one sale row, got %d", len(recs))
	}
	rec := recs[0]
	if rec.InvoiceNumber != "INV1" || rec.ProductName != "Pen" || rec.Quantity != 5 ||
		rec.TotalPrice != 7.50 || rec.Cashier != "CASHIER" {
		t.Fatalf("bad sale record: %+v", rec)
	}
	if rec.SaleDate == "" {
		t.Fatal("sale_date not defaulted")
	}
}

func TestSaleRepo_ListMostRecentFirst(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	prods := repos.NewProductRepo(db)
	sales := repos.NewSaleRepo(db)

	id, err := prods.Insert("Pen", "Stationery", 1.50, 100)
	if err != nil {
		t.Fatal(err)
	}
	for _, inv := range []string{"INV1", "INV2", "INV3"} {
		if err := sales.Record(inv, id, 1, 1.50, "CASHIER"); err != nil {
			t.Fatal(err)
		}
	}

	recs, err := sales.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Fatalf("want 3 rows, got %d", len(recs))
	}
	// same timestamp second: id breaks the tie, newest first
	if recs[0].InvoiceNumber != "INV3" || recs[2].InvoiceNumber != "INV1" {
		t.Fatalf("bad order: %+v", recs)
	}
}
