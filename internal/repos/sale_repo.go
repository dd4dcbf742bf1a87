package repos

import (
	"database/sql"

	"tillpoint/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SaleRepo struct{ db *sqlx.DB }

func NewSaleRepo(db *sqlx.DB) *SaleRepo { return &SaleRepo{db: db} }

// Record decrements stock and inserts the sale row in one transaction.
// The decrement is conditional on sufficient stock, so two concurrent
// sales cannot both pass a separate check before either commits.
func (r *SaleRepo) Record(invoice string, productID int64, qty int, total float64, cashier string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		UPDATE products
		SET quantity = quantity - ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND quantity >= ?
	`, qty, productID, qty)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		// Distinguish a missing product from short stock for the log.
		var exists bool
		if err := tx.Get(&exists, `SELECT EXISTS(SELECT 1 FROM products WHERE id=?)`, productID); err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		return ErrInsufficientStock
	}

	if _, err := tx.Exec(`
		INSERT INTO sales(invoice_number, product_id, quantity, total_price, cashier_username)
		VALUES(?, ?, ?, ?, ?)
	`, invoice, productID, qty, total, cashier); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *SaleRepo) List() ([]domain.SaleRecord, error) {
	var out []domain.SaleRecord
	err := r.db.Select(&out, `
		SELECT s.id, s.invoice_number, p.name AS product_name, s.quantity,
		       s.total_price, s.sale_date, s.cashier_username
		FROM sales s
		JOIN products p ON p.id = s.product_id
		ORDER BY datetime(s.sale_date) DESC, s.id DESC
	`)
	return out, err
}

func (r *SaleRepo) Get(id int64) (domain.Sale, error) {
	var s domain.Sale
	err := r.db.Get(&s, `
		SELECT id, invoice_number, product_id, quantity, total_price, sale_date, cashier_username
		FROM sales WHERE id = ?
	`, id)
	if err == sql.ErrNoRows {
		return domain.Sale{}, ErrNotFound
	}
	return s, err
}
