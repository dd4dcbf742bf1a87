package repos

import (
	"database/sql"
	"strings"

	"tillpoint/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Insert(name, category string, price float64, quantity int) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO products(name, category, price, quantity)
	  VALUES(?, ?, ?, ?)
	`, name, category, price, quantity)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT id, name, category, price, quantity,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE id = ?
	`, id)
	if err == sql.ErrNoRows {
		return domain.Product{}, ErrNotFound
	}
	return p, err
}

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT id, name, category, price, quantity,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  ORDER BY id
	`)
	return out, err
}

func (r *ProductRepo) Search(q, category string) ([]domain.Product, error) {
	where := `1=1`
	args := []any{}
	if q != "" {
		where += ` AND LOWER(name) LIKE ?`
		args = append(args, "%"+strings.ToLower(q)+"%")
	}
	if category != "" {
		where += ` AND category = ?`
		args = append(args, category)
	}

	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT id, name, category, price, quantity,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE `+where+`
	  ORDER BY id
	`, args...)
	return out, err
}

// ProductUpdate carries the optional columns of a partial update.
// A nil field leaves the column unchanged.
type ProductUpdate struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int
}

func (u ProductUpdate) Empty() bool {
	return u.Name == nil && u.Category == nil && u.Price == nil && u.Quantity == nil
}

// Update applies the supplied fields only. Zero rows affected means the
// product does not exist and is reported as ErrNotFound.
func (r *ProductRepo) Update(id int64, u ProductUpdate) error {
	sets := []string{}
	args := []any{}
	if u.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *u.Name)
	}
	if u.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *u.Category)
	}
	if u.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *u.Price)
	}
	if u.Quantity != nil {
		sets = append(sets, "quantity = ?")
		args = append(args, *u.Quantity)
	}
	if len(sets) == 0 {
		return ErrNoFields
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	res, err := r.db.Exec(`UPDATE products SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Qty returns current stock for a product.
func (r *ProductRepo) Qty(id int64) (int, error) {
	var qty int
	err := r.db.Get(&qty, `SELECT quantity FROM products WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return qty, nil
}
