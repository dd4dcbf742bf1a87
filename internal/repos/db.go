package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// DefaultPassword is the bootstrap password for the seeded ADMIN and
// CASHIER accounts. Operators are expected to rotate it after first login.
const DefaultPassword = "123456"

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Single connection: sqlite is single-writer and the foreign_keys
	// pragma below is per-connection.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := Bootstrap(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Bootstrap creates the schema and seeds the default accounts. Safe to
// run on every start.
func Bootstrap(db *sqlx.DB) error {
	if err := ensureSchema(db); err != nil {
		return err
	}
	return seedUsers(db)
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users
CREATE TABLE IF NOT EXISTS users(
  username TEXT PRIMARY KEY,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('admin','cashier')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Products
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price > 0),
  quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
CREATE INDEX IF NOT EXISTS idx_products_name     ON products(LOWER(name));

-- Sales are an audit trail: RESTRICT keeps a sold product from being
-- deleted out from under its sales rows.
CREATE TABLE IF NOT EXISTS sales(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  invoice_number TEXT NOT NULL,
  product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
  quantity INTEGER NOT NULL CHECK (quantity > 0),
  total_price NUMERIC NOT NULL,
  sale_date TEXT DEFAULT CURRENT_TIMESTAMP,
  cashier_username TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sales_product ON sales(product_id);
CREATE INDEX IF NOT EXISTS idx_sales_date    ON sales(sale_date);

-- Sessions
CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  username TEXT NULL REFERENCES users(username) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(username);
`
	_, err := db.Exec(schema)
	return err
}

// seedUsers ensures the ADMIN and CASHIER accounts exist (idempotent).
// Pre-existing rows are left alone: bootstrap never resets a password.
func seedUsers(db *sqlx.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), 12)
	if err != nil {
		return err
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	seeds := []struct {
		Username, Role string
	}{
		{"ADMIN", "admin"},
		{"CASHIER", "cashier"},
	}
	for _, s := range seeds {
		if _, err := tx.Exec(`
			INSERT INTO users(username, password_hash, role)
			VALUES(?,?,?)
			ON CONFLICT(username) DO NOTHING
		`, s.Username, string(hash), s.Role); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Println("[seed] default ADMIN/CASHIER accounts ensured")
	return nil
}
