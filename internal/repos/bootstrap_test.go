package repos_test

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"tillpoint/internal/repos"
)

func TestBootstrapSeedsDefaultAccounts(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	var rows []struct {
		Username string `db:"username"`
		Hash     string `db:"password_hash"`
		Role     string `db:"role"`
	}
	if err := db.Select(&rows, `SELECT username,password_hash,role FROM users ORDER BY username`); err != nil {
		t.Fatalf("select users: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 seeded accounts, got %d", len(rows))
	}
	if rows[0].Username != "ADMIN" || rows[0].Role != "admin" {
		t.Fatalf("bad admin seed: %+v", rows[0])
	}
	if rows[1].Username != "CASHIER" || rows[1].Role != "cashier" {
		t.Fatalf("bad cashier seed: %+v", rows[1])
	}
	for _, r := range rows {
		if strings.Contains(r.Hash, repos.DefaultPassword) {
			t.Fatal("hash contains plaintext password")
		}
		if !strings.HasPrefix(r.Hash, "$2") {
			t.Fatalf("unexpected hash format: %s", r.Hash)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(r.Hash), []byte(repos.DefaultPassword)); err != nil {
			t.Fatalf("seed hash does not validate default password: %v", err)
		}
	}
}

// Running bootstrap twice must not duplicate or reset accounts.
func TestBootstrapIsIdempotent(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	var before string
	if err := db.Get(&before, `SELECT password_hash FROM users WHERE username='ADMIN'`); err != nil {
		t.Fatalf("get admin hash: %v", err)
	}

	// Change the admin password, then re-run the seed path.
	if _, err := db.Exec(`UPDATE users SET password_hash='custom' WHERE username='ADMIN'`); err != nil {
		t.Fatal(err)
	}
	if err := repos.Bootstrap(db); err != nil {
		t.Fatalf("rerun bootstrap: %v", err)
	}

	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM users WHERE username IN ('ADMIN','CASHIER')`); err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("want 2 default accounts after rerun, got %d", n)
	}
	var after string
	if err := db.Get(&after, `SELECT password_hash FROM users WHERE username='ADMIN'`); err != nil {
		t.Fatal(err)
	}
	if after != "custom" {
		t.Fatal("bootstrap reset an existing password")
	}
}
