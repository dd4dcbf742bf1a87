package repos

import (
	"tillpoint/internal/domain"

	"github.com/jmoiron/sqlx"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByUsername(username string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT username,password_hash,role FROM users WHERE username=?`, username)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// AddCashier inserts a cashier account with the given password digest.
// The role is fixed here; there is no path to mint admins at runtime.
func (r *UserRepo) AddCashier(username, hash string) error {
	res, err := r.DB.Exec(`
		INSERT INTO users(username, password_hash, role)
		VALUES(?, ?, 'cashier')
		ON CONFLICT(username) DO NOTHING
	`, username, hash)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrExists
	}
	return nil
}

// RemoveCashier deletes the named account only if its role is cashier.
// Admin accounts are not removable through this path.
func (r *UserRepo) RemoveCashier(username string) error {
	res, err := r.DB.Exec(`DELETE FROM users WHERE username=? AND role='cashier'`, username)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepo) ListCashiers() ([]string, error) {
	var names []string
	err := r.DB.Select(&names, `SELECT username FROM users WHERE role='cashier' ORDER BY username`)
	return names, err
}

func (r *UserRepo) BindSession(sid, username string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,username,last_seen)
                          VALUES(?,?,CURRENT_TIMESTAMP)
                          ON CONFLICT(id) DO UPDATE SET username=excluded.username,last_seen=CURRENT_TIMESTAMP`, sid, username)
	return err
}

func (r *UserRepo) SessionUser(sid string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `
      SELECT u.username,u.password_hash,u.role
      FROM sessions s
      JOIN users u ON u.username=s.username
      WHERE s.id=?`, sid)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET username=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
