package services_test

import (
	"errors"
	"testing"

	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"tillpoint/internal/domain"
	"tillpoint/internal/repos"
	"tillpoint/internal/services"
)

func newAuth(t *testing.T) (*services.AuthService, *repos.UserRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	users := repos.NewUserRepo(db)
	return &services.AuthService{Users: users}, users
}

func TestAuthenticate(t *testing.T) {
	auth, _ := newAuth(t)

	u, err := auth.Authenticate("ADMIN", repos.DefaultPassword)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.Role != domain.RoleAdmin {
		t.Fatalf("want admin role, got %s", u.Role)
	}

	// wrong password and unknown username surface the same error
	_, errWrong := auth.Authenticate("ADMIN", "nope")
	_, errUnknown := auth.Authenticate("nobody", "nope")
	if !errors.Is(errWrong, services.ErrBadCreds) || !errors.Is(errUnknown, services.ErrBadCreds) {
		t.Fatalf("want ErrBadCreds for both, got %v / %v", errWrong, errUnknown)
	}
}

func TestCashierAccounts(t *testing.T) {
	auth, _ := newAuth(t)

	if err := auth.AddCashier("jo", "s3cret"); err != nil {
		t.Fatalf("add cashier: %v", err)
	}
	// the new cashier can log in with the given password
	u, err := auth.Authenticate("jo", "s3cret")
	if err != nil {
		t.Fatalf("authenticate new cashier: %v", err)
	}
	if u.Role != domain.RoleCashier {
		t.Fatalf("want cashier role, got %s", u.Role)
	}

	// duplicate username
	if err := auth.AddCashier("jo", "other"); !errors.Is(err, repos.ErrExists) {
		t.Fatalf("want ErrExists, got %v", err)
	}

	names, err := auth.ListCashiers()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "CASHIER" || names[1] != "jo" {
		t.Fatalf("bad cashier list: %v", names)
	}

	// admins are not removable through the cashier path
	if err := auth.RemoveCashier("ADMIN"); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("want ErrNotFound removing admin, got %v", err)
	}
	if _, err := auth.Authenticate("ADMIN", repos.DefaultPassword); err != nil {
		t.Fatalf("admin account should survive: %v", err)
	}

	if err := auth.RemoveCashier("jo"); err != nil {
		t.Fatalf("remove cashier: %v", err)
	}
	names, err = auth.ListCashiers()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "CASHIER" {
		t.Fatalf("cashier still listed after removal: %v", names)
	}
}

func TestSessions(t *testing.T) {
	auth, users := newAuth(t)

	if _, err := auth.Login("sid-1", "CASHIER", repos.DefaultPassword); err != nil {
		t.Fatalf("login: %v", err)
	}
	u, err := auth.CurrentUser("sid-1")
	if err != nil || u.Username != "CASHIER" {
		t.Fatalf("session user: %v %+v", err, u)
	}

	if err := auth.Logout("sid-1"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := auth.CurrentUser("sid-1"); err == nil {
		t.Fatal("session should be unbound after logout")
	}

	// the sessions table backs the sid cookie directly
	if err := users.BindSession("sid-2", "ADMIN"); err != nil {
		t.Fatal(err)
	}
	u, err = users.SessionUser("sid-2")
	if err != nil || u.Role != domain.RoleAdmin {
		t.Fatalf("bound session: %v %+v", err, u)
	}
}
