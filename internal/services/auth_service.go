package services

import (
	"errors"

	"tillpoint/internal/domain"
	"tillpoint/internal/repos"

	"golang.org/x/crypto/bcrypt"
)

// ErrBadCreds covers both unknown username and wrong password; callers
// cannot tell the two apart, which keeps usernames unenumerable.
var ErrBadCreds = errors.New("invalid username or password")

type AuthService struct {
	Users *repos.UserRepo
}

// Authenticate returns the stored account on a username/password match.
func (s *AuthService) Authenticate(username, password string) (*domain.User, error) {
	u, err := s.Users.ByUsername(username)
	if err != nil {
		return nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, ErrBadCreds
	}
	return u, nil
}

func (s *AuthService) Login(sid, username, password string) (*domain.User, error) {
	u, err := s.Authenticate(username, password)
	if err != nil {
		return nil, err
	}
	if err := s.Users.BindSession(sid, u.Username); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}

// AddCashier stores only the digest of the given password, never the plaintext.
func (s *AuthService) AddCashier(username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	return s.Users.AddCashier(username, string(hash))
}

func (s *AuthService) RemoveCashier(username string) error {
	return s.Users.RemoveCashier(username)
}

func (s *AuthService) ListCashiers() ([]string, error) {
	return s.Users.ListCashiers()
}
