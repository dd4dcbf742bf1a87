package repos

import "errors"

// Failure kinds surfaced by the repos. Handlers collapse these to
// user-facing messages; the log stream keeps the distinction.
var (
	ErrNotFound          = errors.New("not found")
	ErrExists            = errors.New("already exists")
	ErrNoFields          = errors.New("no fields to update")
	ErrInsufficientStock = errors.New("insufficient stock")
)
