package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var reUsername = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,32}$`)

// ID parses a positive integer product identifier.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Price parses a positive decimal amount.
func Price(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f <= 0 {
		return 0, false
	}
	return f, true
}

// Qty parses a non-negative integer quantity.
func Qty(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Name validates a displayable product name or category.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 80 {
		return "", false
	}
	return s, true
}

// Username validates an account name.
func Username(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reUsername.MatchString(s)
}

// Password enforces a simple length window; bcrypt caps input at 72 bytes.
func Password(s string) bool {
	l := len(s)
	return l >= 1 && l <= 72
}

// Invoice validates a caller-supplied invoice number.
func Invoice(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 40 {
		return "", false
	}
	return s, true
}
