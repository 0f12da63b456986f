package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reCapacity = regexp.MustCompile(`^[0-9]{1,4}(GB|TB)$`)
)

// Modelo validates a device model name: trims, non-empty, bounded.
func Modelo(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}

// Capacidad validates a storage size token like 128GB or 1TB.
func Capacidad(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	return s, reCapacity.MatchString(s)
}

// Condicion is an open set (reports aggregate on it), so only
// non-empty and bounded are enforced.
func Condicion(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 30 {
		return "", false
	}
	return s, true
}

// Precio requires a strictly positive amount in the base currency.
func Precio(v float64) bool {
	return v > 0
}

// Nombre validates a displayable person name.
func Nombre(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}

// Email validates an operator login email.
func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 60 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Password enforces a simple length window for login checks.
func Password(s string) bool {
	return len(s) >= 8 && len(s) <= 64
}

// Periods parses the trend window query param; only 3, 6 and 12 are
// served. Empty defaults to 6.
func Periods(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 6, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	switch n {
	case 3, 6, 12:
		return n, true
	}
	return 0, false
}

// Limit clamps a listing limit query param into [1, max], defaulting
// to max when absent or unparsable.
func Limit(s string, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return max
	}
	if n > max {
		return max
	}
	return n
}
