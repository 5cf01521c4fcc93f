package bond

import (
	"regexp"
	"strings"
)

// ===========================
// Isin Value Object
// ===========================

// isinPattern: 2 country letters followed by 10 alphanumerics, 12 total.
var isinPattern = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{10}$`)

// Isin is the International Securities Identification Number of a bond.
// Exactly 12 characters, normalized to upper case at construction; no
// shorter aliases are accepted.
type Isin struct {
	value string
}

// NewIsin validates, upper-normalizes and wraps an ISIN.
func NewIsin(value string) (Isin, error) {
	value = strings.ToUpper(strings.TrimSpace(value))
	if !isinPattern.MatchString(value) {
		return Isin{}, ErrInvalidIsin.WithContext("isin", value)
	}
	return Isin{value: value}, nil
}

// Value returns the normalized ISIN string.
func (i Isin) Value() string {
	return i.value
}

// Equals compares by value.
func (i Isin) Equals(other Isin) bool {
	return i.value == other.value
}

// IsZero reports whether the ISIN was never set.
func (i Isin) IsZero() bool {
	return i.value == ""
}
