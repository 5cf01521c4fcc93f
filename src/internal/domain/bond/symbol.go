package bond

import "strings"

// ===========================
// BondSymbol Value Object
// ===========================

const maxBondSymbolLength = 50

// BondSymbol is the trading symbol of a bond: non-empty, trimmed, at most
// 50 characters.
type BondSymbol struct {
	value string
}

// NewBondSymbol validates and wraps a trading symbol.
func NewBondSymbol(value string) (BondSymbol, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return BondSymbol{}, ErrSymbolRequired
	}
	if len(value) > maxBondSymbolLength {
		return BondSymbol{}, ErrSymbolTooLong.WithContext("symbol", value, "length", len(value))
	}
	return BondSymbol{value: value}, nil
}

// Value returns the symbol string.
func (s BondSymbol) Value() string {
	return s.value
}

// Equals compares by value.
func (s BondSymbol) Equals(other BondSymbol) bool {
	return s.value == other.value
}

// IsZero reports whether the symbol was never set.
func (s BondSymbol) IsZero() bool {
	return s.value == ""
}
