package bond

import "github.com/shopspring/decimal"

// ===========================
// Rate Value Object
// ===========================

// maxRatePercent is the inclusive ceiling: rates are percentages and the
// business caps them at 1000%.
var maxRatePercent = decimal.NewFromInt(1000)

// Rate is a decimal percentage in [0, 1000], both bounds inclusive.
type Rate struct {
	value decimal.Decimal
}

// NewRate validates and wraps a percentage.
func NewRate(value decimal.Decimal) (Rate, error) {
	if value.IsNegative() || value.GreaterThan(maxRatePercent) {
		return Rate{}, ErrRateOutOfRange.WithContext("rate", value.String())
	}
	return Rate{value: value}, nil
}

// NewRateFromFloat is a convenience constructor for literal percentages.
func NewRateFromFloat(value float64) (Rate, error) {
	return NewRate(decimal.NewFromFloat(value))
}

// Value returns the percentage as a decimal.
func (r Rate) Value() decimal.Decimal {
	return r.value
}

// IsZero reports whether the rate is exactly 0%.
func (r Rate) IsZero() bool {
	return r.value.IsZero()
}

// IsPositive reports whether the rate is above 0%.
func (r Rate) IsPositive() bool {
	return r.value.IsPositive()
}

// Equals compares by numeric value.
func (r Rate) Equals(other Rate) bool {
	return r.value.Equal(other.value)
}

// String renders the percentage with two decimal places, e.g. "110.00%".
func (r Rate) String() string {
	return r.value.StringFixed(2) + "%"
}
