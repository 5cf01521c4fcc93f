package bond

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ===========================
// Money Value Object
// ===========================

// Money is a non-negative BRL amount. All arithmetic returns new
// instances; operations that could produce an invalid amount (negative
// result, division by zero) fail instead.
type Money struct {
	amount decimal.Decimal
}

// NewMoney validates and wraps an amount.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeMoney.WithContext("amount", amount.String())
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromFloat is a convenience constructor for literal amounts.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum. Two valid amounts always add to a valid amount.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Subtract returns the difference, failing if it would go negative.
func (m Money) Subtract(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, ErrMoneyUnderflow.WithContext(
			"amount", m.amount.String(),
			"subtrahend", other.amount.String(),
		)
	}
	return Money{amount: result}, nil
}

// Multiply returns the amount scaled by a non-negative factor.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	return NewMoney(m.amount.Mul(factor))
}

// Divide returns the amount divided by a non-zero divisor.
func (m Money) Divide(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	return NewMoney(m.amount.Div(divisor))
}

// Equals compares by numeric value.
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Format renders the amount in Brazilian display format, e.g.
// "R$ 1.234,56".
func (m Money) Format() string {
	fixed := m.amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-2:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := "R$ " + strings.Join(groups, ".") + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out
}
