package decimal

import (
	"github.com/shopspring/decimal"
)

// Money represents a payroll amount (wages, tips, credits) with exact decimal precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Times multiplies by a whole count (hours, servers, locations, years)
func (m Money) Times(n int) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(int64(n)))}
}

// Per divides by a whole count. Dividing by zero or a negative count yields zero.
func (m Money) Per(n int) Money {
	if n <= 0 {
		return Zero()
	}
	return Money{m.Decimal.Div(decimal.NewFromInt(int64(n)))}
}

// ApplyRate returns the portion of the amount at the given rate (e.g. a tax rate)
func (m Money) ApplyRate(rate decimal.Decimal) Money {
	return Money{m.Decimal.Mul(rate)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Div divides by a decimal factor
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// NonNegative clamps negative amounts to zero
func (m Money) NonNegative() Money {
	return Max(m, Zero())
}

// Max returns the maximum of two Money amounts
func Max(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}
