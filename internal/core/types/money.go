// Package types provides common type aliases and value helpers.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// RoundCurrency rounds a monetary value to 2 decimal places.
// All prices, deposits and totals pass through this before being stored
// or returned, so every view formats amounts the same way.
func RoundCurrency(m Money) Money {
	return m.Round(2)
}

// ClampNonNegative floors a monetary value at zero.
// Missing or invalid deposits are coerced through this.
func ClampNonNegative(m Money) Money {
	if m.IsNegative() {
		return decimal.Zero
	}
	return m
}

// LineTotal computes price x quantity, rounded to currency precision.
func LineTotal(price Money, quantity int) Money {
	return RoundCurrency(price.Mul(decimal.NewFromInt(int64(quantity))))
}
