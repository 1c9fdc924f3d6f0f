// Package types provides shared value types used across the platform.
package types

import "github.com/shopspring/decimal"

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors; rounding to
// currency precision happens exactly once, at the end of a calculation.
type Money = decimal.Decimal

// CurrencyScale is the number of fractional digits kept after final rounding.
const CurrencyScale = 2

// NewMoneyFromCents builds a Money value from integer minor units.
func NewMoneyFromCents(cents int64) Money {
	return decimal.NewFromInt(cents).Shift(-CurrencyScale)
}

// NewMoneyFromInt builds a Money value from whole currency units.
func NewMoneyFromInt(units int64) Money {
	return decimal.NewFromInt(units)
}

// NewMoneyFromString parses a decimal string.
// This is the preferred constructor for configuration values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney parses a decimal string and panics on error.
// Use only for constants and test fixtures.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ZeroMoney returns the zero monetary value.
func ZeroMoney() Money {
	return decimal.Zero
}

// RoundCurrency rounds a value to currency precision (half away from zero).
func RoundCurrency(m Money) Money {
	return m.Round(CurrencyScale)
}

// Cents converts a Money value to integer minor units after currency rounding.
func Cents(m Money) int64 {
	return RoundCurrency(m).Shift(CurrencyScale).IntPart()
}
