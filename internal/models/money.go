package models

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrAmountPrecision is returned for amounts that cannot be stored as whole cents.
var ErrAmountPrecision = errors.New("amount must have at most two decimal places")

// ErrAmountRange is returned for amounts outside the storable range.
var ErrAmountRange = errors.New("amount is out of range")

var (
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
)

// ToCents converts an amount to integer cents. Amounts with more than two
// fractional digits are rejected, never rounded.
func ToCents(amount decimal.Decimal) (int64, error) {
	cents := amount.Shift(2)
	if !cents.IsInteger() {
		return 0, ErrAmountPrecision
	}
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return 0, ErrAmountRange
	}
	return cents.IntPart(), nil
}

// FromCents converts integer cents back to a decimal amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
