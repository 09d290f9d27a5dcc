package combiner

import (
	"github.com/shopspring/decimal"
)

// DecimalSum aggregates arbitrary-precision decimals by addition, for
// monetary amounts and other values where float rounding is unacceptable.
// The identity element is decimal zero.
//
// Like Sum, DecimalSum is accumulation-style and unsuitable for lazy range
// updates.
type DecimalSum struct{}

// Combine adds two decimal aggregates.
func (DecimalSum) Combine(left, right decimal.Decimal) decimal.Decimal {
	return left.Add(right)
}

// Identity returns decimal zero.
func (DecimalSum) Identity() decimal.Decimal {
	return decimal.Zero
}
