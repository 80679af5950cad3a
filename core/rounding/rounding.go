// Package rounding - Monetary rounding normalizer
// One global policy is applied to every monetary value the engine emits,
// line items and totals alike. Sum-of-rounded may differ from rounded-sum;
// that drift is accepted behavior.
package rounding

import "github.com/shopspring/decimal"

// Policy selects how monetary values are normalized
type Policy string

const (
	// PolicyNone rounds to cents (2 decimal places)
	PolicyNone Policy = "none"

	// PolicyDollar rounds to the nearest whole dollar
	PolicyDollar Policy = "dollar"

	// PolicyHundred rounds to the nearest multiple of 100
	PolicyHundred Policy = "hundred"
)

var hundred = decimal.NewFromInt(100)

// Valid reports whether p is a known policy
func (p Policy) Valid() bool {
	switch p {
	case PolicyNone, PolicyDollar, PolicyHundred:
		return true
	}
	return false
}

// Round normalizes a monetary value under the given policy.
// Unknown policies fall back to cent precision.
func Round(v decimal.Decimal, p Policy) decimal.Decimal {
	switch p {
	case PolicyDollar:
		return v.Round(0)
	case PolicyHundred:
		return v.Div(hundred).Round(0).Mul(hundred)
	default:
		return v.Round(2)
	}
}
