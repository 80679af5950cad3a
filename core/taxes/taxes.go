// Package taxes - State sales tax reference rates
// Combined state plus maximum local rates, used to seed an estimate's
// low/high tax range. The engine treats these as inputs; the definitive
// quote-side tax rate is author-supplied.
package taxes

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Rates holds the low (state base) and high (state plus maximum local)
// combined sales tax percentages.
type Rates struct {
	Low  decimal.Decimal `json:"low"`
	High decimal.Decimal `json:"high"`
}

func rates(low, high float64) Rates {
	return Rates{Low: decimal.NewFromFloat(low), High: decimal.NewFromFloat(high)}
}

var stateRates = map[string]Rates{
	"AL": rates(4.00, 11.50), "AK": rates(0.00, 7.85), "AZ": rates(5.60, 11.20),
	"AR": rates(6.50, 11.625), "CA": rates(7.25, 10.75), "CO": rates(2.90, 8.84),
	"CT": rates(6.35, 6.35), "DE": rates(0.00, 0.00), "DC": rates(6.00, 6.00),
	"FL": rates(6.00, 8.50), "GA": rates(4.00, 9.00), "HI": rates(4.00, 4.50),
	"ID": rates(6.00, 9.00), "IL": rates(6.25, 11.50), "IN": rates(7.00, 7.00),
	"IA": rates(6.00, 7.00), "KS": rates(6.50, 10.50), "KY": rates(6.00, 6.00),
	"LA": rates(4.45, 11.45), "ME": rates(5.50, 5.50), "MD": rates(6.00, 6.00),
	"MA": rates(6.25, 6.25), "MI": rates(6.00, 6.00), "MN": rates(6.875, 8.875),
	"MS": rates(7.00, 7.25), "MO": rates(4.225, 10.60), "MT": rates(0.00, 0.00),
	"NE": rates(5.50, 7.75), "NV": rates(6.85, 8.375), "NH": rates(0.00, 0.00),
	"NJ": rates(6.625, 6.625), "NM": rates(5.125, 9.475), "NY": rates(4.00, 8.875),
	"NC": rates(4.75, 7.75), "ND": rates(5.00, 8.50), "OH": rates(5.75, 8.00),
	"OK": rates(4.50, 11.50), "OR": rates(0.00, 0.00), "PA": rates(6.00, 8.00),
	"RI": rates(7.00, 7.00), "SC": rates(6.00, 9.00), "SD": rates(4.50, 6.50),
	"TN": rates(7.00, 9.75), "TX": rates(6.25, 8.25), "UT": rates(6.10, 9.05),
	"VT": rates(6.00, 7.00), "VA": rates(5.30, 7.00), "WA": rates(6.50, 10.50),
	"WV": rates(6.00, 7.00), "WI": rates(5.00, 5.60), "WY": rates(4.00, 6.00),
}

// Lookup returns the reference rates for a two-letter state code.
func Lookup(state string) (Rates, bool) {
	r, ok := stateRates[state]
	return r, ok
}

// States returns all known state codes in alphabetical order.
func States() []string {
	out := make([]string, 0, len(stateRates))
	for code := range stateRates {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
