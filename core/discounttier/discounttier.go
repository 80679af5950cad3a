// Package discounttier - Automated discount tier lookup
// Shared by the estimate aggregator and the quote totals calculator.
// Thresholds are inclusive lower bounds on the product subtotal,
// evaluated highest-first; below the lowest threshold the rate is 0%.
package discounttier

import "github.com/shopspring/decimal"

// Kind identifies an automated discount schedule
type Kind string

const (
	Contractor Kind = "Contractor"
	Bulk       Kind = "Bulk"
	Partner    Kind = "Partner"
)

// Tier is one step of a schedule: at or above Threshold the discount
// rate is Rate percent.
type Tier struct {
	Threshold decimal.Decimal `json:"threshold"`
	Rate      decimal.Decimal `json:"rate"`
}

func tier(threshold, rate int64) Tier {
	return Tier{Threshold: decimal.NewFromInt(threshold), Rate: decimal.NewFromInt(rate)}
}

// schedules hold each kind's tiers ordered highest threshold first
var schedules = map[Kind][]Tier{
	Contractor: {
		tier(50000, 10),
		tier(25000, 5),
	},
	Bulk: {
		tier(200000, 25),
		tier(150000, 20),
		tier(100000, 15),
		tier(50000, 10),
		tier(25000, 5),
	},
	Partner: {
		tier(250000, 35),
		tier(200000, 30),
		tier(150000, 25),
		tier(100000, 20),
		tier(50000, 15),
		tier(25000, 10),
	},
}

// Rate resolves the discount percentage for a kind given the product
// subtotal. Unknown kinds resolve to 0%.
func Rate(kind Kind, subtotal decimal.Decimal) decimal.Decimal {
	for _, t := range schedules[kind] {
		if subtotal.GreaterThanOrEqual(t.Threshold) {
			return t.Rate
		}
	}
	return decimal.Zero
}

// Schedule returns a copy of a kind's tiers, highest threshold first.
func Schedule(kind Kind) []Tier {
	src := schedules[kind]
	out := make([]Tier, len(src))
	copy(out, src)
	return out
}
