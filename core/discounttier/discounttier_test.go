// Package discounttier - Tier schedule tests
package discounttier

import (
	"testing"

	"github.com/shopspring/decimal"
)

func rate(t *testing.T, kind Kind, subtotal int64) int64 {
	t.Helper()
	return Rate(kind, decimal.NewFromInt(subtotal)).IntPart()
}

// TestThresholdsAreInclusive proves the lower bound of each step is
// inclusive: one dollar below resolves to the previous step.
func TestThresholdsAreInclusive(t *testing.T) {
	if got := rate(t, Contractor, 24999); got != 0 {
		t.Errorf("Contractor at 24999 = %d%%, want 0%%", got)
	}
	if got := rate(t, Contractor, 25000); got != 5 {
		t.Errorf("Contractor at 25000 = %d%%, want 5%%", got)
	}
	if got := rate(t, Contractor, 49999); got != 5 {
		t.Errorf("Contractor at 49999 = %d%%, want 5%%", got)
	}
	if got := rate(t, Contractor, 50000); got != 10 {
		t.Errorf("Contractor at 50000 = %d%%, want 10%%", got)
	}
}

func TestBulkSchedule(t *testing.T) {
	cases := []struct {
		subtotal int64
		want     int64
	}{
		{10000, 0},
		{25000, 5},
		{50000, 10},
		{100000, 15},
		{150000, 20},
		{200000, 25},
		{500000, 25},
	}
	for _, c := range cases {
		if got := rate(t, Bulk, c.subtotal); got != c.want {
			t.Errorf("Bulk at %d = %d%%, want %d%%", c.subtotal, got, c.want)
		}
	}
}

func TestPartnerSchedule(t *testing.T) {
	cases := []struct {
		subtotal int64
		want     int64
	}{
		{24999, 0},
		{25000, 10},
		{50000, 15},
		{100000, 20},
		{150000, 25},
		{200000, 30},
		{250000, 35},
	}
	for _, c := range cases {
		if got := rate(t, Partner, c.subtotal); got != c.want {
			t.Errorf("Partner at %d = %d%%, want %d%%", c.subtotal, got, c.want)
		}
	}
}

func TestUnknownKindResolvesToZero(t *testing.T) {
	if got := rate(t, Kind("VIP"), 1000000); got != 0 {
		t.Errorf("unknown kind = %d%%, want 0%%", got)
	}
}

func TestScheduleReturnsCopy(t *testing.T) {
	s := Schedule(Contractor)
	if len(s) != 2 {
		t.Fatalf("Contractor schedule has %d tiers, want 2", len(s))
	}
	s[0].Rate = decimal.NewFromInt(99)
	if got := rate(t, Contractor, 50000); got != 10 {
		t.Errorf("mutating the returned schedule changed the live table: got %d%%", got)
	}
}
