// Package engine - Orchestrator tests against the default catalog
package engine

import (
	"testing"

	"github.com/shopspring/decimal"

	"mainland-quote/core/types"
	"mainland-quote/internal/config"
)

func defaultEngine() *Engine {
	settings := config.DefaultSettings()
	return New(&settings)
}

func TestRecalculateEstimateWithDefaultCatalog(t *testing.T) {
	est := types.Estimate{
		CustomerName: "Test Customer",
		Products: []types.Product{{
			ProductType:    "Bi-fold door",
			MaterialType:   "Aluminum",
			OriginalHeight: "8", HeightUnit: "feet",
			OriginalWidth: "10", WidthUnit: "feet",
			Color:        "White",
			GlassTexture: types.OptionNone,
			GlassTint:    types.OptionNone,
			Quantity:     1,
		}},
	}

	got := defaultEngine().RecalculateEstimate(est)

	want := decimal.RequireFromString("9078.13")
	if !got.Products[0].UnitPrice.Equal(want) {
		t.Errorf("unit price = %s, want %s", got.Products[0].UnitPrice, want)
	}
	if got.Products[0].NumberOfPanels != 4 {
		t.Errorf("panels = %d, want 4", got.Products[0].NumberOfPanels)
	}
	if !got.Totals.SubtotalProducts.Equal(want) {
		t.Errorf("subtotal = %s, want %s", got.Totals.SubtotalProducts, want)
	}
}

func TestRecalculateQuote(t *testing.T) {
	q := types.QuoteState{
		QuoteNumber: "Q-1001",
		Products: []types.QuoteProduct{
			{Description: "Bi-fold door", Quantity: 2, Price: decimal.NewFromInt(15000), Taxable: true},
		},
		AutomatedDiscounts: types.AutomatedDiscounts{Contractor: true},
	}

	got := defaultEngine().RecalculateQuote(q)

	if !got.Totals.ProductTotal.Equal(decimal.NewFromInt(30000)) {
		t.Errorf("product total = %s, want 30000", got.Totals.ProductTotal)
	}
	if got.Totals.ContractorDiscount.Line == nil {
		t.Fatal("expected contractor discount at 30000")
	}
	if !got.Totals.Subtotal.Equal(decimal.NewFromInt(28500)) {
		t.Errorf("subtotal = %s, want 28500", got.Totals.Subtotal)
	}
}

// TestRecalculateIsDeterministic proves two passes over the same input
// agree in every computed field.
func TestRecalculateIsDeterministic(t *testing.T) {
	est := types.Estimate{
		Products: []types.Product{{
			ProductType:    "Sliding Door",
			MaterialType:   "Galvanized Steel",
			OriginalHeight: "9", HeightUnit: "feet",
			OriginalWidth: "18", WidthUnit: "feet",
			GlassType:    types.GlassTriplePane,
			GlassTexture: "Frosted",
			GlassTint:    "Bronze",
			SmartLock:    true,
			Quantity:     2,
		}},
		TaxRateLow:  decimal.NewFromFloat(6.25),
		TaxRateHigh: decimal.NewFromFloat(8.25),
	}
	eng := defaultEngine()

	a := eng.RecalculateEstimate(est)
	b := eng.RecalculateEstimate(est)

	if !a.Totals.TotalPrice.Equal(b.Totals.TotalPrice) {
		t.Errorf("totals differ: %s vs %s", a.Totals.TotalPrice, b.Totals.TotalPrice)
	}
	if !a.Products[0].UnitPrice.Equal(b.Products[0].UnitPrice) {
		t.Errorf("unit prices differ: %s vs %s", a.Products[0].UnitPrice, b.Products[0].UnitPrice)
	}
}
