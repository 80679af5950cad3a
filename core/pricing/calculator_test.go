// Package pricing - Product price calculator tests
package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"mainland-quote/core/rounding"
	"mainland-quote/core/types"
)

func di(v int64) decimal.Decimal   { return decimal.NewFromInt(v) }
func df(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }
func fp(v float64) *float64        { return &v }

func testSettings() *types.Settings {
	return &types.Settings{
		RoundingPolicy: rounding.PolicyNone,
		Materials: []types.Material{
			{Name: "Aluminum", Multiplier: di(1)},
			{Name: "Steel", Multiplier: df(1.5)},
			{Name: "Bronze", Multiplier: decimal.Zero},
		},
		ProductTypes: []types.ProductType{
			{Name: "Bifold Door", Category: "Doors", PricingKey: "bifoldDoor"},
			{Name: "Sliding Door", Category: "Doors", PricingKey: "slidingDoor"},
			{Name: "Fixed Window", Category: "Windows", PricingKey: "fixedWindow"},
			{Name: "Casement Window", Category: "Windows", PricingKey: "casementWindow"},
			{Name: "Orphan", Category: "Windows", PricingKey: "missing"},
		},
		PricingFormulas: map[string]types.PricingFormula{
			"bifoldDoor": {
				MaxWidth: 24, MaxHeight: 12, PanelDivisor: 3.5,
				Rate1: di(240), Rate2: di(37), Rate3: di(190),
				Multiplier1: di(2), Multiplier2: df(1.3),
				MaterialMaxSizes: map[string]types.MaterialMaxSize{
					"Steel": {MaxWidth: fp(8)},
				},
			},
			"slidingDoor": {
				PanelDivisor: 5,
				Rate1:        di(100),
				Multiplier1:  di(1), Multiplier2: di(1),
				DecreaseMultiplier: di(100), IncreaseMultiplier: di(100),
			},
			"fixedWindow": {
				Rate1:       di(500),
				Multiplier1: di(1), Multiplier2: di(1),
			},
			"casementWindow": {
				Rate1:       di(2500),
				Multiplier1: di(1), Multiplier2: di(1),
			},
		},
		AdditionalCosts: types.AdditionalCosts{
			SmartLockBaseCost:         di(350),
			RetractableScreenBaseRate: di(12),
			GlassTextureAddonCost:     di(150),
			LiftAndSlidePanelCost:     di(700),
		},
	}
}

func bifold(h, w float64) types.Product {
	return types.Product{
		ProductType:    "Bifold Door",
		MaterialType:   "Aluminum",
		OriginalHeight: "8", OriginalWidth: "10",
		Height: h, Width: w,
		Color: "White", GlassTexture: types.OptionNone, GlassTint: types.OptionNone,
		Quantity: 1,
	}
}

func assertPrice(t *testing.T, res Result, want string) {
	t.Helper()
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if got := res.UnitPrice.Round(2); !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("unit price = %s, want %s", got, want)
	}
}

func TestBaseFormula(t *testing.T) {
	// 8ft x 10ft: (8*10)/10.7 * (240+37+190) * 2 * 1.3
	res := CalculateProduct(bifold(8, 10), testSettings())
	assertPrice(t, res, "9078.13")
	if len(res.Breakdown) != 0 {
		t.Errorf("unexpected breakdown entries: %v", res.Breakdown)
	}
}

func TestFoldOversizeWidth(t *testing.T) {
	// Width over 16ft compounds a 10% oversize multiplier.
	res := CalculateProduct(bifold(8, 20), testSettings())
	assertPrice(t, res, "19971.89")
}

func TestFoldOversizeHeightAddsPerAreaCharge(t *testing.T) {
	// Height over 10ft: 10% multiplier plus 190 per square-meter factor.
	res := CalculateProduct(bifold(11, 10), testSettings())
	// (11*10)/10.7*467*2.6 = 12482.43; *1.1 = 13730.67; + (110/10.7)*190
	want := df(110).Div(df(10.7)).Mul(di(467)).Mul(df(2.6)).Mul(df(1.1)).
		Add(df(110).Div(df(10.7)).Mul(di(190)))
	if got := res.UnitPrice.Round(2); !got.Equal(want.Round(2)) {
		t.Errorf("unit price = %s, want %s", got, want.Round(2))
	}
}

func TestSlideOversizeBothAxes(t *testing.T) {
	s := testSettings()
	p := types.Product{
		ProductType:  "Sliding Door",
		MaterialType: "Aluminum",
		OriginalHeight: "11", OriginalWidth: "22",
		Height: 11, Width: 22,
		GlassTexture: types.OptionNone, GlassTint: types.OptionNone,
		Quantity: 1,
	}
	// (11*22)/10.7*100 = 2261.68; both axes oversize: *1.1*1.1
	res := CalculateProduct(p, s)
	assertPrice(t, res, "2736.64")
}

func TestCustomPriceBypassesFormula(t *testing.T) {
	p := bifold(8, 10)
	p.CustomPrice = di(4200)
	res := CalculateProduct(p, testSettings())
	if !res.UnitPrice.Equal(di(4200)) {
		t.Errorf("unit price = %s, want 4200", res.UnitPrice)
	}
	if len(res.Breakdown) != 0 || len(res.Errors) != 0 {
		t.Errorf("custom price should skip breakdown and validation: %+v", res)
	}
}

func TestBlankDimensionsAreNotAnError(t *testing.T) {
	p := bifold(0, 0)
	p.OriginalHeight, p.OriginalWidth = "", ""
	res := CalculateProduct(p, testSettings())
	if !res.UnitPrice.IsZero() {
		t.Errorf("unit price = %s, want 0", res.UnitPrice)
	}
	if len(res.Errors) != 0 {
		t.Errorf("blank dimensions should not error: %v", res.Errors)
	}
}

func TestNonPositiveDimensionsError(t *testing.T) {
	p := bifold(0, 10)
	p.OriginalHeight = "-3"
	res := CalculateProduct(p, testSettings())
	if len(res.Errors) != 1 || res.Errors[0] != "Height and Width must be positive numbers." {
		t.Errorf("errors = %v", res.Errors)
	}
	if !res.UnitPrice.IsZero() {
		t.Errorf("errored product must price at zero, got %s", res.UnitPrice)
	}
}

func TestInvalidProductType(t *testing.T) {
	p := bifold(8, 10)
	p.ProductType = "Hovercraft"
	res := CalculateProduct(p, testSettings())
	if len(res.Errors) != 1 || res.Errors[0] != "Invalid product type selected." {
		t.Errorf("errors = %v", res.Errors)
	}
}

func TestMissingFormula(t *testing.T) {
	p := bifold(8, 10)
	p.ProductType = "Orphan"
	res := CalculateProduct(p, testSettings())
	if len(res.Errors) != 1 || res.Errors[0] != "Pricing formula not found for Orphan." {
		t.Errorf("errors = %v", res.Errors)
	}
}

func TestMaxSizeWithMaterialOverride(t *testing.T) {
	// Aluminum allows 10ft wide; Steel is capped at 8ft for this table.
	p := bifold(8, 10)
	p.MaterialType = "Steel"
	res := CalculateProduct(p, testSettings())
	if len(res.Errors) != 1 || res.Errors[0] != "Exceeds max width of 8ft for Steel." {
		t.Errorf("errors = %v", res.Errors)
	}

	p.MaterialType = "Aluminum"
	res = CalculateProduct(p, testSettings())
	if len(res.Errors) != 0 {
		t.Errorf("Aluminum at 10ft should pass: %v", res.Errors)
	}
}

func TestTriplePaneSurcharge(t *testing.T) {
	p := bifold(8, 10)
	p.GlassType = types.GlassTriplePane
	res := CalculateProduct(p, testSettings())
	assertPrice(t, res, "9985.94")
	if got := res.Breakdown[BreakdownTriplePane].Round(2); !got.Equal(decimal.RequireFromString("907.81")) {
		t.Errorf("triple pane breakdown = %s, want 907.81", got)
	}
}

func TestSmartLockSurcharge(t *testing.T) {
	p := bifold(8, 10)
	p.SmartLock = true
	res := CalculateProduct(p, testSettings())
	assertPrice(t, res, "9428.13")
	if !res.Breakdown[BreakdownSmartLock].Equal(di(350)) {
		t.Errorf("smart lock breakdown = %s, want 350", res.Breakdown[BreakdownSmartLock])
	}
}

func TestRetractableScreenSurcharge(t *testing.T) {
	p := bifold(8, 10)
	p.RetractableScreen = true
	res := CalculateProduct(p, testSettings())
	// area 80 * rate 12 * 1.1 uplift = 1056
	if !res.Breakdown[BreakdownRetractableScreen].Equal(di(1056)) {
		t.Errorf("screen breakdown = %s, want 1056", res.Breakdown[BreakdownRetractableScreen])
	}
}

func TestGlassTexturePerPanel(t *testing.T) {
	p := bifold(8, 10)
	p.GlassTexture = "Frosted"
	p.NumberOfPanels = 3
	res := CalculateProduct(p, testSettings())
	if !res.Breakdown[BreakdownGlassTexture].Equal(di(450)) {
		t.Errorf("texture breakdown = %s, want 450", res.Breakdown[BreakdownGlassTexture])
	}

	p.GlassTexture = types.OptionNone
	res = CalculateProduct(p, testSettings())
	if _, ok := res.Breakdown[BreakdownGlassTexture]; ok {
		t.Error("texture None should not be charged")
	}
}

func TestLiftAndSlideChargesPanelsMinusOne(t *testing.T) {
	s := testSettings()
	p := types.Product{
		ProductType:  "Sliding Door",
		MaterialType: "Aluminum",
		OriginalHeight: "8", OriginalWidth: "10",
		Height: 8, Width: 10,
		GlassTexture: types.OptionNone, GlassTint: types.OptionNone,
		LiftAndSlide: true, NumberOfPanels: 4,
		Quantity: 1,
	}
	res := CalculateProduct(p, s)
	if !res.Breakdown[BreakdownLiftAndSlide].Equal(di(2100)) {
		t.Errorf("lift and slide breakdown = %s, want 2100", res.Breakdown[BreakdownLiftAndSlide])
	}

	p.NumberOfPanels = 1
	res = CalculateProduct(p, s)
	if _, ok := res.Breakdown[BreakdownLiftAndSlide]; ok {
		t.Error("single panel should not charge lift and slide")
	}
}

func TestLiftAndSlideOnlyForSlideFamily(t *testing.T) {
	p := bifold(8, 10)
	p.LiftAndSlide = true
	p.NumberOfPanels = 4
	res := CalculateProduct(p, testSettings())
	if _, ok := res.Breakdown[BreakdownLiftAndSlide]; ok {
		t.Error("bifold family should never charge lift and slide")
	}
}

// TestColorTintCombined proves the combined uplift is 17%, not 20%,
// while each breakdown entry still reads 10% of the base subtotal.
func TestColorTintCombined(t *testing.T) {
	p := bifold(8, 10)
	p.Color = types.ColorCustom
	p.GlassTint = "Bronze"
	res := CalculateProduct(p, testSettings())
	assertPrice(t, res, "10621.41")

	ten := decimal.RequireFromString("907.81")
	if got := res.Breakdown[BreakdownColor].Round(2); !got.Equal(ten) {
		t.Errorf("color breakdown = %s, want %s", got, ten)
	}
	if got := res.Breakdown[BreakdownGlassTint].Round(2); !got.Equal(ten) {
		t.Errorf("tint breakdown = %s, want %s", got, ten)
	}
}

func TestColorAloneAddsTenPercent(t *testing.T) {
	p := bifold(8, 10)
	p.Color = types.ColorCustom
	res := CalculateProduct(p, testSettings())
	assertPrice(t, res, "9985.94")
}

func TestMaterialMultiplierAppliesLast(t *testing.T) {
	p := bifold(8, 8)
	p.MaterialType = "Steel"
	res := CalculateProduct(p, testSettings())
	// Formula output 7262.50 sits one 2000 interval under the base, so
	// the curve compounds 125% first: 9078.13, then steel at 1.5x.
	assertPrice(t, res, "13617.2")
}

// TestZeroMultiplierMaterialPassesThrough proves quote-only materials
// leave the formula price unscaled instead of zeroing it.
func TestZeroMultiplierMaterialPassesThrough(t *testing.T) {
	p := bifold(8, 10)
	p.MaterialType = "Bronze"
	res := CalculateProduct(p, testSettings())
	assertPrice(t, res, "9078.13")
}

func TestTierCurveBelowBaseCompounds(t *testing.T) {
	s := testSettings()
	p := types.Product{
		ProductType:  "Fixed Window",
		MaterialType: "Aluminum",
		OriginalHeight: "10.7", OriginalWidth: "10",
		Height: 10.7, Width: 10,
		GlassTexture: types.OptionNone, GlassTint: types.OptionNone,
		Quantity: 1,
	}
	// Formula output 5000 is 5000 under the 10000 base: two whole 2000
	// intervals, each compounding 125%.
	res := CalculateProduct(p, s)
	assertPrice(t, res, "7812.5")
	if got := res.Breakdown[BreakdownTierCurve].Round(2); !got.Equal(decimal.RequireFromString("2812.5")) {
		t.Errorf("tier curve delta = %s, want 2812.5", got)
	}
}

func TestTierCurveAboveBaseCompounds(t *testing.T) {
	s := testSettings()
	p := types.Product{
		ProductType:  "Casement Window",
		MaterialType: "Aluminum",
		OriginalHeight: "10.7", OriginalWidth: "10",
		Height: 10.7, Width: 10,
		GlassTexture: types.OptionNone, GlassTint: types.OptionNone,
		Quantity: 1,
	}
	// Formula output 25000 is 15000 over the base: one whole 10000
	// interval at 110%.
	res := CalculateProduct(p, s)
	assertPrice(t, res, "27500")
	if got := res.Breakdown[BreakdownTierCurve].Round(2); !got.Equal(di(2500)) {
		t.Errorf("tier curve delta = %s, want 2500", got)
	}
}

func TestTierCurveNeutralMultiplierSkips(t *testing.T) {
	// slidingDoor pins both multipliers at 100%, disabling the curve.
	s := testSettings()
	p := types.Product{
		ProductType:  "Sliding Door",
		MaterialType: "Aluminum",
		OriginalHeight: "8", OriginalWidth: "10",
		Height: 8, Width: 10,
		GlassTexture: types.OptionNone, GlassTint: types.OptionNone,
		Quantity: 1,
	}
	res := CalculateProduct(p, s)
	if _, ok := res.Breakdown[BreakdownTierCurve]; ok {
		t.Error("neutral multipliers should skip the tier curve")
	}
}
