// Package pricing - Product price calculator
// Turns one product's dimensions, options, and rule table into a unit
// price plus a surcharge breakdown. The algorithm is order-sensitive:
// oversize multipliers, option surcharges, the tier curve, and the
// color/tint uplift each build on the subtotal left by the previous
// step. Validation failures are collected, never returned as Go errors;
// an errored product prices at zero and the aggregate proceeds.
package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"mainland-quote/core/types"
)

// Breakdown keys written by the calculator.
const (
	BreakdownTriplePane        = "triplePane"
	BreakdownSmartLock         = "smartLock"
	BreakdownRetractableScreen = "retractableScreen"
	BreakdownGlassTexture      = "glassTexture"
	BreakdownLiftAndSlide      = "liftAndSlide"
	BreakdownTierCurve         = "customMultiplier"
	BreakdownColor             = "color"
	BreakdownGlassTint         = "glassTint"
)

var (
	areaDivisor        = decimal.NewFromFloat(10.7)
	oversizeMultiplier = decimal.NewFromFloat(1.10)
	foldHeightAddon    = decimal.NewFromInt(190)
	tenPercent         = decimal.NewFromFloat(0.10)
	seventeenPercent   = decimal.NewFromFloat(0.17)
	screenUplift       = decimal.NewFromFloat(1.1)
	oneHundred         = decimal.NewFromInt(100)
)

// Rule table and surcharge fallbacks, applied when the configured value
// is zero.
var (
	defaultBasePrice          = decimal.NewFromInt(10000)
	defaultDecreaseInterval   = decimal.NewFromInt(2000)
	defaultDecreaseMultiplier = decimal.NewFromInt(125)
	defaultIncreaseInterval   = decimal.NewFromInt(10000)
	defaultIncreaseMultiplier = decimal.NewFromInt(110)
	defaultScreenRate         = decimal.NewFromInt(12)
	defaultGlassTextureCost   = decimal.NewFromInt(150)
	defaultLiftAndSlideCost   = decimal.NewFromInt(700)
)

// Family breakpoints in feet.
const (
	foldOversizeWidth    = 16.0
	slideOversizeWidth   = 20.0
	familyOversizeHeight = 10.0
)

// Result is the calculator output for one product.
type Result struct {
	// UnitPrice is the per-unit price; quantity scaling happens at
	// aggregation.
	UnitPrice decimal.Decimal

	// Breakdown records each surcharge and the tier curve delta.
	Breakdown map[string]decimal.Decimal

	// Errors holds validation failures. Any error forces a zero price.
	Errors []string
}

func failed(errs []string) Result {
	return Result{UnitPrice: decimal.Zero, Breakdown: map[string]decimal.Decimal{}, Errors: errs}
}

func isFoldFamily(key string) bool {
	return key == "bifoldDoor" || key == "bifoldWindow"
}

func isSlideFamily(key string) bool {
	return key == "slidingDoor" || key == "slidingWindow"
}

func isPanelFamily(key string) bool {
	return isFoldFamily(key) || isSlideFamily(key)
}

func orDefault(v, fallback decimal.Decimal) decimal.Decimal {
	if v.IsZero() {
		return fallback
	}
	return v
}

// CalculateProduct prices one product against the settings snapshot.
func CalculateProduct(p types.Product, s *types.Settings) Result {
	if p.CustomPrice.IsPositive() {
		return Result{UnitPrice: p.CustomPrice, Breakdown: map[string]decimal.Decimal{}}
	}

	h := p.Height
	w := p.Width
	if h <= 0 || w <= 0 {
		// Blank raw input means "not filled in yet", which is not an
		// error. Non-blank input that normalized to zero is.
		if strings.TrimSpace(p.OriginalHeight) != "" && strings.TrimSpace(p.OriginalWidth) != "" {
			return failed([]string{"Height and Width must be positive numbers."})
		}
		return failed(nil)
	}

	pt, ok := s.ProductTypeByName(p.ProductType)
	if !ok {
		return failed([]string{"Invalid product type selected."})
	}

	formula, ok := s.FormulaForKey(pt.PricingKey)
	if !ok {
		return failed([]string{fmt.Sprintf("Pricing formula not found for %s.", p.ProductType)})
	}

	maxW, maxH := formula.MaxWidth, formula.MaxHeight
	if override, ok := formula.MaterialMaxSizes[p.MaterialType]; ok {
		if override.MaxWidth != nil {
			maxW = *override.MaxWidth
		}
		if override.MaxHeight != nil {
			maxH = *override.MaxHeight
		}
	}

	var errs []string
	if maxW > 0 && w > maxW {
		errs = append(errs, fmt.Sprintf("Exceeds max width of %gft for %s.", maxW, p.MaterialType))
	}
	if maxH > 0 && h > maxH {
		errs = append(errs, fmt.Sprintf("Exceeds max height of %gft for %s.", maxH, p.MaterialType))
	}
	if len(errs) > 0 {
		return failed(errs)
	}

	breakdown := map[string]decimal.Decimal{}

	// Area factor and base formula output.
	area := decimal.NewFromFloat(h).Mul(decimal.NewFromFloat(w))
	sqm := area.Div(areaDivisor)
	otc := sqm.Mul(formula.Rate1.Add(formula.Rate2).Add(formula.Rate3))
	subtotal := otc.Mul(formula.Multiplier1).Mul(formula.Multiplier2)

	// Oversize surcharges, gated per product family and compounding
	// on the formula output.
	switch {
	case isFoldFamily(pt.PricingKey):
		if w > foldOversizeWidth {
			subtotal = subtotal.Mul(oversizeMultiplier)
		}
		if h > familyOversizeHeight {
			subtotal = subtotal.Mul(oversizeMultiplier)
			subtotal = subtotal.Add(sqm.Mul(foldHeightAddon))
		}
	case isSlideFamily(pt.PricingKey):
		if w > slideOversizeWidth {
			subtotal = subtotal.Mul(oversizeMultiplier)
		}
		if h > familyOversizeHeight {
			subtotal = subtotal.Mul(oversizeMultiplier)
		}
	}

	if p.GlassType == types.GlassTriplePane {
		cost := subtotal.Mul(tenPercent)
		breakdown[BreakdownTriplePane] = cost
		subtotal = subtotal.Add(cost)
	}

	if p.SmartLock {
		breakdown[BreakdownSmartLock] = orDefault(formula.SmartLockCost, s.AdditionalCosts.SmartLockBaseCost)
	}
	if p.RetractableScreen {
		rate := orDefault(s.AdditionalCosts.RetractableScreenBaseRate, defaultScreenRate)
		breakdown[BreakdownRetractableScreen] = area.Mul(rate.Mul(screenUplift))
	}
	if isPanelFamily(pt.PricingKey) && p.GlassTexture != types.OptionNone && p.GlassTexture != "" && p.NumberOfPanels > 0 {
		cost := orDefault(s.AdditionalCosts.GlassTextureAddonCost, defaultGlassTextureCost)
		breakdown[BreakdownGlassTexture] = cost.Mul(decimal.NewFromInt(int64(p.NumberOfPanels)))
	}
	if isSlideFamily(pt.PricingKey) && p.LiftAndSlide && p.NumberOfPanels > 1 {
		cost := orDefault(s.AdditionalCosts.LiftAndSlidePanelCost, defaultLiftAndSlideCost)
		breakdown[BreakdownLiftAndSlide] = cost.Mul(decimal.NewFromInt(int64(p.NumberOfPanels - 1)))
	}

	for _, key := range []string{BreakdownSmartLock, BreakdownRetractableScreen, BreakdownGlassTexture, BreakdownLiftAndSlide} {
		if cost, ok := breakdown[key]; ok {
			subtotal = subtotal.Add(cost)
		}
	}

	subtotal = applyTierCurve(subtotal, formula, breakdown)
	subtotal = applyColorTint(subtotal, p, breakdown)

	// Material scaling. A zero multiplier marks a quote-only material:
	// the formula price passes through unscaled.
	if material, ok := s.MaterialByName(p.MaterialType); ok && !material.Multiplier.IsZero() {
		subtotal = subtotal.Mul(material.Multiplier)
	}

	return Result{UnitPrice: subtotal, Breakdown: breakdown}
}

// applyTierCurve compounds the configured multiplier once per whole
// interval of distance between the running subtotal and the table's
// base price. The resulting delta is recorded in the breakdown.
func applyTierCurve(subtotal decimal.Decimal, f types.PricingFormula, breakdown map[string]decimal.Decimal) decimal.Decimal {
	basePrice := orDefault(f.BasePriceAmount, defaultBasePrice)
	decInterval := orDefault(f.DecreaseInterval, defaultDecreaseInterval)
	decMultiplier := orDefault(f.DecreaseMultiplier, defaultDecreaseMultiplier)
	incInterval := orDefault(f.IncreaseInterval, defaultIncreaseInterval)
	incMultiplier := orDefault(f.IncreaseMultiplier, defaultIncreaseMultiplier)

	if !basePrice.IsPositive() {
		return subtotal
	}

	var interval, multiplier, difference decimal.Decimal
	switch {
	case subtotal.LessThan(basePrice) && decInterval.IsPositive() && !decMultiplier.Equal(oneHundred):
		interval, multiplier = decInterval, decMultiplier
		difference = basePrice.Sub(subtotal)
	case subtotal.GreaterThan(basePrice) && incInterval.IsPositive() && !incMultiplier.Equal(oneHundred):
		interval, multiplier = incInterval, incMultiplier
		difference = subtotal.Sub(basePrice)
	default:
		return subtotal
	}

	steps := difference.Div(interval).Floor().IntPart()
	if steps <= 0 {
		return subtotal
	}

	factor := multiplier.Div(oneHundred).Pow(decimal.NewFromInt(steps))
	breakdown[BreakdownTierCurve] = subtotal.Mul(factor.Sub(decimal.NewFromInt(1)))
	return subtotal.Mul(factor)
}

// applyColorTint applies the custom color and glass tint surcharges.
// Each alone adds 10%. Together the actual uplift is 17%, while both
// breakdown entries still read 10% of the pre-surcharge subtotal; the
// asymmetry is intentional and must be preserved.
func applyColorTint(subtotal decimal.Decimal, p types.Product, breakdown map[string]decimal.Decimal) decimal.Decimal {
	customColor := p.Color == types.ColorCustom
	tinted := p.GlassTint != types.OptionNone && p.GlassTint != ""

	switch {
	case customColor && tinted:
		combined := subtotal.Mul(seventeenPercent)
		breakdown[BreakdownColor] = subtotal.Mul(tenPercent)
		breakdown[BreakdownGlassTint] = subtotal.Mul(tenPercent)
		return subtotal.Add(combined)
	case customColor:
		cost := subtotal.Mul(tenPercent)
		breakdown[BreakdownColor] = cost
		return subtotal.Add(cost)
	case tinted:
		cost := subtotal.Mul(tenPercent)
		breakdown[BreakdownGlassTint] = cost
		return subtotal.Add(cost)
	}
	return subtotal
}
