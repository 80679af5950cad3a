// Package estimate - Estimate aggregation
// Prices every product, folds the discount list over a running total,
// and derives shipping plus tax/installation estimate ranges for the
// informal estimate document. The whole pass is a pure function of the
// input snapshot: it returns a new estimate with every computed field
// rewritten and never touches the caller's slices.
package estimate

import (
	"github.com/shopspring/decimal"

	"mainland-quote/core/discounttier"
	"mainland-quote/core/pricing"
	"mainland-quote/core/rounding"
	"mainland-quote/core/types"
	"mainland-quote/core/units"
)

var (
	oneHundred = decimal.NewFromInt(100)
	one        = decimal.NewFromInt(1)

	// Shipping: free at or above the free threshold, capped flat at or
	// below the cap threshold, linearly interpolated between.
	shippingFreeThreshold = decimal.NewFromInt(10000)
	shippingCapThreshold  = decimal.NewFromInt(4000)
	shippingCap           = decimal.NewFromInt(2500)
	shippingSpan          = decimal.NewFromInt(6000)

	// Installation range: max(floor, running total x rate), suppressed
	// for high-value orders or when an explicit cost is set.
	highValueThreshold = decimal.NewFromInt(20000)
	installFloor       = decimal.NewFromInt(800)
	installRateLow     = decimal.NewFromFloat(0.20)
	installRateHigh    = decimal.NewFromFloat(0.25)
)

// Calculate runs one full estimate pass against the settings snapshot.
func Calculate(est types.Estimate, s *types.Settings) types.Estimate {
	policy := s.RoundingPolicy

	products := make([]types.Product, len(est.Products))
	copy(products, est.Products)
	discounts := make([]types.Discount, len(est.Discounts))
	copy(discounts, est.Discounts)

	subtotalProducts := decimal.Zero
	for i := range products {
		p := &products[i]
		deriveDimensions(p, s)

		res := pricing.CalculateProduct(*p, s)
		p.UnitPrice = rounding.Round(res.UnitPrice, policy)
		p.CalculatedPrice = rounding.Round(res.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity))), policy)
		p.AddonCostsBreakdown = roundBreakdown(res.Breakdown, policy)
		p.Errors = res.Errors

		subtotalProducts = subtotalProducts.Add(p.CalculatedPrice)
	}

	// Ordered fold: each discount sees the running total left by the
	// discounts before it. Totals are deliberately not clamped at
	// zero; discounts exceeding the subtotal drive the total negative.
	running := subtotalProducts
	for i := range discounts {
		d := &discounts[i]

		base := running
		if d.AppliesTo == types.BaseProductSubtotal {
			base = subtotalProducts
		}

		amount := d.Amount
		if d.IsAutoCalculated {
			amount = discounttier.Rate(discounttier.Kind(d.DiscountType), subtotalProducts)
			d.Amount = amount
		}

		calculated := amount
		if d.ValueType == types.ValuePercentage {
			calculated = base.Mul(amount).Div(oneHundred)
		}
		d.CalculatedAmount = rounding.Round(calculated, policy)
		running = running.Sub(d.CalculatedAmount)
	}

	shipping := shippingFor(subtotalProducts, policy)

	taxLow := rounding.Round(running.Mul(est.TaxRateLow).Div(oneHundred), policy)
	taxHigh := rounding.Round(running.Mul(est.TaxRateHigh).Div(oneHundred), policy)

	installLow, installHigh := installRange(est.InstallationCost, subtotalProducts, running, policy)

	total := rounding.Round(running.Add(est.InstallationCost).Add(shipping), policy)

	est.Products = products
	est.Discounts = discounts
	est.Totals = types.EstimateTotals{
		SubtotalProducts:    subtotalProducts,
		SmallOrderShipping:  shipping,
		TaxEstimateLow:      taxLow,
		TaxEstimateHigh:     taxHigh,
		InstallEstimateLow:  installLow,
		InstallEstimateHigh: installHigh,
		TotalPrice:          total,
	}
	return est
}

// deriveDimensions normalizes the raw dimension inputs to feet and
// refreshes the panel count. A manual panel override is preserved
// verbatim.
func deriveDimensions(p *types.Product, s *types.Settings) {
	p.Width = units.ParseDimension(p.OriginalWidth, p.WidthUnit)
	p.Height = units.ParseDimension(p.OriginalHeight, p.HeightUnit)

	if p.CustomPanels {
		return
	}
	divisor := 0.0
	if pt, ok := s.ProductTypeByName(p.ProductType); ok {
		if formula, ok := s.FormulaForKey(pt.PricingKey); ok {
			divisor = formula.PanelDivisor
		}
	}
	p.NumberOfPanels = units.PanelCount(p.Width, divisor)
}

func roundBreakdown(breakdown map[string]decimal.Decimal, policy rounding.Policy) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(breakdown))
	for key, v := range breakdown {
		out[key] = rounding.Round(v, policy)
	}
	return out
}

func shippingFor(subtotalProducts decimal.Decimal, policy rounding.Policy) decimal.Decimal {
	switch {
	case subtotalProducts.GreaterThanOrEqual(shippingFreeThreshold):
		return decimal.Zero
	case subtotalProducts.LessThanOrEqual(shippingCapThreshold):
		return shippingCap
	default:
		fraction := subtotalProducts.Sub(shippingCapThreshold).Div(shippingSpan)
		return rounding.Round(shippingCap.Mul(one.Sub(fraction)), policy)
	}
}

func installRange(installationCost, subtotalProducts, running decimal.Decimal, policy rounding.Policy) (low, high decimal.Decimal) {
	if installationCost.IsPositive() || subtotalProducts.GreaterThanOrEqual(highValueThreshold) {
		return decimal.Zero, decimal.Zero
	}
	low = decimal.Max(installFloor, rounding.Round(running.Mul(installRateLow), policy))
	high = decimal.Max(installFloor, rounding.Round(running.Mul(installRateHigh), policy))
	return low, high
}
