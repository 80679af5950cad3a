// Package quote - Formal quote totals
// The quote-side aggregator is stricter than the estimate side: line
// prices are author-set, every automated discount is evaluated against
// the raw product total, and tax is a single definitive amount derived
// from a proportionally discounted taxable base.
package quote

import (
	"fmt"

	"github.com/shopspring/decimal"

	"mainland-quote/core/discounttier"
	"mainland-quote/core/rounding"
	"mainland-quote/core/types"
)

var (
	one        = decimal.NewFromInt(1)
	oneHundred = decimal.NewFromInt(100)
)

// CalculateTotals runs one full quote pass. The returned state carries
// a freshly built totals structure and resolved discount amounts; the
// input is never mutated.
func CalculateTotals(q types.QuoteState, policy rounding.Policy) types.QuoteState {
	discounts := make([]types.QuoteDiscount, len(q.Discounts))
	copy(discounts, q.Discounts)

	productTotal := decimal.Zero
	for _, p := range q.Products {
		productTotal = productTotal.Add(rounding.Round(p.LineTotal(), policy))
	}

	totals := types.QuoteTotals{ProductTotal: productTotal}
	running := productTotal

	totals.ContractorDiscount, running = automatedDiscount(q.AutomatedDiscounts.Contractor, discounttier.Contractor, productTotal, running, policy)
	totals.BulkDiscount, running = automatedDiscount(q.AutomatedDiscounts.Bulk, discounttier.Bulk, productTotal, running, policy)
	totals.PartnerDiscount, running = automatedDiscount(q.AutomatedDiscounts.Partner, discounttier.Partner, productTotal, running, policy)

	// Custom discounts always apply against the raw product total.
	for i := range discounts {
		d := &discounts[i]
		calculated := d.Amount
		if d.ValueType == types.ValuePercentage {
			calculated = productTotal.Mul(d.Amount).Div(oneHundred)
		}
		d.CalculatedAmount = rounding.Round(calculated, policy)
		running = running.Sub(d.CalculatedAmount)
	}

	installCost := decimal.Zero
	if q.Pricing.InstallationEnabled {
		installCost = q.Pricing.InstallationPrice
	}
	running = running.Add(installCost)
	totals.Subtotal = rounding.Round(running, policy)

	tax := decimal.Zero
	if q.Pricing.TaxEnabled {
		base := taxableBase(q, productTotal, running, installCost)
		tax = rounding.Round(base.Mul(q.Pricing.TaxRate).Div(oneHundred), policy)
	}
	totals.Tax = tax
	totals.GrandTotal = rounding.Round(running.Add(tax), policy)

	q.Discounts = discounts
	q.Totals = totals
	return q
}

// automatedDiscount evaluates one tier schedule when its toggle is on.
// A resolved rate of 0% yields an evaluated result with no line,
// distinguishing "not applicable" from "applicable but zero".
func automatedDiscount(enabled bool, kind discounttier.Kind, productTotal, running decimal.Decimal, policy rounding.Policy) (types.AutomatedDiscountResult, decimal.Decimal) {
	if !enabled {
		return types.AutomatedDiscountResult{}, running
	}

	rate := discounttier.Rate(kind, productTotal)
	result := types.AutomatedDiscountResult{Evaluated: true}
	if !rate.IsPositive() {
		return result, running
	}

	amount := rounding.Round(productTotal.Mul(rate).Div(oneHundred), policy)
	result.Line = &types.AppliedDiscount{
		Name:   fmt.Sprintf("%s Discount (%s%%)", kind, rate.String()),
		Rate:   rate,
		Amount: amount,
	}
	return result, running.Sub(amount)
}

// taxableBase spreads the applied discounts proportionally across the
// taxable lines only; non-taxable lines contribute nothing. The
// installation cost joins the base only when itself flagged taxable.
func taxableBase(q types.QuoteState, productTotal, running, installCost decimal.Decimal) decimal.Decimal {
	totalDiscounts := productTotal.Sub(running.Sub(installCost))
	ratio := one
	if productTotal.IsPositive() {
		ratio = one.Sub(totalDiscounts.Div(productTotal))
	}

	base := decimal.Zero
	for _, p := range q.Products {
		if p.Taxable {
			base = base.Add(p.LineTotal().Mul(ratio))
		}
	}
	if q.Pricing.InstallationEnabled && q.Pricing.InstallationTaxable {
		base = base.Add(installCost)
	}
	return base
}
