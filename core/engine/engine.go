// Package engine - Calculation orchestrator
// The engine is the primary API for recalculation; the HTTP server and
// CLI are thin wrappers around it. Every pass is synchronous and
// idempotent: the same input snapshot always produces identical totals,
// and outputs are brand-new structures rather than in-place patches.
package engine

import (
	"mainland-quote/core/estimate"
	"mainland-quote/core/quote"
	"mainland-quote/core/types"
)

// Engine binds an immutable settings snapshot to the calculators.
type Engine struct {
	settings *types.Settings
}

// New creates an engine over a settings snapshot. The snapshot must not
// be mutated for the engine's lifetime; swap in a new engine instead.
func New(settings *types.Settings) *Engine {
	return &Engine{settings: settings}
}

// Settings returns the snapshot this engine calculates against.
func (e *Engine) Settings() *types.Settings {
	return e.settings
}

// RecalculateEstimate reprices every product and rebuilds the estimate
// totals from the current product, discount, and tax inputs.
func (e *Engine) RecalculateEstimate(est types.Estimate) types.Estimate {
	return estimate.Calculate(est, e.settings)
}

// RecalculateQuote rebuilds the formal quote totals from the current
// line items, discount toggles, and pricing switches.
func (e *Engine) RecalculateQuote(q types.QuoteState) types.QuoteState {
	return quote.CalculateTotals(q, e.settings.RoundingPolicy)
}
