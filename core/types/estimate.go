// Package types - Estimate-side records
package types

import (
	"github.com/shopspring/decimal"

	"mainland-quote/core/units"
)

// ValueType distinguishes percentage and flat discounts
type ValueType string

const (
	ValuePercentage ValueType = "percentage"
	ValueFlat       ValueType = "flat"
)

// DiscountBase selects the base a discount is computed against
type DiscountBase string

const (
	// BaseProductSubtotal applies against the raw product subtotal.
	BaseProductSubtotal DiscountBase = "principle"

	// BaseRunningTotal applies against the running total at the time
	// the discount is reached in list order.
	BaseRunningTotal DiscountBase = "previous"
)

// Product is one estimate line item. The form layer owns the raw
// fields; the engine rewrites the computed fields on every pass.
type Product struct {
	ID                int64  `json:"id"`
	MaterialType      string `json:"materialType"`
	ProductType       string `json:"productType"`
	CustomDescription string `json:"customDescription,omitempty"`

	// CustomPrice, when positive, is a manual per-unit override that
	// bypasses the formula entirely.
	CustomPrice decimal.Decimal `json:"customPrice"`

	// Raw dimensions as entered, with their units.
	OriginalWidth  string     `json:"originalWidth"`
	WidthUnit      units.Unit `json:"widthUnit"`
	OriginalHeight string     `json:"originalHeight"`
	HeightUnit     units.Unit `json:"heightUnit"`

	// Width and Height are the derived canonical dimensions in feet.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Color             string `json:"color"`
	ColorDetail       string `json:"colorDetail,omitempty"`
	SmartLock         bool   `json:"smartLock"`
	RetractableScreen bool   `json:"retractableScreen"`
	GlassType         string `json:"glassType"`
	GlassTexture      string `json:"glassTexture"`
	GlassTint         string `json:"glassTint"`
	LiftAndSlide      bool   `json:"liftAndSlide"`

	Quantity int `json:"quantity"`

	// NumberOfPanels is derived from width unless CustomPanels marks
	// it as a manual override, which the engine preserves verbatim.
	NumberOfPanels int  `json:"numberOfPanels"`
	CustomPanels   bool `json:"customPanels"`

	// Computed fields, written once per recalculation.
	UnitPrice           decimal.Decimal            `json:"unitPrice"`
	CalculatedPrice     decimal.Decimal            `json:"calculatedPrice"`
	AddonCostsBreakdown map[string]decimal.Decimal `json:"addonCostsBreakdown,omitempty"`
	Errors              []string                   `json:"errors,omitempty"`
}

// Discount is one estimate-side discount line.
type Discount struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// DiscountType names an automated schedule (Contractor, Bulk,
	// Partner) when IsAutoCalculated is set.
	DiscountType string `json:"discountType,omitempty"`

	ValueType ValueType       `json:"valueType"`
	Amount    decimal.Decimal `json:"amount"`
	AppliesTo DiscountBase    `json:"appliesTo"`

	// IsAutoCalculated resolves Amount from the tier table instead of
	// the authored value.
	IsAutoCalculated bool `json:"isAutoCalculated"`

	// CalculatedAmount is the resolved monetary amount, written by
	// the aggregator.
	CalculatedAmount decimal.Decimal `json:"calculatedAmount"`
}

// EstimateTotals is the aggregate output of one estimate pass. It has
// no identity of its own: it is regenerated wholesale each time.
type EstimateTotals struct {
	SubtotalProducts   decimal.Decimal `json:"subtotalProducts"`
	SmallOrderShipping decimal.Decimal `json:"smallOrderShipping"`

	// Tax and installation are estimate ranges, not point values.
	TaxEstimateLow      decimal.Decimal `json:"taxEstimateLow"`
	TaxEstimateHigh     decimal.Decimal `json:"taxEstimateHigh"`
	InstallEstimateLow  decimal.Decimal `json:"installEstimateLow"`
	InstallEstimateHigh decimal.Decimal `json:"installEstimateHigh"`

	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// Estimate is the informal estimate document.
type Estimate struct {
	ID                 string          `json:"id,omitempty"`
	CustomerName       string          `json:"customerName"`
	AgentName          string          `json:"agentName"`
	Address            string          `json:"address"`
	ProjectDescription string          `json:"projectDescription"`
	Date               string          `json:"date"`
	Products           []Product       `json:"products"`
	Discounts          []Discount      `json:"discounts"`
	InstallationCost   decimal.Decimal `json:"installationCost"`

	TaxExempt    bool            `json:"taxExempt"`
	TaxRateLow   decimal.Decimal `json:"taxRateLow"`
	TaxRateHigh  decimal.Decimal `json:"taxRateHigh"`
	TaxSource    string          `json:"taxSource,omitempty"`
	ZipCode      string          `json:"zipCode,omitempty"`
	City         string          `json:"city,omitempty"`
	ZipCodeState string          `json:"zipCodeState,omitempty"`

	Totals EstimateTotals `json:"totals"`
}
