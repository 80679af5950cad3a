// Package types - Shared data model for the pricing and quotation engine
// Settings, rule tables, and materials are owned by configuration and are
// read-only inputs to every calculation.
package types

import (
	"github.com/shopspring/decimal"

	"mainland-quote/core/rounding"
)

// Material is a frame material and its price multiplier.
type Material struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Multiplier scales the formula price. Exactly zero marks the
	// material as quote-only: the formula price passes through
	// unscaled and sales quotes it by hand.
	Multiplier decimal.Decimal `json:"multiplier"`
}

// ProductType maps a catalog entry to its pricing key.
type ProductType struct {
	Name               string `json:"name"`
	Category           string `json:"category"`
	HasHurricaneOption bool   `json:"hasHurricaneOption"`

	// PricingKey selects the rule table in Settings.PricingFormulas.
	// Several catalog entries may share one key.
	PricingKey string `json:"pricingKey"`

	// AvailableMaterials restricts material choice; empty means all.
	AvailableMaterials []string `json:"availableMaterials,omitempty"`
}

// MaterialMaxSize overrides a rule table's size limits for one material.
// Nil fields fall back to the table defaults.
type MaterialMaxSize struct {
	MaxWidth  *float64 `json:"maxWidth,omitempty"`
	MaxHeight *float64 `json:"maxHeight,omitempty"`
}

// PricingFormula is the rule table for one pricing key.
type PricingFormula struct {
	// FormulaText is a human-readable description for admins.
	FormulaText string `json:"formulaText,omitempty"`

	// MaxWidth and MaxHeight are size limits in feet. Zero disables
	// the corresponding check.
	MaxWidth  float64 `json:"maxWidth"`
	MaxHeight float64 `json:"maxHeight"`

	// PanelDivisor derives panel count from width; zero means the
	// type is not panel-divided.
	PanelDivisor float64 `json:"panelDivisor"`

	// Rate1..Rate3 are the per-area cost components summed into OTC.
	Rate1 decimal.Decimal `json:"rate1"`
	Rate2 decimal.Decimal `json:"rate2"`
	Rate3 decimal.Decimal `json:"rate3"`

	// Multiplier1 and Multiplier2 compound on OTC to produce the
	// formula output.
	Multiplier1 decimal.Decimal `json:"multiplier1"`
	Multiplier2 decimal.Decimal `json:"multiplier2"`

	// SmartLockCost overrides the global smart lock cost when positive.
	SmartLockCost decimal.Decimal `json:"smartLockCost"`

	// Tier curve: below BasePriceAmount the subtotal compounds
	// DecreaseMultiplier (percent) once per whole DecreaseInterval of
	// shortfall; above it, IncreaseMultiplier per whole
	// IncreaseInterval of excess. Zero fields fall back to engine
	// defaults.
	BasePriceAmount    decimal.Decimal `json:"basePriceAmount"`
	DecreaseInterval   decimal.Decimal `json:"decreaseInterval"`
	DecreaseMultiplier decimal.Decimal `json:"decreaseMultiplier"`
	IncreaseInterval   decimal.Decimal `json:"increaseInterval"`
	IncreaseMultiplier decimal.Decimal `json:"increaseMultiplier"`

	// MaterialMaxSizes holds per-material size limit overrides.
	MaterialMaxSizes map[string]MaterialMaxSize `json:"materialMaxSizes,omitempty"`
}

// GlassType is a selectable glazing option.
type GlassType struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// OptionLists holds the selectable option values shown on the form.
type OptionLists struct {
	Colors        []string    `json:"colors"`
	GlassTypes    []GlassType `json:"glassTypes"`
	GlassTextures []string    `json:"glassTextures"`
	GlassTints    []string    `json:"glassTints"`
}

// AdditionalCosts holds option surcharge constants shared across rule
// tables.
type AdditionalCosts struct {
	SmartLockBaseCost         decimal.Decimal `json:"smartLockBaseCost"`
	RetractableScreenBaseRate decimal.Decimal `json:"retractableScreenBaseRate"`
	GlassTextureAddonCost     decimal.Decimal `json:"glassTextureAddonCost"`
	LiftAndSlidePanelCost     decimal.Decimal `json:"liftAndSlidePanelCost"`
}

// Settings is the immutable configuration snapshot an engine pass reads.
type Settings struct {
	CompanyName    string          `json:"companyName"`
	DocumentTitle  string          `json:"documentTitle"`
	DisclaimerText string          `json:"disclaimerText"`
	RoundingPolicy rounding.Policy `json:"roundingOption"`

	Agents          []string                  `json:"agents,omitempty"`
	Materials       []Material                `json:"materials"`
	ProductTypes    []ProductType             `json:"productTypes"`
	Options         OptionLists               `json:"options"`
	PricingFormulas map[string]PricingFormula `json:"pricingFormulas"`
	AdditionalCosts AdditionalCosts           `json:"additionalCosts"`
}

// MaterialByName finds a material by name.
func (s *Settings) MaterialByName(name string) (Material, bool) {
	for _, m := range s.Materials {
		if m.Name == name {
			return m, true
		}
	}
	return Material{}, false
}

// ProductTypeByName finds a product type by catalog name.
func (s *Settings) ProductTypeByName(name string) (ProductType, bool) {
	for _, pt := range s.ProductTypes {
		if pt.Name == name {
			return pt, true
		}
	}
	return ProductType{}, false
}

// FormulaForKey returns the rule table for a pricing key.
func (s *Settings) FormulaForKey(key string) (PricingFormula, bool) {
	f, ok := s.PricingFormulas[key]
	return f, ok
}

// Option sentinels used by the calculator.
const (
	// ColorCustom triggers the custom color surcharge.
	ColorCustom = "Custom"

	// OptionNone is the "no selection" value for textures and tints.
	OptionNone = "None"

	// GlassTriplePane triggers the triple pane surcharge.
	GlassTriplePane = "Triple pane"
)
