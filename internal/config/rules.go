// Package config - HCL rule table loader
// Rule tables can be maintained as an HCL file next to the JSON
// application config; admins find the block syntax easier to hand-edit
// than nested JSON.
package config

import (
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"mainland-quote/core/types"
	"mainland-quote/internal/errors"
)

// rulesFile is the root of an HCL rules document.
type rulesFile struct {
	Formulas []formulaBlock `hcl:"formula,block"`
}

// formulaBlock is one `formula "<pricingKey>" { ... }` block.
type formulaBlock struct {
	Key string `hcl:"key,label"`

	FormulaText  string  `hcl:"formula_text,optional"`
	MaxWidth     float64 `hcl:"max_width,optional"`
	MaxHeight    float64 `hcl:"max_height,optional"`
	PanelDivisor float64 `hcl:"panel_divisor,optional"`

	Rate1 float64 `hcl:"rate1"`
	Rate2 float64 `hcl:"rate2"`
	Rate3 float64 `hcl:"rate3"`

	Multiplier1 float64 `hcl:"multiplier1"`
	Multiplier2 float64 `hcl:"multiplier2"`

	SmartLockCost float64 `hcl:"smart_lock_cost,optional"`

	BasePriceAmount    float64 `hcl:"base_price_amount,optional"`
	DecreaseInterval   float64 `hcl:"decrease_interval,optional"`
	DecreaseMultiplier float64 `hcl:"decrease_multiplier,optional"`
	IncreaseInterval   float64 `hcl:"increase_interval,optional"`
	IncreaseMultiplier float64 `hcl:"increase_multiplier,optional"`

	MaterialMaxSizes []materialMaxBlock `hcl:"material_max,block"`
}

// materialMaxBlock is a per-material size limit override.
type materialMaxBlock struct {
	Material  string   `hcl:"material,label"`
	MaxWidth  *float64 `hcl:"max_width,optional"`
	MaxHeight *float64 `hcl:"max_height,optional"`
}

// LoadRules parses an HCL rules file into rule tables keyed by pricing
// key.
func LoadRules(path string) (map[string]types.PricingFormula, error) {
	var file rulesFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, errors.Config("parse rules file", err)
	}

	formulas := make(map[string]types.PricingFormula, len(file.Formulas))
	for _, block := range file.Formulas {
		if block.Key == "" {
			return nil, errors.New(errors.TypeConfig, "formula block missing pricing key label")
		}
		formulas[block.Key] = block.toFormula()
	}
	return formulas, nil
}

func (b formulaBlock) toFormula() types.PricingFormula {
	f := types.PricingFormula{
		FormulaText:        b.FormulaText,
		MaxWidth:           b.MaxWidth,
		MaxHeight:          b.MaxHeight,
		PanelDivisor:       b.PanelDivisor,
		Rate1:              decimal.NewFromFloat(b.Rate1),
		Rate2:              decimal.NewFromFloat(b.Rate2),
		Rate3:              decimal.NewFromFloat(b.Rate3),
		Multiplier1:        decimal.NewFromFloat(b.Multiplier1),
		Multiplier2:        decimal.NewFromFloat(b.Multiplier2),
		SmartLockCost:      decimal.NewFromFloat(b.SmartLockCost),
		BasePriceAmount:    decimal.NewFromFloat(b.BasePriceAmount),
		DecreaseInterval:   decimal.NewFromFloat(b.DecreaseInterval),
		DecreaseMultiplier: decimal.NewFromFloat(b.DecreaseMultiplier),
		IncreaseInterval:   decimal.NewFromFloat(b.IncreaseInterval),
		IncreaseMultiplier: decimal.NewFromFloat(b.IncreaseMultiplier),
	}
	if len(b.MaterialMaxSizes) > 0 {
		f.MaterialMaxSizes = make(map[string]types.MaterialMaxSize, len(b.MaterialMaxSizes))
		for _, m := range b.MaterialMaxSizes {
			f.MaterialMaxSizes[m.Material] = types.MaterialMaxSize{
				MaxWidth:  m.MaxWidth,
				MaxHeight: m.MaxHeight,
			}
		}
	}
	return f
}
