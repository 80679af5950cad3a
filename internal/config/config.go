// Package config provides configuration management.
// The pricing rule tables, materials, and catalog live here and are
// handed to the engine as an immutable snapshot; the engine itself
// never reads configuration state.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"mainland-quote/core/rounding"
	"mainland-quote/core/types"
	"mainland-quote/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Storage contains persistence configuration
	Storage StorageConfig `json:"storage"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`

	// Settings is the pricing settings snapshot handed to the engine
	Settings types.Settings `json:"settings"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`
}

// StorageConfig contains persistence settings
type StorageConfig struct {
	// DatabasePath is the path to the SQLite database
	DatabasePath string `json:"database_path"`
}

// Default returns a default configuration with the seeded catalog,
// materials, and rule tables.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dbPath := filepath.Join(homeDir, ".mainland-quote", "quotes.db")

	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr: ":8080",
		},
		Storage: StorageConfig{
			DatabasePath: dbPath,
		},
		Logging:  logging.DefaultConfig(),
		Settings: DefaultSettings(),
	}
}

// Load loads configuration from a file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}

func di(v int64) decimal.Decimal   { return decimal.NewFromInt(v) }
func df(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// DefaultSettings returns the seeded pricing settings: the material
// list, product catalog, option lists, surcharge constants, and one
// rule table per pricing key.
func DefaultSettings() types.Settings {
	return types.Settings{
		CompanyName:    "Green Mainland Luxury Windows and Doors",
		DocumentTitle:  "Cost Estimate",
		DisclaimerText: "This estimate does not include installation and is not an official quote.",
		RoundingPolicy: rounding.PolicyNone,
		Materials: []types.Material{
			{Name: "Aluminum", Description: "Thermally broken aluminum profiles.", Multiplier: di(1)},
			{Name: "Aluminum Hurricane", Description: "Hurricane-rated aluminum profiles (FBC)", Multiplier: df(1.4)},
			{Name: "Luxury Pivot", Description: "Special order, high-end thermal profiles", Multiplier: di(2)},
			{Name: "Galvanized Steel", Description: "Heavy duty, thermally broken steel profiles", Multiplier: di(4)},
			{Name: "Burnished Brass", Description: "Aesthetic, custom finished, thermally broken profiles", Multiplier: di(8)},
			{Name: "Made in U.S.A.", Description: "Premium, domestic production, thermally broken profiles", Multiplier: di(5)},
			{Name: "Corton Steel", Description: "Weathering steel with rustic finish, thermally broken profiles", Multiplier: df(8.5)},
			{Name: "Italian", Description: "Premium Italian craftsmanship, hurricane or secure door", Multiplier: di(7)},
			{Name: "Artisan", Description: "Custom artisan work - quote only", Multiplier: di(0)},
			{Name: "U.S. Garage", Description: "Luxury garage door material, domestic", Multiplier: di(1)},
			{Name: "European Vinyl", Description: "European vinyl profiles, thermally broken, best overall performance", Multiplier: df(0.7)},
		},
		ProductTypes: []types.ProductType{
			{Name: "Bi-fold door", Category: "Door", HasHurricaneOption: true, PricingKey: "bifoldDoor", AvailableMaterials: standardMaterials},
			{Name: "Bi-fold window", Category: "Window", HasHurricaneOption: true, PricingKey: "bifoldWindow", AvailableMaterials: standardMaterials},
			{Name: "Sliding Door", Category: "Door", HasHurricaneOption: true, PricingKey: "slidingDoor", AvailableMaterials: standardMaterials},
			{Name: "Sliding Window", Category: "Window", HasHurricaneOption: true, PricingKey: "slidingWindow", AvailableMaterials: standardMaterials},
			{Name: "Panel Pivot Door", Category: "Door", HasHurricaneOption: true, PricingKey: "panelPivotDoor", AvailableMaterials: pivotMaterials},
			{Name: "Panel Swing Door", Category: "Door", HasHurricaneOption: false, PricingKey: "panelSwingDoor", AvailableMaterials: swingMaterials},
			{Name: "Glass Pivot Door", Category: "Door", HasHurricaneOption: false, PricingKey: "glassPivotDoor", AvailableMaterials: pivotMaterials},
			{Name: "Glass Swing Door", Category: "Door", HasHurricaneOption: false, PricingKey: "glassSwingDoor", AvailableMaterials: swingMaterials},
			{Name: "Glass French Door", Category: "Door", HasHurricaneOption: true, PricingKey: "glassFrenchDoor", AvailableMaterials: frenchMaterials},
			{Name: "Interior System", Category: "Other", HasHurricaneOption: false, PricingKey: "interiorSystem", AvailableMaterials: standardMaterials},
			{Name: "Casement Window", Category: "Window", HasHurricaneOption: true, PricingKey: "casementWindow", AvailableMaterials: standardMaterials},
			{Name: "Awning Window", Category: "Window", HasHurricaneOption: true, PricingKey: "awningWindow", AvailableMaterials: standardMaterials},
			{Name: "Fixed Glass", Category: "Window", HasHurricaneOption: false, PricingKey: "fixedGlass", AvailableMaterials: swingMaterials},
			{Name: "Garage Door", Category: "Other", HasHurricaneOption: false, PricingKey: "fixedGlass", AvailableMaterials: []string{"Aluminum", "U.S. Garage"}},
		},
		Options: types.OptionLists{
			Colors: []string{"White", "Black", "Bronze", "Silver", types.ColorCustom},
			GlassTypes: []types.GlassType{
				{Name: "Double pane", Description: "Insulated double glazing"},
				{Name: types.GlassTriplePane, Description: "Insulated triple glazing"},
			},
			GlassTextures: []string{types.OptionNone, "Frosted", "Reeded", "Rain"},
			GlassTints:    []string{types.OptionNone, "Gray", "Bronze", "Blue"},
		},
		PricingFormulas: defaultFormulas(),
		AdditionalCosts: types.AdditionalCosts{
			SmartLockBaseCost:         di(350),
			RetractableScreenBaseRate: di(12),
			GlassTextureAddonCost:     di(150),
			LiftAndSlidePanelCost:     di(700),
		},
	}
}

var (
	standardMaterials = []string{"Aluminum", "Aluminum Hurricane", "Galvanized Steel", "Burnished Brass", "Made in U.S.A.", "Corton Steel", "European Vinyl"}
	pivotMaterials    = []string{"Aluminum", "Luxury Pivot", "Galvanized Steel", "Burnished Brass", "Made in U.S.A.", "Corton Steel", "Italian", "Artisan"}
	swingMaterials    = []string{"Aluminum", "Aluminum Hurricane", "Luxury Pivot", "Galvanized Steel", "Burnished Brass", "Made in U.S.A.", "Corton Steel", "Italian", "Artisan", "European Vinyl"}
	frenchMaterials   = []string{"Aluminum", "Aluminum Hurricane", "Galvanized Steel", "Burnished Brass", "Made in U.S.A.", "Corton Steel", "Italian", "Artisan", "European Vinyl"}
)

func defaultFormulas() map[string]types.PricingFormula {
	hurricaneWidth := 24.0

	return map[string]types.PricingFormula{
		"bifoldDoor": {
			FormulaText:  "Folding door system, panel-divided",
			MaxWidth:     30, MaxHeight: 12, PanelDivisor: 2.5,
			Rate1: di(240), Rate2: di(37), Rate3: di(190),
			Multiplier1: di(2), Multiplier2: df(1.3),
			SmartLockCost:   di(450),
			BasePriceAmount: di(10000), DecreaseInterval: di(2000), DecreaseMultiplier: di(125),
			IncreaseInterval: di(10000), IncreaseMultiplier: di(110),
			MaterialMaxSizes: map[string]types.MaterialMaxSize{
				"Aluminum Hurricane": {MaxWidth: &hurricaneWidth},
			},
		},
		"bifoldWindow": {
			FormulaText:  "Folding window system, panel-divided",
			MaxWidth:     24, MaxHeight: 8, PanelDivisor: 2,
			Rate1: di(210), Rate2: di(32), Rate3: di(165),
			Multiplier1: di(2), Multiplier2: df(1.25),
			BasePriceAmount: di(8000), DecreaseInterval: di(2000), DecreaseMultiplier: di(125),
			IncreaseInterval: di(10000), IncreaseMultiplier: di(110),
		},
		"slidingDoor": {
			FormulaText:  "Sliding door system, panel-divided",
			MaxWidth:     40, MaxHeight: 12, PanelDivisor: 4,
			Rate1: di(190), Rate2: di(30), Rate3: di(150),
			Multiplier1: di(2), Multiplier2: df(1.2),
			SmartLockCost:   di(450),
			BasePriceAmount: di(10000), DecreaseInterval: di(2000), DecreaseMultiplier: di(125),
			IncreaseInterval: di(10000), IncreaseMultiplier: di(110),
		},
		"slidingWindow": {
			FormulaText:  "Sliding window system, panel-divided",
			MaxWidth:     30, MaxHeight: 8, PanelDivisor: 3,
			Rate1: di(165), Rate2: di(26), Rate3: di(130),
			Multiplier1: di(2), Multiplier2: df(1.15),
			BasePriceAmount: di(8000), DecreaseInterval: di(2000), DecreaseMultiplier: di(125),
			IncreaseInterval: di(10000), IncreaseMultiplier: di(110),
		},
		"panelPivotDoor": {
			FormulaText: "Pivot door with solid panel",
			MaxWidth:    8, MaxHeight: 12,
			Rate1: di(280), Rate2: di(45), Rate3: di(220),
			Multiplier1: di(2), Multiplier2: df(1.4),
			SmartLockCost:   di(520),
			BasePriceAmount: di(12000), DecreaseInterval: di(2000), DecreaseMultiplier: di(125),
			IncreaseInterval: di(10000), IncreaseMultiplier: di(110),
		},
		"panelSwingDoor": {
			FormulaText: "Swing door with solid panel",
			MaxWidth:    6, MaxHeight: 10,
			Rate1: di(230), Rate2: di(38), Rate3: di(175),
			Multiplier1: df(1.8), Multiplier2: df(1.3),
			SmartLockCost:   di(420),
			BasePriceAmount: di(9000), DecreaseInterval: di(2000), DecreaseMultiplier: di(125),
			IncreaseInterval: di(10000), IncreaseMultiplier: di(110),
		},
		"glassPivotDoor": {
			FormulaText: "Pivot door, full glass",
			MaxWidth:    8, MaxHeight: 12,
			Rate1: di(300), Rate2: di(48), Rate3: di(235),
			Multiplier1: di(2), Multiplier2: df(1.4),
			SmartLockCost:   di(520),
			BasePriceAmount: di(12000), DecreaseInterval: di(2000), DecreaseMultiplier: di(125),
			IncreaseInterval: di(10000), IncreaseMultiplier: di(110),
		},
		"glassSwingDoor": {
			FormulaText: "Swing door, full glass",
			MaxWidth:    6, MaxHeight: 10,
			Rate1: di(245), Rate2: di(40), Rate3: di(185),
			Multiplier1: df(1.8), Multiplier2: df(1.3),
			SmartLockCost:   di(420),
			BasePriceAmount: di(9000), DecreaseInterval: di(2000), DecreaseMultiplier: di(125),
			IncreaseInterval: di(10000), IncreaseMultiplier: di(110),
		},
		"glassFrenchDoor": {
			FormulaText: "French door pair, full glass",
			MaxWidth:    10, MaxHeight: 10,
			Rate1: di(235), Rate2: di(38), Rate3: di(180),
			Multiplier1: df(1.9), Multiplier2: df(1.3),
			SmartLockCost:   di(450),
			BasePriceAmount: di(10000), DecreaseInterval: di(2000), DecreaseMultiplier: di(125),
			IncreaseInterval: di(10000), IncreaseMultiplier: di(110),
		},
		"interiorSystem": {
			FormulaText: "Interior partition system",
			MaxWidth:    40, MaxHeight: 10,
			Rate1: di(130), Rate2: di(22), Rate3: di(95),
			Multiplier1: df(1.6), Multiplier2: df(1.2),
			BasePriceAmount: di(7000), DecreaseInterval: di(2000), DecreaseMultiplier: di(125),
			IncreaseInterval: di(10000), IncreaseMultiplier: di(110),
		},
		"casementWindow": {
			FormulaText: "Casement window",
			MaxWidth:    4, MaxHeight: 8,
			Rate1: di(150), Rate2: di(24), Rate3: di(110),
			Multiplier1: df(1.7), Multiplier2: df(1.2),
			BasePriceAmount: di(5000), DecreaseInterval: di(1500), DecreaseMultiplier: di(120),
			IncreaseInterval: di(10000), IncreaseMultiplier: di(110),
		},
		"awningWindow": {
			FormulaText: "Awning window",
			MaxWidth:    6, MaxHeight: 4,
			Rate1: di(150), Rate2: di(24), Rate3: di(110),
			Multiplier1: df(1.7), Multiplier2: df(1.2),
			BasePriceAmount: di(5000), DecreaseInterval: di(1500), DecreaseMultiplier: di(120),
			IncreaseInterval: di(10000), IncreaseMultiplier: di(110),
		},
		"fixedGlass": {
			FormulaText: "Fixed glazing",
			MaxWidth:    16, MaxHeight: 12,
			Rate1: di(120), Rate2: di(18), Rate3: di(85),
			Multiplier1: df(1.5), Multiplier2: df(1.15),
			BasePriceAmount: di(5000), DecreaseInterval: di(1500), DecreaseMultiplier: di(120),
			IncreaseInterval: di(10000), IncreaseMultiplier: di(110),
		},
	}
}
