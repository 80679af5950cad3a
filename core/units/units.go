// Package units - Linear dimension conversion and panel derivation
// All engine math runs on canonical feet; raw form input arrives as a
// value string plus a unit.
package units

import (
	"math"
	"strconv"
	"strings"
)

// Unit is a linear measurement unit accepted on raw input
type Unit string

const (
	Feet        Unit = "feet"
	Inches      Unit = "inches"
	Centimeters Unit = "cm"
	Millimeters Unit = "mm"
)

// ToFeet converts a value in the given unit to canonical feet.
// Non-positive input yields 0, meaning "not yet specified".
func ToFeet(value float64, unit Unit) float64 {
	if math.IsNaN(value) || value <= 0 {
		return 0
	}
	switch unit {
	case Inches:
		return value / 12
	case Centimeters:
		return value / 30.48
	case Millimeters:
		return value / 304.8
	default:
		return value
	}
}

// FromFeet converts canonical feet back to the given unit for display.
func FromFeet(value float64, unit Unit) float64 {
	if math.IsNaN(value) || value <= 0 {
		return 0
	}
	switch unit {
	case Inches:
		return value * 12
	case Centimeters:
		return value * 30.48
	case Millimeters:
		return value * 304.8
	default:
		return value
	}
}

// ParseDimension parses a raw dimension string and converts it to feet.
// Empty or non-numeric input yields 0 rather than an error; "not filled
// in yet" is a normal form state, not a failure.
func ParseDimension(raw string, unit Unit) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return ToFeet(value, unit)
}

// PanelCount derives the panel count for a panel-divided product type.
// Returns 0 when the divisor is non-positive (the type is not panel
// divided), otherwise at least 1.
func PanelCount(widthFt, divisor float64) int {
	if divisor <= 0 {
		return 0
	}
	n := int(math.Ceil(widthFt / divisor))
	if n < 1 {
		return 1
	}
	return n
}
