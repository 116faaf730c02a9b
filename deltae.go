// Package deltae computes the CIEDE2000 color difference between two
// colors given in CIE L*a*b* or 8-bit sRGB.
package deltae

import (
	"fmt"

	"github.com/jsvensson/deltae/internal/ciede2000"
	"github.com/jsvensson/deltae/internal/color"
	"github.com/jsvensson/deltae/internal/config"
)

// Lab is a color in CIE L*a*b*.
type Lab = color.Lab

// Color is an 8-bit sRGB color.
type Color = color.Color

// Weights holds the parametric factors k_L, k_C and k_H. Zero fields
// default to 1. Negative factors are not rejected; see Weights.Validate.
type Weights = ciede2000.Weights

// Config holds evaluator settings loaded from an HCL file.
type Config = config.Config

// DefaultWeights are the unity factors k_L = k_C = k_H = 1.
var DefaultWeights = ciede2000.DefaultWeights

// DE2000 returns the CIEDE2000 difference ΔE00 between c1 and c2.
func DE2000(c1, c2 Lab, w Weights) float64 {
	return ciede2000.Distance(c1, c2, w)
}

// DE2000FromRGB converts both sRGB colors to L*a*b* (D65) and returns
// their CIEDE2000 difference with default weights.
func DE2000FromRGB(c1, c2 Color) float64 {
	return DE2000(RGBToLab(c1), RGBToLab(c2), DefaultWeights)
}

// DE2000FromHex parses two hex colors like "#eb6f92" and returns their
// CIEDE2000 difference with default weights.
func DE2000FromHex(s1, s2 string) (float64, error) {
	c1, err := ParseHex(s1)
	if err != nil {
		return 0, fmt.Errorf("first color: %w", err)
	}
	c2, err := ParseHex(s2)
	if err != nil {
		return 0, fmt.Errorf("second color: %w", err)
	}
	return DE2000FromRGB(c1, c2), nil
}

// RGBToLab converts an sRGB color to L*a*b* relative to D65.
func RGBToLab(c Color) Lab {
	return color.RGBToLab(c)
}

// RGBToLabD50 converts an sRGB color to L*a*b* relative to D50.
func RGBToLabD50(c Color) Lab {
	return color.RGBToLabD50(c)
}

// ParseHex parses a hex color string with or without a leading #.
func ParseHex(s string) (Color, error) {
	return color.ParseHex(s)
}

// LoadConfig parses an HCL file holding weights and an illuminant.
func LoadConfig(path string) (*Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
