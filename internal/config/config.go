package config

import (
	"fmt"
	"maps"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/deltae/internal/ciede2000"
	"github.com/jsvensson/deltae/internal/color"
	"github.com/tliron/commonlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

func logger() commonlog.Logger {
	return commonlog.GetLogger("deltae.config")
}

// Config holds the settings a CIEDE2000 evaluation runs with.
type Config struct {
	Weights    ciede2000.Weights
	Illuminant string
}

// Default returns unity weights and the D65 converter.
func Default() *Config {
	return &Config{
		Weights:    ciede2000.DefaultWeights,
		Illuminant: color.IlluminantD65,
	}
}

// Compare returns ΔE00 between two Lab colors using the configured weights.
func (c *Config) Compare(x1, x2 color.Lab) float64 {
	return ciede2000.Distance(x1, x2, c.Weights)
}

// CompareRGB converts both colors with the configured illuminant and
// returns ΔE00 between them.
func (c *Config) CompareRGB(c1, c2 color.Color) (float64, error) {
	conv, err := color.ConverterFor(c.Illuminant)
	if err != nil {
		return 0, err
	}
	return c.Compare(conv(c1), conv(c2)), nil
}

// Load reads and parses an HCL config file.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(src, path)
}

// Parse parses HCL config source. Settings that are not present keep
// their Default values.
func Parse(src []byte, filename string) (*Config, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	body := file.Body.(*hclsyntax.Body)
	cfg := Default()

	if err := parseAttributes(body, cfg); err != nil {
		return nil, err
	}
	if err := parseBlocks(body, cfg); err != nil {
		return nil, err
	}

	logger().Debugf("loaded %s: weights L=%g C=%g H=%g, illuminant %s",
		filename, cfg.Weights.L, cfg.Weights.C, cfg.Weights.H, cfg.Illuminant)
	return cfg, nil
}

func parseAttributes(body *hclsyntax.Body, cfg *Config) error {
	for _, name := range slices.Sorted(maps.Keys(body.Attributes)) {
		attr := body.Attributes[name]
		switch name {
		case "illuminant":
			s, err := stringValue(attr.Expr, name)
			if err != nil {
				return err
			}
			s = strings.ToLower(s)
			if _, err := color.ConverterFor(s); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			cfg.Illuminant = s
		default:
			return fmt.Errorf("unknown attribute %q", name)
		}
	}
	return nil
}

func parseBlocks(body *hclsyntax.Body, cfg *Config) error {
	seen := make(map[string]bool)
	for _, block := range body.Blocks {
		if block.Type != "weights" {
			return fmt.Errorf("unknown block %q", block.Type)
		}
		if len(block.Labels) != 0 {
			return fmt.Errorf("weights block takes no labels")
		}
		if seen[block.Type] {
			return fmt.Errorf("duplicate weights block")
		}
		seen[block.Type] = true

		if err := parseWeights(block.Body, &cfg.Weights); err != nil {
			return err
		}
	}
	return nil
}

func parseWeights(body *hclsyntax.Body, dest *ciede2000.Weights) error {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("parsing weights: %s", diags.Error())
	}

	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		path := "weights." + name

		var field *float64
		switch name {
		case "lightness":
			field = &dest.L
		case "chroma":
			field = &dest.C
		case "hue":
			field = &dest.H
		default:
			return fmt.Errorf("unknown attribute %q", path)
		}

		f, err := numberValue(attrs[name].Expr, path)
		if err != nil {
			return err
		}
		if math.IsInf(f, 0) || f <= 0 {
			logger().Warningf("rejecting %s = %g", path, f)
			return fmt.Errorf("%s: %g must be a positive finite number", path, f)
		}
		*field = f
	}
	return nil
}

func evaluate(expr hcl.Expression, path string, want cty.Type) (cty.Value, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("evaluating %s: %s", path, diags.Error())
	}
	if val.IsNull() {
		return cty.NilVal, fmt.Errorf("%s: value is null", path)
	}
	val, err := convert.Convert(val, want)
	if err != nil {
		return cty.NilVal, fmt.Errorf("%s: %w", path, err)
	}
	return val, nil
}

func stringValue(expr hcl.Expression, path string) (string, error) {
	val, err := evaluate(expr, path, cty.String)
	if err != nil {
		return "", err
	}
	return val.AsString(), nil
}

func numberValue(expr hcl.Expression, path string) (float64, error) {
	val, err := evaluate(expr, path, cty.Number)
	if err != nil {
		return 0, err
	}
	var f float64
	if err := gocty.FromCtyValue(val, &f); err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
