// Package ciede2000 implements the CIEDE2000 color-difference formula
// (Sharma, Wu and Dalal, 2005) over CIE L*a*b* colors.
package ciede2000

import (
	"fmt"
	"math"

	"github.com/jsvensson/deltae/internal/color"
)

// pow25To7 is 25^7.
const pow25To7 = 6103515625.0

// Weights holds the parametric factors k_L, k_C and k_H that scale the
// lightness, chroma and hue terms. A zero field selects the default of 1.
type Weights struct {
	L, C, H float64
}

// DefaultWeights are the unity factors the reference data is computed with.
var DefaultWeights = Weights{L: 1, C: 1, H: 1}

// resolved replaces unset factors with 1.
func (w Weights) resolved() Weights {
	if w.L == 0 {
		w.L = 1
	}
	if w.C == 0 {
		w.C = 1
	}
	if w.H == 0 {
		w.H = 1
	}
	return w
}

// Validate returns an error if any factor is negative, NaN or infinite.
// Distance does not call it; negative factors are evaluated as given.
func (w Weights) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"L", w.L},
		{"C", w.C},
		{"H", w.H},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("weight %s: %v is not a finite number", f.name, f.v)
		}
		if f.v < 0 {
			return fmt.Errorf("weight %s: %v must be positive", f.name, f.v)
		}
	}
	return nil
}

// terms are the weighted differences combined into ΔE00.
type terms struct {
	lightness float64
	chroma    float64
	hue       float64
	rotation  float64
}

func (t terms) distance() float64 {
	return math.Sqrt(t.lightness*t.lightness +
		t.chroma*t.chroma +
		t.hue*t.hue +
		t.rotation*t.chroma*t.hue)
}

// Distance returns the CIEDE2000 difference ΔE00 between x1 and x2.
// Identical colors yield exactly 0. Inputs are not range-checked.
func Distance(x1, x2 color.Lab, w Weights) float64 {
	return compute(x1, x2, w).distance()
}

func compute(x1, x2 color.Lab, w Weights) terms {
	w = w.resolved()

	deltaLPrime := x2.L - x1.L
	lBar := (x1.L + x2.L) / 2

	c1 := math.Sqrt(x1.A*x1.A + x1.B*x1.B)
	c2 := math.Sqrt(x2.A*x2.A + x2.B*x2.B)
	cBar := (c1 + c2) / 2

	// G is derived from the mean chroma and shared by both colors.
	cBar7 := math.Pow(cBar, 7)
	g := 1 - math.Sqrt(cBar7/(cBar7+pow25To7))
	aPrime1 := x1.A + (x1.A/2)*g
	aPrime2 := x2.A + (x2.A/2)*g

	cPrime1 := math.Sqrt(aPrime1*aPrime1 + x1.B*x1.B)
	cPrime2 := math.Sqrt(aPrime2*aPrime2 + x2.B*x2.B)
	cBarPrime := (cPrime1 + cPrime2) / 2
	deltaCPrime := cPrime2 - cPrime1

	hPrime1 := hueAngle(x1.B, aPrime1)
	hPrime2 := hueAngle(x2.B, aPrime2)

	deltahPrime := hueDelta(c1, c2, hPrime1, hPrime2)
	deltaHPrime := 2 * math.Sqrt(cPrime1*cPrime2) * math.Sin(radians(deltahPrime)/2)

	hBarPrime := meanHue(hPrime1, hPrime2)
	t := hueWeight(hBarPrime)

	lBarShift := (lBar - 50) * (lBar - 50)
	sL := 1 + (0.015*lBarShift)/math.Sqrt(20+lBarShift)
	sC := 1 + 0.045*cBarPrime
	sH := 1 + 0.015*cBarPrime*t

	return terms{
		lightness: deltaLPrime / (w.L * sL),
		chroma:    deltaCPrime / (w.C * sC),
		hue:       deltaHPrime / (w.H * sH),
		rotation:  rotation(cBarPrime, hBarPrime),
	}
}
