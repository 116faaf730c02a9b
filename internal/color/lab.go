package color

import (
	"fmt"
	"strings"

	"github.com/jkl1337/go-chromath"
	"github.com/lucasb-eyer/go-colorful"
)

// Converter maps an sRGB color to CIE L*a*b*.
type Converter func(Color) Lab

// Illuminant names accepted by ConverterFor.
const (
	IlluminantD65 = "d65"
	IlluminantD50 = "d50"
)

var (
	d50Illuminant = &chromath.IlluminantRefD50
	rgbToXYZD50   = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		d50Illuminant,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	labToXYZD50 = chromath.NewLabTransformer(d50Illuminant)
)

// RGBToLab converts an sRGB color to L*a*b* relative to the D65 white point.
func RGBToLab(c Color) Lab {
	l, a, b := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Lab()

	// go-colorful scales L to [0, 1].
	return Lab{L: l * 100, A: a * 100, B: b * 100}
}

// RGBToLabD50 converts an sRGB color to L*a*b* relative to D50, using a
// Bradford chromatic adaptation from the sRGB (D65) white point.
func RGBToLabD50(c Color) Lab {
	xyz := rgbToXYZD50.Convert(chromath.RGB{float64(c.R), float64(c.G), float64(c.B)})
	lab := labToXYZD50.Invert(xyz)
	return Lab{L: lab.L(), A: lab.A(), B: lab.B()}
}

// ConverterFor returns the converter for the named reference white.
// An empty name selects D65.
func ConverterFor(illuminant string) (Converter, error) {
	switch strings.ToLower(illuminant) {
	case "", IlluminantD65:
		return RGBToLab, nil
	case IlluminantD50:
		return RGBToLabD50, nil
	default:
		return nil, fmt.Errorf("unknown illuminant %q: must be %q or %q", illuminant, IlluminantD65, IlluminantD50)
	}
}
