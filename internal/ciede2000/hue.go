package ciede2000

import "math"

func radians(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

func degrees(rad float64) float64 {
	return rad * (180.0 / math.Pi)
}

// hueAngle returns h' = atan2(b, a') in degrees, in [0, 360).
// A zero chrominance vector has hue 0.
func hueAngle(b, aPrime float64) float64 {
	if b == 0 && aPrime == 0 {
		return 0
	}

	h := degrees(math.Atan2(b, aPrime))
	if h < 0 {
		h += 360
	}
	return h
}

// hueDelta returns Δh', the signed hue difference from h1 to h2 taken the
// short way around the circle. It is 0 when either color is achromatic.
func hueDelta(c1, c2, h1, h2 float64) float64 {
	if c1 == 0 || c2 == 0 {
		return 0
	}

	switch {
	case math.Abs(h1-h2) <= 180:
		return h2 - h1
	case h2 <= h1:
		return h2 - h1 + 360
	default:
		return h2 - h1 - 360
	}
}

// meanHue returns H̄', the mean of two hue angles across the 0/360 seam.
func meanHue(h1, h2 float64) float64 {
	if math.Abs(h1-h2) > 180 {
		return (h1 + h2 + 360) / 2
	}
	return (h1 + h2) / 2
}

// hueWeight returns T, the hue dependence of the S_H weighting function.
func hueWeight(hBar float64) float64 {
	return 1 -
		0.17*math.Cos(radians(hBar-30)) +
		0.24*math.Cos(radians(2*hBar)) +
		0.32*math.Cos(radians(3*hBar+6)) -
		0.20*math.Cos(radians(4*hBar-63))
}

// rotation returns R_T, which couples the chroma and hue terms in the
// blue region around h = 275°.
func rotation(cBarPrime, hBar float64) float64 {
	c7 := math.Pow(cBarPrime, 7)
	dTheta := (hBar - 275) / 25
	return -2 * math.Sqrt(c7/(c7+pow25To7)) * math.Sin(radians(60*math.Exp(-dTheta*dTheta)))
}
