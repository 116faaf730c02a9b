package ciede2000

import (
	"math"
	"testing"
)

func TestHueAngle(t *testing.T) {
	tests := []struct {
		name      string
		b, aPrime float64
		want      float64
	}{
		{"achromatic", 0, 0, 0},
		{"positive a axis", 0, 10, 0},
		{"positive b axis", 10, 0, 90},
		{"negative a axis", 0, -10, 180},
		{"negative b axis", -10, 0, 270},
		{"fourth quadrant", -1, 1, 315},
		{"second quadrant", 1, -1, 135},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hueAngle(tt.b, tt.aPrime)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("hueAngle(%v, %v) = %v, want %v", tt.b, tt.aPrime, got, tt.want)
			}
			if got < 0 || got >= 360 {
				t.Errorf("hueAngle(%v, %v) = %v, want within [0, 360)", tt.b, tt.aPrime, got)
			}
		})
	}
}

func TestHueDelta(t *testing.T) {
	tests := []struct {
		name           string
		c1, c2, h1, h2 float64
		want           float64
	}{
		{"first achromatic", 0, 5, 10, 200, 0},
		{"second achromatic", 5, 0, 10, 200, 0},
		{"short way forward", 5, 5, 10, 20, 10},
		{"short way backward", 5, 5, 20, 10, -10},
		{"exactly 180", 5, 5, 0, 180, 180},
		{"wrap with h2 below h1", 5, 5, 350, 10, 20},
		{"wrap with h2 above h1", 5, 5, 10, 350, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hueDelta(tt.c1, tt.c2, tt.h1, tt.h2)
			if got != tt.want {
				t.Errorf("hueDelta(%v, %v, %v, %v) = %v, want %v", tt.c1, tt.c2, tt.h1, tt.h2, got, tt.want)
			}
		})
	}
}

func TestMeanHue(t *testing.T) {
	tests := []struct {
		name   string
		h1, h2 float64
		want   float64
	}{
		{"same hue", 90, 90, 90},
		{"near", 10, 20, 15},
		{"exactly 180 apart", 0, 180, 90},
		{"across the seam", 350, 10, 360},
		{"across the seam low sum", 10, 200, 285},
		{"across the seam high sum", 300, 100, 380},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := meanHue(tt.h1, tt.h2)
			if got != tt.want {
				t.Errorf("meanHue(%v, %v) = %v, want %v", tt.h1, tt.h2, got, tt.want)
			}
		})
	}
}

func TestHueWeight(t *testing.T) {
	tests := []struct {
		hBar float64
		want float64
	}{
		{0, 1.3202245879265835},
		{90, 0.6176510082977397},
		{275, 0.5745427595946588},
	}

	for _, tt := range tests {
		if got := hueWeight(tt.hBar); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("hueWeight(%v) = %v, want %v", tt.hBar, got, tt.want)
		}
	}
}

func TestHueWeightPeriodic(t *testing.T) {
	for _, h := range []float64{0, 45, 123.4, 275, 359} {
		if a, b := hueWeight(h), hueWeight(h+360); math.Abs(a-b) > 1e-9 {
			t.Errorf("hueWeight(%v) = %v, hueWeight(%v) = %v", h, a, h+360, b)
		}
	}
}

func TestRotation(t *testing.T) {
	if got := rotation(0, 275); got != 0 {
		t.Errorf("rotation(0, 275) = %v, want 0", got)
	}

	// At C̄' = 25 the chroma factor is sqrt(1/2); at H̄' = 275 the angle is 60°.
	if got, want := rotation(25, 275), -math.Sqrt(1.5); math.Abs(got-want) > 1e-12 {
		t.Errorf("rotation(25, 275) = %v, want %v", got, want)
	}

	// Far from the blue region the term vanishes.
	if got := rotation(60, 90); math.Abs(got) > 1e-6 {
		t.Errorf("rotation(60, 90) = %v, want ~0", got)
	}
}

func TestDegreeRadianRoundTrip(t *testing.T) {
	for _, d := range []float64{0, 30, 90, 180, 275, 359.5} {
		if got := degrees(radians(d)); math.Abs(got-d) > 1e-9 {
			t.Errorf("degrees(radians(%v)) = %v", d, got)
		}
	}
}
