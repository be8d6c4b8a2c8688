package pipeline

import (
	"math"

	"github.com/aretw0/logos/pkg/domain"
)

var reg = domain.Constants()

// Ingest maps text to the initial Vector.
// Each code point at rune position i contributes codepoint * Phi^(i mod Circle).
// Invalid UTF-8 bytes count as U+FFFD, the way range decodes them.
// The weights come from domain.PhiPowers: math.Pow is off by 1-2 ULP for
// these exponents and the error grows through the later stages.
func Ingest(text string) float64 {
	vector := reg.Delta0
	i := 0
	for _, r := range text {
		vector += float64(r) * domain.PhiPowers[int(math.Mod(float64(i), reg.Circle))]
		i++
	}
	return vector
}

// Stabilize averages a squaring path and a square-root path.
// It returns NaN when v + Delta0 is negative.
func Stabilize(v float64) float64 {
	pathA := v * v / reg.Matrix
	pathB := math.Sqrt(v+reg.Delta0) * reg.Matrix
	return (pathA + pathB) / 2
}

// Detect derives the Geometry of a Vector.
func Detect(v float64) domain.Geometry {
	return domain.Geometry{
		Triangle: math.Abs(math.Sin(v / reg.Triangle)),
		Circle:   math.Abs(math.Cos(v / reg.Circle)),
		Linear:   math.Abs(math.Tanh(v / reg.Linearity)),
	}
}

// Persist pulls v toward zero in proportion to the triangle and circle
// measures, then offsets it by Delta0.
func Persist(v float64, geo domain.Geometry) float64 {
	force := v * (geo.Triangle + geo.Circle) / (reg.Verdict + reg.Delta0)
	return v - force + reg.Delta0
}

// Align keeps the truncated multiple of Linearity and replaces the remainder
// with Linearity/Phi. The remainder follows the sign of v.
func Align(v float64) float64 {
	drift := math.Mod(v, reg.Linearity)
	return v - drift + (reg.Linearity / reg.Phi)
}

// Certify folds v into the seal.
func Certify(v float64) float64 {
	v1 := math.Mod(v*reg.Symmetry, reg.Verdict)
	v2 := math.Mod(v/reg.Symmetry, reg.Verdict)
	return (v1 + v2) / 2
}
