package pipeline

import (
	"math"
	"strconv"

	"github.com/aretw0/logos/pkg/domain"
)

// FormatFixed renders v in plain decimal notation with exactly prec digits
// after the point, whatever the magnitude. Negative zero prints as zero.
// Non-finite values print as NaN, Infinity and -Infinity, the same text
// Stringify uses.
func FormatFixed(v float64, prec int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		v = 0
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// Assemble builds the Result for a finished trace.
func Assemble(t domain.Trace) domain.Result {
	return domain.Result{
		Signature:      domain.Signature,
		InputMass:      FormatFixed(t.Mass, domain.InputMassPrecision),
		GeometricDrift: t.Geometry,
		AlignedOutput:  FormatFixed(t.Aligned, domain.AlignedPrecision),
		IntegritySeal:  FormatFixed(t.Seal, domain.SealPrecision),
		Status:         domain.StatusNaturalness,
	}
}
