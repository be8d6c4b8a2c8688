package domain

import (
	"encoding/json"
	"math"
)

// Literal fields of every Result.
const (
	Signature          = "LOGOS_DUAL_V1_SUPREME"
	StatusNaturalness  = "NATURALNESS_ACHIEVED"
	InputMassPrecision = 4
	AlignedPrecision   = 20
	SealPrecision      = 12
)

// Geometry holds the three bounded diagnostic measures of a Vector.
// Each field lies in [0,1] for finite input.
type Geometry struct {
	Triangle float64 `json:"triangle" yaml:"triangle"`
	Circle   float64 `json:"circle" yaml:"circle"`
	Linear   float64 `json:"linear" yaml:"linear"`
}

// Result is the fixed-shape report of a single run.
// The numeric text fields are fixed-point decimals; Geometry keeps raw doubles.
type Result struct {
	Signature      string   `json:"signature" yaml:"signature"`
	InputMass      string   `json:"input_mass" yaml:"input_mass"`
	GeometricDrift Geometry `json:"geometric_drift" yaml:"geometric_drift"`
	AlignedOutput  string   `json:"aligned_output" yaml:"aligned_output"`
	IntegritySeal  string   `json:"integrity_seal" yaml:"integrity_seal"`
	Status         string   `json:"status" yaml:"status"`
}

// Err reports the first field of a stored Result that holds a non-finite
// value, as a *NumericDomainError, or nil. It lets a cached Result be
// classified without its Trace.
func (r Result) Err() error {
	geo := r.GeometricDrift
	steps := []struct {
		stage Stage
		value float64
	}{
		{StageIngest, nonFiniteText(r.InputMass)},
		{StageDetect, geo.Triangle + geo.Circle + geo.Linear},
		{StageAlign, nonFiniteText(r.AlignedOutput)},
		{StageCertify, nonFiniteText(r.IntegritySeal)},
	}
	for _, s := range steps {
		if math.IsNaN(s.value) || math.IsInf(s.value, 0) {
			return &NumericDomainError{Stage: s.stage, Value: s.value}
		}
	}
	return nil
}

// nonFiniteText maps the fixed-point spellings of NaN and the infinities back
// to their values. Any other text maps to 0.
func nonFiniteText(s string) float64 {
	switch s {
	case "NaN":
		return math.NaN()
	case "Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	return 0
}

// nullableFloat encodes NaN and infinities as JSON null, which encoding/json
// refuses to emit otherwise. Null decodes back to NaN.
type nullableFloat float64

func (f nullableFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

func (f *nullableFloat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = nullableFloat(math.NaN())
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = nullableFloat(v)
	return nil
}

type geometryJSON struct {
	Triangle nullableFloat `json:"triangle"`
	Circle   nullableFloat `json:"circle"`
	Linear   nullableFloat `json:"linear"`
}

// MarshalJSON writes non-finite measures as null.
func (g Geometry) MarshalJSON() ([]byte, error) {
	return json.Marshal(geometryJSON{
		Triangle: nullableFloat(g.Triangle),
		Circle:   nullableFloat(g.Circle),
		Linear:   nullableFloat(g.Linear),
	})
}

// UnmarshalJSON reads null measures as NaN.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	var raw geometryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.Triangle = float64(raw.Triangle)
	g.Circle = float64(raw.Circle)
	g.Linear = float64(raw.Linear)
	return nil
}
