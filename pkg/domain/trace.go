package domain

import (
	"encoding/json"
	"math"
)

// Trace records every intermediate Vector of one pipeline run.
type Trace struct {
	Mass       float64  `json:"mass" yaml:"mass"`
	Stabilized float64  `json:"stabilized" yaml:"stabilized"`
	Geometry   Geometry `json:"geometry" yaml:"geometry"`
	Persisted  float64  `json:"persisted" yaml:"persisted"`
	Aligned    float64  `json:"aligned" yaml:"aligned"`
	Seal       float64  `json:"seal" yaml:"seal"`
}

// Err returns a *NumericDomainError naming the first stage whose output is
// NaN or infinite, or nil when the whole run stayed finite.
// The Result built from the same trace is unaffected.
func (t Trace) Err() error {
	steps := []struct {
		stage Stage
		value float64
	}{
		{StageIngest, t.Mass},
		{StageStabilize, t.Stabilized},
		{StageDetect, t.Geometry.Triangle + t.Geometry.Circle + t.Geometry.Linear},
		{StagePersist, t.Persisted},
		{StageAlign, t.Aligned},
		{StageCertify, t.Seal},
	}
	for _, s := range steps {
		if math.IsNaN(s.value) || math.IsInf(s.value, 0) {
			return &NumericDomainError{Stage: s.stage, Value: s.value}
		}
	}
	return nil
}

type traceJSON struct {
	Mass       nullableFloat `json:"mass"`
	Stabilized nullableFloat `json:"stabilized"`
	Geometry   Geometry      `json:"geometry"`
	Persisted  nullableFloat `json:"persisted"`
	Aligned    nullableFloat `json:"aligned"`
	Seal       nullableFloat `json:"seal"`
}

// MarshalJSON writes non-finite Vectors as null.
func (t Trace) MarshalJSON() ([]byte, error) {
	return json.Marshal(traceJSON{
		Mass:       nullableFloat(t.Mass),
		Stabilized: nullableFloat(t.Stabilized),
		Geometry:   t.Geometry,
		Persisted:  nullableFloat(t.Persisted),
		Aligned:    nullableFloat(t.Aligned),
		Seal:       nullableFloat(t.Seal),
	})
}

// UnmarshalJSON reads null Vectors as NaN.
func (t *Trace) UnmarshalJSON(data []byte) error {
	var raw traceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = Trace{
		Mass:       float64(raw.Mass),
		Stabilized: float64(raw.Stabilized),
		Geometry:   raw.Geometry,
		Persisted:  float64(raw.Persisted),
		Aligned:    float64(raw.Aligned),
		Seal:       float64(raw.Seal),
	}
	return nil
}
