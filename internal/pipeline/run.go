package pipeline

import (
	"github.com/aretw0/logos/pkg/domain"
)

// Observer receives the output of each stage as soon as it is computed.
// For StageDetect, value is the detector input and geo is set.
type Observer func(stage domain.Stage, value float64, geo *domain.Geometry)

// Run executes every stage in order and returns the full trace.
func Run(text string, observers ...Observer) domain.Trace {
	notify := func(stage domain.Stage, value float64, geo *domain.Geometry) {
		for _, o := range observers {
			if o != nil {
				o(stage, value, geo)
			}
		}
	}

	var t domain.Trace

	t.Mass = Ingest(text)
	notify(domain.StageIngest, t.Mass, nil)

	t.Stabilized = Stabilize(t.Mass)
	notify(domain.StageStabilize, t.Stabilized, nil)

	t.Geometry = Detect(t.Stabilized)
	geo := t.Geometry
	notify(domain.StageDetect, t.Stabilized, &geo)

	t.Persisted = Persist(t.Stabilized, t.Geometry)
	notify(domain.StagePersist, t.Persisted, nil)

	t.Aligned = Align(t.Persisted)
	notify(domain.StageAlign, t.Aligned, nil)

	t.Seal = Certify(t.Aligned)
	notify(domain.StageCertify, t.Seal, nil)

	return t
}

// AlignSequence runs Ingest through Align, the path used for streamed chunks.
func AlignSequence(text string) float64 {
	v := Stabilize(Ingest(text))
	return Align(Persist(v, Detect(v)))
}
