package domain

import (
	"context"
	"time"
)

// Stage names a pipeline step.
type Stage string

const (
	StageIngest    Stage = "ingest"
	StageStabilize Stage = "stabilize"
	StageDetect    Stage = "detect"
	StagePersist   Stage = "persist"
	StageAlign     Stage = "align"
	StageCertify   Stage = "certify"
)

// Stages lists every stage in execution order.
var Stages = []Stage{
	StageIngest,
	StageStabilize,
	StageDetect,
	StagePersist,
	StageAlign,
	StageCertify,
}

// StageEvent is emitted after a stage produced its output.
type StageEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Stage     Stage     `json:"stage"`
	// Value is the Vector produced by the stage. For the detector it is the
	// input Vector, and Geometry carries the measures.
	Value    float64   `json:"value"`
	Geometry *Geometry `json:"geometry,omitempty"`
}

// RunEvent is emitted once per pipeline run.
type RunEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	InputLen  int           `json:"input_len"`
	Duration  time.Duration `json:"duration"`
	Cached    bool          `json:"cached"`
	// Err is non-nil when an intermediate Vector was not finite.
	Err error `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnStage    func(context.Context, *StageEvent)
	OnComplete func(context.Context, *RunEvent)
}
