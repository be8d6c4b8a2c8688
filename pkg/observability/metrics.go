package observability

import (
	"context"
	"math"
	"strconv"

	"github.com/aretw0/logos/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by the engine hooks.
type Metrics struct {
	runs       *prometheus.CounterVec
	nonFinite  *prometheus.CounterVec
	degenerate prometheus.Counter
	duration   prometheus.Histogram
	inputBytes prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// It panics if they are already registered, like prometheus.MustRegister.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logos_runs_total",
				Help: "Total number of processed workflows",
			},
			[]string{"cached"},
		),
		nonFinite: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logos_stage_non_finite_total",
				Help: "Stage outputs that were NaN or infinite",
			},
			[]string{"stage"},
		),
		degenerate: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "logos_degenerate_runs_total",
			Help: "Runs whose trace left the finite domain",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "logos_run_duration_seconds",
			Help:    "Duration of pipeline runs",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		inputBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "logos_input_bytes",
			Help:    "Size of processed workflows in bytes",
			Buckets: prometheus.ExponentialBuckets(16, 4, 8),
		}),
	}

	reg.MustRegister(m.runs, m.nonFinite, m.degenerate, m.duration, m.inputBytes)
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStage: func(ctx context.Context, e *domain.StageEvent) {
			// Detect reports its input as Value; only its Geometry is its output.
			if e.Geometry != nil {
				if !(finite(e.Geometry.Triangle) && finite(e.Geometry.Circle) && finite(e.Geometry.Linear)) {
					m.nonFinite.WithLabelValues(string(e.Stage)).Inc()
				}
				return
			}
			if !finite(e.Value) {
				m.nonFinite.WithLabelValues(string(e.Stage)).Inc()
			}
		},
		OnComplete: func(ctx context.Context, e *domain.RunEvent) {
			m.runs.WithLabelValues(strconv.FormatBool(e.Cached)).Inc()
			m.duration.Observe(e.Duration.Seconds())
			m.inputBytes.Observe(float64(e.InputLen))
			if e.Err != nil {
				m.degenerate.Inc()
			}
		},
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
