package logos

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/logos/internal/pipeline"
	"github.com/aretw0/logos/pkg/domain"
	"github.com/aretw0/logos/pkg/ports"
)

// Process runs the pipeline on workflow and returns its Result. It never fails.
func Process(workflow string) domain.Result {
	return pipeline.Assemble(pipeline.Run(workflow))
}

// ProcessValue coerces v with Stringify and runs the pipeline on the text.
func ProcessValue(v any) domain.Result {
	return Process(Stringify(v))
}

// Trace runs the pipeline on workflow and returns every intermediate Vector.
func Trace(workflow string) domain.Trace {
	return pipeline.Run(workflow)
}

// Constants returns the registry shared by every stage.
func Constants() domain.Registry {
	return domain.Constants()
}

// Engine is the high-level entry point for hosts.
// It wraps the pure pipeline with logging, lifecycle hooks and an optional result cache.
// An Engine is safe for concurrent use if its store and hooks are.
type Engine struct {
	store  ports.ResultStore
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

var _ ports.Processor = (*Engine)(nil)

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStore caches results by input digest.
// Store failures are logged and never change the Result.
func WithStore(store ports.ResultStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return eng
}

// Process runs the pipeline, consulting the store first when one is configured.
func (e *Engine) Process(ctx context.Context, workflow string) domain.Result {
	start := time.Now()
	key := CacheKey(workflow)

	if e.store != nil {
		res, err := e.store.Get(ctx, key)
		switch {
		case err == nil:
			e.logger.Debug("result served from store", "key", key)
			e.complete(ctx, &domain.RunEvent{
				InputLen: len(workflow),
				Duration: time.Since(start),
				Cached:   true,
				Err:      res.Err(),
			})
			return res
		case !errors.Is(err, domain.ErrResultNotFound):
			e.logger.Warn("result store lookup failed", "key", key, "error", err)
		}
	}

	trace := e.Trace(ctx, workflow)
	res := pipeline.Assemble(trace)

	if e.store != nil {
		if err := e.store.Put(ctx, key, res); err != nil {
			e.logger.Warn("result store write failed", "key", key, "error", err)
		}
	}

	runErr := trace.Err()
	if runErr != nil {
		e.logger.Warn("pipeline left the finite domain", "input_len", len(workflow), "error", runErr)
	}
	e.logger.Debug("workflow processed", "input_len", len(workflow), "seal", res.IntegritySeal)

	e.complete(ctx, &domain.RunEvent{
		InputLen: len(workflow),
		Duration: time.Since(start),
		Err:      runErr,
	})

	return res
}

// Trace runs the pipeline, firing OnStage for every stage. It bypasses the store.
func (e *Engine) Trace(ctx context.Context, workflow string) domain.Trace {
	if e.hooks.OnStage == nil {
		return pipeline.Run(workflow)
	}

	return pipeline.Run(workflow, func(stage domain.Stage, value float64, geo *domain.Geometry) {
		e.hooks.OnStage(ctx, &domain.StageEvent{
			Timestamp: time.Now(),
			Stage:     stage,
			Value:     value,
			Geometry:  geo,
		})
	})
}

func (e *Engine) complete(ctx context.Context, ev *domain.RunEvent) {
	if e.hooks.OnComplete == nil {
		return
	}
	ev.Timestamp = time.Now()
	e.hooks.OnComplete(ctx, ev)
}

// CacheKey returns the store key for workflow: the hex SHA-256 of its bytes.
func CacheKey(workflow string) string {
	sum := sha256.Sum256([]byte(workflow))
	return hex.EncodeToString(sum[:])
}
