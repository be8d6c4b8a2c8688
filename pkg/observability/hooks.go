package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/logos/pkg/domain"
)

// LoggingHooks logs every stage at debug level and every run at info level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStage: func(ctx context.Context, e *domain.StageEvent) {
			logger.DebugContext(ctx, "stage", "stage", e.Stage, "value", e.Value)
		},
		OnComplete: func(ctx context.Context, e *domain.RunEvent) {
			if e.Err != nil {
				logger.WarnContext(ctx, "run_complete", "input_len", e.InputLen, "cached", e.Cached, "duration", e.Duration, "error", e.Err)
				return
			}
			logger.InfoContext(ctx, "run_complete", "input_len", e.InputLen, "cached", e.Cached, "duration", e.Duration)
		},
	}
}

// Combine fans every event out to each hook set, in order.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	var onStage []func(context.Context, *domain.StageEvent)
	var onComplete []func(context.Context, *domain.RunEvent)
	for _, h := range hooks {
		if h.OnStage != nil {
			onStage = append(onStage, h.OnStage)
		}
		if h.OnComplete != nil {
			onComplete = append(onComplete, h.OnComplete)
		}
	}

	var combined domain.LifecycleHooks
	if len(onStage) > 0 {
		combined.OnStage = func(ctx context.Context, e *domain.StageEvent) {
			for _, fn := range onStage {
				fn(ctx, e)
			}
		}
	}
	if len(onComplete) > 0 {
		combined.OnComplete = func(ctx context.Context, e *domain.RunEvent) {
			for _, fn := range onComplete {
				fn(ctx, e)
			}
		}
	}
	return combined
}
