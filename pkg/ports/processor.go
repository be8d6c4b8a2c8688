package ports

import (
	"context"

	"github.com/aretw0/logos/pkg/domain"
)

// Processor is the driving port used by the transport adapters.
type Processor interface {
	// Process runs the whole pipeline. It never fails.
	Process(ctx context.Context, workflow string) domain.Result

	// Trace runs the pipeline and returns every intermediate Vector.
	Trace(ctx context.Context, workflow string) domain.Trace
}
