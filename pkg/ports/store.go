package ports

import (
	"context"

	"github.com/aretw0/logos/pkg/domain"
)

// ResultStore caches finished Results.
// Every run is deterministic, so a stored Result never goes stale.
type ResultStore interface {
	// Put stores the result under key, replacing any previous value.
	Put(ctx context.Context, key string, result domain.Result) error

	// Get retrieves the result for key.
	// Returns domain.ErrResultNotFound if the key does not exist.
	Get(ctx context.Context, key string) (domain.Result, error)

	// Delete removes the result for key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
