// Package guard bounds the size of workflows accepted from the network.
//
// Long inputs only grow the Ingestion sum, they never fail, but a shared
// server should not spend unbounded CPU on a single request.
package guard

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

var (
	// DefaultMaxInputSize is 1MB.
	DefaultMaxInputSize = 1 << 20
	// EnvMaxInputSize is the environment variable to override the default.
	EnvMaxInputSize = "LOGOS_MAX_INPUT_SIZE"
)

// ErrInputTooLarge is returned when a workflow exceeds the configured limit.
var ErrInputTooLarge = errors.New("input exceeds maximum allowed size")

// CheckSize rejects workflows longer than limit bytes.
// A limit <= 0 falls back to MaxInputSize.
// The workflow is never altered: stripping characters would change the Result.
func CheckSize(workflow string, limit int) error {
	if limit <= 0 {
		limit = MaxInputSize()
	}
	if len(workflow) > limit {
		// We explicitly reject rather than truncate to keep results deterministic.
		return fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(workflow), limit)
	}
	return nil
}

// MaxInputSize returns the limit from the environment, or the default.
func MaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if i, err := strconv.Atoi(val); err == nil && i > 0 {
			return i
		}
	}
	return DefaultMaxInputSize
}
