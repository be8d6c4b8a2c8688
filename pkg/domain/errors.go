package domain

import (
	"errors"
	"fmt"
)

// ErrNumericDomain is matched by every NumericDomainError.
var ErrNumericDomain = errors.New("numeric domain violation")

// ErrResultNotFound is returned when a result key cannot be found in the store.
var ErrResultNotFound = errors.New("result not found")

// NumericDomainError reports the first stage whose output left the finite domain.
type NumericDomainError struct {
	Stage Stage
	Value float64
}

func (e *NumericDomainError) Error() string {
	return fmt.Sprintf("%s: stage %s produced %v", ErrNumericDomain, e.Stage, e.Value)
}

// Is allows errors.Is(err, ErrNumericDomain).
func (e *NumericDomainError) Is(target error) bool {
	return target == ErrNumericDomain
}
