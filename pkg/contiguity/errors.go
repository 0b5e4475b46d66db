package contiguity

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Sentinel preconditions (spec.md §7's PreconditionViolation taxonomy).
// Wrapped with fmt.Errorf so errors.Is still matches after context is
// attached, and combined with go.uber.org/multierr when more than one
// validation failure applies to the same call.
var (
	ErrInvalidOrder      = errors.New("contiguity: order must be >= 1")
	ErrNegativeThreshold = errors.New("contiguity: precision_threshold must be >= 0")
	ErrIndexOutOfRange   = errors.New("contiguity: geometry index out of range")
)

func validateParams(order int, threshold float64) error {
	var errs error
	if order < 1 {
		errs = multierr.Append(errs, fmt.Errorf("order=%d: %w", order, ErrInvalidOrder))
	}
	if threshold < 0 {
		errs = multierr.Append(errs, fmt.Errorf("precision_threshold=%g: %w", threshold, ErrNegativeThreshold))
	}
	return errs
}
