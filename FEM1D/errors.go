package FEM1D

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDegree is returned for a negative polynomial degree.
	ErrInvalidDegree = errors.New("polynomial degree must be non-negative")
	// ErrUnsupportedRule is returned for an unrecognized quadrature kind.
	ErrUnsupportedRule = errors.New("unsupported quadrature rule")
	// ErrInvalidPointCount is returned for a quadrature point count < 1.
	ErrInvalidPointCount = errors.New("quadrature point count must be at least 1")
	// ErrSingularSystem is returned when the assembled system is numerically
	// singular, typically when the essential boundary conditions leave a
	// constant-mode null space (pure-Neumann problems). No regularization is
	// attempted.
	ErrSingularSystem = errors.New("singular linear system")
	// ErrUnsupportedStorage is returned for an unrecognized storage kind.
	ErrUnsupportedStorage = errors.New("unsupported storage kind")
)

// CallbackError wraps a failure raised by a user-supplied weak form callback
// while processing element Elem. The failure aborts the whole assembly run: a
// partially assembled global system is not meaningfully usable.
type CallbackError struct {
	Elem int
	Err  error
}

func (ce *CallbackError) Error() string {
	return fmt.Sprintf("weak form callback failed on element %d: %v", ce.Elem, ce.Err)
}

func (ce *CallbackError) Unwrap() error { return ce.Err }
