package planar

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, checkable with errors.Is. See spec.md §7.
var (
	// ErrInvalidGeometry means an input segment had a non-finite coordinate.
	ErrInvalidGeometry = errors.New("planar: invalid geometry")

	// ErrNumericalFailure means an internal consistency assertion failed
	// (a face unreachable during winding propagation). This does not
	// happen for well-formed input; when it does, the pipeline aborts rather
	// than return a corrupt shape.
	ErrNumericalFailure = errors.New("planar: numerical failure")

	// ErrIndeterminateRay is the error kind for a fixed-angle extreme ray in
	// computeBoundaryGraph that produces a tangent or otherwise ambiguous
	// hit. No function in this package returns it: computeBoundaryGraph
	// does not detect such hits.
	ErrIndeterminateRay = errors.New("planar: indeterminate ray")
)

// wrapf builds an error that unwraps to kind via errors.Is, carrying a
// formatted detail message.
func wrapf(kind error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), kind)
}
