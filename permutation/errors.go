package permutation

import (
	"errors"
	"fmt"
)

// Sentinel errors for the permutation package. Every failure mode is a
// deterministic function of its inputs; none of these are ever retried
// internally, and none of them are panics — see ErrShapeMismatch and
// friends below for the mapping onto the error kinds of the design.
var (
	// ErrShapeMismatch is returned when Multiply receives operands whose
	// inner dimension (P.ColDim vs Q.RowDim) does not match.
	ErrShapeMismatch = errors.New("permutation: shape mismatch")

	// ErrOutOfRange is returned by Expand when a stored pair falls outside
	// the requested dense dimensions.
	ErrOutOfRange = errors.New("permutation: index out of range")

	// ErrGrowInvalid is returned by GrowFront/GrowBack when the requested
	// dimension does not strictly exceed the current one.
	ErrGrowInvalid = errors.New("permutation: grow target not larger than current dimension")

	// ErrDuplicateIndex is returned by New when two pairs share a row or a
	// column value, violating the permutation invariant.
	ErrDuplicateIndex = errors.New("permutation: duplicate row or column index")
)

// permutationErrorf wraps a sentinel with the operation that produced it,
// a common convention for attributing a boundary error to its call site.
func permutationErrorf(op string, err error) error {
	return fmt.Errorf("permutation.%s: %w", op, err)
}
