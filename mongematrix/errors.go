package mongematrix

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an element query used indices outside the
	// matrix's (R+1) x (C+1) domain.
	ErrOutOfRange = errors.New("mongematrix: index out of range")

	// ErrShapeMismatch indicates tropical multiplication received operands
	// with incompatible inner dimension.
	ErrShapeMismatch = errors.New("mongematrix: shape mismatch")

	// ErrIllFormedMonge indicates a cross-difference computation found a
	// non-0/1 value, or a duplicate row/column, meaning the input was not
	// a simple subunit-Monge matrix.
	ErrIllFormedMonge = errors.New("mongematrix: not a simple subunit-Monge matrix")
)

// mongeErrorf wraps a sentinel with the operation that produced it,
// a common convention for attributing a boundary error to its call site.
func mongeErrorf(op string, err error) error {
	return fmt.Errorf("mongematrix.%s: %w", op, err)
}
