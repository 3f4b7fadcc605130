package tensor

import "errors"

// Sentinel errors reported during call-entry validation.
// Both are detected before any computation begins; a failed call never
// produces a partial result.
var (
	// ErrShapeMismatch indicates two shapes that are not broadcast-compatible.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrTypeMismatch indicates operands with different element types.
	ErrTypeMismatch = errors.New("type mismatch")
)
