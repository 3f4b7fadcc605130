// Package elemwise implements the broadcast squared-difference kernel.
//
// One generic kernel covers both element families: IEEE semantics for
// float32/float64 (NaN and Inf propagate through subtraction and squaring),
// native fixed-width wraparound for int32/int64 (overflow is defined
// behavior, never checked or saturated).
package elemwise

import (
	"fmt"

	"github.com/mlkit-go/sqdiff/internal/broadcast"
	"github.com/mlkit-go/sqdiff/internal/parallel"
	"github.com/mlkit-go/sqdiff/internal/tensor"
)

// Evaluate computes (a-b)^2 at every position of the output index space in
// row-major order, reading each operand through its broadcast map.
// dst must have the output shape's number of elements; a and b are never
// mutated. Every coordinate has a well-defined mapped source, so evaluation
// itself cannot fail.
func Evaluate[T tensor.DType](dst, a, b []T, mapA, mapB broadcast.SourceMap, cfg parallel.Config) {
	parallel.For(len(dst), func(i int) {
		diff := a[mapA.FlatIndex(i)] - b[mapB.FlatIndex(i)]
		dst[i] = diff * diff
	}, cfg)
}

// evaluateSame is the vectorized fast path for operands of equal shape,
// where both maps are the identity.
func evaluateSame[T tensor.DType](dst, a, b []T, cfg parallel.Config) {
	parallel.For(len(dst), func(i int) {
		diff := a[i] - b[i]
		dst[i] = diff * diff
	}, cfg)
}

// Compute applies the squared-difference op with the default parallel config.
// See ComputeWith.
func Compute(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return ComputeWith(a, b, parallel.DefaultConfig())
}

// ComputeWith validates the operands, resolves broadcasting, and evaluates
// (a-b)^2 into a freshly allocated output tensor.
//
// It fails with tensor.ErrTypeMismatch when the operands declare different
// element types and with tensor.ErrShapeMismatch when their shapes are not
// broadcast-compatible. Both checks happen before any computation; a failed
// call produces no output.
func ComputeWith(a, b *tensor.RawTensor, cfg parallel.Config) (*tensor.RawTensor, error) {
	if a.DType() != b.DType() {
		return nil, fmt.Errorf("squared difference: %s vs %s: %w", a.DType(), b.DType(), tensor.ErrTypeMismatch)
	}

	outShape, mapA, mapB, err := broadcast.Resolve(a.Shape(), b.Shape())
	if err != nil {
		return nil, fmt.Errorf("squared difference: %w", err)
	}

	out, err := tensor.NewRaw(outShape, a.DType())
	if err != nil {
		return nil, fmt.Errorf("squared difference: %w", err)
	}

	// Equal shapes need no index mapping at all; both maps are the identity.
	sameShape := a.Shape().Equal(b.Shape())

	switch a.DType() {
	case tensor.Float32:
		dispatch(out.AsFloat32(), a.AsFloat32(), b.AsFloat32(), sameShape, mapA, mapB, cfg)
	case tensor.Float64:
		dispatch(out.AsFloat64(), a.AsFloat64(), b.AsFloat64(), sameShape, mapA, mapB, cfg)
	case tensor.Int32:
		dispatch(out.AsInt32(), a.AsInt32(), b.AsInt32(), sameShape, mapA, mapB, cfg)
	case tensor.Int64:
		dispatch(out.AsInt64(), a.AsInt64(), b.AsInt64(), sameShape, mapA, mapB, cfg)
	default:
		panic("squared difference: unsupported dtype")
	}

	return out, nil
}

// dispatch picks the vectorized path when no broadcasting is involved.
func dispatch[T tensor.DType](dst, a, b []T, sameShape bool, mapA, mapB broadcast.SourceMap, cfg parallel.Config) {
	if sameShape {
		evaluateSame(dst, a, b, cfg)
		return
	}
	Evaluate(dst, a, b, mapA, mapB, cfg)
}
