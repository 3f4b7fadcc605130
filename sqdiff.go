package sqdiff

import (
	"github.com/mlkit-go/sqdiff/internal/broadcast"
	"github.com/mlkit-go/sqdiff/internal/elemwise"
	"github.com/mlkit-go/sqdiff/internal/parallel"
	"github.com/mlkit-go/sqdiff/internal/tensor"
)

// Type aliases for the public API.

// DType is a constraint for supported element types.
type DType = tensor.DType

// DataType represents the element type of a tensor.
type DataType = tensor.DataType

// Element type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
)

// Shape represents the dimensions of a tensor.
// An empty Shape describes a scalar.
type Shape = tensor.Shape

// RawTensor is a typed buffer paired with a Shape.
type RawTensor = tensor.RawTensor

// SourceMap maps output coordinates to flat indices in one input buffer.
type SourceMap = broadcast.SourceMap

// Config controls how the evaluator splits the output index space across
// goroutines. The zero value and Sequential() both force a sequential walk.
type Config = parallel.Config

// Validation errors returned by Apply before any computation begins.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrTypeMismatch  = tensor.ErrTypeMismatch
)

// NewRaw creates a zero-initialized tensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromSlice creates a tensor by copying data into a buffer of the given
// shape. len(data) must equal shape.NumElements().
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// Scalar creates a rank-0 tensor holding a single value.
func Scalar[T DType](v T) *RawTensor {
	return tensor.Scalar(v)
}

// Data returns a zero-copy typed view of the tensor's elements.
// Panics if T does not match the tensor's dtype.
func Data[T DType](r *RawTensor) []T {
	return tensor.DataOf[T](r)
}

// Apply computes the broadcast squared difference of a and b.
//
// It fails with ErrTypeMismatch when the operands declare different element
// types and with ErrShapeMismatch when their shapes are not
// broadcast-compatible. On success the output has the broadcast shape and
// the operands' element type; the inputs are never mutated.
func Apply(a, b *RawTensor) (*RawTensor, error) {
	return elemwise.Compute(a, b)
}

// ApplyWith is Apply with an explicit parallelism config.
func ApplyWith(a, b *RawTensor, cfg Config) (*RawTensor, error) {
	return elemwise.ComputeWith(a, b, cfg)
}

// Resolve computes the broadcast output shape for shapes a and b together
// with the coordinate map of each input. It is a pure computation, usable
// without the evaluator.
func Resolve(a, b Shape) (Shape, SourceMap, SourceMap, error) {
	return broadcast.Resolve(a, b)
}

// Evaluate computes (a-b)^2 at every position of the output index space in
// row-major order, reading each operand through its broadcast map. dst must
// hold the output shape's number of elements.
func Evaluate[T DType](dst, a, b []T, mapA, mapB SourceMap) {
	elemwise.Evaluate(dst, a, b, mapA, mapB, parallel.DefaultConfig())
}

// DefaultConfig sizes the evaluator's fan-out to the machine.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Sequential returns a config that forces a sequential walk.
func Sequential() Config {
	return parallel.Sequential()
}
