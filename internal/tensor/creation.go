package tensor

import "fmt"

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}

	copy(DataOf[T](raw), data)
	return raw, nil
}

// Scalar creates a rank-0 tensor holding a single value.
func Scalar[T DType](v T) *RawTensor {
	raw, err := FromSlice([]T{v}, Shape{})
	if err != nil {
		panic(err) // Shape{} always holds exactly one element
	}
	return raw
}

// DataOf returns a typed slice view of the tensor's data.
// The slice directly accesses the underlying memory (zero-copy).
// Panics if T does not match the tensor's dtype.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func DataOf[T DType](r *RawTensor) []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(r.AsFloat32()).([]T)
	case float64:
		return any(r.AsFloat64()).([]T)
	case int32:
		return any(r.AsInt32()).([]T)
	case int64:
		return any(r.AsInt64()).([]T)
	default:
		panic("unsupported type")
	}
}
