// Package broadcast resolves NumPy-style shape alignment for elementwise ops.
//
// Two shapes are aligned from the trailing (fastest-varying) dimension; a
// missing leading dimension counts as extent 1, and an extent-1 dimension
// maps every output index along that axis to source index 0. Resolution is a
// pure computation: the returned maps hold only stride tables derived from
// the shapes and never touch element data.
package broadcast

import (
	"github.com/mlkit-go/sqdiff/internal/tensor"
)

// SourceMap maps output coordinates to flat indices in one input buffer.
// Broadcast and rank-padded axes carry source stride 0, so every output index
// along such an axis resolves to source index 0.
type SourceMap struct {
	outStrides []int // Row-major strides of the output shape.
	srcStrides []int // Broadcast-adjusted strides of the input shape.
}

// Resolve computes the broadcast output shape for shapes a and b together
// with the coordinate map of each input. It returns an error wrapping
// tensor.ErrShapeMismatch when the shapes are incompatible; no maps are
// produced in that case.
func Resolve(a, b tensor.Shape) (tensor.Shape, SourceMap, SourceMap, error) {
	out, _, err := tensor.BroadcastShapes(a, b)
	if err != nil {
		return nil, SourceMap{}, SourceMap{}, err
	}

	outStrides := out.ComputeStrides()
	mapA := SourceMap{outStrides: outStrides, srcStrides: broadcastStrides(a, out)}
	mapB := SourceMap{outStrides: outStrides, srcStrides: broadcastStrides(b, out)}
	return out, mapA, mapB, nil
}

// broadcastStrides computes strides for broadcasting inShape to outShape.
// Dimensions of extent 1 and padded leading dimensions get stride 0.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	// Align inShape to the trailing end of outShape.
	inDim := len(inShape)
	offset := outDim - inDim

	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0:
			// Padded leading dimension.
			strides[i] = 0
		case inShape[inIdx] == 1:
			// Broadcast dimension.
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// FlatIndex maps a flat row-major index in the output space to the flat
// index of the broadcast-mapped element in the source buffer.
func (m SourceMap) FlatIndex(outIdx int) int {
	flatIdx := 0
	for i, stride := range m.outStrides {
		coord := outIdx / stride
		outIdx %= stride

		flatIdx += coord * m.srcStrides[i]
	}
	return flatIdx
}

// At maps an explicit output coordinate (one index per output axis) to the
// flat index of the mapped element in the source buffer.
func (m SourceMap) At(coord ...int) int {
	flatIdx := 0
	for i, c := range coord {
		flatIdx += c * m.srcStrides[i]
	}
	return flatIdx
}
