// Package sqdiff computes the broadcast squared difference of two tensors.
//
// For every output position the engine evaluates (a-b)^2, where a and b are
// the broadcast-aligned elements of the two inputs. Shapes follow NumPy-style
// broadcasting: trailing-aligned, missing leading dimensions count as 1, and
// an extent-1 dimension is replicated across the other operand's extent.
//
// # Basic Usage
//
//	a, _ := sqdiff.FromSlice([]float32{-0.2, 0.2, -1.2, 0.8}, sqdiff.Shape{2, 2})
//	b := sqdiff.Scalar[float32](0.1)
//
//	out, err := sqdiff.Apply(a, b) // Shape: (2, 2)
//	if err != nil {
//	    // sqdiff.ErrShapeMismatch or sqdiff.ErrTypeMismatch
//	}
//	values := sqdiff.Data[float32](out)
//
// # Supported Element Types
//
// Both operands and the output share one element type per call:
//   - float32, float64 (IEEE arithmetic; NaN and Inf propagate)
//   - int32, int64 (fixed-width wraparound on overflow)
//
// # Independent Contracts
//
// Resolve exposes the shape/coordinate resolution on its own and Evaluate
// walks the output index space over pre-resolved maps; both are pure and
// deterministic, and Apply is exactly their composition plus call-entry
// validation.
package sqdiff
