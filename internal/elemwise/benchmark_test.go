package elemwise

import (
	"testing"

	"github.com/mlkit-go/sqdiff/internal/parallel"
	"github.com/mlkit-go/sqdiff/internal/tensor"
)

func benchTensors(b *testing.B, shape tensor.Shape) (*tensor.RawTensor, *tensor.RawTensor) {
	b.Helper()
	a, err := tensor.NewRaw(shape, tensor.Float32)
	if err != nil {
		b.Fatal(err)
	}
	c, err := tensor.NewRaw(shape, tensor.Float32)
	if err != nil {
		b.Fatal(err)
	}

	aData, cData := a.AsFloat32(), c.AsFloat32()
	for i := range aData {
		aData[i] = float32(i)
		cData[i] = float32(i % 7)
	}
	return a, c
}

func BenchmarkComputeSameShape(b *testing.B) {
	x, y := benchTensors(b, tensor.Shape{256, 256})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ComputeWith(x, y, parallel.Sequential()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComputeScalarBroadcast(b *testing.B) {
	x, _ := benchTensors(b, tensor.Shape{256, 256})
	y := tensor.Scalar[float32](0.5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ComputeWith(x, y, parallel.Sequential()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkComputeParallel(b *testing.B) {
	x, y := benchTensors(b, tensor.Shape{1024, 1024})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ComputeWith(x, y, parallel.DefaultConfig()); err != nil {
			b.Fatal(err)
		}
	}
}
