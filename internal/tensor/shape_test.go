package tensor

import (
	"errors"
	"testing"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1}, // scalar
		{Shape{6}, 6},
		{Shape{2, 3}, 6},
		{Shape{1, 2, 2, 1}, 4},
		{Shape{2, 0, 3}, 0}, // empty tensor
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("NumElements(%v) = %d; want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Validate({2,3}) = %v; want nil", err)
	}
	if err := (Shape{}).Validate(); err != nil {
		t.Errorf("Validate({}) = %v; want nil", err)
	}
	if err := (Shape{2, 0}).Validate(); err != nil {
		t.Errorf("Validate({2,0}) = %v; want nil (zero extents are legal)", err)
	}
	if err := (Shape{2, -1}).Validate(); err == nil {
		t.Error("Validate({2,-1}) = nil; want error")
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("Equal({2,3}, {2,3}) = false; want true")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("Equal({2,3}, {3,2}) = true; want false")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 1}) {
		t.Error("Equal({2,3}, {2,3,1}) = true; want false")
	}
	if !(Shape{}).Equal(Shape{}) {
		t.Error("Equal({}, {}) = false; want true")
	}
}

func TestShapeClone(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 9

	if s[0] != 2 {
		t.Errorf("Clone shares memory: original modified to %v", s)
	}
}

func TestComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{}, []int{}},
		{Shape{6}, []int{1}},
		{Shape{2, 3}, []int{3, 1}},
		{Shape{1, 2, 2, 1}, []int{4, 2, 1, 1}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides()
		if len(got) != len(tt.want) {
			t.Errorf("ComputeStrides(%v) = %v; want %v", tt.shape, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ComputeStrides(%v) = %v; want %v", tt.shape, got, tt.want)
				break
			}
		}
	}
}

func TestShapeString(t *testing.T) {
	if got := (Shape{}).String(); got != "()" {
		t.Errorf("String({}) = %q; want %q", got, "()")
	}
	if got := (Shape{2, 3}).String(); got != "(2, 3)" {
		t.Errorf("String({2,3}) = %q; want %q", got, "(2, 3)")
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name           string
		a, b           Shape
		want           Shape
		needsBroadcast bool
	}{
		{"SameShape", Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false},
		{"LeftOne", Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true},
		{"RightOne", Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, true},
		{"BothOnes", Shape{3, 1}, Shape{1, 5}, Shape{3, 5}, true},
		{"ScalarLeft", Shape{}, Shape{2, 3}, Shape{2, 3}, true},
		{"ScalarRight", Shape{6}, Shape{}, Shape{6}, true},
		{"ScalarScalar", Shape{}, Shape{}, Shape{}, false},
		{"RankPadding", Shape{2, 1, 3}, Shape{3}, Shape{2, 1, 3}, true},
		{"EqualOnes", Shape{1, 2, 2, 1}, Shape{1, 2, 2, 1}, Shape{1, 2, 2, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, needs, err := BroadcastShapes(tt.a, tt.b)
			if err != nil {
				t.Fatalf("BroadcastShapes(%v, %v) error: %v", tt.a, tt.b, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("BroadcastShapes(%v, %v) = %v; want %v", tt.a, tt.b, got, tt.want)
			}
			if needs != tt.needsBroadcast {
				t.Errorf("needsBroadcast = %v; want %v", needs, tt.needsBroadcast)
			}
		})
	}
}

func TestBroadcastShapesIncompatible(t *testing.T) {
	tests := []struct {
		a, b Shape
	}{
		{Shape{2, 3}, Shape{3, 2}}, // rank-equal, non-aligned
		{Shape{3, 4}, Shape{3, 5}},
		{Shape{2, 3}, Shape{4}}, // trailing extents differ
	}

	for _, tt := range tests {
		_, _, err := BroadcastShapes(tt.a, tt.b)
		if err == nil {
			t.Errorf("BroadcastShapes(%v, %v) = nil error; want ErrShapeMismatch", tt.a, tt.b)
			continue
		}
		if !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("BroadcastShapes(%v, %v) error %v; want errors.Is ErrShapeMismatch", tt.a, tt.b, err)
		}
	}
}

func TestBroadcastShapesOutputRank(t *testing.T) {
	// Output rank is max(rankA, rankB); each trailing-aligned dimension is
	// the max of the two aligned extents.
	pairs := []struct{ a, b Shape }{
		{Shape{6}, Shape{}},
		{Shape{2, 1, 3}, Shape{3}},
		{Shape{1, 3, 1, 2}, Shape{3, 1, 1}},
	}

	for _, p := range pairs {
		out, _, err := BroadcastShapes(p.a, p.b)
		if err != nil {
			t.Fatalf("BroadcastShapes(%v, %v) error: %v", p.a, p.b, err)
		}
		if len(out) != max(len(p.a), len(p.b)) {
			t.Errorf("rank(%v) = %d; want %d", out, len(out), max(len(p.a), len(p.b)))
		}
		for i := 0; i < len(out); i++ {
			aDim, bDim := 1, 1
			if idx := len(p.a) - len(out) + i; idx >= 0 {
				aDim = p.a[idx]
			}
			if idx := len(p.b) - len(out) + i; idx >= 0 {
				bDim = p.b[idx]
			}
			if out[i] != max(aDim, bDim) {
				t.Errorf("BroadcastShapes(%v, %v)[%d] = %d; want %d", p.a, p.b, i, out[i], max(aDim, bDim))
			}
		}
	}
}
