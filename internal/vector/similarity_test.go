package vector

import (
	"math"
	"testing"
)

func TestInnerProduct(t *testing.T) {
	a := []float32{1, 0, 0}
	b := []float32{0.5, 0.5, 0}
	if got := InnerProduct(a, b); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("got %f", got)
	}
	if got := InnerProduct(a, []float32{1, 2}); got != 0 {
		t.Errorf("mismatched lengths should return 0, got %f", got)
	}
}

func TestCosine(t *testing.T) {
	a := []float32{1, 0}
	if got := Cosine(a, a); math.Abs(got-1.0) > 1e-6 {
		t.Errorf("self similarity = %f, want 1", got)
	}
	if got := Cosine(a, []float32{-1, 0}); math.Abs(got+1.0) > 1e-6 {
		t.Errorf("opposite similarity = %f, want -1", got)
	}
	if got := Cosine(a, []float32{0, 1}); math.Abs(got) > 1e-6 {
		t.Errorf("orthogonal similarity = %f, want 0", got)
	}
	if got := Cosine(a, []float32{0, 0}); got != 0 {
		t.Errorf("zero vector similarity = %f, want 0", got)
	}
}

func TestL2Norm(t *testing.T) {
	if got := L2Norm([]float32{3, 4}); math.Abs(got-5) > 1e-9 {
		t.Errorf("got %f", got)
	}
}
