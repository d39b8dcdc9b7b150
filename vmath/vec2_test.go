package vmath

import (
	"math"
	"testing"
)

// TestNormalizeZeroSafe verifies zero vectors normalize to zero without NaN
func TestNormalizeZeroSafe(t *testing.T) {
	n := Vec2{}.Normalize()
	if n.X != 0 || n.Y != 0 {
		t.Errorf("Expected zero vector, got %+v", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) {
		t.Error("Normalize produced NaN")
	}
}

// TestWithLenPreservesDirection verifies rescaling keeps the direction
func TestWithLenPreservesDirection(t *testing.T) {
	v := V(3, 4).WithLen(10)
	if math.Abs(v.Len()-10) > 1e-9 {
		t.Errorf("Expected length 10, got %f", v.Len())
	}
	if math.Abs(v.X-6) > 1e-9 || math.Abs(v.Y-8) > 1e-9 {
		t.Errorf("Expected (6,8), got %+v", v)
	}
}

// TestClampLen verifies clamping only shortens long vectors
func TestClampLen(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		max  float64
		want float64
	}{
		{"short untouched", V(1, 0), 5, 1},
		{"long clamped", V(0, 10), 5, 5},
		{"zero untouched", Vec2{}, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ClampLen(tt.max).Len()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected length %f, got %f", tt.want, got)
			}
		})
	}
}

// TestFastRandDeterministic verifies equal seeds produce equal sequences
func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Sequences diverged at %d", i)
		}
	}
}

// TestFastRandFloatRange verifies Float64 stays in [0,1) and UnitVector has unit length
func TestFastRandFloatRange(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
		u := r.UnitVector()
		if math.Abs(u.Len()-1) > 1e-9 {
			t.Fatalf("UnitVector length %f", u.Len())
		}
	}
}
