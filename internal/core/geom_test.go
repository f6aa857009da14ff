package core

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        BoxAround(V(10, 10), 10, 10),
			b:        BoxAround(V(15, 15), 10, 10),
			expected: true,
		},
		{
			name:     "disjoint horizontally",
			a:        BoxAround(V(10, 10), 10, 10),
			b:        BoxAround(V(30, 10), 10, 10),
			expected: false,
		},
		{
			name:     "disjoint vertically",
			a:        BoxAround(V(10, 10), 10, 10),
			b:        BoxAround(V(10, 30), 10, 10),
			expected: false,
		},
		{
			name:     "touching edges",
			a:        BoxAround(V(10, 10), 10, 10),
			b:        BoxAround(V(20, 10), 10, 10),
			expected: false,
		},
		{
			name:     "contained",
			a:        BoxAround(V(50, 50), 100, 100),
			b:        BoxAround(V(50, 50), 4, 8),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxIntersectsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		coord := rapid.Float64Range(-2000, 2000)
		extent := rapid.Float64Range(0, 300)
		a := BoxAround(V(coord.Draw(t, "ax"), coord.Draw(t, "ay")), extent.Draw(t, "aw"), extent.Draw(t, "ah"))
		b := BoxAround(V(coord.Draw(t, "bx"), coord.Draw(t, "by")), extent.Draw(t, "bw"), extent.Draw(t, "bh"))
		if a.Intersects(b) != b.Intersects(a) {
			t.Fatalf("asymmetric result for %+v and %+v", a, b)
		}
	})
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(V(100, 500), 64, 32)
	want := Box{Left: 68, Top: 484, Right: 132, Bottom: 516}
	if b != want {
		t.Errorf("BoxAround() = %+v, expected %+v", b, want)
	}
}

func TestVec2Ops(t *testing.T) {
	v := V(3, 4)
	if v.Magnitude() != 5 {
		t.Errorf("Magnitude() = %f, expected 5", v.Magnitude())
	}
	if got := v.Add(V(1, -1)); got != V(4, 3) {
		t.Errorf("Add() = %+v", got)
	}
	if got := v.Scale(0.5); got != V(1.5, 2) {
		t.Errorf("Scale() = %+v", got)
	}
	if got := v.Offset(-3, 1); got != V(0, 5) {
		t.Errorf("Offset() = %+v", got)
	}
	if math.Abs(V(0, 0).Magnitude()) != 0 {
		t.Error("zero vector should have zero magnitude")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.5, 0, 1, 0.5}, // within range
		{-0.5, 0, 1, 0},  // below min
		{1.5, 0, 1, 1},   // above max
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
