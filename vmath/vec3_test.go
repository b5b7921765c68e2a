package vmath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func v3AlmostEqual(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestV3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	if got := V3Add(a, b); !v3AlmostEqual(got, Vec3{5, -3, 9}) {
		t.Errorf("V3Add = %v", got)
	}
	if got := V3Sub(a, b); !v3AlmostEqual(got, Vec3{-3, 7, -3}) {
		t.Errorf("V3Sub = %v", got)
	}
	if got := V3Scale(a, 2); !v3AlmostEqual(got, Vec3{2, 4, 6}) {
		t.Errorf("V3Scale = %v", got)
	}
	if got := V3Dot(a, b); !almostEqual(got, 4-10+18) {
		t.Errorf("V3Dot = %v", got)
	}
}

func TestV3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := Vec3{0, 0, 1}

	if got := V3Cross(x, y); !v3AlmostEqual(got, z) {
		t.Errorf("x cross y = %v, want z", got)
	}
	if got := V3Cross(y, x); !v3AlmostEqual(got, V3Scale(z, -1)) {
		t.Errorf("y cross x = %v, want -z", got)
	}
}

func TestV3Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"Unit X", Vec3{5, 0, 0}, Vec3{1, 0, 0}},
		{"Diagonal", Vec3{3, 0, 4}, Vec3{0.6, 0, 0.8}},
		{"Zero vector", Vec3{}, Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := V3Normalize(tt.in); !v3AlmostEqual(got, tt.want) {
				t.Errorf("V3Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestV3Dist(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{3, 4, 0}
	if got := V3Dist(a, b); !almostEqual(got, 5) {
		t.Errorf("V3Dist = %v, want 5", got)
	}
}

func TestV3Mean(t *testing.T) {
	tests := []struct {
		name   string
		points []Vec3
		want   Vec3
	}{
		{"Empty", nil, Vec3{}},
		{"Single", []Vec3{{1, 2, 3}}, Vec3{1, 2, 3}},
		{"Pair", []Vec3{{0, 0, 0}, {2, 4, 6}}, Vec3{1, 2, 3}},
		{"Identical", []Vec3{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, Vec3{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := V3Mean(tt.points); !v3AlmostEqual(got, tt.want) {
				t.Errorf("V3Mean = %v, want %v", got, tt.want)
			}
		})
	}
}
