package vmath

import (
	"testing"
)

func TestIntersectHorizontalPlane(t *testing.T) {
	tests := []struct {
		name    string
		ray     Ray
		planeY  float64
		want    Vec3
		wantHit bool
	}{
		{
			name:    "Straight down onto ground",
			ray:     Ray{Origin: Vec3{0, 1, 0}, Direction: Vec3{0, -1, 0}},
			planeY:  0,
			want:    Vec3{0, 0, 0},
			wantHit: true,
		},
		{
			name:    "Angled descent",
			ray:     Ray{Origin: Vec3{0, 2, 0}, Direction: V3Normalize(Vec3{1, -1, 0})},
			planeY:  0,
			want:    Vec3{2, 0, 0},
			wantHit: true,
		},
		{
			name:    "Parallel off plane",
			ray:     Ray{Origin: Vec3{0, 1, 0}, Direction: Vec3{1, 0, 0}},
			planeY:  0,
			wantHit: false,
		},
		{
			name:    "Parallel lying on plane returns origin",
			ray:     Ray{Origin: Vec3{3, 0, -2}, Direction: Vec3{1, 0, 0}},
			planeY:  0,
			want:    Vec3{3, 0, -2},
			wantHit: true,
		},
		{
			name:    "Plane behind origin",
			ray:     Ray{Origin: Vec3{0, 1, 0}, Direction: Vec3{0, 1, 0}},
			planeY:  0,
			wantHit: false,
		},
		{
			name:    "Origin on plane looking up",
			ray:     Ray{Origin: Vec3{0, 0, 0}, Direction: Vec3{0, 1, 0}},
			planeY:  0,
			want:    Vec3{0, 0, 0},
			wantHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectHorizontalPlane(tt.planeY)
			if hit != tt.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tt.wantHit)
			}
			if hit && !v3AlmostEqual(got, tt.want) {
				t.Errorf("intersection = %v, want %v", got, tt.want)
			}
		})
	}
}
