package reticle

import (
	"math"
	"testing"

	"github.com/strokelab/airsketch/parameter"
)

func TestCorrectedYawBelowBlendStart(t *testing.T) {
	cameraYaw := 0.3
	lookYaw := 1.8

	got := CorrectedYaw(0.1, cameraYaw, lookYaw)
	if got != cameraYaw {
		t.Errorf("low tilt yaw = %v, want camera yaw %v", got, cameraYaw)
	}
}

func TestCorrectedYawBlendBoundaries(t *testing.T) {
	// Values within 45 degrees of each other so minimal rotation is identity
	cameraYaw := 0.2
	lookYaw := 0.5

	// At the blend start the factor is 0: pure camera yaw
	got := CorrectedYaw(parameter.TiltBlendStart, cameraYaw, lookYaw)
	if math.Abs(got-cameraYaw) > 1e-9 {
		t.Errorf("yaw at blend start = %v, want %v", got, cameraYaw)
	}

	// At the blend end the factor is 1: pure raw look yaw
	got = CorrectedYaw(parameter.TiltBlendEnd, cameraYaw, lookYaw)
	if math.Abs(got-lookYaw) > 1e-9 {
		t.Errorf("yaw at blend end = %v, want %v", got, lookYaw)
	}

	// Midway: halfway between
	mid := (parameter.TiltBlendStart + parameter.TiltBlendEnd) / 2
	got = CorrectedYaw(mid, cameraYaw, lookYaw)
	want := (cameraYaw + lookYaw) / 2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("yaw at mid blend = %v, want %v", got, want)
	}
}

func TestCorrectedYawAboveBlendEnd(t *testing.T) {
	got := CorrectedYaw(math.Pi/2, 0.3, 1.8)
	if got != 1.8 {
		t.Errorf("steep tilt yaw = %v, want raw look yaw", got)
	}
}

func TestCorrectedYawNegativePitch(t *testing.T) {
	// Tilt uses the pitch magnitude: looking down behaves like looking up
	up := CorrectedYaw(parameter.TiltBlendEnd, 0.3, 1.8)
	down := CorrectedYaw(-parameter.TiltBlendEnd, 0.3, 1.8)
	if up != down {
		t.Errorf("tilt sign changed result: %v vs %v", up, down)
	}
}

func TestCorrectedYawMinimalRotationInBlend(t *testing.T) {
	// Camera yaw far from the look yaw gets normalized by quarter turns
	// before blending, so the blend start is at most 45 degrees away
	cameraYaw := 0.1 + math.Pi // two quarter turns off
	lookYaw := 0.2

	got := CorrectedYaw(parameter.TiltBlendStart, cameraYaw, lookYaw)
	if math.Abs(got-0.1) > 1e-9 {
		t.Errorf("blend start yaw = %v, want minimally rotated 0.1", got)
	}
}

func TestDistanceScale(t *testing.T) {
	tests := []struct {
		name string
		dist float64
		want float64
	}{
		{"At pivot", 0.7, 1.0},
		{"Half pivot", 0.35, 0.5},
		{"Far", 1.5, 0.25*1.5 + 0.825},
		{"Zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DistanceScale(tt.dist); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DistanceScale(%v) = %v, want %v", tt.dist, got, tt.want)
			}
		})
	}
}
