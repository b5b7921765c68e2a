package vmath

import (
	"math"
)

const quarterTurn = math.Pi / 2

// WrapPi normalizes an angle into (-π, π]
func WrapPi(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// MinimalRotation shifts angle by quarter-turn steps until it lies within
// 45° of ref. For shapes with 4-fold symmetry every quarter turn is
// visually identical, so the closest representative avoids snapping
func MinimalRotation(angle, ref float64) float64 {
	for angle-ref > quarterTurn/2 {
		angle -= quarterTurn
	}
	for ref-angle > quarterTurn/2 {
		angle += quarterTurn
	}
	return angle
}

// LerpAngle blends linearly from a to b by factor t in [0, 1]
func LerpAngle(a, b, t float64) float64 {
	return a + (b-a)*t
}
