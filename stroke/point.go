// Package stroke manages the ordered set of deposited stroke points and
// their shared marker height.
package stroke

import (
	"math"

	"github.com/strokelab/airsketch/vmath"
)

// WorldPoint is one deposited stroke marker.
// Position never changes after creation; only the store-wide height does
type WorldPoint struct {
	Seq        int
	Position   vmath.Vec3
	MarkerSize float64 // rendered footprint edge length, world units
}

// FootprintDiagonal returns the world-space diagonal of the marker's
// square footprint
func (p WorldPoint) FootprintDiagonal() float64 {
	return math.Sqrt2 * p.MarkerSize
}
