package reticle

import (
	"github.com/strokelab/airsketch/vmath"
)

// positionRing is a fixed-capacity FIFO of recent world positions.
// Oldest samples are evicted first once the ring fills
type positionRing struct {
	data []vmath.Vec3
	pos  int
	full bool
}

func newPositionRing(capacity int) *positionRing {
	return &positionRing{
		data: make([]vmath.Vec3, capacity),
	}
}

func (r *positionRing) Push(v vmath.Vec3) {
	r.data[r.pos] = v
	r.pos++
	if r.pos >= len(r.data) {
		r.pos = 0
		r.full = true
	}
}

func (r *positionRing) Len() int {
	if r.full {
		return len(r.data)
	}
	return r.pos
}

// Mean returns the arithmetic mean of the held samples (1 to capacity).
// Zero vector when empty
func (r *positionRing) Mean() vmath.Vec3 {
	n := r.Len()
	if n == 0 {
		return vmath.Vec3{}
	}
	var sum vmath.Vec3
	for i := 0; i < n; i++ {
		sum = vmath.V3Add(sum, r.data[i])
	}
	return vmath.V3Scale(sum, 1.0/float64(n))
}

func (r *positionRing) Clear() {
	r.pos = 0
	r.full = false
}
