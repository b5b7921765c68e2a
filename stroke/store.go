package stroke

import (
	"github.com/rs/zerolog"

	"github.com/strokelab/airsketch/parameter"
	"github.com/strokelab/airsketch/scene"
	"github.com/strokelab/airsketch/vmath"
)

// Store holds the ordered points of one stroke session.
// Insertion order is stroke order and is preserved for replay/export.
// The marker height is a single store-owned scalar applied to every point,
// never hidden process-global state, so sessions stay isolated.
//
// The store is owned by the frame loop and holds no locks; only marker
// visual attach/detach leaves the frame loop, via the serialized Mutator
type Store struct {
	points      []WorldPoint
	heightScale float64
	markerSize  float64
	nextSeq     int

	backend scene.VisualBackend // may be nil (headless)
	mutator *scene.Mutator      // required when backend is set

	log zerolog.Logger
}

func NewStore(markerSize float64, backend scene.VisualBackend, mutator *scene.Mutator, log zerolog.Logger) *Store {
	if markerSize <= 0 {
		markerSize = parameter.MarkerSize
	}
	return &Store{
		heightScale: parameter.DefaultHeightScale,
		markerSize:  markerSize,
		backend:     backend,
		mutator:     mutator,
		log:         log.With().Str("component", "stroke").Logger(),
	}
}

// MinSeparation is the deduplication radius: half the bounding-box diagonal
// of the first stored point's rendered footprint. Zero for an empty store
func (s *Store) MinSeparation() float64 {
	if len(s.points) == 0 {
		return 0
	}
	return s.points[0].FootprintDiagonal() / 2
}

// ExistsNear reports whether any stored point lies strictly closer to pos
// than MinSeparation. Always false for an empty store
func (s *Store) ExistsNear(pos vmath.Vec3) bool {
	minSep := s.MinSeparation()
	for _, p := range s.points {
		if vmath.V3Dist(p.Position, pos) < minSep {
			return true
		}
	}
	return false
}

// Add appends a point at pos without any separation check.
// Callers that want deduplication use TryAdd instead
func (s *Store) Add(pos vmath.Vec3) WorldPoint {
	p := WorldPoint{
		Seq:        s.nextSeq,
		Position:   pos,
		MarkerSize: s.markerSize,
	}
	s.nextSeq++
	s.points = append(s.points, p)

	if s.backend != nil {
		h := s.heightScale
		s.mutator.Submit(func() {
			s.backend.AttachMarker(p.Seq, p.Position, h)
		})
	}

	s.log.Debug().Int("seq", p.Seq).
		Float64("x", pos.X).Float64("y", pos.Y).Float64("z", pos.Z).
		Msg("point deposited")
	return p
}

// TryAdd deposits a point only when no stored point is within
// MinSeparation. Check and insert happen in one operation so there is no
// window between them
func (s *Store) TryAdd(pos vmath.Vec3) (WorldPoint, bool) {
	if s.ExistsNear(pos) {
		return WorldPoint{}, false
	}
	return s.Add(pos), true
}

// SetHeight applies h to every stored marker. Non-positive heights are
// ignored; that is a silent no-op, not an error
func (s *Store) SetHeight(h float64) {
	if h <= 0 {
		return
	}
	s.heightScale = h
	s.pushHeight()
}

// ResetHeight restores the flat default marker height unconditionally
func (s *Store) ResetHeight() {
	s.heightScale = parameter.DefaultHeightScale
	s.pushHeight()
}

func (s *Store) pushHeight() {
	if s.backend == nil {
		return
	}
	h := s.heightScale
	seqs := make([]int, len(s.points))
	for i, p := range s.points {
		seqs[i] = p.Seq
	}
	s.mutator.Submit(func() {
		for _, seq := range seqs {
			s.backend.SetMarkerHeight(seq, h)
		}
	})
}

// HeightScale returns the current shared marker height
func (s *Store) HeightScale() float64 {
	return s.heightScale
}

// Len returns the number of stored points
func (s *Store) Len() int {
	return len(s.points)
}

// Points returns a copy of the stored points in stroke order
func (s *Store) Points() []WorldPoint {
	out := make([]WorldPoint, len(s.points))
	copy(out, s.points)
	return out
}

// ClearAll empties the store. Marker visuals are released on the serialized
// mutation context; release order relative to caller continuation is not
// guaranteed
func (s *Store) ClearAll() {
	if s.backend != nil {
		seqs := make([]int, len(s.points))
		for i, p := range s.points {
			seqs[i] = p.Seq
		}
		s.mutator.Submit(func() {
			for _, seq := range seqs {
				s.backend.DetachMarker(seq)
			}
		})
	}

	n := len(s.points)
	s.points = s.points[:0]
	s.log.Debug().Int("count", n).Msg("stroke cleared")
}
