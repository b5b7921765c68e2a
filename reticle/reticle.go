// Package reticle drives the focus indicator: the in-scene widget showing
// the current candidate placement location before a point is committed.
package reticle

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/strokelab/airsketch/parameter"
	"github.com/strokelab/airsketch/scene"
	"github.com/strokelab/airsketch/vmath"
)

// State is the reticle display mode
type State uint8

const (
	// StateOpen: not snapped to a surface, rim segments spread outward
	StateOpen State = iota
	// StateAnimating: an open/close transition is playing; updates that
	// would change state are ignored until it finishes
	StateAnimating
	// StateClosed: snapped to a detected plane
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateAnimating:
		return "animating"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// Segment is one of the reticle's eight rim sub-parts. The reticle owns its
// segments structurally as a fixed array; nothing is looked up by name
type Segment struct {
	Angle     float64 // fixed placement around the rim
	Extension float64 // 1 = fully spread (open), 0 = retracted (closed)
}

// Reticle is the focus indicator. One instance per session; all access from
// the frame loop
type Reticle struct {
	state State
	next  State // state to settle into when the animation ends

	animRemaining time.Duration
	animDuration  time.Duration

	flashRemaining time.Duration
	flashPlane     string

	ring    *positionRing
	visited map[string]struct{}

	segments  [parameter.SegmentCount]Segment
	fillAlpha float64 // fill plane opacity, driven by the flash

	displayPos   vmath.Vec3
	displayYaw   float64
	displayScale float64
	visible      bool

	log zerolog.Logger
}

func New(log zerolog.Logger) *Reticle {
	r := &Reticle{
		animDuration: parameter.ReticleAnimationDuration,
		ring:         newPositionRing(parameter.SmoothingWindow),
		visited:      make(map[string]struct{}),
		displayScale: 1,
		log:          log.With().Str("component", "reticle").Logger(),
	}
	for i := range r.segments {
		r.segments[i] = Segment{
			Angle:     float64(i) * 2 * math.Pi / parameter.SegmentCount,
			Extension: 1,
		}
	}
	return r
}

// Update advances the reticle one frame. planeID is empty when the
// candidate position is not on a detected plane. Re-entrant state changes
// while a transition is animating are ignored; the last applicable state
// wins on the next non-animating update
func (r *Reticle) Update(dt time.Duration, pos vmath.Vec3, planeID string, pose scene.Pose, poseValid bool) {
	r.visible = true

	r.ring.Push(pos)
	r.displayPos = r.ring.Mean()

	if poseValid {
		r.displayYaw = CorrectedYaw(pose.Pitch, pose.Yaw, pose.LookYaw())
		r.displayScale = DistanceScale(vmath.V3Dist(pose.Position, r.displayPos))
	}

	if r.flashRemaining > 0 {
		r.flashRemaining -= dt
		if r.flashRemaining < 0 {
			r.flashRemaining = 0
		}
	}
	r.fillAlpha = 0
	if parameter.FlashDuration > 0 {
		r.fillAlpha = float64(r.flashRemaining) / float64(parameter.FlashDuration)
	}

	if r.state == StateAnimating {
		r.animRemaining -= dt
		r.advanceSegments()
		if r.animRemaining <= 0 {
			r.state = r.next
			r.settleSegments()
		}
		return
	}

	switch {
	case planeID != "" && r.state == StateOpen:
		r.beginClose(planeID)
	case planeID == "" && r.state == StateClosed:
		r.beginOpen()
	}
}

func (r *Reticle) beginClose(planeID string) {
	r.state = StateAnimating
	r.next = StateClosed
	r.animRemaining = r.animDuration

	if _, seen := r.visited[planeID]; !seen {
		// One-time flash on first contact with this plane
		r.visited[planeID] = struct{}{}
		r.flashRemaining = parameter.FlashDuration
		r.flashPlane = planeID
		r.log.Debug().Str("plane", planeID).Msg("first contact with plane")
	}
}

func (r *Reticle) beginOpen() {
	r.state = StateAnimating
	r.next = StateOpen
	r.animRemaining = r.animDuration
}

// advanceSegments lerps segment extension toward the pending state
func (r *Reticle) advanceSegments() {
	progress := 1 - float64(r.animRemaining)/float64(r.animDuration)
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	target := 0.0
	if r.next == StateOpen {
		target = 1.0
	}
	from := 1.0 - target
	for i := range r.segments {
		r.segments[i].Extension = from + (target-from)*progress
	}
}

func (r *Reticle) settleSegments() {
	ext := 0.0
	if r.state == StateOpen {
		ext = 1.0
	}
	for i := range r.segments {
		r.segments[i].Extension = ext
	}
}

// ConsumeFlash returns the plane that triggered a pending flash effect, once.
// Empty when no flash fired since the last call
func (r *Reticle) ConsumeFlash() string {
	p := r.flashPlane
	r.flashPlane = ""
	return p
}

// Hide makes the reticle invisible and discards the smoothed position
// history. Used when fingertip tracking is lost
func (r *Reticle) Hide() {
	r.visible = false
	r.ring.Clear()
}

// Reset returns the reticle to its initial open state and clears the
// smoothing ring and the visited-plane set. Applied on every session reset
func (r *Reticle) Reset() {
	r.state = StateOpen
	r.next = StateOpen
	r.animRemaining = 0
	r.flashRemaining = 0
	r.flashPlane = ""
	r.fillAlpha = 0
	r.visible = false
	r.ring.Clear()
	r.visited = make(map[string]struct{})
	r.settleSegments()
}

// State returns the current display mode
func (r *Reticle) State() State {
	return r.state
}

// Position returns the jitter-smoothed display position
func (r *Reticle) Position() vmath.Vec3 {
	return r.displayPos
}

// Yaw returns the corrected display yaw
func (r *Reticle) Yaw() float64 {
	return r.displayYaw
}

// Scale returns the distance-dampened display scale
func (r *Reticle) Scale() float64 {
	return r.displayScale
}

// Visible reports whether the reticle should be rendered
func (r *Reticle) Visible() bool {
	return r.visible
}

// FillAlpha returns the fill plane opacity driven by the flash effect
func (r *Reticle) FillAlpha() float64 {
	return r.fillAlpha
}

// Segments returns the rim sub-parts for rendering
func (r *Reticle) Segments() [parameter.SegmentCount]Segment {
	return r.segments
}

// Visited reports whether the plane has already triggered its first-contact
// flash
func (r *Reticle) Visited(planeID string) bool {
	_, ok := r.visited[planeID]
	return ok
}

// VisitedCount returns the number of distinct planes contacted this session
func (r *Reticle) VisitedCount() int {
	return len(r.visited)
}
