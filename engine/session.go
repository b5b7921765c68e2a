// Package engine orchestrates one AR drawing session: it drives the
// projector, point store and reticle from the host's frame loop and owns
// all session state.
package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/strokelab/airsketch/event"
	"github.com/strokelab/airsketch/parameter"
	"github.com/strokelab/airsketch/projection"
	"github.com/strokelab/airsketch/reticle"
	"github.com/strokelab/airsketch/scene"
	"github.com/strokelab/airsketch/stroke"
	"github.com/strokelab/airsketch/vmath"
)

// Callbacks are optional observer slots invoked from the frame loop.
// Nil slots are skipped; there are no implicit defaults
type Callbacks struct {
	PointAdded          func(p stroke.WorldPoint)
	PointMovedToSurface func(pos vmath.Vec3, planeID string)
	CouldNotPlace       func()
}

// Stats is a point-in-time snapshot of session activity
type Stats struct {
	PointCount    int
	PlanesVisited int
	FramesTracked int64
	FramesLost    int64
}

// Session owns one AR drawing session. All state mutation happens on the
// frame loop; the only concurrent entry point is ObserveFingertip, which
// hands results over through the MPSC event queue
type Session struct {
	store     *stroke.Store
	reticle   *reticle.Reticle
	projector *projection.Projector
	pose      scene.PoseProvider

	inbox     *event.Queue // tracking results, crossing from the callback goroutine
	outbox    *event.Queue // notifications for the host, drained via Notifications
	callbacks Callbacks

	drawMode         bool
	heightAdjustMode bool

	// Height-adjust drag baseline, captured on the first tracked frame
	// after entering the mode
	heightBase    float64
	heightBaseY   float64
	heightBaseSet bool

	tracked    bool
	lastRegion scene.Region

	onSurface bool // last projection landed on a bounded plane

	frame atomic.Int64
	stats Stats

	log zerolog.Logger
}

// NewSession wires a session from its collaborators. store, ret and proj
// must be non-nil; pose may be nil when no camera snapshots are available
func NewSession(store *stroke.Store, ret *reticle.Reticle, proj *projection.Projector, pose scene.PoseProvider, log zerolog.Logger) *Session {
	return &Session{
		store:     store,
		reticle:   ret,
		projector: proj,
		pose:      pose,
		inbox:     event.NewQueue(),
		outbox:    event.NewQueue(),
		log:       log.With().Str("component", "session").Logger(),
	}
}

// SetCallbacks installs the observer slots. Frame-loop only
func (s *Session) SetCallbacks(cb Callbacks) {
	s.callbacks = cb
}

// SetDrawMode toggles point deposition on projected fingertip positions
func (s *Session) SetDrawMode(on bool) {
	s.drawMode = on
	s.log.Debug().Bool("on", on).Msg("draw mode")
}

// SetHeightAdjustMode toggles mapping of vertical fingertip movement onto
// the shared marker height
func (s *Session) SetHeightAdjustMode(on bool) {
	s.heightAdjustMode = on
	s.heightBaseSet = false
	s.log.Debug().Bool("on", on).Msg("height adjust mode")
}

// DrawMode reports whether points are being deposited
func (s *Session) DrawMode() bool {
	return s.drawMode
}

// SetHeight applies a marker height directly; non-positive values no-op
func (s *Session) SetHeight(h float64) {
	s.store.SetHeight(h)
}

// ResetHeight restores the flat default marker height
func (s *Session) ResetHeight() {
	s.store.ResetHeight()
}

// Store exposes the point store for rendering and export
func (s *Session) Store() *stroke.Store {
	return s.store
}

// Reticle exposes the focus indicator for rendering
func (s *Session) Reticle() *reticle.Reticle {
	return s.reticle
}

// Stats returns a snapshot of session activity
func (s *Session) Stats() Stats {
	st := s.stats
	st.PointCount = s.store.Len()
	st.PlanesVisited = s.reticle.VisitedCount()
	return st
}

// Frame returns the current frame number
func (s *Session) Frame() int64 {
	return s.frame.Load()
}

// Notifications drains the pending outbound events: point deposits, first
// plane contacts, placement failures, interruptions. Frame-loop only
func (s *Session) Notifications() []event.Event {
	return s.outbox.Consume()
}

// ObserveFingertip receives one asynchronous tracking result. Safe to call
// from the tracking callback goroutine; the result is applied on the next
// frame. Confidence below the threshold counts as tracking lost
func (s *Session) ObserveFingertip(region scene.Region, confidence float64) {
	if confidence < parameter.MinTrackingConfidence {
		s.inbox.Push(event.Event{
			Type:  event.EventTrackingLost,
			Frame: s.frame.Load(),
		})
		return
	}
	s.inbox.Push(event.Event{
		Type: event.EventTrackingUpdate,
		Payload: &event.TrackingPayload{
			X: region.X, Y: region.Y, W: region.W, H: region.H,
			Confidence: confidence,
		},
		Frame: s.frame.Load(),
	})
}

// PollTracker runs one synchronous tracking step and feeds the result into
// the session. Convenience for hosts with a pull-style tracker; frame-loop
// only, since it reads the last tracked region
func (s *Session) PollTracker(tr scene.FingertipTracker) {
	region, confidence := tr.Track(s.lastRegion)
	s.ObserveFingertip(region, confidence)
}

// HandleInterruption processes a failure reported by the host tracking
// service. Recoverable interruptions reset the session state; unrecoverable
// ones return ErrSessionFailed for the caller to terminate on
func (s *Session) HandleInterruption(reason string, recoverable bool) error {
	if !recoverable {
		s.outbox.Push(event.Event{
			Type:    event.EventSessionFailed,
			Payload: &event.FailurePayload{Reason: reason},
			Frame:   s.frame.Load(),
		})
		s.log.Error().Str("reason", reason).Msg("session failed")
		return fmt.Errorf("%w: %s", ErrSessionFailed, reason)
	}

	s.log.Warn().Str("reason", reason).Msg("session interrupted, resetting")
	s.outbox.Push(event.Event{
		Type:    event.EventSessionInterrupted,
		Payload: &event.FailurePayload{Reason: reason, Recoverable: true},
		Frame:   s.frame.Load(),
	})
	s.Reset()
	return nil
}

// Reset clears all session state: deposited points, reticle history and
// visited planes, tracking. Safe to call repeatedly
func (s *Session) Reset() {
	s.store.ClearAll()
	s.store.ResetHeight()
	s.reticle.Reset()
	s.tracked = false
	s.onSurface = false
	s.heightBaseSet = false
	s.stats = Stats{}
	s.outbox.Push(event.Event{Type: event.EventSessionReset, Frame: s.frame.Load()})
	s.log.Info().Msg("session reset")
}

// Update advances the session one frame: drains pending events, projects
// the tracked fingertip and applies the active mode. Synchronous and
// non-blocking; expected to finish well inside the frame budget
func (s *Session) Update(dt time.Duration) {
	s.frame.Add(1)

	for _, ev := range s.inbox.Consume() {
		s.handleEvent(ev)
	}

	if !s.tracked {
		s.reticle.Hide()
		return
	}
	s.stats.FramesTracked++

	pt := s.lastRegion.Center()
	pose, poseOK := scene.Pose{}, false
	if s.pose != nil {
		pose, poseOK = s.pose.CurrentPose()
	}

	res, ok := s.projector.Project(pt)
	if !ok {
		// No surface in view this frame: expected, not an error
		if s.onSurface {
			s.onSurface = false
			if s.callbacks.CouldNotPlace != nil {
				s.callbacks.CouldNotPlace()
			}
			s.outbox.Push(event.Event{Type: event.EventCouldNotPlace, Frame: s.frame.Load()})
		}
		s.reticle.Update(dt, s.reticle.Position(), "", pose, poseOK)
		return
	}

	s.reticle.Update(dt, res.Position, res.PlaneID, pose, poseOK)
	if plane := s.reticle.ConsumeFlash(); plane != "" {
		s.outbox.Push(event.Event{
			Type:    event.EventAnchorVisited,
			Payload: &event.AnchorPayload{PlaneID: plane},
			Frame:   s.frame.Load(),
		})
	}

	if res.HitPlane && !s.onSurface {
		s.onSurface = true
		if s.callbacks.PointMovedToSurface != nil {
			s.callbacks.PointMovedToSurface(res.Position, res.PlaneID)
		}
		s.outbox.Push(event.Event{
			Type:    event.EventPointMovedToSurface,
			Payload: &event.SurfacePayload{Position: res.Position, PlaneID: res.PlaneID},
			Frame:   s.frame.Load(),
		})
	} else if !res.HitPlane {
		s.onSurface = false
	}

	switch {
	case s.drawMode:
		if p, added := s.store.TryAdd(res.Position); added {
			if s.callbacks.PointAdded != nil {
				s.callbacks.PointAdded(p)
			}
			s.outbox.Push(event.Event{
				Type:    event.EventPointAdded,
				Payload: &event.PointPayload{Seq: p.Seq, Position: p.Position},
				Frame:   s.frame.Load(),
			})
		}
	case s.heightAdjustMode:
		s.adjustHeight(pt)
	}
}

// adjustHeight maps vertical fingertip movement since entering the mode
// onto the shared marker height. Screen Y grows downward, so dragging up
// raises the markers
func (s *Session) adjustHeight(pt scene.ScreenPoint) {
	if !s.heightBaseSet {
		s.heightBase = s.store.HeightScale()
		s.heightBaseY = pt.Y
		s.heightBaseSet = true
		return
	}

	h := s.heightBase + (s.heightBaseY-pt.Y)*parameter.HeightPerPixel
	if h > parameter.MaxHeightScale {
		h = parameter.MaxHeightScale
	}
	s.store.SetHeight(h) // non-positive drag results no-op by store law
}

func (s *Session) handleEvent(ev event.Event) {
	switch ev.Type {
	case event.EventTrackingUpdate:
		if p, ok := ev.Payload.(*event.TrackingPayload); ok {
			s.lastRegion = scene.Region{X: p.X, Y: p.Y, W: p.W, H: p.H}
			s.tracked = true
		}
	case event.EventTrackingLost:
		if s.tracked {
			s.log.Debug().Int64("frame", ev.Frame).Msg("tracking lost")
		}
		// Hide the reticle and discard the last-known position
		s.tracked = false
		s.stats.FramesLost++
		s.reticle.Hide()
	}
}
