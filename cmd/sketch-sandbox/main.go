// Sandbox for the drawing core: a terminal stand-in for the AR platform.
// A synthetic room supplies detected planes, the keyboard drives the
// fingertip, and markers plus the reticle are rendered top-down through a
// virtual camera.
package main

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/strokelab/airsketch/audio"
	"github.com/strokelab/airsketch/config"
	"github.com/strokelab/airsketch/engine"
	"github.com/strokelab/airsketch/event"
	"github.com/strokelab/airsketch/projection"
	"github.com/strokelab/airsketch/record"
	"github.com/strokelab/airsketch/reticle"
	"github.com/strokelab/airsketch/scene"
	"github.com/strokelab/airsketch/stroke"
	"github.com/strokelab/airsketch/vmath"
)

const frameInterval = 16 * time.Millisecond

// fixedPose is the sandbox camera: a head-height view looking down into
// the room
type fixedPose struct {
	pose scene.Pose
}

func (f *fixedPose) CurrentPose() (scene.Pose, bool) {
	return f.pose, true
}

// marker is one rendered point visual
type marker struct {
	pos    vmath.Vec3
	height float64
}

// termBackend renders markers in the terminal. Attach/detach/height calls
// arrive on the mutator goroutine, rendering reads on the frame loop
type termBackend struct {
	mu      sync.Mutex
	markers map[int]marker
}

func newTermBackend() *termBackend {
	return &termBackend{markers: make(map[int]marker)}
}

func (b *termBackend) AttachMarker(seq int, pos vmath.Vec3, heightScale float64) {
	b.mu.Lock()
	b.markers[seq] = marker{pos: pos, height: heightScale}
	b.mu.Unlock()
}

func (b *termBackend) DetachMarker(seq int) {
	b.mu.Lock()
	delete(b.markers, seq)
	b.mu.Unlock()
}

func (b *termBackend) SetMarkerHeight(seq int, heightScale float64) {
	b.mu.Lock()
	if m, ok := b.markers[seq]; ok {
		m.height = heightScale
		b.markers[seq] = m
	}
	b.mu.Unlock()
}

func (b *termBackend) snapshot() []marker {
	b.mu.Lock()
	out := make([]marker, 0, len(b.markers))
	for _, m := range b.markers {
		out = append(out, m)
	}
	b.mu.Unlock()
	return out
}

type sandbox struct {
	screen        tcell.Screen
	width, height int

	pose      *fixedPose
	view      scene.Viewport
	planes    *scene.PlaneField
	projector *projection.Projector
	backend   *termBackend
	mutator   *scene.Mutator
	session   *engine.Session

	// plane rectangles for rendering corner ticks, {y, cx, cz, halfW, halfD}
	planeRects [][5]float64

	cues     *audio.Manager
	recorder *record.Recorder

	cursorX, cursorY float64
	trackingOn       bool
	fallbackOn       bool

	log zerolog.Logger
}

func newSandbox(log zerolog.Logger) (*sandbox, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	w, h := screen.Size()
	s := &sandbox{
		screen: screen,
		width:  w,
		height: h,
		pose: &fixedPose{pose: scene.Pose{
			Pitch:    -0.9,
			Yaw:      0,
			Position: vmath.Vec3{Y: 1.6, Z: 1.8},
		}},
		view:       scene.Viewport{Width: float64(w), Height: float64(h), FOV: math.Pi / 3},
		cursorX:    float64(w) / 2,
		cursorY:    float64(h) / 2,
		trackingOn: true,
		log:        log,
	}

	s.planes = scene.NewPlaneField(s.pose, s.view)
	room := []struct {
		id   string
		rect [5]float64
	}{
		{"floor", [5]float64{0, 0, 0, 2.5, 2.5}},
		{"table", [5]float64{0.75, 0, -1.0, 0.6, 0.4}},
	}
	for _, p := range room {
		if err := s.planes.AddHorizontalPlane(p.id, p.rect[0], p.rect[1], p.rect[2], p.rect[3], p.rect[4]); err != nil {
			return nil, err
		}
		s.planeRects = append(s.planeRects, p.rect)
	}

	s.backend = newTermBackend()
	s.mutator = scene.NewMutator()

	store := stroke.NewStore(config.GetMarkerSize(), s.backend, s.mutator, log)
	ret := reticle.New(log)
	s.projector = projection.NewProjector(s.planes, s.planes)
	if config.GetBool("projection.fallbackEnabled") {
		s.projector.SetFallbackPlane(config.GetFloat64("projection.fallbackY"))
		s.fallbackOn = true
	}
	s.session = engine.NewSession(store, ret, s.projector, s.pose, log)

	ac := config.GetAudioConfig()
	if ac.Enabled {
		s.cues = audio.NewManager(ac.SampleRate)
		if err := s.cues.Initialize(); err != nil {
			// Silent sandbox is fine
			log.Warn().Err(err).Msg("audio unavailable")
			s.cues = nil
		}
	}

	rc := config.GetRecordConfig()
	if rc.Enabled {
		rec, err := record.Open(rc.Path, time.Now().Format("sandbox 2006-01-02 15:04"), log)
		if err != nil {
			log.Warn().Err(err).Msg("stroke recording unavailable")
		} else {
			s.recorder = rec
		}
	}

	return s, nil
}

func (s *sandbox) close() {
	s.mutator.Close()
	if s.cues != nil {
		s.cues.Cleanup()
	}
	if s.recorder != nil {
		if err := s.recorder.Close(); err != nil {
			s.log.Error().Err(err).Msg("recorder close failed")
		}
	}
	s.screen.Fini()
}

// worldToScreen projects a world position back through the virtual camera.
// ok is false behind the camera
func (s *sandbox) worldToScreen(p vmath.Vec3) (int, int, bool) {
	pose := s.pose.pose
	forward := pose.Forward()
	right := vmath.V3Normalize(vmath.V3Cross(forward, vmath.Vec3{Y: 1}))
	up := vmath.V3Cross(right, forward)

	d := vmath.V3Sub(p, pose.Position)
	depth := vmath.V3Dot(d, forward)
	if depth <= 1e-6 {
		return 0, 0, false
	}

	tanHalf := math.Tan(s.view.FOV / 2)
	aspect := s.view.Height / s.view.Width
	u := vmath.V3Dot(d, right) / depth / (2 * tanHalf)
	v := vmath.V3Dot(d, up) / depth / (2 * tanHalf * aspect)

	x := int((u + 0.5) * s.view.Width)
	y := int((0.5 - v) * s.view.Height)
	return x, y, true
}

// Track implements scene.FingertipTracker: the keyboard cursor stands in
// for the vision tracker. Low confidence simulates losing the fingertip
func (s *sandbox) Track(prev scene.Region) (scene.Region, float64) {
	if !s.trackingOn {
		return prev, 0.1
	}
	return scene.Region{X: s.cursorX - 2, Y: s.cursorY - 2, W: 4, H: 4}, 0.95
}

func (s *sandbox) handleKey(ev *tcell.EventKey) bool {
	const cursorStep = 1.0

	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
		return false
	case ev.Key() == tcell.KeyLeft:
		s.cursorX -= cursorStep
	case ev.Key() == tcell.KeyRight:
		s.cursorX += cursorStep
	case ev.Key() == tcell.KeyUp:
		s.cursorY -= cursorStep
	case ev.Key() == tcell.KeyDown:
		s.cursorY += cursorStep
	case ev.Key() == tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'h':
			s.cursorX -= cursorStep
		case 'l':
			s.cursorX += cursorStep
		case 'k':
			s.cursorY -= cursorStep
		case 'j':
			s.cursorY += cursorStep
		case 'd':
			s.session.SetDrawMode(!s.session.DrawMode())
			if s.session.DrawMode() {
				s.session.SetHeightAdjustMode(false)
			}
		case 'a':
			s.session.SetHeightAdjustMode(true)
			s.session.SetDrawMode(false)
		case 'z':
			s.session.ResetHeight()
		case 'r':
			s.session.Reset()
		case 'c':
			s.session.Store().ClearAll()
		case 't':
			s.trackingOn = !s.trackingOn
		case 'f':
			// Toggle the infinite fallback plane at floor height
			s.fallbackOn = !s.fallbackOn
			if s.fallbackOn {
				s.projector.SetFallbackPlane(config.GetFloat64("projection.fallbackY"))
			} else {
				s.projector.ClearFallbackPlane()
			}
		case 'x':
			if err := s.session.HandleInterruption("sandbox interruption", true); err != nil {
				return false
			}
		}
	}

	s.cursorX = math.Max(0, math.Min(s.cursorX, float64(s.width-1)))
	s.cursorY = math.Max(0, math.Min(s.cursorY, float64(s.height-1)))
	return true
}

func (s *sandbox) handleResize() {
	s.width, s.height = s.screen.Size()
	s.view = scene.Viewport{Width: float64(s.width), Height: float64(s.height), FOV: s.view.FOV}
}

func (s *sandbox) handleNotifications() {
	for _, ev := range s.session.Notifications() {
		switch ev.Type {
		case event.EventPointAdded:
			if s.cues != nil {
				s.cues.Play(audio.CueDeposit)
			}
			if s.recorder != nil {
				if p, ok := ev.Payload.(*event.PointPayload); ok {
					s.recorder.RecordPoint(
						stroke.WorldPoint{Seq: p.Seq, Position: p.Position},
						s.session.Store().HeightScale(),
					)
				}
			}
		case event.EventAnchorVisited:
			if s.cues != nil {
				s.cues.Play(audio.CueContact)
			}
		case event.EventCouldNotPlace:
			if s.cues != nil {
				s.cues.Play(audio.CueReject)
			}
		}
	}
}

func (s *sandbox) draw() {
	s.screen.Clear()

	// Plane outlines as dim corner ticks
	planeStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, r := range s.planeRects {
		y, cx, cz, hw, hd := r[0], r[1], r[2], r[3], r[4]
		corners := []vmath.Vec3{
			{X: cx - hw, Y: y, Z: cz - hd},
			{X: cx + hw, Y: y, Z: cz - hd},
			{X: cx + hw, Y: y, Z: cz + hd},
			{X: cx - hw, Y: y, Z: cz + hd},
		}
		for _, c := range corners {
			if x, py, ok := s.worldToScreen(c); ok && x >= 0 && x < s.width && py >= 0 && py < s.height {
				s.screen.SetContent(x, py, '·', nil, planeStyle)
			}
		}
	}

	// Markers, brighter the taller they are
	for _, m := range s.backend.snapshot() {
		x, y, ok := s.worldToScreen(m.pos)
		if !ok || x < 0 || x >= s.width || y < 0 || y >= s.height {
			continue
		}
		level := int32(120 + math.Min(m.height*250, 1)*135)
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(level, level, 40))
		s.screen.SetContent(x, y, '◆', nil, style)
	}

	// Reticle
	ret := s.session.Reticle()
	if ret.Visible() {
		x, y, ok := s.worldToScreen(ret.Position())
		if ok && x >= 0 && x < s.width && y >= 0 && y < s.height {
			ch := 'o'
			style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
			switch ret.State() {
			case reticle.StateClosed:
				ch = '●'
			case reticle.StateAnimating:
				ch = '◐'
			default:
				ch = '○'
			}
			if ret.FillAlpha() > 0 {
				style = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
			}
			s.screen.SetContent(x, y, ch, nil, style)
		}
	}

	// Fingertip cursor
	cursorStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
	if !s.trackingOn {
		cursorStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkRed)
	}
	s.screen.SetContent(int(s.cursorX), int(s.cursorY), '+', nil, cursorStyle)

	// HUD
	stats := s.session.Stats()
	mode := "idle"
	if s.session.DrawMode() {
		mode = "draw"
	}
	hud := fmt.Sprintf(" %s | points %d | planes %d | reticle %s | tracking %v | hjkl/arrows move  d draw  a height  z flat  c clear  r reset  t tracking  x interrupt  q quit",
		mode, stats.PointCount, stats.PlanesVisited, s.session.Reticle().State(), s.trackingOn)
	for i, r := range hud {
		if i >= s.width {
			break
		}
		s.screen.SetContent(i, s.height-1, r, nil, planeStyle)
	}

	s.screen.Show()
}

func (s *sandbox) run() {
	eventCh := make(chan tcell.Event, 100)
	go func() {
		for {
			eventCh <- s.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-eventCh:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !s.handleKey(ev) {
					return
				}
			case *tcell.EventMouse:
				x, y := ev.Position()
				s.cursorX, s.cursorY = float64(x), float64(y)
			case *tcell.EventResize:
				s.handleResize()
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			s.session.PollTracker(s)
			s.session.Update(dt)
			s.handleNotifications()
			s.draw()
		}
	}
}

func main() {
	if err := config.Load("."); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(config.GetString("logFile"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	level, err := zerolog.ParseLevel(config.GetString("logLevel"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	// tcell owns the terminal, so log lines go to a file, human-readable
	writer := zerolog.ConsoleWriter{Out: logFile, NoColor: true}
	log := zerolog.New(writer).Level(level).With().Timestamp().Logger()

	s, err := newSandbox(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sandbox init: %v\n", err)
		os.Exit(1)
	}
	defer s.close()

	log.Info().Msg("sandbox started")
	s.run()
}
