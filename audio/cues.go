package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Cue identifies one placement sound
type Cue int

const (
	// CueDeposit: a point was committed to the stroke
	CueDeposit Cue = iota
	// CueContact: first contact with a plane not seen before this session
	CueContact
	// CueReject: no surface available at the candidate location
	CueReject
)

const (
	depositDuration = 90 * time.Millisecond
	contactNoteLen  = 110 * time.Millisecond
	rejectDuration  = 150 * time.Millisecond

	cueAttack  = 5 * time.Millisecond
	cueRelease = 40 * time.Millisecond
)

// Manager owns the speaker and mixes one-shot cues into it.
// Play is safe from any goroutine
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

func NewManager(sampleRate int) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(sampleRate),
		volume: 0.6,
	}
}

// Initialize opens the speaker. Failure is non-fatal for the caller; the
// manager just stays silent
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(m.rate, m.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play mixes one cue in. No-op before Initialize succeeds
func (m *Manager) Play(cue Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	s := m.buildCue(cue)
	if s == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup silences and releases the mixer
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

func (m *Manager) buildCue(cue Cue) beep.Streamer {
	switch cue {
	case CueDeposit:
		// Short A5 ding with a quiet octave overtone
		fund := NewEnvelope(NewOscillator(880, depositDuration, WaveSine, m.rate),
			depositDuration, cueAttack, cueRelease, m.rate)
		over := NewEnvelope(NewOscillator(1760, depositDuration, WaveSine, m.rate),
			depositDuration, cueAttack, cueRelease, m.rate)
		return newVolume(beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3)), m.volume)

	case CueContact:
		// Rising two-note chime, B5 then E6
		n1 := NewEnvelope(NewOscillator(987.77, contactNoteLen, WaveSquare, m.rate),
			contactNoteLen, cueAttack, cueRelease, m.rate)
		n2 := NewEnvelope(NewOscillator(1318.51, contactNoteLen, WaveSquare, m.rate),
			contactNoteLen, cueAttack, cueRelease, m.rate)
		return newVolume(beep.Seq(n1, n2), m.volume*0.8)

	case CueReject:
		// Low saw buzz
		buzz := NewEnvelope(NewOscillator(110, rejectDuration, WaveSaw, m.rate),
			rejectDuration, cueAttack, cueRelease, m.rate)
		return newVolume(buzz, m.volume*0.5)
	}
	return nil
}
