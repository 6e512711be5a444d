package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-defense/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Manager owns the speaker and mixes one-shot sound cues into it.
// All methods are safe to call before Initialize; they just do nothing.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewManager creates a sound manager. Call Initialize before playing.
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences everything. The speaker itself has no close; clearing
// the mixer is enough to stop output.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.mixer.Clear()
	m.initialized = false
}

// play adds a one-shot cue of the given duration to the mixer.
func (m *Manager) play(d time.Duration, g beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.mixer.Add(beep.Take(sampleRate.N(d), g))
}

// PlayLaunch plays a short rising chirp for an interceptor launch.
func (m *Manager) PlayLaunch() {
	m.play(120*time.Millisecond, newTone(sampleRate, waveSquare, 300, 900, 0.12, 8))
}

// PlayDetonation plays a noise burst for a blast going off.
func (m *Manager) PlayDetonation() {
	m.play(200*time.Millisecond, newTone(sampleRate, waveNoise, 0, 0, 0, 14))
}

// PlayThreatKilled plays a bright blip for a threat destroyed mid-air.
func (m *Manager) PlayThreatKilled() {
	m.play(80*time.Millisecond, newTone(sampleRate, waveSine, 1200, 1600, 0.08, 20))
}

// PlayGroundImpact plays a low boom for a structure being destroyed.
func (m *Manager) PlayGroundImpact() {
	m.play(300*time.Millisecond, newTone(sampleRate, waveSaw, 120, 50, 0.3, 7))
}

// PlayLevelUp plays a rising fanfare sweep for a completed level.
func (m *Manager) PlayLevelUp() {
	m.play(250*time.Millisecond, newTone(sampleRate, waveSine, 440, 880, 0.25, 4))
}

// PlayGameOver plays a long falling sweep.
func (m *Manager) PlayGameOver() {
	m.play(600*time.Millisecond, newTone(sampleRate, waveSaw, 440, 110, 0.6, 3))
}

// PlayEvents maps a tick's simulation events to sound cues.
func (m *Manager) PlayEvents(events []core.Event) {
	for _, ev := range events {
		switch ev {
		case core.EventLaunch:
			m.PlayLaunch()
		case core.EventDetonation:
			m.PlayDetonation()
		case core.EventThreatKilled:
			m.PlayThreatKilled()
		case core.EventGroundImpact:
			m.PlayGroundImpact()
		case core.EventLevelComplete:
			m.PlayLevelUp()
		case core.EventGameOver:
			m.PlayGameOver()
		}
	}
}
