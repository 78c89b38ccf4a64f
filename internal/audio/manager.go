package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Manager owns the speaker and the background-music stream. All methods
// are safe for concurrent use. A Manager that failed to initialize stays
// usable: every playback method is a no-op, so the game runs silently.
type Manager struct {
	mu            sync.Mutex
	mixer         *beep.Mixer
	musicStreamer *beep.Ctrl
	initialized   bool
}

// NewManager creates an idle manager. Call Initialize before playing.
func NewManager() *Manager {
	return &Manager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and attaches the mixer. Safe to call more
// than once. An error here means no audio device is available; the caller
// should log it and continue.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// PlayMusic starts the looping background music at the given tempo and
// volume. Restarting while already playing is a no-op.
func (m *Manager) PlayMusic(tempo, volume float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	if m.musicStreamer != nil && !m.musicStreamer.Paused {
		return
	}

	loop := beep.Loop(-1, NewMusicStreamer(sampleRate, tempo, volume))
	ctrl := &beep.Ctrl{Streamer: loop, Paused: false}
	m.musicStreamer = ctrl
	m.mixer.Add(ctrl)
}

// PauseMusic silences the music without tearing down the speaker.
func (m *Manager) PauseMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.musicStreamer != nil {
		m.musicStreamer.Paused = true
	}
}

// ResumeMusic continues paused music.
func (m *Manager) ResumeMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.musicStreamer != nil {
		m.musicStreamer.Paused = false
	}
}

// Cleanup stops playback and detaches everything from the speaker. The
// speaker itself has no Close in beep; clearing the mixer is enough to go
// silent.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	if m.musicStreamer != nil {
		m.musicStreamer.Paused = true
	}
	m.mixer.Clear()
	m.initialized = false
}
