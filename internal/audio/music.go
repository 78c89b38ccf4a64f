// Package audio synthesizes the looping background music. Everything is
// generated procedurally at startup; there are no sound assets to ship.
package audio

import (
	"math"

	"github.com/gopxl/beep"
)

const (
	// One chord per beat, eight eighth-note melody steps per bar.
	subbeatsPerBeat = 2
	barsPerLoop     = 4

	chordGain  = 0.18
	melodyGain = 0.12
	wobbleGain = 0.03
	wobbleHz   = 5.0
)

// chords is the loop's harmonic spine: C, Am, Dm, G triads as MIDI notes,
// one chord per bar.
var chords = [barsPerLoop][3]int{
	{60, 64, 67},
	{57, 60, 64},
	{62, 65, 69},
	{55, 59, 62},
}

// melody walks one note per subbeat over each bar.
var melody = [8]int{60, 62, 64, 65, 67, 69, 71, 72}

// midiToFreq converts a MIDI note number to its frequency in Hz.
func midiToFreq(note int) float64 {
	return 440.0 * math.Pow(2, float64(note-69)/12)
}

// MusicStreamer renders the chord loop as stereo samples. It implements
// beep.StreamSeeker so it can sit inside beep.Loop.
type MusicStreamer struct {
	sr   beep.SampleRate
	gain float64
	pos  int

	samplesPerSubbeat int
	loopSamples       int

	chordFreqs  [barsPerLoop][3]float64
	melodyFreqs [8]float64
}

// NewMusicStreamer creates the music generator. tempo is in beats per
// minute; gain scales the final mix and doubles as the volume control.
func NewMusicStreamer(sr beep.SampleRate, tempo float64, gain float64) *MusicStreamer {
	m := &MusicStreamer{
		sr:                sr,
		gain:              gain,
		samplesPerSubbeat: int(float64(sr) * 60 / tempo / subbeatsPerBeat),
	}
	// Each bar holds one chord and a full melody walk of 8 subbeats.
	m.loopSamples = m.samplesPerSubbeat * 8 * barsPerLoop

	for b, chord := range chords {
		for v, note := range chord {
			m.chordFreqs[b][v] = midiToFreq(note)
		}
	}
	for i, note := range melody {
		m.melodyFreqs[i] = midiToFreq(note)
	}
	return m
}

// Stream fills samples with the next slice of the loop. The streamer
// drains at the loop boundary so beep.Loop can seek it back to the start.
func (m *MusicStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && m.pos < m.loopSamples {
		t := float64(m.pos) / float64(m.sr)

		subbeat := m.pos / m.samplesPerSubbeat
		bar := subbeat / 8

		var chord float64
		for _, f := range m.chordFreqs[bar] {
			chord += math.Sin(2 * math.Pi * f * t)
		}

		mel := math.Sin(2 * math.Pi * m.melodyFreqs[subbeat%8] * t)
		wobble := math.Sin(2 * math.Pi * wobbleHz * t)

		sample := m.gain * (chordGain*chord + melodyGain*mel + wobbleGain*wobble)
		if sample > 1 {
			sample = 1
		} else if sample < -1 {
			sample = -1
		}

		samples[n][0] = sample
		samples[n][1] = sample
		m.pos++
		n++
	}
	return n, n > 0
}

// Err always reports nil; synthesis cannot fail.
func (m *MusicStreamer) Err() error { return nil }

// Len returns the length of one full loop in samples.
func (m *MusicStreamer) Len() int { return m.loopSamples }

// Position returns the current offset within the loop.
func (m *MusicStreamer) Position() int { return m.pos }

// Seek jumps to the given offset within the loop.
func (m *MusicStreamer) Seek(p int) error {
	m.pos = p
	return nil
}
