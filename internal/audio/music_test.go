package audio

import (
	"math"
	"testing"
)

func TestMusicStreamerSampleBounds(t *testing.T) {
	m := NewMusicStreamer(sampleRate, 120, 0.35)

	buf := make([][2]float64, 4096)
	streamed := 0
	for streamed < m.Len() {
		n, ok := m.Stream(buf)
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				v := buf[i][c]
				if math.IsNaN(v) || v < -1 || v > 1 {
					t.Fatalf("sample %d channel %d out of range: %v", streamed+i, c, v)
				}
			}
			if buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d: channels differ, music is mono", streamed+i)
			}
		}
		streamed += n
	}
	if streamed != m.Len() {
		t.Errorf("streamed %d samples before draining, want %d", streamed, m.Len())
	}
}

func TestMusicStreamerDrainsAndSeeks(t *testing.T) {
	m := NewMusicStreamer(sampleRate, 120, 0.35)

	buf := make([][2]float64, m.Len())
	n, ok := m.Stream(buf)
	if !ok || n != m.Len() {
		t.Fatalf("Stream() = (%d, %v), want (%d, true)", n, ok, m.Len())
	}

	// Drained: the next call reports exhaustion.
	n, ok = m.Stream(buf[:16])
	if n != 0 || ok {
		t.Fatalf("Stream() after drain = (%d, %v), want (0, false)", n, ok)
	}

	if err := m.Seek(0); err != nil {
		t.Fatalf("Seek(0) failed: %v", err)
	}
	if m.Position() != 0 {
		t.Errorf("Position() after Seek(0) = %d, want 0", m.Position())
	}
	n, ok = m.Stream(buf[:16])
	if !ok || n != 16 {
		t.Errorf("Stream() after seek = (%d, %v), want (16, true)", n, ok)
	}
	if m.Err() != nil {
		t.Errorf("Err() = %v, want nil", m.Err())
	}
}

func TestMusicStreamerLoopLengthMatchesTempo(t *testing.T) {
	m := NewMusicStreamer(sampleRate, 120, 0.35)

	// At 120 BPM an eighth note is 250ms; 32 of them make the loop.
	want := int(float64(sampleRate)*0.25) * 32
	if m.Len() != want {
		t.Errorf("Len() = %d, want %d", m.Len(), want)
	}
}

func TestMusicStreamerNotSilent(t *testing.T) {
	m := NewMusicStreamer(sampleRate, 120, 0.35)

	buf := make([][2]float64, 4096)
	m.Stream(buf)
	peak := 0.0
	for _, s := range buf {
		if a := math.Abs(s[0]); a > peak {
			peak = a
		}
	}
	if peak < 0.01 {
		t.Errorf("peak amplitude %v, music is effectively silent", peak)
	}
}

func TestUninitializedManagerIsInert(t *testing.T) {
	m := NewManager()

	// None of these may panic or touch the speaker before Initialize.
	m.PlayMusic(120, 0.35)
	m.PauseMusic()
	m.ResumeMusic()
	m.Cleanup()
}
