package game

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestGroundWrapsSeamlessly(t *testing.T) {
	cfg := config.Default()
	g := NewGround(cfg)
	half := float64(cfg.Window.Width)

	if x1, x2 := g.Offsets(); x1 != 0 || x2 != half {
		t.Fatalf("initial offsets (%v, %v), want (0, %v)", x1, x2, half)
	}

	// Ten minutes of simulated scrolling. The copies must always sit
	// exactly one strip-half apart and together cover the whole window.
	for i := 0; i < 36000; i++ {
		g.Advance()
		x1, x2 := g.Offsets()

		d := x1 - x2
		if d != half && d != -half {
			t.Fatalf("tick %d: offsets (%v, %v) are %v apart, want exactly %v", i, x1, x2, d, half)
		}

		left := x1
		if x2 < left {
			left = x2
		}
		if left > 0 {
			t.Fatalf("tick %d: gap at the left edge, leftmost copy starts at %v", i, left)
		}
		if left+2*half < float64(cfg.Window.Width) {
			t.Fatalf("tick %d: strip no longer covers the window", i)
		}
	}
}

func TestGroundSitsBelowPlayableArea(t *testing.T) {
	cfg := config.Default()
	g := NewGround(cfg)
	if g.Y() != cfg.Window.PlayableHeight {
		t.Errorf("ground top = %d, want playable height %d", g.Y(), cfg.Window.PlayableHeight)
	}
}
