package game

import "github.com/vovakirdan/tui-flappy/internal/config"

// Ground is the horizontally tiling strip below the playable area. Two
// offsets track adjacent copies of a strip twice the window width; a wrap
// rule recycles whichever copy has fully scrolled off the left edge. The
// wrap is exact: a one-pixel error would compound visibly since it is
// evaluated every tick forever.
type Ground struct {
	x1, x2 float64
	half   float64 // half the strip width, equal to the window width
	speed  float64
	y      int // top edge of the strip, the playable area bottom
}

// NewGround creates the strip with the two copies laid out edge to edge.
func NewGround(cfg config.Config) *Ground {
	half := float64(cfg.Window.Width)
	return &Ground{
		x1:    0,
		x2:    half,
		half:  half,
		speed: cfg.Physics.ScrollSpeed,
		y:     cfg.Window.PlayableHeight,
	}
}

// Advance scrolls both copies left one tick and recycles the one whose
// trailing edge has reached the left screen edge to the right of the other.
func (g *Ground) Advance() {
	g.x1 -= g.speed
	g.x2 -= g.speed

	if g.x1+g.half <= 0 {
		g.x1 = g.x2 + g.half
	}
	if g.x2+g.half <= 0 {
		g.x2 = g.x1 + g.half
	}
}

// Offsets returns the two copy positions.
func (g *Ground) Offsets() (x1, x2 float64) {
	return g.x1, g.x2
}

// Y returns the top edge of the strip.
func (g *Ground) Y() int { return g.y }
