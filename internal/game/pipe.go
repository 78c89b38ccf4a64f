package game

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe is one gapped obstacle pair: two vertical segments with a passable
// opening between them, scrolling left at constant speed. The x position
// tracks the pair's centerline.
type Pipe struct {
	x         float64
	gapCenter int
	gap       int

	topLen    int // visible length of the top segment
	bottomLen int // visible length of the bottom segment
	passed    bool

	width    int // segment body width
	capDepth int // extra segment length hidden past each gap edge
	speed    float64
	playable int

	topMask    *Mask
	bottomMask *Mask
}

// NewPipe creates an obstacle at centerline x with the given gap center.
// Segment lengths are floored at the configured minimum so a gap placed
// near an edge never produces a sliver segment.
func NewPipe(x float64, gapCenter int, obs config.Obstacles, playable int, speed float64) *Pipe {
	topLen := max(obs.MinSegment, gapCenter-obs.Gap/2)
	bottomLen := max(obs.MinSegment, playable-(gapCenter+obs.Gap/2))

	return &Pipe{
		x:          x,
		gapCenter:  gapCenter,
		gap:        obs.Gap,
		topLen:     topLen,
		bottomLen:  bottomLen,
		width:      obs.Width,
		capDepth:   obs.CapDepth,
		speed:      speed,
		playable:   playable,
		topMask:    NewSolidMask(obs.Width, topLen+obs.CapDepth),
		bottomMask: NewSolidMask(obs.Width, bottomLen+obs.CapDepth),
	}
}

// Advance scrolls the obstacle left by one tick.
func (p *Pipe) Advance() {
	p.x -= p.speed
}

// X returns the centerline position.
func (p *Pipe) X() float64 { return p.x }

// GapCenter returns the vertical midpoint of the opening.
func (p *Pipe) GapCenter() int { return p.gapCenter }

// GapTop returns the y coordinate where the opening starts.
func (p *Pipe) GapTop() int { return p.gapCenter - p.gap/2 }

// GapBottom returns the y coordinate where the opening ends.
func (p *Pipe) GapBottom() int { return p.gapCenter + p.gap/2 }

// TopRect returns the screen rectangle of the top segment, anchored so its
// bottom edge sits at the top of the gap.
func (p *Pipe) TopRect() core.Rect {
	h := p.topLen + p.capDepth
	return core.NewRect(int(p.x)-p.width/2, p.GapTop()-h, p.width, h)
}

// BottomRect returns the screen rectangle of the bottom segment, anchored
// so its top edge sits at the bottom of the gap.
func (p *Pipe) BottomRect() core.Rect {
	return core.NewRect(int(p.x)-p.width/2, p.GapBottom(), p.width, p.bottomLen+p.capDepth)
}

// CollidesWith tests the avatar against both segments. A cheap horizontal
// bounding-box rejection runs first; only when the x intervals overlap does
// the exact mask test run against the avatar's rotated silhouette. The
// two-stage order matters: the mask test is two orders of magnitude more
// expensive and almost always unnecessary.
func (p *Pipe) CollidesWith(b *Bird) bool {
	birdRect := b.Rect()
	topRect := p.TopRect()

	if !birdRect.OverlapsX(topRect) {
		return false
	}

	birdMask := b.Mask()
	bottomRect := p.BottomRect()

	if birdMask.Overlap(p.topMask, topRect.X-birdRect.X, topRect.Y-birdRect.Y) {
		return true
	}
	return birdMask.Overlap(p.bottomMask, bottomRect.X-birdRect.X, bottomRect.Y-birdRect.Y)
}

// MarkPassed reports true exactly once: on the tick the obstacle's trailing
// edge first scrolls past the avatar's x position. The flag never resets,
// so each obstacle awards at most one score point.
func (p *Pipe) MarkPassed(birdX float64) bool {
	if p.passed {
		return false
	}
	if p.x+float64(p.width)/2 < birdX {
		p.passed = true
		return true
	}
	return false
}

// Passed reports whether the avatar has cleared this obstacle.
func (p *Pipe) Passed() bool { return p.passed }

// Offscreen reports whether the obstacle has scrolled fully past the left
// screen edge, with a margin of its own width, and can be removed.
func (p *Pipe) Offscreen() bool {
	return p.x+float64(p.width)/2 < -float64(p.width)
}
