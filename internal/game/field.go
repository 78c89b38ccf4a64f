package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Field owns the ordered sequence of live obstacles: spawning, scrolling,
// collision checks, pass events, and retirement of off-screen pipes.
// Obstacles are ordered by spawn time, equivalently by decreasing x, since
// all move at the same speed.
type Field struct {
	pipes []*Pipe
	rng   *rand.Rand
	cfg   config.Config
}

// FieldOutcome summarizes one field tick for the state machine.
type FieldOutcome struct {
	Passed   int  // obstacles whose pass event fired this tick
	Collided bool // whether any obstacle hit the avatar
}

// NewField creates an obstacle field drawing gap positions from the given
// random source. The source is injected so tests can reproduce exact
// obstacle sequences.
func NewField(cfg config.Config, rng *rand.Rand) *Field {
	f := &Field{
		pipes: make([]*Pipe, 0, 8),
		rng:   rng,
		cfg:   cfg,
	}
	f.Reset()
	return f
}

// Reset clears all obstacles and spawns the initial one at the right
// screen edge, with no extra spacing.
func (f *Field) Reset() {
	f.pipes = f.pipes[:0]
	f.spawn(float64(f.cfg.Window.Width))
}

// spawn appends a new obstacle at x with a uniformly random gap center
// from the validated placement range.
func (f *Field) spawn(x float64) {
	minC, maxC := f.cfg.GapCenterRange()
	center := minC + f.rng.Intn(maxC-minC+1)
	f.pipes = append(f.pipes, NewPipe(x, center, f.cfg.Obstacles, f.cfg.Window.PlayableHeight, f.cfg.Physics.ScrollSpeed))
}

// Step advances every obstacle one tick, collects collision and pass
// events, retires fully off-screen obstacles, and spawns exactly one new
// obstacle on any tick in which a pass event fired. Since speed is
// constant and every spawn happens at the same x, the rhythm of incoming
// obstacles settles into a fixed period after the first pass.
func (f *Field) Step(b *Bird) FieldOutcome {
	var out FieldOutcome

	for _, p := range f.pipes {
		p.Advance()
		if p.CollidesWith(b) {
			out.Collided = true
		}
		if p.MarkPassed(b.X()) {
			out.Passed++
		}
	}

	live := f.pipes[:0]
	for _, p := range f.pipes {
		if !p.Offscreen() {
			live = append(live, p)
		}
	}
	f.pipes = live

	if out.Passed > 0 {
		f.spawn(float64(f.cfg.Window.Width + f.cfg.Obstacles.Spacing))
	}

	return out
}

// Pipes returns the live obstacles, ordered by spawn time.
func (f *Field) Pipes() []*Pipe {
	return f.pipes
}
