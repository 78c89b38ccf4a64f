package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase is the game's control state; it governs which subsystems advance
// on a given tick.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game orchestrates the avatar, obstacle field, and ground through the
// Start -> Playing -> GameOver cycle, tracking the score and the
// process-lifetime high score.
type Game struct {
	cfg config.Config
	rng *rand.Rand

	bird   *Bird
	field  *Field
	ground *Ground

	phase     Phase
	score     int
	highScore int
	tick      uint64
}

// New validates the configuration once and creates a game seeded with the
// given RNG seed. An invalid configuration is fatal here, before any tick
// runs.
func New(cfg config.Config, seed int64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	g.Reset()
	return g, nil
}

// Reset reinitializes the avatar, the field with its single initial
// obstacle, the ground, and the score, re-entering the Start phase. The
// high score survives; the RNG keeps its sequence so each episode gets
// fresh obstacles while the whole session stays deterministic per seed.
func (g *Game) Reset() {
	g.bird = NewBird(
		float64(g.cfg.Window.Width)/4,
		float64(g.cfg.Window.Height)/2,
		g.cfg.Physics,
		g.cfg.Bird,
	)
	if g.field == nil {
		g.field = NewField(g.cfg, g.rng)
	} else {
		g.field.Reset()
	}
	g.ground = NewGround(g.cfg)
	g.score = 0
	g.phase = PhaseStart
}

// Step advances the simulation by one fixed tick. Input is latched: every
// flap recorded for this tick triggers once, and a flap during GameOver
// performs the reset.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionFlap) {
		switch g.phase {
		case PhaseStart:
			g.phase = PhasePlaying
			g.bird.Flap()
		case PhasePlaying:
			g.bird.Flap()
		case PhaseGameOver:
			g.Reset()
		}
	}

	switch g.phase {
	case PhaseStart:
		// Idle: scrolling ground and flapping wings, no physics.
		g.ground.Advance()
		g.bird.AdvanceAnimation()

	case PhaseGameOver:
		// Avatar and obstacles freeze; only the ground keeps scrolling.
		g.ground.Advance()

	case PhasePlaying:
		g.bird.AdvancePhysics()
		g.bird.AdvanceAnimation()
		g.ground.Advance()

		out := g.field.Step(g.bird)
		g.score += out.Passed

		grounded := g.bird.Bottom() >= float64(g.cfg.Window.PlayableHeight)
		if out.Collided || grounded {
			// Single transition and single high-score update no matter
			// how many collision sources fired this tick.
			g.phase = PhaseGameOver
			if g.score > g.highScore {
				g.highScore = g.score
			}
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the coarse status consumed by the platform layer.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		GameOver:  g.phase == PhaseGameOver,
	}
}

// Phase returns the current control phase.
func (g *Game) Phase() Phase { return g.phase }

// Score returns the current episode score.
func (g *Game) Score() int { return g.score }

// HighScore returns the best score seen this process.
func (g *Game) HighScore() int { return g.highScore }

// Config returns the validated configuration the game runs with.
func (g *Game) Config() config.Config { return g.cfg }
