package game

// PipeSnapshot is the read-only geometry of one live obstacle.
type PipeSnapshot struct {
	X         float64 // centerline
	Width     int
	GapTop    int
	GapBottom int
	TopLen    int
	BottomLen int
	Passed    bool
}

// Snapshot captures the complete observable game state for the
// presentation layer and for determinism tests. The renderer consumes
// snapshots only; it never reaches into the simulation.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	HighScore int

	BirdX        float64
	BirdY        float64
	BirdVelocity float64
	BirdTilt     float64
	BirdFrame    int
	BirdW, BirdH int

	Pipes []PipeSnapshot

	GroundX1 float64
	GroundX2 float64
	GroundY  int

	WindowW        int
	WindowH        int
	PlayableHeight int
}

// Snapshot returns the current observable state.
func (g *Game) Snapshot() Snapshot {
	pipes := make([]PipeSnapshot, len(g.field.pipes))
	for i, p := range g.field.pipes {
		pipes[i] = PipeSnapshot{
			X:         p.x,
			Width:     p.width,
			GapTop:    p.GapTop(),
			GapBottom: p.GapBottom(),
			TopLen:    p.topLen,
			BottomLen: p.bottomLen,
			Passed:    p.passed,
		}
	}

	x1, x2 := g.ground.Offsets()

	return Snapshot{
		Tick:           g.tick,
		Phase:          g.phase,
		Score:          g.score,
		HighScore:      g.highScore,
		BirdX:          g.bird.X(),
		BirdY:          g.bird.Y(),
		BirdVelocity:   g.bird.Velocity(),
		BirdTilt:       g.bird.Tilt(),
		BirdFrame:      g.bird.Frame(),
		BirdW:          g.bird.spriteW,
		BirdH:          g.bird.spriteH,
		Pipes:          pipes,
		GroundX1:       x1,
		GroundX2:       x2,
		GroundY:        g.ground.Y(),
		WindowW:        g.cfg.Window.Width,
		WindowH:        g.cfg.Window.Height,
		PlayableHeight: g.cfg.Window.PlayableHeight,
	}
}
