// Package config provides YAML-based configuration with embedded defaults
// and startup validation for the flappy game.
package config

import "fmt"

// Config contains all tunable parameters for the game.
type Config struct {
	Window    Window    `yaml:"window"`
	Physics   Physics   `yaml:"physics"`
	Bird      Bird      `yaml:"bird"`
	Obstacles Obstacles `yaml:"obstacles"`
	Audio     Audio     `yaml:"audio"`
	Controls  Controls  `yaml:"controls"`
}

// Window defines the virtual pixel space the simulation runs in.
// The terminal renderer scales this space to the available cells.
type Window struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	PlayableHeight int `yaml:"playable_height"`
}

// Physics defines the per-tick physics parameters, in virtual pixels.
type Physics struct {
	Gravity         float64 `yaml:"gravity"`
	FlapImpulse     float64 `yaml:"flap_impulse"` // negative = up
	MaxDescentSpeed float64 `yaml:"max_descent_speed"`
	ScrollSpeed     float64 `yaml:"scroll_speed"`
	TiltDecay       float64 `yaml:"tilt_decay"` // degrees lost per tick while falling
	MaxUpTilt       float64 `yaml:"max_up_tilt"`
	MaxDownTilt     float64 `yaml:"max_down_tilt"`
}

// Bird defines the avatar's sprite geometry and wing animation.
type Bird struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	FrameCount int `yaml:"frame_count"`
	FrameHold  int `yaml:"frame_hold"` // ticks each animation frame is held
}

// Obstacles defines pipe geometry and spawning.
type Obstacles struct {
	Width        int `yaml:"width"`
	CapDepth     int `yaml:"cap_depth"` // extra pipe length hidden past each gap edge
	Gap          int `yaml:"gap"`
	Spacing      int `yaml:"spacing"`
	MinSegment   int `yaml:"min_segment"`
	CenterMargin int `yaml:"center_margin"`
}

// Audio defines the optional background music subsystem.
type Audio struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
	Tempo   int     `yaml:"tempo"` // beats per minute
}

// Controls maps logical inputs to key names understood by the platform.
type Controls struct {
	FlapKeys []string `yaml:"flap_keys"`
}

// Validate checks the configuration once at startup and fails fast with a
// descriptive error instead of producing an invalid random range or a
// degenerate simulation at runtime.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.PlayableHeight <= 0 || c.Window.PlayableHeight > c.Window.Height {
		return fmt.Errorf("config: playable_height %d must be in (0, %d]", c.Window.PlayableHeight, c.Window.Height)
	}

	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("config: gravity must be positive, got %g", c.Physics.Gravity)
	}
	if c.Physics.FlapImpulse >= 0 {
		return fmt.Errorf("config: flap_impulse must be negative (upward), got %g", c.Physics.FlapImpulse)
	}
	if c.Physics.MaxDescentSpeed <= 0 {
		return fmt.Errorf("config: max_descent_speed must be positive, got %g", c.Physics.MaxDescentSpeed)
	}
	if c.Physics.ScrollSpeed <= 0 {
		return fmt.Errorf("config: scroll_speed must be positive, got %g", c.Physics.ScrollSpeed)
	}
	if c.Physics.TiltDecay <= 0 {
		return fmt.Errorf("config: tilt_decay must be positive, got %g", c.Physics.TiltDecay)
	}
	if c.Physics.MaxDownTilt >= c.Physics.MaxUpTilt {
		return fmt.Errorf("config: max_down_tilt %g must be below max_up_tilt %g",
			c.Physics.MaxDownTilt, c.Physics.MaxUpTilt)
	}

	if c.Bird.Width <= 0 || c.Bird.Height <= 0 {
		return fmt.Errorf("config: bird size must be positive, got %dx%d", c.Bird.Width, c.Bird.Height)
	}
	if c.Bird.FrameCount < 1 {
		return fmt.Errorf("config: frame_count must be at least 1, got %d", c.Bird.FrameCount)
	}
	if c.Bird.FrameHold < 1 {
		return fmt.Errorf("config: frame_hold must be at least 1, got %d", c.Bird.FrameHold)
	}

	if c.Obstacles.Width <= 0 {
		return fmt.Errorf("config: obstacle width must be positive, got %d", c.Obstacles.Width)
	}
	if c.Obstacles.Gap <= 0 {
		return fmt.Errorf("config: gap must be positive, got %d", c.Obstacles.Gap)
	}
	if c.Obstacles.Spacing <= 0 {
		return fmt.Errorf("config: spacing must be positive, got %d", c.Obstacles.Spacing)
	}
	if c.Obstacles.MinSegment < 0 || c.Obstacles.CenterMargin < 0 || c.Obstacles.CapDepth < 0 {
		return fmt.Errorf("config: obstacle lengths must be non-negative")
	}

	// The gap center is drawn uniformly from [gap/2+margin, playable-gap/2-margin].
	// An empty range would hang or panic the spawner.
	minCenter := c.Obstacles.Gap/2 + c.Obstacles.CenterMargin
	maxCenter := c.Window.PlayableHeight - c.Obstacles.Gap/2 - c.Obstacles.CenterMargin
	if maxCenter < minCenter {
		return fmt.Errorf("config: no valid gap placement: gap %d plus margins %d leaves empty range in playable height %d",
			c.Obstacles.Gap, c.Obstacles.CenterMargin, c.Window.PlayableHeight)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio volume %g must be within [0, 1]", c.Audio.Volume)
	}
	if c.Audio.Tempo <= 0 {
		return fmt.Errorf("config: audio tempo must be positive, got %d", c.Audio.Tempo)
	}

	if len(c.Controls.FlapKeys) == 0 {
		return fmt.Errorf("config: at least one flap key must be bound")
	}

	return nil
}

// GapCenterRange returns the inclusive bounds for random gap placement.
// Only valid after Validate has passed.
func (c Config) GapCenterRange() (min, max int) {
	min = c.Obstacles.Gap/2 + c.Obstacles.CenterMargin
	max = c.Window.PlayableHeight - c.Obstacles.Gap/2 - c.Obstacles.CenterMargin
	return min, max
}
