package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration, mirroring defaults/flappy.yaml.
func Default() Config {
	return Config{
		Window: Window{
			Width:          400,
			Height:         600,
			PlayableHeight: 500,
		},
		Physics: Physics{
			Gravity:         0.35,
			FlapImpulse:     -7.5,
			MaxDescentSpeed: 8.0,
			ScrollSpeed:     3.5,
			TiltDecay:       5.0,
			MaxUpTilt:       25.0,
			MaxDownTilt:     -90.0,
		},
		Bird: Bird{
			Width:      36,
			Height:     26,
			FrameCount: 3,
			FrameHold:  5,
		},
		Obstacles: Obstacles{
			Width:        60,
			CapDepth:     30,
			Gap:          150,
			Spacing:      225,
			MinSegment:   40,
			CenterMargin: 60,
		},
		Audio: Audio{
			Enabled: true,
			Volume:  0.35,
			Tempo:   120,
		},
		Controls: Controls{
			FlapKeys: []string{" ", "up", "w"},
		},
	}
}
