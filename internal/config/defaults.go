package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:        400,
			Height:       800,
			GroundMargin: 100,
		},
		Physics: PhysicsConfig{
			Gravity:   1000,
			JumpForce: -500,
		},
		Body: BodyConfig{
			Width:         64,
			Height:        48,
			CenterOffsetX: 32,
			CenterOffsetY: 24,
		},
		Track: TrackConfig{
			PipeWidth:  104,
			PipeHeight: 640,
			StartInset: 50,
			ExitX:      -150,
			RespawnX:   -100,
			CycleMS:    3000,
			GapRange:   400,
		},
		Speed: 1,
		Theme: ThemeConfig{
			Bird:       "yellow",
			Background: "day",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
