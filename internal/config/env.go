package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides holds FLAPPY_* environment variables. Zero values mean unset.
type EnvOverrides struct {
	Speed       int     `env:"FLAPPY_SPEED"`
	WorldWidth  float64 `env:"FLAPPY_WORLD_WIDTH"`
	WorldHeight float64 `env:"FLAPPY_WORLD_HEIGHT"`
	Bird        string  `env:"FLAPPY_BIRD"`
	Background  string  `env:"FLAPPY_BACKGROUND"`
}

// ParseEnv reads FLAPPY_* variables from the process environment.
func ParseEnv() (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.Parse(&o); err != nil {
		return o, fmt.Errorf("config: parse env: %w", err)
	}
	return o, nil
}

// ParseEnvFrom reads FLAPPY_* variables from the given map instead of the process environment.
func ParseEnvFrom(vars map[string]string) (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.ParseWithOptions(&o, env.Options{Environment: vars}); err != nil {
		return o, fmt.Errorf("config: parse env: %w", err)
	}
	return o, nil
}

// Apply copies every set override onto cfg.
func (o EnvOverrides) Apply(cfg *FlappyConfig) {
	if o.Speed != 0 {
		cfg.Speed = o.Speed
	}
	if o.WorldWidth > 0 {
		cfg.World.Width = o.WorldWidth
	}
	if o.WorldHeight > 0 {
		cfg.World.Height = o.WorldHeight
	}
	if o.Bird != "" {
		cfg.Theme.Bird = o.Bird
	}
	if o.Background != "" {
		cfg.Theme.Background = o.Background
	}
}
