// Package config provides YAML-based configuration loading for the flappy
// simulation and its presentation layer.
package config

import "fmt"

// FlappyConfig contains all configuration for the flappy simulation.
type FlappyConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Body    BodyConfig    `yaml:"body"`
	Track   TrackConfig   `yaml:"track"`
	Speed   int           `yaml:"speed"` // Pipe speed multiplier: 1, 2 or 3
	Theme   ThemeConfig   `yaml:"theme"`
}

// WorldConfig defines the logical playfield in pixels.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundMargin float64 `yaml:"ground_margin"` // Ground sits this far above the bottom edge
}

// PhysicsConfig defines the bird's integration constants.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // px/s², positive is down
	JumpForce float64 `yaml:"jump_force"` // px/s, negative is up
}

// BodyConfig defines the bird's nominal box and the point used for hit tests.
type BodyConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	CenterOffsetX float64 `yaml:"center_offset_x"`
	CenterOffsetY float64 `yaml:"center_offset_y"`
}

// TrackConfig defines the scrolling obstacle pair.
type TrackConfig struct {
	PipeWidth  float64 `yaml:"pipe_width"`
	PipeHeight float64 `yaml:"pipe_height"`
	StartInset float64 `yaml:"start_inset"` // First cycle starts at world width minus this
	ExitX      float64 `yaml:"exit_x"`      // Position at which a cycle ends
	RespawnX   float64 `yaml:"respawn_x"`   // Crossing this re-rolls the gap offset
	CycleMS    float64 `yaml:"cycle_ms"`    // Cycle duration at speed 1
	GapRange   float64 `yaml:"gap_range"`   // Gap offset is uniform in [-range/2, range/2)
}

// ThemeConfig selects cosmetic options for the presentation layer.
type ThemeConfig struct {
	Bird       string `yaml:"bird"`       // yellow, blue or red
	Background string `yaml:"background"` // day or night
}

// Known theme values.
var (
	Birds       = []string{"yellow", "blue", "red"}
	Backgrounds = []string{"day", "night"}
)

// Validate checks values the simulation relies on.
func (c FlappyConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world size must be positive, got %gx%g", c.World.Width, c.World.Height)
	}
	if err := ValidateSpeed(c.Speed); err != nil {
		return err
	}
	if c.Track.CycleMS <= 0 {
		return fmt.Errorf("config: track cycle_ms must be positive, got %g", c.Track.CycleMS)
	}
	if !oneOf(c.Theme.Bird, Birds) {
		return fmt.Errorf("config: unknown bird %q", c.Theme.Bird)
	}
	if !oneOf(c.Theme.Background, Backgrounds) {
		return fmt.Errorf("config: unknown background %q", c.Theme.Background)
	}
	return nil
}

// ValidateSpeed reports whether speed is an accepted pipe speed multiplier.
func ValidateSpeed(speed int) error {
	if speed < 1 || speed > 3 {
		return fmt.Errorf("config: pipe speed must be 1, 2 or 3, got %d", speed)
	}
	return nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
