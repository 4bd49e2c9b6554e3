package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	got := embeddedDefault()
	want := DefaultFlappyConfig()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("embedded defaults differ from DefaultFlappyConfig:\n got  %+v\n want %+v", got, want)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := "speed: 3\ntheme:\n  bird: red\n  background: night\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Speed != 3 {
		t.Errorf("Speed = %d, expected 3", cfg.Speed)
	}
	if cfg.Theme.Bird != "red" || cfg.Theme.Background != "night" {
		t.Errorf("Theme = %+v, expected red/night", cfg.Theme)
	}
	// Keys not in the file keep their defaults
	if cfg.Physics.Gravity != 1000 || cfg.Track.PipeHeight != 640 {
		t.Errorf("unset keys should keep defaults, got physics %+v track %+v", cfg.Physics, cfg.Track)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("speed: [nope"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("speed: 7\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "pipe speed") {
		t.Errorf("Load() should reject speed 7, got %v", err)
	}
}

func TestLoadAppliesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("speed: 1\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	t.Setenv("FLAPPY_SPEED", "2")
	t.Setenv("FLAPPY_BIRD", "blue")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Speed != 2 {
		t.Errorf("FLAPPY_SPEED should override file, got %d", cfg.Speed)
	}
	if cfg.Theme.Bird != "blue" {
		t.Errorf("FLAPPY_BIRD should override file, got %q", cfg.Theme.Bird)
	}
}

func TestParseEnvFrom(t *testing.T) {
	o, err := ParseEnvFrom(map[string]string{
		"FLAPPY_WORLD_WIDTH":  "360",
		"FLAPPY_WORLD_HEIGHT": "640",
		"FLAPPY_BACKGROUND":   "night",
	})
	if err != nil {
		t.Fatalf("ParseEnvFrom() failed: %v", err)
	}

	cfg := DefaultFlappyConfig()
	o.Apply(&cfg)
	if cfg.World.Width != 360 || cfg.World.Height != 640 {
		t.Errorf("World = %+v, expected 360x640", cfg.World)
	}
	if cfg.Theme.Background != "night" {
		t.Errorf("Background = %q, expected night", cfg.Theme.Background)
	}
	if cfg.Speed != 1 {
		t.Errorf("unset FLAPPY_SPEED should keep speed 1, got %d", cfg.Speed)
	}

	if _, err := ParseEnvFrom(map[string]string{"FLAPPY_SPEED": "fast"}); err == nil {
		t.Error("ParseEnvFrom() should fail for a non-numeric speed")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FlappyConfig)
		ok     bool
	}{
		{"defaults", func(*FlappyConfig) {}, true},
		{"speed zero", func(c *FlappyConfig) { c.Speed = 0 }, false},
		{"speed four", func(c *FlappyConfig) { c.Speed = 4 }, false},
		{"empty world", func(c *FlappyConfig) { c.World.Width = 0 }, false},
		{"zero cycle", func(c *FlappyConfig) { c.Track.CycleMS = 0 }, false},
		{"unknown bird", func(c *FlappyConfig) { c.Theme.Bird = "green" }, false},
		{"unknown background", func(c *FlappyConfig) { c.Theme.Background = "dusk" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlappyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() error = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		speed  int
	}{
		{DifficultyEasy, 1},
		{DifficultyNormal, 2},
		{DifficultyHard, 3},
	}

	for _, tc := range tests {
		speed, err := SpeedForPreset(tc.preset)
		if err != nil || speed != tc.speed {
			t.Errorf("SpeedForPreset(%q) = %d, %v; expected %d", tc.preset, speed, err, tc.speed)
		}
		if PresetForSpeed(tc.speed) != tc.preset {
			t.Errorf("PresetForSpeed(%d) = %q, expected %q", tc.speed, PresetForSpeed(tc.speed), tc.preset)
		}
	}

	cfg := DefaultFlappyConfig()
	if err := ApplyPreset(&cfg, ""); err != nil || cfg.Speed != 1 {
		t.Errorf("empty preset should keep speed, got %d, %v", cfg.Speed, err)
	}
	if err := ApplyPreset(&cfg, DifficultyHard); err != nil || cfg.Speed != 3 {
		t.Errorf("hard preset should set speed 3, got %d, %v", cfg.Speed, err)
	}
	if err := ApplyPreset(&cfg, "insane"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestLoadWithOverlayBelowEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("speed: 1\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	t.Setenv("FLAPPY_BIRD", "red")

	cfg, err := LoadWith(path, func(c *FlappyConfig) {
		c.Speed = 3
		c.Theme.Bird = "blue"
	})
	if err != nil {
		t.Fatalf("LoadWith() failed: %v", err)
	}
	if cfg.Speed != 3 {
		t.Errorf("overlay should override the file, got speed %d", cfg.Speed)
	}
	if cfg.Theme.Bird != "red" {
		t.Errorf("env should override the overlay, got bird %q", cfg.Theme.Bird)
	}

	if _, err := LoadWith(path, func(c *FlappyConfig) { c.Theme.Background = "dusk" }); err == nil {
		t.Error("LoadWith() should validate overlaid values")
	}
}
