package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func TestLoadGameConfigLayers(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	cfg, settings, err := loadGameConfig(store, "")
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}
	if cfg.Speed != 1 || settings.Bird != "yellow" {
		t.Errorf("fresh store should give defaults, got speed %d bird %q", cfg.Speed, settings.Bird)
	}

	if err := store.SaveSettings(storage.Settings{Speed: 2, Bird: "red", Background: "night", Muted: true}); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}
	cfg, settings, err = loadGameConfig(store, "")
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}
	if cfg.Speed != 2 || cfg.Theme.Bird != "red" || cfg.Theme.Background != "night" || !settings.Muted {
		t.Errorf("saved settings should apply, got %+v / %+v", cfg.Theme, settings)
	}

	cfg, _, err = loadGameConfig(store, "hard")
	if err != nil {
		t.Fatalf("loadGameConfig() failed: %v", err)
	}
	if cfg.Speed != 3 {
		t.Errorf("difficulty flag should win over saved speed, got %d", cfg.Speed)
	}

	if _, _, err := loadGameConfig(store, "insane"); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestValidateSettings(t *testing.T) {
	ok := storage.Settings{Speed: 3, Bird: "blue", Background: "day"}
	if err := validateSettings(ok); err != nil {
		t.Errorf("validateSettings(%+v) = %v", ok, err)
	}
	for _, bad := range []storage.Settings{
		{Speed: 4, Bird: "blue", Background: "day"},
		{Speed: 1, Bird: "green", Background: "day"},
		{Speed: 1, Bird: "blue", Background: "dusk"},
	} {
		if err := validateSettings(bad); err == nil {
			t.Errorf("validateSettings(%+v) should fail", bad)
		}
	}
}
