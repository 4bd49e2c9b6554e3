package storage

import "testing"

func TestSettingsDefaults(t *testing.T) {
	store := openTestStore(t)

	defaults := Settings{Speed: 1, Bird: "yellow", Background: "day"}
	got, err := store.LoadSettings(defaults)
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if got != defaults {
		t.Errorf("LoadSettings() on empty store = %+v, expected defaults %+v", got, defaults)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := openTestStore(t)

	want := Settings{Speed: 3, Bird: "red", Background: "night", Muted: true}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	// Saving again overwrites rather than duplicating keys
	want.Speed = 2
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("second SaveSettings() failed: %v", err)
	}

	got, err := store.LoadSettings(Settings{Speed: 1, Bird: "yellow", Background: "day"})
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if got != want {
		t.Errorf("LoadSettings() = %+v, expected %+v", got, want)
	}
}

func TestSettingsIgnoresMalformedValues(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.db.Exec("INSERT INTO settings (key, value) VALUES ('pipe_speed', 'fast'), ('muted', 'maybe')"); err != nil {
		t.Fatalf("seeding settings failed: %v", err)
	}

	defaults := Settings{Speed: 2, Bird: "blue", Background: "day", Muted: true}
	got, err := store.LoadSettings(defaults)
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if got != defaults {
		t.Errorf("malformed values should keep defaults, got %+v", got)
	}
}
