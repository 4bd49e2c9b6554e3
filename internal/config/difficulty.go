package config

import "fmt"

// DifficultyPreset represents a named pipe speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// SpeedForPreset returns the pipe speed multiplier for a difficulty preset.
func SpeedForPreset(preset DifficultyPreset) (int, error) {
	switch preset {
	case DifficultyEasy:
		return 1, nil
	case DifficultyNormal:
		return 2, nil
	case DifficultyHard:
		return 3, nil
	default:
		return 0, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
	}
}

// PresetForSpeed returns the preset name for a speed multiplier.
func PresetForSpeed(speed int) DifficultyPreset {
	switch speed {
	case 2:
		return DifficultyNormal
	case 3:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

// ApplyPreset sets the pipe speed from a preset name; an empty name keeps the current speed.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	speed, err := SpeedForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Speed = speed
	return nil
}
