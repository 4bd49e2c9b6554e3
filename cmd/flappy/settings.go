package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagSetSpeed      int
	flagSetBird       string
	flagSetBackground string
	flagSetMuted      bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change saved settings",
	Long: `Show the saved settings, or change them with flags.

Saved settings override the config file; FLAPPY_* environment
variables and --difficulty still override saved settings.

Examples:
  flappy settings
  flappy settings --speed 2
  flappy settings --bird red --background night
  flappy settings --muted=false`,
	Args: cobra.NoArgs,
	RunE: runSettings,
}

func init() {
	settingsCmd.Flags().IntVar(&flagSetSpeed, "speed", 0, "Pipe speed: 1, 2 or 3")
	settingsCmd.Flags().StringVar(&flagSetBird, "bird", "", "Bird colour: yellow, blue or red")
	settingsCmd.Flags().StringVar(&flagSetBackground, "background", "", "Background: day or night")
	settingsCmd.Flags().BoolVar(&flagSetMuted, "muted", false, "Mute sound effects")
}

func runSettings(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	base, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	current, err := store.LoadSettings(defaultSettings(base))
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed
	if !changed("speed") && !changed("bird") && !changed("background") && !changed("muted") {
		printSettings(current)
		return nil
	}

	next := current
	if changed("speed") {
		next.Speed = flagSetSpeed
	}
	if changed("bird") {
		next.Bird = flagSetBird
	}
	if changed("background") {
		next.Background = flagSetBackground
	}
	if changed("muted") {
		next.Muted = flagSetMuted
	}

	if err := validateSettings(next); err != nil {
		return err
	}
	if err := store.SaveSettings(next); err != nil {
		return err
	}
	printSettings(next)
	return nil
}

// validateSettings checks settings with the same rules as the config file.
func validateSettings(s storage.Settings) error {
	cfg := config.DefaultFlappyConfig()
	settingsOverlay(s)(&cfg)
	return cfg.Validate()
}

func printSettings(s storage.Settings) {
	fmt.Printf("speed:      %d (%s)\n", s.Speed, config.PresetForSpeed(s.Speed))
	fmt.Printf("bird:       %s\n", s.Bird)
	fmt.Printf("background: %s\n", s.Background)
	fmt.Printf("muted:      %t\n", s.Muted)
}
