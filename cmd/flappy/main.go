// flappy is a terminal flappy-bird game with a headless autopilot and an SSH server.
//
// Usage:
//
//	flappy play              - Play in this terminal
//	flappy autoplay          - Run the autopilot headless and log the run
//	flappy scores            - Show high scores
//	flappy settings          - Show or change saved settings
//	flappy serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gap placement
//	--db <path>      - Set database path (default: ~/.flappy/scores.db)
//	--config <path>  - Load a custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide a bird through scrolling pipes in your terminal",
	Long: `Flappy is a terminal take on the classic one-button arcade game.
Tap to flap, slip through the gap in each pipe pair, and don't touch
the ground or the sky.

Available commands:
  play      - Play in this terminal
  autoplay  - Watch the autopilot fly headless
  scores    - View high scores
  settings  - Show or change saved settings
  serve     - Start SSH server for remote play

Examples:
  flappy play
  flappy play --difficulty hard
  flappy autoplay --seconds 60 --seed 7
  flappy settings --bird red --background night
  flappy serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(serveCmd)
}

// settingsOverlay applies saved settings on top of the config file.
func settingsOverlay(s storage.Settings) config.Overlay {
	return func(cfg *config.FlappyConfig) {
		cfg.Speed = s.Speed
		cfg.Theme.Bird = s.Bird
		cfg.Theme.Background = s.Background
	}
}

// defaultSettings derives settings defaults from the file and environment config.
func defaultSettings(cfg config.FlappyConfig) storage.Settings {
	return storage.Settings{
		Speed:      cfg.Speed,
		Bird:       cfg.Theme.Bird,
		Background: cfg.Theme.Background,
	}
}

// loadGameConfig loads the config file, overlays the settings saved in store
// (if any) and finally applies a difficulty preset.
func loadGameConfig(store *storage.Store, difficulty string) (config.FlappyConfig, storage.Settings, error) {
	base, err := config.Load(flagConfig)
	if err != nil {
		return base, storage.Settings{}, err
	}

	settings := defaultSettings(base)
	cfg := base
	if store != nil {
		settings, err = store.LoadSettings(settings)
		if err != nil {
			return base, settings, err
		}
		cfg, err = config.LoadWith(flagConfig, settingsOverlay(settings))
		if err != nil {
			return base, settings, fmt.Errorf("saved settings: %w", err)
		}
	}

	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(difficulty)); err != nil {
		return cfg, settings, err
	}
	return cfg, settings, nil
}
