package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagDifficulty string
	flagAutopilot  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/W/Click  - Flap (restart after game over)
  P                 - Pause / resume
  R                 - Restart after game over
  Esc/B             - Leave a paused or finished game
  Ctrl+S            - Save a text screenshot to ~/.flappy/screenshots
  Q/Ctrl+C          - Quit

Difficulty options set the pipe speed:
  easy   - x1 (a pipe pair every 3 seconds)
  normal - x2
  hard   - x3

Without --difficulty the speed saved with 'flappy settings' is used.

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --autopilot
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the autopilot fly")
}

func runPlay(_ *cobra.Command, _ []string) error {
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg, settings, err := loadGameConfig(store, flagDifficulty)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Game:       cfg,
		Runtime:    rt,
		Store:      store,
		Player:     currentPlayer(),
		Muted:      settings.Muted,
		Autopilot:  flagAutopilot,
		QuitOnBack: true,
	}
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if store != nil {
		if high, err := store.HighScore(cfg.Speed); err == nil && high > 0 {
			fmt.Printf("Best at %s speed: %d\n", config.PresetForSpeed(cfg.Speed), high)
		}
	}
	return nil
}

// currentPlayer names local runs after the OS user.
func currentPlayer() string {
	for _, name := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}
