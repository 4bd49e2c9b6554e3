package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagSeconds       float64
	flagMargin        float64
	flagVerbose       bool
	flagSave          bool
	flagAutoplayLevel string
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Run the autopilot headless",
	Long: `Simulate games with the built-in autopilot at a fixed frame rate,
without a terminal UI. Every score change and crash is logged; after a
crash the autopilot restarts until the time budget is spent.

Examples:
  flappy autoplay
  flappy autoplay --seconds 120 --difficulty hard --seed 42
  flappy autoplay --verbose --seconds 5
  flappy autoplay --save`,
	Args: cobra.NoArgs,
	RunE: runAutoplay,
}

func init() {
	autoplayCmd.Flags().Float64Var(&flagSeconds, "seconds", 30, "Simulated seconds to fly")
	autoplayCmd.Flags().Float64Var(&flagMargin, "margin", flappy.DefaultAutopilotMargin, "Pixels below the gap centre at which the autopilot flaps")
	autoplayCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log every body and obstacle move")
	autoplayCmd.Flags().BoolVar(&flagSave, "save", false, "Save finished runs to the scores database")
	autoplayCmd.Flags().StringVar(&flagAutoplayLevel, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// autoplayRun is the outcome of one headless session.
type autoplayRun struct {
	Frames  int
	Crashes int
	Scores  []int // Final score of every finished run, then the run in progress
	Best    int
}

// autoplay flies the autopilot for seconds of simulated time at fps frames
// per second, restarting after every crash.
func autoplay(cfg config.FlappyConfig, seconds float64, fps int, seed int64, margin float64, logger *log.Logger) autoplayRun {
	if fps <= 0 {
		fps = 60
	}
	var result autoplayRun

	events := flappy.EventFuncs{
		OnScoreChanged: func(score int) {
			if score > 0 {
				logger.Info("scored", "score", score, "frame", result.Frames)
			}
		},
		OnGameOver: func(finalScore int) {
			result.Crashes++
			result.Scores = append(result.Scores, finalScore)
			logger.Warn("crashed", "score", finalScore, "frame", result.Frames)
		},
		OnBodyMoved: func(y, rotation float64) {
			logger.Debug("body", "y", y, "rotation", rotation)
		},
		OnObstacleMoved: func(x, gapOffset float64) {
			logger.Debug("obstacle", "x", x, "gap", gapOffset)
		},
	}

	game := flappy.New(cfg,
		flappy.WithRand(rand.New(rand.NewSource(seed))),
		flappy.WithEvents(events),
	)
	pilot := flappy.Autopilot{Margin: margin}
	dt := 1 / float64(fps)
	in := core.NewInputFrame()

	frames := int(seconds * float64(fps))
	for result.Frames = 0; result.Frames < frames; result.Frames++ {
		snap := game.Snapshot()
		if snap.State == flappy.StateGameOver || pilot.Decide(snap) {
			in.Set(core.ActionTap)
		}
		game.Step(in, dt)
		in.Clear()
	}

	if game.Mode() != flappy.StateGameOver {
		result.Scores = append(result.Scores, game.State().Score)
	}
	for _, s := range result.Scores {
		result.Best = max(result.Best, s)
	}
	return result
}

func runAutoplay(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "autoplay",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	var store *storage.Store
	if flagSave {
		s, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	}

	cfg, _, err := loadGameConfig(store, flagAutoplayLevel)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("taking off", "seconds", flagSeconds, "fps", flagFPS, "speed", cfg.Speed, "seed", seed)

	result := autoplay(cfg, flagSeconds, flagFPS, seed, flagMargin, logger)
	logger.Info("landed", "frames", result.Frames, "crashes", result.Crashes, "best", result.Best)

	if store != nil {
		for _, score := range result.Scores[:result.Crashes] {
			if score == 0 {
				continue
			}
			if _, err := store.SaveScore("autopilot", cfg.Speed, score); err != nil {
				return err
			}
		}
	}

	fmt.Printf("best score: %d over %d run(s)\n", result.Best, len(result.Scores))
	return nil
}
