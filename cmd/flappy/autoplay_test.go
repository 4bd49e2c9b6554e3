package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestAutoplaySurvives(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	result := autoplay(config.DefaultFlappyConfig(), 20, 60, 42, flappy.DefaultAutopilotMargin, logger)

	if result.Frames != 1200 {
		t.Errorf("Frames = %d, expected 1200", result.Frames)
	}
	if result.Crashes != 0 {
		t.Errorf("autopilot crashed %d times", result.Crashes)
	}
	if result.Best < 5 {
		t.Errorf("Best = %d, expected at least 5 pipes in 20s", result.Best)
	}
	if !strings.Contains(buf.String(), "scored") {
		t.Error("score changes should be logged")
	}
	if strings.Contains(buf.String(), "obstacle") {
		t.Error("moves should only be logged at debug level")
	}
}

func TestAutoplayRestartsAfterCrash(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	// A margin far below the gap lets the bird sink into the ground.
	result := autoplay(config.DefaultFlappyConfig(), 4, 60, 1, 1000, logger)

	if result.Crashes < 2 {
		t.Fatalf("Crashes = %d, expected the bird to crash and restart", result.Crashes)
	}
	if len(result.Scores) < result.Crashes {
		t.Errorf("every crash should record a score, got %v", result.Scores)
	}
	if !strings.Contains(buf.String(), "crashed") || !strings.Contains(buf.String(), "obstacle") {
		t.Error("debug logging should include crashes and moves")
	}
}
