// Package tui provides the Bubble Tea presentation layer for the flappy game.
// It drives frames, maps keys to commands, draws snapshots and persists scores.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the delta fed to the simulation after a stalled frame.
const maxFrameDelta = 0.25

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds elapsed between two ticks. The first tick
// of a run has no predecessor and uses the nominal interval.
func frameDelta(prev, now time.Time, tickRate int) float64 {
	if tickRate <= 0 {
		tickRate = 60
	}
	if prev.IsZero() || !now.After(prev) {
		return 1 / float64(tickRate)
	}
	dt := now.Sub(prev).Seconds()
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	return dt
}
