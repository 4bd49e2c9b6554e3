package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key name to an action. P toggles, so the current
// paused flag decides between pause and resume.
func (km *KeyMapper) MapKey(key string, paused bool) core.Action {
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit
	case " ", "space", "up", "w", "k":
		return core.ActionTap
	case "p":
		if paused {
			return core.ActionResume
		}
		return core.ActionPause
	case "enter":
		if paused {
			return core.ActionResume
		}
		return core.ActionNone
	case "r":
		return core.ActionRestart
	case "b", "esc":
		return core.ActionBack
	}
	return core.ActionNone
}

// MapKeyToFrame records the action for a key message in frame.
// Quit and Back are returned to the caller rather than queued.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, paused bool, frame *core.InputFrame) core.Action {
	action := km.MapKey(msg.String(), paused)
	switch action {
	case core.ActionNone, core.ActionQuit, core.ActionBack:
		return action
	}
	frame.Set(action)
	return action
}

// MapMouse treats a left click as a tap.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.Set(core.ActionTap)
		return true
	}
	return false
}
