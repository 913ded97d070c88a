package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skill-runner/internal/core"
)

// HostAction is a key handled by the terminal host rather than the game.
type HostAction int

const (
	HostActionNone HostAction = iota
	HostActionQuit
	HostActionBack
	HostActionRestart
	HostActionScreenshot
)

// KeyMapper translates Bubble Tea key messages to game key codes.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the game key code for msg, or the host action it
// triggers. At most one of the results is set.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (code core.KeyCode, action HostAction) {
	switch msg.String() {
	case "ctrl+c":
		return "", HostActionQuit
	case "esc", "b":
		return "", HostActionBack
	case "r":
		return "", HostActionRestart
	case "ctrl+s":
		return "", HostActionScreenshot

	case "w", "up", " ":
		return core.KeyW, HostActionNone
	case "s", "down":
		return core.KeyS, HostActionNone
	case "q":
		return core.KeyQ, HostActionNone
	case "e":
		return core.KeyE, HostActionNone
	case "f2":
		return core.KeyF2, HostActionNone
	case "f4":
		return core.KeyF4, HostActionNone
	}

	return "", HostActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
