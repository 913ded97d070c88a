// Package tui hosts the runner in a terminal with Bubble Tea: the game
// screen, the lobby, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per display refresh.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameStep(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameStep is the virtual time one tick advances the game by.
func frameStep(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
