package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skill-runner/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		code   core.KeyCode
		action HostAction
	}{
		{"w jumps", runeKey('w'), core.KeyW, HostActionNone},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.KeyW, HostActionNone},
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace}, core.KeyW, HostActionNone},
		{"s drops", runeKey('s'), core.KeyS, HostActionNone},
		{"q fires", runeKey('q'), core.KeyQ, HostActionNone},
		{"e mugen", runeKey('e'), core.KeyE, HostActionNone},
		{"f2 debug", tea.KeyMsg{Type: tea.KeyF2}, core.KeyF2, HostActionNone},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, "", HostActionQuit},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, "", HostActionBack},
		{"r restarts", runeKey('r'), "", HostActionRestart},
		{"ctrl+s screenshot", tea.KeyMsg{Type: tea.KeyCtrlS}, "", HostActionScreenshot},
		{"unmapped", runeKey('z'), "", HostActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, action := km.MapKey(tt.msg)
			if code != tt.code || action != tt.action {
				t.Errorf("MapKey() = (%q, %d), want (%q, %d)", code, action, tt.code, tt.action)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, want %d", tt.msg.String(), got, tt.want)
		}
	}
}
