package runner

import "github.com/vovakirdan/skill-runner/internal/core"

// Action is the effect a key press had on the session.
type Action int

const (
	ActionNone Action = iota
	ActionJump
	ActionDrop
	ActionShotgun
	ActionMugen
	ActionDebugGrant
	ActionDebugReset
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionDrop:
		return "Drop"
	case ActionShotgun:
		return "Shotgun"
	case ActionMugen:
		return "Mugen"
	case ActionDebugGrant:
		return "DebugGrant"
	case ActionDebugReset:
		return "DebugReset"
	default:
		return "Unknown"
	}
}

// InputHandler maps key codes to session actions. Every action has its
// own guard; a failed guard or an unknown key changes nothing.
type InputHandler struct {
	s     *Session
	debug bool
}

// HandleKey applies code and returns the action that took effect.
func (h *InputHandler) HandleKey(code core.KeyCode) Action {
	s := h.s
	if s.cleaned {
		return ActionNone
	}

	// Debug wallet keys work even after game over.
	if h.debug {
		switch code {
		case core.KeyF2:
			s.ledger.Grant(s.cfg.Economy.DebugGrant)
			s.log.Debug("debug money granted", "money", s.data.Money)
			return ActionDebugGrant
		case core.KeyF4:
			s.ledger.ResetMoney()
			s.log.Debug("debug money reset")
			return ActionDebugReset
		}
	}

	if s.gameOver {
		return ActionNone
	}

	switch code {
	case core.KeyW:
		if s.physics.Jump(&s.player) {
			return ActionJump
		}
	case core.KeyS:
		if s.physics.Drop(&s.player) {
			return ActionDrop
		}
	case core.KeyQ:
		if s.fireShotgun() {
			return ActionShotgun
		}
	case core.KeyE:
		if s.activateMugen() {
			return ActionMugen
		}
	}
	return ActionNone
}
