package runner

import (
	"math"

	"github.com/vovakirdan/skill-runner/internal/config"
	"github.com/vovakirdan/skill-runner/internal/core"
)

// Player is the single controllable entity.
type Player struct {
	X, Y   float64 // top-left corner
	W, H   float64
	BaseY  float64 // ground level for the top edge; Y never exceeds it
	Sprite Sprite
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Grounded reports whether the player stands on the ground.
func (p Player) Grounded() bool {
	return p.Y == p.BaseY
}

// Airborne reports whether the player is above the ground.
func (p Player) Airborne() bool {
	return p.Y < p.BaseY
}

// Physics integrates the player's vertical motion once per frame.
//
// Velocity is not reset on landing: it keeps growing while the player is
// clamped to the ground, and only Jump or Drop overwrite it.
type Physics struct {
	Velocity float64

	gravity      float64
	jumpVelocity float64
	dropVelocity float64
}

// NewPhysics creates a physics unit at rest.
func NewPhysics(cfg config.PhysicsConfig) Physics {
	return Physics{
		gravity:      cfg.Gravity,
		jumpVelocity: cfg.JumpVelocity,
		dropVelocity: cfg.DropVelocity,
	}
}

// Step applies gravity and moves p, clamping it to its ground level.
func (ph *Physics) Step(p *Player) {
	ph.Velocity += ph.gravity
	p.Y = math.Min(p.Y+ph.Velocity, p.BaseY)
}

// Jump launches p upward. Only allowed while grounded.
func (ph *Physics) Jump(p *Player) bool {
	if !p.Grounded() {
		return false
	}
	ph.Velocity = ph.jumpVelocity
	return true
}

// Drop slams p toward the ground. Only allowed while airborne.
func (ph *Physics) Drop(p *Player) bool {
	if !p.Airborne() {
		return false
	}
	ph.Velocity = ph.dropVelocity
	return true
}
