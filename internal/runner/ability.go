package runner

import (
	"math/rand"

	"github.com/vovakirdan/skill-runner/internal/config"
	"github.com/vovakirdan/skill-runner/internal/sched"
)

// look is the part of the player an ability may temporarily replace.
type look struct {
	sprite Sprite
	w, h   float64
	baseY  float64
}

// Abilities runs the shotgun and mugen state machines.
//
// Shotgun: Idle -> Flash (FlashMS) -> Idle, limited by charges.
// Mugen:   Idle -> Active (ActiveSecs) -> Cooldown (CooldownSecs) -> Idle.
// Mugen counters advance only through Tick, which the session calls from a
// single shared one-second trigger.
type Abilities struct {
	cfg      config.AbilityConfig
	skills   *PlayerSkills
	player   *Player
	base     look
	sched    Scheduler
	audio    Audio
	rng      *rand.Rand
	flash    sched.Handle
	flashing bool
}

func newAbilities(cfg config.AbilityConfig, skills *PlayerSkills, player *Player, s Scheduler, audio Audio, rng *rand.Rand) *Abilities {
	return &Abilities{
		cfg:    cfg,
		skills: skills,
		player: player,
		base: look{
			sprite: player.Sprite,
			w:      player.W,
			h:      player.H,
			baseY:  player.BaseY,
		},
		sched: s,
		audio: audio,
		rng:   rng,
	}
}

// CanFireShotgun reports whether a shotgun blast is allowed right now.
func (a *Abilities) CanFireShotgun() bool {
	return a.skills.ShotgunSkill > 0 && a.skills.Mugen.Active <= 0
}

// FireShotgun consumes a charge, shows the shotgun pose and plays a random
// blast. Clearing enemies and awarding the bonus is the caller's job.
func (a *Abilities) FireShotgun() bool {
	if !a.CanFireShotgun() {
		return false
	}
	a.skills.ShotgunSkill--

	a.player.Sprite = SpriteShotgun
	a.player.W = a.cfg.Shotgun.Width

	// A second blast inside the flash window restarts it.
	if a.flashing {
		a.sched.Cancel(a.flash)
	}
	a.flashing = true
	a.flash = a.sched.After(a.cfg.Shotgun.Flash(), a.endFlash)

	a.audio.Play(ShotgunSounds[a.rng.Intn(len(ShotgunSounds))])
	return true
}

func (a *Abilities) endFlash() {
	a.flashing = false
	a.flash = 0
	a.restore()
}

// Flashing reports whether the shotgun pose is on screen.
func (a *Abilities) Flashing() bool {
	return a.flashing
}

// CanActivateMugen reports whether invulnerability can start right now.
// It is blocked while the shotgun pose is showing so only one ability
// look is ever displayed.
func (a *Abilities) CanActivateMugen() bool {
	m := a.skills.Mugen
	return m.Active <= 0 && m.Cooldown <= 0 && !a.flashing
}

// ActivateMugen starts invulnerability and swaps in the mugen look.
func (a *Abilities) ActivateMugen() bool {
	if !a.CanActivateMugen() {
		return false
	}

	grounded := a.player.Grounded()
	a.player.Sprite = SpriteMugen
	a.player.W = a.cfg.Mugen.Width
	a.player.H = a.cfg.Mugen.Height
	a.player.BaseY = a.base.baseY - a.cfg.Mugen.Lift
	if grounded {
		a.player.Y = a.player.BaseY
	}

	a.skills.Mugen.Active = a.cfg.Mugen.ActiveSecs
	a.audio.Play(SoundMugen)
	return true
}

// Invulnerable reports whether lethal collisions are ignored.
func (a *Abilities) Invulnerable() bool {
	return a.skills.Mugen.Active > 0
}

// Tick advances the mugen state machine by one second. The active
// countdown finishes before the cooldown starts, so they never overlap.
func (a *Abilities) Tick() {
	m := &a.skills.Mugen
	switch {
	case m.Active > 0:
		m.Active--
		if m.Active == 0 {
			a.restore()
			m.Cooldown = a.cfg.Mugen.CooldownSecs
		}
	case m.Cooldown > 0:
		m.Cooldown--
	}
}

// Reset cancels the pending flash, zeroes the mugen timers and restores
// the default look.
func (a *Abilities) Reset() {
	if a.flashing {
		a.sched.Cancel(a.flash)
		a.flashing = false
		a.flash = 0
	}
	a.skills.Mugen = MugenState{}
	a.restore()
}

func (a *Abilities) restore() {
	a.player.Sprite = a.base.sprite
	a.player.W = a.base.w
	a.player.H = a.base.h
	a.player.BaseY = a.base.baseY
}
