package runner

import (
	"math/rand"

	"github.com/vovakirdan/skill-runner/internal/config"
	"github.com/vovakirdan/skill-runner/internal/core"
)

// Enemy is an obstacle moving leftward across the board.
type Enemy struct {
	ID     uint64 // spawn sequence number, starting at 1
	X, Y   float64
	W, H   float64
	Speed  float64 // added to X every frame
	Skin   Sprite
	Flying bool // spawned in the elevated lane
	Passed bool // already scored as dodged
}

// Rect returns the collision rectangle for this enemy.
func (e Enemy) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Spawner owns the live enemy sequence and the shared enemy speed.
type Spawner struct {
	template  Enemy
	speed     float64
	maxSpeed  float64
	rampStep  float64
	maxAlive  int
	flyChance int
	flyOffset float64
	skins     []Sprite
	rng       *rand.Rand
	enemies   []Enemy
	nextID    uint64
}

// NewSpawner creates a spawner for a board of the given height.
func NewSpawner(cfg config.EnemyConfig, boardH float64, rng *rand.Rand) *Spawner {
	skins := make([]Sprite, len(cfg.Skins))
	for i, s := range cfg.Skins {
		skins[i] = Sprite(s)
	}

	maxAlive := cfg.MaxAlive
	if maxAlive < 1 {
		maxAlive = 1
	}
	flyChance := cfg.FlyChance
	if flyChance < 1 {
		flyChance = 1
	}

	return &Spawner{
		template: Enemy{
			X: cfg.SpawnX,
			Y: boardH - cfg.Height,
			W: cfg.Width,
			H: cfg.Height,
		},
		speed:     cfg.BaseSpeed,
		maxSpeed:  cfg.MaxSpeed,
		rampStep:  cfg.RampStep,
		maxAlive:  maxAlive,
		flyChance: flyChance,
		flyOffset: cfg.FlyOffset,
		skins:     skins,
		rng:       rng,
		enemies:   make([]Enemy, 0, maxAlive+1),
	}
}

// Spawn appends a new enemy copied from the template at the current speed.
// When the sequence grows past the cap, the oldest enemy is evicted.
func (sp *Spawner) Spawn() Enemy {
	sp.nextID++
	e := sp.template
	e.ID = sp.nextID
	e.Speed = sp.speed

	if len(sp.skins) > 0 {
		e.Skin = sp.skins[sp.rng.Intn(len(sp.skins))]
	}
	if sp.rng.Intn(sp.flyChance) == 0 {
		e.Y -= sp.flyOffset
		e.Flying = true
	}

	sp.enemies = append(sp.enemies, e)
	if len(sp.enemies) > sp.maxAlive {
		n := copy(sp.enemies, sp.enemies[1:])
		sp.enemies = sp.enemies[:n]
	}
	return e
}

// Ramp makes future enemies faster by one step, stopping at the speed floor.
// It reports whether the speed changed.
func (sp *Spawner) Ramp() bool {
	if sp.rampStep <= 0 || sp.speed <= sp.maxSpeed {
		return false
	}
	next := sp.speed - sp.rampStep
	if next < sp.maxSpeed {
		next = sp.maxSpeed
	}
	sp.speed = next
	return true
}

// Speed returns the speed the next spawned enemy will get.
func (sp *Spawner) Speed() float64 {
	return sp.speed
}

// Each calls fn for every live enemy in insertion order until fn returns false.
func (sp *Spawner) Each(fn func(e *Enemy) bool) {
	for i := range sp.enemies {
		if !fn(&sp.enemies[i]) {
			return
		}
	}
}

// Enemies returns a copy of the live enemies in insertion order.
func (sp *Spawner) Enemies() []Enemy {
	out := make([]Enemy, len(sp.enemies))
	copy(out, sp.enemies)
	return out
}

// Len returns the number of live enemies.
func (sp *Spawner) Len() int {
	return len(sp.enemies)
}

// Clear removes every enemy and returns how many were removed.
func (sp *Spawner) Clear() int {
	n := len(sp.enemies)
	sp.enemies = sp.enemies[:0]
	return n
}
