// Package runner implements the obstacle-dodging runner: player physics,
// the enemy stream, collision scoring, the shotgun and mugen abilities and
// the money ledger, all driven by a virtual-time scheduler owned by the host.
package runner

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skill-runner/internal/config"
	"github.com/vovakirdan/skill-runner/internal/core"
	"github.com/vovakirdan/skill-runner/internal/sched"
)

// ErrNoScheduler is returned when a session is built without a scheduler.
var ErrNoScheduler = errors.New("runner: scheduler is required")

// Deps are the collaborators a session talks to. Only Scheduler is
// required; missing drawing, audio and keyboard collaborators are no-ops.
type Deps struct {
	Scheduler Scheduler
	Canvas    Canvas
	Audio     Audio
	Keyboard  Keyboard
	Logger    *log.Logger
	Seed      int64
	FrameRate int

	// OnGameOver is called once, after the settlement is applied.
	OnGameOver func(Settlement)
}

// Session is one run from Start until game over or Cleanup.
type Session struct {
	cfg  config.RunnerConfig
	data *GameData
	log  *log.Logger

	sched    Scheduler
	canvas   Canvas
	keyboard Keyboard
	onOver   func(Settlement)

	player    Player
	physics   Physics
	spawner   *Spawner
	abilities *Abilities
	ledger    *Ledger
	input     *InputHandler
	frames    *FrameScheduler

	spawnTimer  sched.Handle
	rampTimer   sched.Handle
	secondTimer sched.Handle
	removeKeys  func()

	settlement Settlement
	started    bool
	gameOver   bool
	cleaned    bool
}

// NewSession builds a session over data. The session mutates data in place
// until Cleanup returns.
func NewSession(cfg config.RunnerConfig, data *GameData, deps Deps) (*Session, error) {
	if deps.Scheduler == nil {
		return nil, ErrNoScheduler
	}
	if data == nil {
		data = NewGameData()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	canvas := deps.Canvas
	if canvas == nil {
		canvas = nopCanvas{}
	}
	audio := deps.Audio
	if audio == nil {
		audio = nopAudio{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	skin := data.Skin
	if skin == "" {
		skin = SpritePlayerDefault
	}
	baseY := cfg.Board.Height - cfg.Player.Height

	s := &Session{
		cfg:      cfg,
		data:     data,
		log:      logger,
		sched:    deps.Scheduler,
		canvas:   canvas,
		keyboard: deps.Keyboard,
		onOver:   deps.OnGameOver,
		player: Player{
			X:      cfg.Player.X,
			Y:      baseY,
			W:      cfg.Player.Width,
			H:      cfg.Player.Height,
			BaseY:  baseY,
			Sprite: skin,
		},
		physics: NewPhysics(cfg.Physics),
		ledger:  newLedger(data, cfg.Economy.MoneyPerHundred),
	}

	rng := rand.New(rand.NewSource(deps.Seed))
	s.spawner = NewSpawner(cfg.Enemies, cfg.Board.Height, rng)
	s.abilities = newAbilities(cfg.Abilities, &data.PlayerSkills, &s.player, deps.Scheduler, audio, rng)
	s.input = &InputHandler{s: s, debug: cfg.Economy.DebugKeys}
	s.frames = NewFrameScheduler(deps.Scheduler, deps.FrameRate, s.frame)

	return s, nil
}

// Start registers the key listener and every periodic trigger, then begins
// requesting frames. It does nothing on a started or cleaned-up session.
func (s *Session) Start() {
	if s.started || s.cleaned {
		return
	}
	s.started = true

	if s.keyboard != nil {
		s.removeKeys = s.keyboard.AddKeyDownListener(func(code core.KeyCode) {
			s.input.HandleKey(code)
		})
	}

	s.spawnTimer = s.sched.Every(s.cfg.Enemies.SpawnInterval(), func() {
		s.spawner.Spawn()
	})
	s.rampTimer = s.sched.Every(s.cfg.Enemies.RampInterval(), func() {
		s.spawner.Ramp()
	})
	s.secondTimer = s.sched.Every(time.Second, s.abilities.Tick)
	s.frames.Start()

	s.log.Info("session started",
		"money", s.data.Money,
		"highScore", s.data.HighScore,
		"shotgun", s.data.PlayerSkills.ShotgunSkill,
		"x2", s.data.PlayerSkills.ExtraScore,
	)
}

func (s *Session) fireShotgun() bool {
	if !s.abilities.FireShotgun() {
		return false
	}
	cleared := s.spawner.Clear()
	s.ledger.Bonus(s.cfg.Abilities.Shotgun.Bonus)
	s.log.Info("shotgun fired",
		"cleared", cleared,
		"charges", s.data.PlayerSkills.ShotgunSkill,
		"score", s.ledger.Score(),
	)
	return true
}

func (s *Session) activateMugen() bool {
	if !s.abilities.ActivateMugen() {
		return false
	}
	s.log.Info("mugen activated", "secs", s.data.PlayerSkills.Mugen.Active)
	return true
}

func (s *Session) stopTriggers() {
	s.frames.Stop()
	for _, h := range []*sched.Handle{&s.spawnTimer, &s.rampTimer, &s.secondTimer} {
		if *h != 0 {
			s.sched.Cancel(*h)
			*h = 0
		}
	}
}

func (s *Session) endGame() {
	s.gameOver = true
	s.stopTriggers()

	s.settlement = s.ledger.Settle()
	s.drawGameOver(s.settlement)

	s.log.Info("game over",
		"score", s.settlement.Score,
		"earned", s.settlement.Earned,
		"money", s.settlement.Money,
		"highScore", s.settlement.HighScore,
		"newHigh", s.settlement.NewHighScore,
	)

	if s.onOver != nil {
		s.onOver(s.settlement)
	}
}

// Cleanup stops every trigger, removes the key listener and resets the
// per-session skill state: mugen timers and the score multiplier. Money
// is not settled unless the session already ended. Safe to call twice.
func (s *Session) Cleanup() {
	if s.cleaned {
		return
	}
	s.cleaned = true

	s.stopTriggers()
	s.abilities.Reset()
	s.data.PlayerSkills.ExtraScore = false

	if s.removeKeys != nil {
		s.removeKeys()
		s.removeKeys = nil
	}

	s.log.Info("session cleaned up", "score", s.ledger.Score(), "gameOver", s.gameOver)
}

// HandleKey applies a key press as if it came from the keyboard.
func (s *Session) HandleKey(code core.KeyCode) Action {
	return s.input.HandleKey(code)
}

// SetMultiplier toggles double dodge points.
func (s *Session) SetMultiplier(on bool) {
	s.data.PlayerSkills.ExtraScore = on
}

// Score returns the current score.
func (s *Session) Score() int { return s.ledger.Score() }

// GameOver reports whether the session has ended.
func (s *Session) GameOver() bool { return s.gameOver }

// Cleaned reports whether Cleanup has run.
func (s *Session) Cleaned() bool { return s.cleaned }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Velocity returns the player's vertical velocity.
func (s *Session) Velocity() float64 { return s.physics.Velocity }

// Enemies returns a copy of the live enemies in spawn order.
func (s *Session) Enemies() []Enemy { return s.spawner.Enemies() }

// BaseSpeed returns the speed the next enemy will spawn with.
func (s *Session) BaseSpeed() float64 { return s.spawner.Speed() }

// Data returns the context record the session mutates.
func (s *Session) Data() *GameData { return s.data }

// Flashing reports whether the shotgun pose is on screen.
func (s *Session) Flashing() bool { return s.abilities.Flashing() }

// Frames returns how many frames have run.
func (s *Session) Frames() uint64 { return s.frames.Frames() }

// Settlement returns the game-over payout. It is zero until the game ends.
func (s *Session) Settlement() Settlement { return s.settlement }

// Config returns the tuning the session was built with.
func (s *Session) Config() config.RunnerConfig { return s.cfg }
