package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/skill-runner/internal/config"
	"github.com/vovakirdan/skill-runner/internal/core"
	"github.com/vovakirdan/skill-runner/internal/sched"
)

type recordingCanvas struct {
	clears  int
	sprites []Sprite
	texts   []string
}

func (c *recordingCanvas) ClearRect(_, _, _, _ float64) { c.clears++ }

func (c *recordingCanvas) DrawSprite(s Sprite, _, _, _, _ float64) {
	c.sprites = append(c.sprites, s)
}

func (c *recordingCanvas) FillText(text string, _, _ float64, _ TextStyle) {
	c.texts = append(c.texts, text)
}

func (c *recordingCanvas) StrokeText(_ string, _, _ float64, _ TextStyle) {}

type recordingAudio struct {
	played []Sound
}

func (a *recordingAudio) Play(s Sound) { a.played = append(a.played, s) }

type harness struct {
	s      *Session
	loop   *sched.Loop
	canvas *recordingCanvas
	audio  *recordingAudio
	keys   *core.KeyBus
	data   *GameData
}

func newHarness(t *testing.T, data *GameData, mutate func(*config.RunnerConfig)) *harness {
	t.Helper()

	cfg := config.DefaultRunnerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	if data == nil {
		data = NewGameData()
	}

	h := &harness{
		loop:   sched.New(),
		canvas: &recordingCanvas{},
		audio:  &recordingAudio{},
		keys:   core.NewKeyBus(),
		data:   data,
	}

	s, err := NewSession(cfg, data, Deps{
		Scheduler: h.loop,
		Canvas:    h.canvas,
		Audio:     h.audio,
		Keyboard:  h.keys,
		Seed:      7,
		FrameRate: 60,
	})
	require.NoError(t, err)
	h.s = s
	s.Start()
	return h
}

// groundOnly keeps every enemy in the ground lane.
func groundOnly(c *config.RunnerConfig) {
	c.Enemies.FlyChance = 1 << 30
}

// noSpawns keeps the board empty for the whole test.
func noSpawns(c *config.RunnerConfig) {
	c.Enemies.SpawnIntervalMS = int(time.Hour / time.Millisecond)
}

func TestNewSessionRequiresScheduler(t *testing.T) {
	_, err := NewSession(config.DefaultRunnerConfig(), NewGameData(), Deps{})
	assert.ErrorIs(t, err, ErrNoScheduler)
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Enemies.MaxAlive = 0
	_, err := NewSession(cfg, NewGameData(), Deps{Scheduler: sched.New()})
	assert.Error(t, err)
}

func TestSessionInitialState(t *testing.T) {
	h := newHarness(t, nil, nil)

	p := h.s.Player()
	assert.Equal(t, 50.0, p.X)
	assert.Equal(t, 374.0, p.Y)
	assert.Equal(t, 374.0, p.BaseY)
	assert.Equal(t, SpritePlayerDefault, p.Sprite)
	assert.Equal(t, -3.0, h.s.BaseSpeed())
	assert.Empty(t, h.s.Enemies())
	assert.Equal(t, 1, h.keys.Len())
}

func TestSessionSpawnsAndRamps(t *testing.T) {
	h := newHarness(t, nil, groundOnly)

	h.loop.Advance(1200 * time.Millisecond)
	require.Len(t, h.s.Enemies(), 1)
	assert.Equal(t, -3.5, h.s.Enemies()[0].Speed)

	h.loop.Advance(1800 * time.Millisecond)
	assert.Len(t, h.s.Enemies(), 2)
	assert.Equal(t, -4.5, h.s.BaseSpeed())
	assert.False(t, h.s.GameOver())
	assert.Contains(t, h.canvas.texts, "Score : 0")
}

func TestSessionKeyboardDispatch(t *testing.T) {
	h := newHarness(t, nil, noSpawns)

	h.keys.Dispatch(core.KeyW)
	assert.Equal(t, -10.0, h.s.Velocity())

	h.keys.Dispatch(core.KeyW)
	h.loop.Advance(100 * time.Millisecond)
	assert.True(t, h.s.Player().Airborne())

	assert.Equal(t, ActionDrop, h.s.HandleKey(core.KeyS))
	assert.Equal(t, 30.0, h.s.Velocity())
}

func TestSessionUnknownKeyIsNoop(t *testing.T) {
	h := newHarness(t, nil, nil)
	h.loop.Advance(time.Second)

	before := h.s.Snapshot()
	assert.Equal(t, ActionNone, h.s.HandleKey("KeyZ"))
	assert.Equal(t, ActionNone, h.s.HandleKey(core.KeyF2), "debug keys off by default")
	assert.Equal(t, before, h.s.Snapshot())
}

func TestSessionShotgun(t *testing.T) {
	data := NewGameData()
	data.PlayerSkills.ShotgunSkill = 2
	h := newHarness(t, data, groundOnly)

	h.loop.Advance(2500 * time.Millisecond)
	require.Len(t, h.s.Enemies(), 2)

	assert.Equal(t, ActionShotgun, h.s.HandleKey(core.KeyQ))
	assert.Empty(t, h.s.Enemies())
	assert.Equal(t, 100, h.s.Score())
	assert.Equal(t, 1, data.PlayerSkills.ShotgunSkill)
	assert.True(t, h.s.Flashing())
	assert.Equal(t, SpriteShotgun, h.s.Player().Sprite)
	assert.Equal(t, 107.0, h.s.Player().W)
	require.Len(t, h.audio.played, 1)
	assert.Contains(t, ShotgunSounds[:], h.audio.played[0])

	h.loop.Advance(499 * time.Millisecond)
	assert.True(t, h.s.Flashing())

	h.loop.Advance(time.Millisecond)
	assert.False(t, h.s.Flashing())
	assert.Equal(t, SpritePlayerDefault, h.s.Player().Sprite)
	assert.Equal(t, 62.0, h.s.Player().W)
}

func TestSessionShotgunGuards(t *testing.T) {
	t.Run("no charges", func(t *testing.T) {
		h := newHarness(t, nil, noSpawns)
		assert.Equal(t, ActionNone, h.s.HandleKey(core.KeyQ))
		assert.Equal(t, 0, h.s.Score())
		assert.Empty(t, h.audio.played)
	})

	t.Run("during mugen", func(t *testing.T) {
		data := NewGameData()
		data.PlayerSkills.ShotgunSkill = 1
		h := newHarness(t, data, noSpawns)

		require.Equal(t, ActionMugen, h.s.HandleKey(core.KeyE))
		assert.Equal(t, ActionNone, h.s.HandleKey(core.KeyQ))
		assert.Equal(t, 1, data.PlayerSkills.ShotgunSkill)
	})

	t.Run("empty board still pays the bonus", func(t *testing.T) {
		data := NewGameData()
		data.PlayerSkills.ShotgunSkill = 1
		h := newHarness(t, data, noSpawns)

		assert.Equal(t, ActionShotgun, h.s.HandleKey(core.KeyQ))
		assert.Equal(t, 100, h.s.Score())
	})
}

func TestSessionMugenLifecycle(t *testing.T) {
	h := newHarness(t, nil, noSpawns)
	m := &h.data.PlayerSkills.Mugen

	require.Equal(t, ActionMugen, h.s.HandleKey(core.KeyE))
	assert.Equal(t, 5, m.Active)
	assert.Equal(t, SpriteMugen, h.s.Player().Sprite)
	assert.Equal(t, 343.0, h.s.Player().BaseY)
	assert.Equal(t, []Sound{SoundMugen}, h.audio.played)
	assert.Equal(t, ActionNone, h.s.HandleKey(core.KeyE), "already active")

	for want := 4; want >= 1; want-- {
		h.loop.Advance(time.Second)
		assert.Equal(t, want, m.Active)
		assert.Equal(t, 0, m.Cooldown)
	}

	h.loop.Advance(time.Second)
	assert.Equal(t, 0, m.Active)
	assert.Equal(t, 15, m.Cooldown)
	assert.Equal(t, SpritePlayerDefault, h.s.Player().Sprite)
	assert.Equal(t, 374.0, h.s.Player().BaseY)
	assert.Equal(t, 62.0, h.s.Player().W)

	h.loop.Advance(14 * time.Second)
	assert.Equal(t, 1, m.Cooldown)
	assert.Equal(t, ActionNone, h.s.HandleKey(core.KeyE), "cooling down")

	h.loop.Advance(time.Second)
	assert.Equal(t, 0, m.Cooldown)
	assert.Equal(t, ActionMugen, h.s.HandleKey(core.KeyE))
}

func TestSessionMugenLiftsGroundedPlayer(t *testing.T) {
	h := newHarness(t, nil, noSpawns)
	require.True(t, h.s.Player().Grounded())

	require.Equal(t, ActionMugen, h.s.HandleKey(core.KeyE))
	p := h.s.Player()
	assert.Equal(t, 343.0, p.Y)
	assert.True(t, p.Grounded(), "player stands on the lifted ground straight away")
	assert.Equal(t, ActionJump, h.s.HandleKey(core.KeyW))
}

func TestSessionMugenKeepsAirbornePlayerInFlight(t *testing.T) {
	h := newHarness(t, nil, noSpawns)
	require.Equal(t, ActionJump, h.s.HandleKey(core.KeyW))
	h.loop.Advance(5 * (time.Second / 60))
	y := h.s.Player().Y
	require.Less(t, y, 343.0)

	require.Equal(t, ActionMugen, h.s.HandleKey(core.KeyE))
	assert.Equal(t, y, h.s.Player().Y)
	assert.True(t, h.s.Player().Airborne())
}

func TestSessionMugenBlockedDuringFlash(t *testing.T) {
	data := NewGameData()
	data.PlayerSkills.ShotgunSkill = 1
	h := newHarness(t, data, noSpawns)

	require.Equal(t, ActionShotgun, h.s.HandleKey(core.KeyQ))
	assert.Equal(t, ActionNone, h.s.HandleKey(core.KeyE))

	h.loop.Advance(500 * time.Millisecond)
	assert.Equal(t, ActionMugen, h.s.HandleKey(core.KeyE))
}

func TestSessionDodgeScoring(t *testing.T) {
	fast := func(c *config.RunnerConfig) {
		groundOnly(c)
		c.Enemies.BaseSpeed = -20
		c.Enemies.RampStep = 0
	}

	tests := []struct {
		name string
		x2   bool
		want int
	}{
		{"single points", false, 2},
		{"multiplier", true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, nil, fast)
			h.s.SetMultiplier(tt.x2)

			// Enemies pass straight through while mugen is active.
			require.Equal(t, ActionMugen, h.s.HandleKey(core.KeyE))
			h.loop.Advance(4 * time.Second)

			assert.False(t, h.s.GameOver())
			assert.Equal(t, tt.want, h.s.Score())
			if tt.x2 {
				assert.Contains(t, h.canvas.texts, "x2")
			}
		})
	}
}

func TestSessionGameOver(t *testing.T) {
	data := &GameData{Skin: SpritePlayerDefault, Money: 5, HighScore: 1000}
	h := newHarness(t, data, groundOnly)

	var settled []Settlement
	h.s.onOver = func(st Settlement) { settled = append(settled, st) }

	h.loop.Advance(10 * time.Second)
	require.True(t, h.s.GameOver())
	assert.Equal(t, 0, h.s.Score())

	assert.Equal(t, 0, h.loop.Pending(), "every trigger stops")
	assert.Equal(t, 5, data.Money)
	assert.Equal(t, 1000, data.HighScore)
	require.Len(t, settled, 1)
	assert.False(t, settled[0].NewHighScore)
	assert.Contains(t, h.canvas.texts, "Game Over!")
	assert.Contains(t, h.canvas.texts, "Money: 0")
	assert.NotContains(t, h.canvas.texts, "You Achieved a New High Score!")

	frozen := h.s.Snapshot()
	h.loop.Advance(5 * time.Second)
	assert.Equal(t, ActionNone, h.s.HandleKey(core.KeyW))
	assert.Equal(t, ActionNone, h.s.HandleKey(core.KeyE))
	assert.Equal(t, frozen, h.s.Snapshot())
	assert.Len(t, settled, 1)
}

func TestSessionGameOverNewHighScore(t *testing.T) {
	data := NewGameData()
	data.PlayerSkills.ShotgunSkill = 3
	h := newHarness(t, data, groundOnly)

	for i := 0; i < 3; i++ {
		require.Equal(t, ActionShotgun, h.s.HandleKey(core.KeyQ))
	}
	h.loop.Advance(10 * time.Second)
	require.True(t, h.s.GameOver())

	st := h.s.Settlement()
	assert.Equal(t, 300, st.Score)
	assert.Equal(t, 30, st.Earned)
	assert.True(t, st.NewHighScore)
	assert.Equal(t, 30, data.Money)
	assert.Equal(t, 300, data.HighScore)
	assert.Contains(t, h.canvas.texts, "You Achieved a New High Score!")
}

func TestSessionDebugKeys(t *testing.T) {
	debug := func(c *config.RunnerConfig) {
		groundOnly(c)
		c.Economy.DebugKeys = true
	}
	h := newHarness(t, &GameData{Money: 40}, debug)

	assert.Equal(t, ActionDebugGrant, h.s.HandleKey(core.KeyF2))
	assert.Equal(t, 1040, h.data.Money)
	assert.Equal(t, ActionDebugReset, h.s.HandleKey(core.KeyF4))
	assert.Equal(t, 0, h.data.Money)

	h.loop.Advance(10 * time.Second)
	require.True(t, h.s.GameOver())
	assert.Equal(t, ActionDebugGrant, h.s.HandleKey(core.KeyF2), "still honored after game over")
	assert.Equal(t, 1000, h.data.Money)
}

func TestSessionCleanupMidMugen(t *testing.T) {
	h := newHarness(t, &GameData{Money: 70}, noSpawns)
	h.s.SetMultiplier(true)

	require.Equal(t, ActionMugen, h.s.HandleKey(core.KeyE))
	h.loop.Advance(2 * time.Second)
	require.Equal(t, 3, h.data.PlayerSkills.Mugen.Active)

	h.s.Cleanup()

	assert.Equal(t, MugenState{}, h.data.PlayerSkills.Mugen)
	assert.False(t, h.data.PlayerSkills.ExtraScore)
	assert.Equal(t, 0, h.loop.Pending())
	assert.Equal(t, 0, h.keys.Len())
	assert.Equal(t, 70, h.data.Money, "cleanup without game over pays nothing")
	assert.True(t, h.s.Cleaned())

	h.s.Cleanup()
	assert.Equal(t, ActionNone, h.s.HandleKey(core.KeyW))

	frames := h.s.Frames()
	h.loop.Advance(time.Second)
	assert.Equal(t, frames, h.s.Frames())
}

func TestSessionCleanupMidFlash(t *testing.T) {
	data := NewGameData()
	data.PlayerSkills.ShotgunSkill = 1
	h := newHarness(t, data, noSpawns)

	require.Equal(t, ActionShotgun, h.s.HandleKey(core.KeyQ))
	h.s.Cleanup()

	assert.Equal(t, 0, h.loop.Pending())
	assert.False(t, h.s.Flashing())
	assert.Equal(t, SpritePlayerDefault, h.s.Player().Sprite)
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		data := NewGameData()
		data.PlayerSkills.ShotgunSkill = 1
		h := newHarness(t, data, nil)

		script := []struct {
			at  time.Duration
			key core.KeyCode
		}{
			{500 * time.Millisecond, core.KeyW},
			{2 * time.Second, core.KeyE},
			{2500 * time.Millisecond, core.KeyW},
			{9 * time.Second, core.KeyQ},
		}
		for _, step := range script {
			h.loop.Advance(step.at - h.loop.Now())
			h.keys.Dispatch(step.key)
		}
		h.loop.Advance(15*time.Second - h.loop.Now())
		return h.s.Snapshot()
	}

	assert.Equal(t, run(), run())
}
