package runner

import (
	"fmt"
	"time"

	"github.com/vovakirdan/skill-runner/internal/core"
	"github.com/vovakirdan/skill-runner/internal/sched"
)

// FrameScheduler requests one simulation pass per display refresh until
// stopped. The step is fixed; frames that arrive late are not compensated.
type FrameScheduler struct {
	sched  Scheduler
	step   time.Duration
	frame  func()
	handle sched.Handle
	frames uint64
}

// NewFrameScheduler creates a scheduler running fn at fps frames per second.
func NewFrameScheduler(s Scheduler, fps int, fn func()) *FrameScheduler {
	if fps <= 0 {
		fps = 60
	}
	return &FrameScheduler{
		sched: s,
		step:  time.Second / time.Duration(fps),
		frame: fn,
	}
}

// Start begins requesting frames. Calling Start while running does nothing.
func (f *FrameScheduler) Start() {
	if f.handle != 0 {
		return
	}
	f.handle = f.sched.Every(f.step, func() {
		f.frames++
		f.frame()
	})
}

// Stop cancels the pending frame request.
func (f *FrameScheduler) Stop() {
	if f.handle == 0 {
		return
	}
	f.sched.Cancel(f.handle)
	f.handle = 0
}

// Running reports whether frames are being requested.
func (f *FrameScheduler) Running() bool {
	return f.handle != 0
}

// Frames returns how many frames have run.
func (f *FrameScheduler) Frames() uint64 {
	return f.frames
}

// Step returns the nominal frame duration.
func (f *FrameScheduler) Step() time.Duration {
	return f.step
}

// frame runs one simulation and render pass.
func (s *Session) frame() {
	if s.gameOver {
		return
	}

	b := s.cfg.Board
	s.canvas.ClearRect(0, 0, b.Width, b.Height)
	s.drawScore()
	s.drawAbilities()

	s.physics.Step(&s.player)
	s.canvas.DrawSprite(s.player.Sprite, s.player.X, s.player.Y, s.player.W, s.player.H)

	s.spawner.Each(func(e *Enemy) bool {
		e.X += e.Speed
		s.canvas.DrawSprite(e.Skin, e.X, e.Y, e.W, e.H)

		switch Classify(s.player, e) {
		case OutcomeLethal:
			if !s.abilities.Invulnerable() {
				s.endGame()
				return false
			}
		case OutcomeScore:
			s.ledger.Dodge()
		}
		return true
	})
}

func (s *Session) drawScore() {
	mid := s.cfg.Board.Width / 2
	text := fmt.Sprintf("Score : %d", s.ledger.Score())

	if s.data.PlayerSkills.ExtraScore {
		s.canvas.FillText("x2", mid-90, 30, TextStyle{Font: FontHUD, Color: core.ColorRed})
		s.canvas.FillText(text, mid-60, 30, TextStyle{Font: FontHUD, Color: core.ColorWhite})
		return
	}
	s.canvas.FillText(text, mid-50, 30, TextStyle{Font: FontHUD, Color: core.ColorBlack})
	s.canvas.StrokeText(text, mid-50, 30, TextStyle{Font: FontHUD, Color: core.ColorOrange})
}

func (s *Session) drawAbilities() {
	style := TextStyle{Font: FontHUD, Color: core.ColorGray}
	skills := s.data.PlayerSkills

	s.canvas.FillText(fmt.Sprintf("Shotgun x%d", skills.ShotgunSkill), 20, 30, style)

	var mugen string
	switch {
	case skills.Mugen.Active > 0:
		mugen = fmt.Sprintf("Mugen %ds", skills.Mugen.Active)
		style.Color = core.ColorBrightYellow
	case skills.Mugen.Cooldown > 0:
		mugen = fmt.Sprintf("Mugen cd %ds", skills.Mugen.Cooldown)
	default:
		mugen = "Mugen ready"
		style.Color = core.ColorGreen
	}
	s.canvas.FillText(mugen, 20, 60, style)
}

func (s *Session) drawGameOver(st Settlement) {
	midX, midY := s.cfg.Board.Width/2, s.cfg.Board.Height/2
	style := TextStyle{Font: FontHUD, Color: core.ColorBlack, Align: AlignCenter}

	s.canvas.FillText("Game Over!", midX, midY, style)
	s.canvas.FillText(fmt.Sprintf("Money: %d", st.Earned), midX, midY+30, style)

	if st.NewHighScore {
		style.Color = core.ColorRed
		s.canvas.FillText("You Achieved a New High Score!", midX, midY-30, style)
	}
}
