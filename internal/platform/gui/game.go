// Package gui hosts the runner in a desktop window with Ebitengine.
package gui

import (
	"errors"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/skill-runner/internal/config"
	"github.com/vovakirdan/skill-runner/internal/core"
	"github.com/vovakirdan/skill-runner/internal/runner"
	"github.com/vovakirdan/skill-runner/internal/sched"
	"github.com/vovakirdan/skill-runner/internal/storage"
)

// debugGlyphW is the advance of ebitenutil's debug font.
const debugGlyphW = 6

// Options configures the window host.
type Options struct {
	Config  config.RunnerConfig
	Data    *runner.GameData
	Profile string
	Store   *storage.Store // optional
	Audio   runner.Audio   // optional
	Logger  *log.Logger    // optional
	FPS     int
	Seed    int64 // 0 picks a new seed every run
}

// keyCodes maps window keys to game key codes.
var keyCodes = []struct {
	key  ebiten.Key
	code core.KeyCode
}{
	{ebiten.KeyW, core.KeyW},
	{ebiten.KeyArrowUp, core.KeyW},
	{ebiten.KeySpace, core.KeyW},
	{ebiten.KeyS, core.KeyS},
	{ebiten.KeyArrowDown, core.KeyS},
	{ebiten.KeyQ, core.KeyQ},
	{ebiten.KeyE, core.KeyE},
	{ebiten.KeyF2, core.KeyF2},
	{ebiten.KeyF4, core.KeyF4},
}

// Game implements ebiten.Game. Every Update advances the session clock by
// one nominal frame.
type Game struct {
	opts    Options
	list    *DisplayList
	loop    *sched.Loop
	keys    *core.KeyBus
	session *runner.Session
	saved   bool
}

// NewGame creates a window host and starts its first session.
func NewGame(opts Options) (*Game, error) {
	if opts.Data == nil {
		opts.Data = runner.NewGameData()
	}
	if opts.Profile == "" {
		opts.Profile = storage.DefaultProfile
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}

	g := &Game{opts: opts, list: NewDisplayList(opts.Config)}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) restart() error {
	if g.session != nil {
		g.session.Cleanup()
	}

	seed := g.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g.loop = sched.New()
	g.keys = core.NewKeyBus()
	g.saved = false

	s, err := runner.NewSession(g.opts.Config, g.opts.Data, runner.Deps{
		Scheduler: g.loop,
		Canvas:    g.list,
		Audio:     g.opts.Audio,
		Keyboard:  g.keys,
		Logger:    g.opts.Logger.With("profile", g.opts.Profile),
		Seed:      seed,
		FrameRate: g.opts.FPS,
	})
	if err != nil {
		return err
	}
	g.session = s
	g.session.Start()
	return nil
}

// Update reads input and advances the simulation by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.session.GameOver() {
		return g.restart()
	}

	for _, k := range keyCodes {
		if inpututil.IsKeyJustPressed(k.key) {
			g.keys.Dispatch(k.code)
		}
	}

	g.Step()
	return nil
}

// Step advances the session by one frame and persists a finished run.
func (g *Game) Step() {
	g.loop.Advance(time.Second / time.Duration(g.opts.FPS))

	if g.session.GameOver() && !g.saved {
		g.saved = true
		if g.opts.Store == nil {
			return
		}
		st := g.session.Settlement()
		if _, err := g.opts.Store.SaveScore(g.opts.Profile, st.Score, st.Earned); err != nil {
			g.opts.Logger.Warn("could not save score", "error", err)
		}
		if err := g.opts.Store.SaveProfile(g.opts.Profile, g.opts.Data); err != nil {
			g.opts.Logger.Warn("could not save profile", "error", err)
		}
	}
}

// Close ends the session and saves the wallet.
func (g *Game) Close() {
	g.session.Cleanup()
	if g.opts.Store != nil {
		//nolint:errcheck // Best-effort save on exit
		g.opts.Store.SaveProfile(g.opts.Profile, g.opts.Data)
	}
}

// Session returns the running session.
func (g *Game) Session() *runner.Session { return g.session }

// Draw replays the frame recorded during the last Update.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff})

	for _, o := range g.list.ops {
		switch o.kind {
		case opSprite:
			vector.FillRect(screen, float32(o.x), float32(o.y), float32(o.w), float32(o.h), o.fill, false)
		case opText:
			x := int(o.x)
			if o.align == runner.AlignCenter {
				x -= len(o.text) * debugGlyphW / 2
			}
			// Text y is a baseline; the debug font draws from its top.
			ebitenutil.DebugPrintAt(screen, o.text, x, int(o.y)-12)
		}
	}
}

// Layout keeps the logical screen at board size; Ebitengine scales it to
// the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.opts.Config.Board.Width), int(g.opts.Config.Board.Height)
}

// Run opens a window and plays until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(int(opts.Config.Board.Width), int(opts.Config.Board.Height))
	ebiten.SetWindowTitle("Skill Runner")
	ebiten.SetTPS(g.opts.FPS)

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if !g.session.Cleaned() {
		g.Close()
	}
	return err
}
