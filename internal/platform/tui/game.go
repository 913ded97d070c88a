package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skill-runner/internal/config"
	"github.com/vovakirdan/skill-runner/internal/core"
	"github.com/vovakirdan/skill-runner/internal/runner"
	"github.com/vovakirdan/skill-runner/internal/sched"
	"github.com/vovakirdan/skill-runner/internal/storage"
)

// ConfigReloadedMsg carries a config picked up by the file watcher. It
// takes effect from the next restart.
type ConfigReloadedMsg struct {
	Config config.RunnerConfig
}

// GameOptions configures a terminal game host.
type GameOptions struct {
	Config  config.RunnerConfig
	Data    *runner.GameData
	Profile string
	Store   *storage.Store // optional
	Audio   runner.Audio   // optional
	Logger  *log.Logger    // optional
	Runtime core.RuntimeConfig
}

// GameModel runs one runner session at a time inside Bubble Tea. Every
// tick advances the session's virtual clock by exactly one frame.
type GameModel struct {
	opts    GameOptions
	screen  *core.Screen
	canvas  *ScreenCanvas
	keymap  *KeyMapper
	loop    *sched.Loop
	keys    *core.KeyBus
	session *runner.Session
	pending *config.RunnerConfig
	notice  string
	saved   bool
	err     error

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a host and starts its first session.
func NewGameModel(opts GameOptions) GameModel {
	if opts.Data == nil {
		opts.Data = runner.NewGameData()
	}
	if opts.Profile == "" {
		opts.Profile = storage.DefaultProfile
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}

	screen := core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 1))
	m := GameModel{
		opts:   opts,
		screen: screen,
		canvas: NewScreenCanvas(screen, opts.Config),
		keymap: NewKeyMapper(),
	}
	m.start()
	return m
}

// start replaces the current session with a fresh one on the same data.
func (m *GameModel) start() {
	if m.session != nil {
		m.session.Cleanup()
	}
	if m.pending != nil {
		m.opts.Config = *m.pending
		m.canvas = NewScreenCanvas(m.screen, m.opts.Config)
		m.pending = nil
	}

	seed := m.opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m.loop = sched.New()
	m.keys = core.NewKeyBus()
	m.saved = false
	m.notice = ""
	m.screen.Clear()

	session, err := runner.NewSession(m.opts.Config, m.opts.Data, runner.Deps{
		Scheduler: m.loop,
		Canvas:    m.canvas,
		Audio:     m.opts.Audio,
		Keyboard:  m.keys,
		Logger:    m.opts.Logger.With("profile", m.opts.Profile),
		Seed:      seed,
		FrameRate: m.opts.Runtime.TickRate,
	})
	if err != nil {
		m.err = err
		m.session = nil
		return
	}
	m.session = session
	m.session.Start()
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		return m, nil

	case ConfigReloadedMsg:
		cfg := msg.Config
		m.pending = &cfg
		m.notice = "config reloaded, press r to apply"
		m.opts.Logger.Info("config reloaded")
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey forwards game keys to the session and handles host keys.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	code, action := m.keymap.MapKey(msg)

	switch action {
	case HostActionQuit:
		m.shutdown()
		m.quitting = true
		return m, tea.Quit
	case HostActionBack:
		m.shutdown()
		m.backToMenu = true
		return m, tea.Quit
	case HostActionScreenshot:
		m.saveScreenshot()
		return m, nil
	case HostActionRestart:
		if m.session == nil || m.session.GameOver() {
			m.start()
		}
		return m, nil
	}

	if code != "" && m.session != nil {
		m.keys.Dispatch(code)
	}
	return m, nil
}

// handleTick advances the game by one frame.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	if m.session == nil {
		return m, tickCmd(m.opts.Runtime.TickRate)
	}

	m.loop.Advance(frameStep(m.opts.Runtime.TickRate))

	if m.session.GameOver() && !m.saved {
		m.saveResult()
		m.saved = true
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

// saveResult records the run and the wallet once per game over.
func (m *GameModel) saveResult() {
	if m.opts.Store == nil {
		return
	}
	st := m.session.Settlement()
	if _, err := m.opts.Store.SaveScore(m.opts.Profile, st.Score, st.Earned); err != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
	}
	if err := m.opts.Store.SaveProfile(m.opts.Profile, m.opts.Data); err != nil {
		m.opts.Logger.Warn("could not save profile", "error", err)
	}
}

// shutdown tears the session down and persists the wallet.
func (m *GameModel) shutdown() {
	if m.session == nil {
		return
	}
	m.session.Cleanup()
	if m.opts.Store != nil {
		//nolint:errcheck // Best-effort save on exit
		m.opts.Store.SaveProfile(m.opts.Profile, m.opts.Data)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("runner_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
	m.notice = "screenshot saved"
}

// View renders the board and the status bar.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("cannot start game: %v\n\nesc: back  ctrl+c: quit\n", m.err)
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(RenderStatus(m.status(), m.opts.Runtime.ScreenW))
	return b.String()
}

func (m GameModel) status() Status {
	d := m.opts.Data
	return Status{
		Profile:   m.opts.Profile,
		Money:     d.Money,
		HighScore: d.HighScore,
		Notice:    m.notice,
		GameOver:  m.session != nil && m.session.GameOver(),
	}
}

// Session returns the running session, or nil if it failed to start.
func (m GameModel) Session() *runner.Session { return m.session }

// Data returns the context record the host plays with.
func (m GameModel) Data() *runner.GameData { return m.opts.Data }

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool { return m.backToMenu }

// Run plays in the current terminal until the user quits or goes back.
// Config updates from watcher, when non-nil, are forwarded to the game.
func Run(opts GameOptions, watcher *config.Watcher) (goBack bool, err error) {
	p := tea.NewProgram(NewGameModel(opts), tea.WithAltScreen())

	if watcher != nil {
		go forwardReloads(p, watcher, opts.Logger)
	}

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	return ok && m.BackToMenu(), nil
}

// forwardReloads relays watcher output into the program until the
// watcher is closed.
func forwardReloads(p *tea.Program, w *config.Watcher, logger *log.Logger) {
	updates, errs := w.Updates, w.Errors
	for updates != nil || errs != nil {
		select {
		case cfg, ok := <-updates:
			if !ok {
				updates = nil
				continue
			}
			p.Send(ConfigReloadedMsg{Config: cfg})
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if logger != nil {
				logger.Warn("config reload failed", "error", err)
			}
		}
	}
}
