// Package audio plays the runner's synthesized sound effects through the
// system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/skill-runner/internal/runner"
)

// SampleRate is the output rate of every effect.
const SampleRate = beep.SampleRate(44100)

// Engine mixes effects onto the speaker. Play never blocks the caller.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	log         *log.Logger
}

// NewEngine creates an engine with a linear master volume in [0, 1].
func NewEngine(volume float64, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		mixer:  &beep.Mixer{},
		volume: volume,
		log:    logger,
	}
}

// Init opens the speaker. It is safe to call more than once.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Play queues a sound. Before Init or after Close it does nothing.
func (e *Engine) Play(sound runner.Sound) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	s := Effect(sound, SampleRate, e.volume)
	if s == nil {
		e.log.Debug("unknown sound", "sound", sound)
		return
	}

	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything still playing.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}

// Nop discards every sound. Used for muted and remote sessions.
type Nop struct{}

// Play does nothing.
func (Nop) Play(runner.Sound) {}

var (
	_ runner.Audio = (*Engine)(nil)
	_ runner.Audio = Nop{}
)
