package runner

import (
	"time"

	"github.com/vovakirdan/skill-runner/internal/core"
	"github.com/vovakirdan/skill-runner/internal/sched"
)

// Sprite names an image the canvas collaborator knows how to draw.
type Sprite string

const (
	SpritePlayerDefault Sprite = "player-default"
	SpriteShotgun       Sprite = "skill-shotgun"
	SpriteMugen         Sprite = "skill-mugen"
)

// Sound names a sound effect the audio collaborator knows how to play.
type Sound string

const (
	SoundShotgun1 Sound = "shotgun1"
	SoundShotgun2 Sound = "shotgun2"
	SoundShotgun3 Sound = "shotgun3"
	SoundMugen    Sound = "mugen"
)

// ShotgunSounds is the pool one shotgun blast picks from.
var ShotgunSounds = [...]Sound{SoundShotgun1, SoundShotgun2, SoundShotgun3}

// Align is the horizontal anchor of a text draw call.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextStyle describes how text is painted.
type TextStyle struct {
	Font  string
	Color core.Color
	Align Align
}

// FontHUD is the font used for all in-game text.
const FontHUD = "normal bold 20px Arial"

// Canvas is the drawing surface. Coordinates are board units with the
// origin at the top-left; y is the text baseline for text calls.
type Canvas interface {
	ClearRect(x, y, w, h float64)
	DrawSprite(s Sprite, x, y, w, h float64)
	FillText(text string, x, y float64, style TextStyle)
	StrokeText(text string, x, y float64, style TextStyle)
}

// Audio plays sound effects. Play must not block.
type Audio interface {
	Play(s Sound)
}

// Keyboard delivers key-down events. The returned function deregisters fn.
type Keyboard interface {
	AddKeyDownListener(fn func(core.KeyCode)) (remove func())
}

// Scheduler runs callbacks on the simulation goroutine. *sched.Loop
// implements it.
type Scheduler interface {
	After(d time.Duration, fn func()) sched.Handle
	Every(d time.Duration, fn func()) sched.Handle
	Cancel(h sched.Handle) bool
}

type nopCanvas struct{}

func (nopCanvas) ClearRect(_, _, _, _ float64) {}
func (nopCanvas) DrawSprite(_ Sprite, _, _, _, _ float64) {}
func (nopCanvas) FillText(_ string, _, _ float64, _ TextStyle) {}
func (nopCanvas) StrokeText(_ string, _, _ float64, _ TextStyle) {}

type nopAudio struct{}

func (nopAudio) Play(Sound) {}
