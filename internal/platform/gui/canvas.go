package gui

import (
	"image/color"

	"github.com/vovakirdan/skill-runner/internal/config"
	"github.com/vovakirdan/skill-runner/internal/core"
	"github.com/vovakirdan/skill-runner/internal/runner"
)

type opKind int

const (
	opSprite opKind = iota
	opText
)

// op is one recorded draw call in board coordinates.
type op struct {
	kind       opKind
	x, y, w, h float64
	fill       color.RGBA
	text       string
	align      runner.Align
}

// DisplayList is a runner.Canvas that records draw calls during Update so
// Draw can replay them. Ebiten separates the two, and the simulation only
// runs inside Update.
type DisplayList struct {
	ops     []op
	palette map[runner.Sprite]color.RGBA
}

// NewDisplayList creates a display list using the configured sprite colors.
func NewDisplayList(cfg config.RunnerConfig) *DisplayList {
	palette := make(map[runner.Sprite]color.RGBA, len(cfg.Sprites))
	for name, style := range cfg.Sprites {
		if c, ok := core.ParseColor(style.Color); ok {
			palette[runner.Sprite(name)] = rgba(c)
		}
	}
	return &DisplayList{palette: palette}
}

// ClearRect drops every recorded call when it covers the origin. The
// session only ever clears the whole board.
func (d *DisplayList) ClearRect(x, y, _, _ float64) {
	if x <= 0 && y <= 0 {
		d.ops = d.ops[:0]
	}
}

// DrawSprite records a filled rectangle in the sprite's color.
func (d *DisplayList) DrawSprite(s runner.Sprite, x, y, w, h float64) {
	fill, ok := d.palette[s]
	if !ok {
		fill = rgba(core.ColorWhite)
	}
	d.ops = append(d.ops, op{kind: opSprite, x: x, y: y, w: w, h: h, fill: fill})
}

// FillText records a text call.
func (d *DisplayList) FillText(text string, x, y float64, style runner.TextStyle) {
	d.ops = append(d.ops, op{kind: opText, x: x, y: y, text: text, align: style.Align, fill: rgba(style.Color)})
}

// StrokeText is drawn like FillText; the debug font has no outline.
func (d *DisplayList) StrokeText(text string, x, y float64, style runner.TextStyle) {
	d.FillText(text, x, y, style)
}

// Len returns the number of recorded calls.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// Texts returns every recorded string in draw order.
func (d *DisplayList) Texts() []string {
	var out []string
	for _, o := range d.ops {
		if o.kind == opText {
			out = append(out, o.text)
		}
	}
	return out
}

var rgbaColors = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
	core.ColorRed:           {R: 0xd0, G: 0x30, B: 0x30, A: 0xff},
	core.ColorGreen:         {R: 0x30, G: 0xb0, B: 0x40, A: 0xff},
	core.ColorYellow:        {R: 0xd0, G: 0xc0, B: 0x30, A: 0xff},
	core.ColorBlue:          {R: 0x30, G: 0x60, B: 0xd0, A: 0xff},
	core.ColorMagenta:       {R: 0xc0, G: 0x40, B: 0xc0, A: 0xff},
	core.ColorCyan:          {R: 0x30, G: 0xc0, B: 0xc0, A: 0xff},
	core.ColorWhite:         {R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
	core.ColorBrightRed:     {R: 0xff, G: 0x50, B: 0x50, A: 0xff},
	core.ColorBrightGreen:   {R: 0x50, G: 0xff, B: 0x60, A: 0xff},
	core.ColorBrightYellow:  {R: 0xff, G: 0xf0, B: 0x50, A: 0xff},
	core.ColorBrightBlue:    {R: 0x60, G: 0x90, B: 0xff, A: 0xff},
	core.ColorBrightMagenta: {R: 0xff, G: 0x60, B: 0xff, A: 0xff},
	core.ColorBrightCyan:    {R: 0x60, G: 0xff, B: 0xff, A: 0xff},
	core.ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorOrange:        {R: 0xff, G: 0x8c, B: 0x00, A: 0xff},
	core.ColorGray:          {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	core.ColorBlack:         {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := rgbaColors[c]; ok {
		return v
	}
	return rgbaColors[core.ColorDefault]
}

var _ runner.Canvas = (*DisplayList)(nil)
