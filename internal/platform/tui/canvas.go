package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/skill-runner/internal/config"
	"github.com/vovakirdan/skill-runner/internal/core"
	"github.com/vovakirdan/skill-runner/internal/runner"
)

// glyph is how one sprite looks in a terminal cell.
type glyph struct {
	r rune
	c core.Color
}

var fallbackGlyph = glyph{r: '#', c: core.ColorWhite}

// ScreenCanvas draws board-space calls onto a character Screen, scaling
// the board to whatever size the terminal currently has.
type ScreenCanvas struct {
	screen  *core.Screen
	boardW  float64
	boardH  float64
	palette map[runner.Sprite]glyph
}

// NewScreenCanvas creates a canvas for a board of the configured size.
// Sprites without a palette entry are drawn with '#'.
func NewScreenCanvas(screen *core.Screen, cfg config.RunnerConfig) *ScreenCanvas {
	palette := make(map[runner.Sprite]glyph, len(cfg.Sprites))
	for name, style := range cfg.Sprites {
		g := fallbackGlyph
		if r, _ := utf8.DecodeRuneInString(style.Glyph); r != utf8.RuneError {
			g.r = r
		}
		if c, ok := core.ParseColor(style.Color); ok {
			g.c = c
		}
		palette[runner.Sprite(name)] = g
	}

	return &ScreenCanvas{
		screen:  screen,
		boardW:  cfg.Board.Width,
		boardH:  cfg.Board.Height,
		palette: palette,
	}
}

func (c *ScreenCanvas) col(x float64) int {
	return int(math.Floor(x * float64(c.screen.Width()) / c.boardW))
}

func (c *ScreenCanvas) row(y float64) int {
	return int(math.Floor(y * float64(c.screen.Height()) / c.boardH))
}

// ClearRect blanks every cell the rectangle touches.
func (c *ScreenCanvas) ClearRect(x, y, w, h float64) {
	x0, y0 := c.col(x), c.row(y)
	c.screen.FillRect(x0, y0, c.col(x+w)-x0, c.row(y+h)-y0, ' ', core.ColorDefault)
}

// DrawSprite fills the sprite's cells with its glyph. Anything on the
// board is at least one cell in each direction.
func (c *ScreenCanvas) DrawSprite(s runner.Sprite, x, y, w, h float64) {
	g, ok := c.palette[s]
	if !ok {
		g = fallbackGlyph
	}

	x0, y0 := c.col(x), c.row(y)
	cw := max(c.col(x+w)-x0, 1)
	ch := max(c.row(y+h)-y0, 1)
	c.screen.FillRect(x0, y0, cw, ch, g.r, g.c)
}

// FillText writes text so that its baseline lands on the row containing y.
func (c *ScreenCanvas) FillText(text string, x, y float64, style runner.TextStyle) {
	col := c.col(x)
	if style.Align == runner.AlignCenter {
		col -= utf8.RuneCountInString(text) / 2
	}
	row := c.row(y)
	if row > 0 {
		row--
	}
	c.screen.DrawText(col, row, text, termColor(style.Color))
}

// StrokeText has no outline in a terminal; it repaints the text in the
// stroke color.
func (c *ScreenCanvas) StrokeText(text string, x, y float64, style runner.TextStyle) {
	c.FillText(text, x, y, style)
}

// termColor swaps colors that vanish on a dark terminal background.
func termColor(c core.Color) core.Color {
	if c == core.ColorBlack {
		return core.ColorBrightWhite
	}
	return c
}

var _ runner.Canvas = (*ScreenCanvas)(nil)
