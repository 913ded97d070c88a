package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/skill-runner/internal/config"
	"github.com/vovakirdan/skill-runner/internal/core"
	"github.com/vovakirdan/skill-runner/internal/runner"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	cfg.Enemies.FlyChance = 1 << 30
	cfg.Sprites = map[string]config.SpriteStyle{"player-default": {Glyph: "@", Color: "cyan"}}

	g, err := NewGame(Options{Config: cfg, FPS: 60, Seed: 5})
	require.NoError(t, err)
	return g
}

func TestDisplayListRecordsOneFrame(t *testing.T) {
	g := newTestGame(t)

	g.Step()
	first := g.list.Len()
	require.Positive(t, first)

	g.Step()
	assert.Equal(t, first, g.list.Len(), "each frame starts from a clear")
	assert.Contains(t, g.list.Texts(), "Score : 0")

	player := g.list.ops[len(g.list.ops)-1]
	assert.Equal(t, opSprite, player.kind)
	assert.Equal(t, rgba(core.ColorCyan), player.fill)
	assert.Equal(t, 50.0, player.x)
}

func TestGameRunsToGameOver(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 600 && !g.Session().GameOver(); i++ {
		g.Step()
	}

	require.True(t, g.Session().GameOver())
	assert.Contains(t, g.list.Texts(), "Game Over!")
	assert.True(t, g.saved)

	require.NoError(t, g.restart())
	assert.False(t, g.Session().GameOver())
}

func TestLayoutIsBoardSize(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 1000, w)
	assert.Equal(t, 450, h)
}

func TestUnknownSpriteIsWhite(t *testing.T) {
	d := NewDisplayList(config.DefaultRunnerConfig())
	d.DrawSprite(runner.SpriteMugen, 0, 0, 1, 1)
	assert.Equal(t, rgba(core.ColorWhite), d.ops[0].fill)
}
