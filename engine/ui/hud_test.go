package ui

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/reaper/engine/assets"
	"github.com/spaghettifunk/reaper/engine/assets/loaders"
	"github.com/spaghettifunk/reaper/engine/core"
	"github.com/spaghettifunk/reaper/engine/math"
	"github.com/spaghettifunk/reaper/engine/platform/headless"
)

func testFont() *loaders.BitmapFontData {
	return &loaders.BitmapFontData{
		Face:       "mono",
		Size:       8,
		LineHeight: 10,
		Baseline:   8,
		Glyphs: map[rune]loaders.FontGlyph{
			'A': {Codepoint: 'A', X: 0, Y: 0, Width: 6, Height: 8, XAdvance: 7},
			'V': {Codepoint: 'V', X: 6, Y: 0, Width: 6, Height: 8, XAdvance: 7},
			'?': {Codepoint: '?', X: 12, Y: 0, Width: 5, Height: 8, YOffset: 1, XAdvance: 6},
			' ': {Codepoint: ' ', XAdvance: 4},
		},
		Kernings: map[loaders.KerningPair]int32{
			{First: 'A', Second: 'V'}: -2,
		},
	}
}

func TestLayout(t *testing.T) {
	h := NewHUDWithFont(testFont(), nil, math.Point{})

	t.Run("advance and kerning", func(t *testing.T) {
		quads := h.Layout("AV", math.NewPoint(4, 4))
		require.Len(t, quads, 2)
		assert.Equal(t, math.NewRect(4, 4, 6, 8), quads[0].Dst)
		assert.Equal(t, math.NewRect(0, 0, 6, 8), quads[0].Src)
		assert.Equal(t, math.NewRect(9, 4, 6, 8), quads[1].Dst)
		assert.Equal(t, math.NewRect(6, 0, 6, 8), quads[1].Src)
	})

	t.Run("blank glyphs only advance", func(t *testing.T) {
		quads := h.Layout("A A", math.Point{})
		require.Len(t, quads, 2)
		assert.Equal(t, int32(11), quads[1].Dst.X)
	})

	t.Run("newline returns to the origin column", func(t *testing.T) {
		quads := h.Layout("A\nA", math.NewPoint(2, 3))
		require.Len(t, quads, 2)
		assert.Equal(t, math.NewRect(2, 13, 6, 8), quads[1].Dst)
	})

	t.Run("unknown runes use the fallback glyph", func(t *testing.T) {
		quads := h.Layout("é", math.Point{})
		require.Len(t, quads, 1)
		assert.Equal(t, math.NewRect(12, 0, 5, 8), quads[0].Src)
		assert.Equal(t, int32(1), quads[0].Dst.Y)
	})
}

func TestDraw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono_0.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 32, 8))))
	require.NoError(t, f.Close())

	surface := headless.NewSurface(320, 240)
	am, err := assets.NewAssetManager(surface, false)
	require.NoError(t, err)
	page, err := am.Acquire(path)
	require.NoError(t, err)

	h := NewHUDWithFont(testFont(), map[int]*assets.Image{0: page}, math.NewPoint(8, 8))
	require.NoError(t, h.Draw(surface, "AV?"))
	require.Len(t, surface.Ops, 3)
	for _, op := range surface.Ops {
		assert.Equal(t, headless.OpDraw, op.Kind)
		assert.Same(t, page.Texture(), op.Texture)
	}
	assert.Equal(t, math.NewRect(8, 8, 6, 8), surface.Ops[0].Dst)

	h.Destroy()
	assert.True(t, page.Released())
	assert.Equal(t, 0, am.Live())
	assert.ErrorIs(t, h.Draw(surface, "A"), core.ErrDraw, "page released")
	assert.NoError(t, h.Draw(surface, "   "), "nothing to draw")
}
