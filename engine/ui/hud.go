// Package ui draws the text overlay with a bitmap font.
package ui

import (
	"fmt"

	"github.com/spaghettifunk/reaper/engine/assets"
	"github.com/spaghettifunk/reaper/engine/assets/loaders"
	"github.com/spaghettifunk/reaper/engine/core"
	"github.com/spaghettifunk/reaper/engine/math"
	"github.com/spaghettifunk/reaper/engine/platform"
)

// Glyphs missing from the font are drawn as this one, when present.
const fallbackGlyph = '?'

// Quad is one glyph placed on screen.
type Quad struct {
	Page int
	Src  math.Rect
	Dst  math.Rect
}

type HUD struct {
	font   *loaders.BitmapFontData
	pages  map[int]*assets.Image
	origin math.Point
}

// NewHUD loads the BMFont descriptor at fontPath and uploads its page sheets.
func NewHUD(am *assets.AssetManager, fontPath string, origin math.Point) (*HUD, error) {
	font, err := am.LoadBitmapFont(fontPath)
	if err != nil {
		return nil, err
	}

	h := &HUD{
		font:   font,
		pages:  make(map[int]*assets.Image, len(font.Pages)),
		origin: origin,
	}
	for _, p := range font.Pages {
		img, err := am.Acquire(p.File)
		if err != nil {
			h.Destroy()
			return nil, fmt.Errorf("font page %d: %w", p.ID, err)
		}
		h.pages[p.ID] = img
	}
	core.LogInfo("HUD font %q size %d loaded with %d glyphs", font.Face, font.Size, len(font.Glyphs))
	return h, nil
}

// NewHUDWithFont builds an overlay from font data and already uploaded pages.
func NewHUDWithFont(font *loaders.BitmapFontData, pages map[int]*assets.Image, origin math.Point) *HUD {
	return &HUD{font: font, pages: pages, origin: origin}
}

// Layout places text with its top-left corner at origin. Newlines start a
// new line, kerning is applied between consecutive glyphs and blank glyphs
// only advance the pen.
func (h *HUD) Layout(text string, origin math.Point) []Quad {
	quads := make([]Quad, 0, len(text))
	pen := origin
	var prev rune = -1
	for _, r := range text {
		if r == '\n' {
			pen.X = origin.X
			pen.Y += h.font.LineHeight
			prev = -1
			continue
		}
		g, ok := h.font.Glyphs[r]
		if !ok {
			if g, ok = h.font.Glyphs[fallbackGlyph]; !ok {
				prev = -1
				continue
			}
		}
		if prev >= 0 {
			pen.X += h.font.Kernings[loaders.KerningPair{First: prev, Second: g.Codepoint}]
		}
		if g.Width > 0 && g.Height > 0 {
			quads = append(quads, Quad{
				Page: g.PageID,
				Src:  math.NewRect(g.X, g.Y, g.Width, g.Height),
				Dst:  math.NewRect(pen.X+g.XOffset, pen.Y+g.YOffset, g.Width, g.Height),
			})
		}
		pen.X += g.XAdvance
		prev = g.Codepoint
	}
	return quads
}

// Draw renders text at the overlay origin.
func (h *HUD) Draw(surface platform.Surface, text string) error {
	for _, q := range h.Layout(text, h.origin) {
		page, ok := h.pages[q.Page]
		if !ok || page.Released() {
			return fmt.Errorf("%w: font page %d not loaded", core.ErrDraw, q.Page)
		}
		if err := surface.Draw(page.Texture(), q.Src, q.Dst); err != nil {
			return err
		}
	}
	return nil
}

func (h *HUD) Destroy() {
	for id, img := range h.pages {
		img.Release()
		delete(h.pages, id)
	}
}
