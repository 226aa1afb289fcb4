package loaders

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fzipp/bmfont"

	"github.com/spaghettifunk/reaper/engine/core"
)

type FontGlyph struct {
	Codepoint rune
	X, Y      int32
	Width     int32
	Height    int32
	XOffset   int32
	YOffset   int32
	XAdvance  int32
	PageID    int
}

type FontPage struct {
	ID int
	// Path of the page sheet, resolved against the descriptor's directory.
	File string
}

type KerningPair struct {
	First, Second rune
}

type BitmapFontData struct {
	Face       string
	Size       int32
	LineHeight int32
	Baseline   int32
	Glyphs     map[rune]FontGlyph
	Kernings   map[KerningPair]int32
	Pages      []FontPage
}

// BitmapFontLoader reads AngelCode BMFont text descriptors (.fnt).
type BitmapFontLoader struct{}

func (fl *BitmapFontLoader) Load(path string) (*BitmapFontData, error) {
	if filepath.Ext(path) != ".fnt" {
		return nil, fmt.Errorf("%w: unsupported bitmap font file %q", core.ErrAsset, path)
	}

	// Page sheets are decoded later, once, when they are uploaded.
	desc, err := bmfont.LoadDescriptor(path)
	if err != nil {
		return nil, fmt.Errorf("%w: bitmap font %s: %s", core.ErrAsset, path, err)
	}

	dir := filepath.Dir(path)
	out := &BitmapFontData{
		Face:       desc.Info.Face,
		Size:       int32(desc.Info.Size),
		LineHeight: int32(desc.Common.LineHeight),
		Baseline:   int32(desc.Common.Base),
		Glyphs:     make(map[rune]FontGlyph, len(desc.Chars)),
		Kernings:   make(map[KerningPair]int32, len(desc.Kerning)),
		Pages:      make([]FontPage, 0, len(desc.Pages)),
	}

	for _, p := range desc.Pages {
		out.Pages = append(out.Pages, FontPage{
			ID:   int(p.ID),
			File: filepath.Join(dir, p.File),
		})
	}
	sort.Slice(out.Pages, func(i, j int) bool { return out.Pages[i].ID < out.Pages[j].ID })

	for _, g := range desc.Chars {
		out.Glyphs[rune(g.ID)] = FontGlyph{
			Codepoint: rune(g.ID),
			X:         int32(g.X),
			Y:         int32(g.Y),
			Width:     int32(g.Width),
			Height:    int32(g.Height),
			XOffset:   int32(g.XOffset),
			YOffset:   int32(g.YOffset),
			XAdvance:  int32(g.XAdvance),
			PageID:    int(g.Page),
		}
	}

	for p, k := range desc.Kerning {
		out.Kernings[KerningPair{First: rune(p.First), Second: rune(p.Second)}] = int32(k.Amount)
	}

	return out, nil
}
