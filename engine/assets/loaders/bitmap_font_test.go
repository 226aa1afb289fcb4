package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/reaper/engine/core"
)

const monoFont = `info face="mono" size=8 bold=0 italic=0 charset="" unicode=1 stretchH=100 smooth=0 aa=1 padding=0,0,0,0 spacing=1,1
common lineHeight=10 base=8 scaleW=64 scaleH=64 pages=2 packed=0
page id=1 file="mono_1.png"
page id=0 file="mono_0.png"
char id=65 x=0 y=0 width=6 height=8 xoffset=0 yoffset=0 xadvance=7 page=0 chnl=15
char id=86 x=6 y=0 width=6 height=8 xoffset=0 yoffset=-1 xadvance=7 page=0 chnl=15
kerning first=65 second=86 amount=-2
`

func TestBitmapFontLoaderReadsDescriptorOnly(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mono.fnt")
	require.NoError(t, os.WriteFile(path, []byte(monoFont), 0o644))

	// the page sheets do not exist; they are only needed when uploaded
	font, err := (&BitmapFontLoader{}).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mono", font.Face)
	assert.Equal(t, int32(8), font.Size)
	assert.Equal(t, int32(10), font.LineHeight)
	assert.Equal(t, int32(8), font.Baseline)
	assert.Equal(t, []FontPage{
		{ID: 0, File: filepath.Join(dir, "mono_0.png")},
		{ID: 1, File: filepath.Join(dir, "mono_1.png")},
	}, font.Pages)

	require.Len(t, font.Glyphs, 2)
	v := font.Glyphs['V']
	assert.Equal(t, int32(6), v.X)
	assert.Equal(t, int32(-1), v.YOffset)
	assert.Equal(t, int32(7), v.XAdvance)
	assert.Equal(t, int32(-2), font.Kernings[KerningPair{First: 'A', Second: 'V'}])
}

func TestBitmapFontLoaderErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := (&BitmapFontLoader{}).Load(filepath.Join(dir, "missing.fnt"))
	assert.ErrorIs(t, err, core.ErrAsset)

	other := filepath.Join(dir, "mono.txt")
	require.NoError(t, os.WriteFile(other, []byte(monoFont), 0o644))
	_, err = (&BitmapFontLoader{}).Load(other)
	assert.ErrorIs(t, err, core.ErrAsset)
}
