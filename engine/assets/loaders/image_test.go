package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/reaper/engine/core"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestImageLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	src.Set(1, 2, color.NRGBA{R: 255, A: 255})
	path := filepath.Join(dir, "sprite.png")
	writePNG(t, path, src)

	il := &ImageLoader{}
	img, err := il.Load(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 3), img.Bounds())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(1, 2))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))
}

func TestImageLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	il := &ImageLoader{}

	_, err := il.Load(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, core.ErrAsset)

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o644))
	_, err = il.Load(garbage)
	assert.ErrorIs(t, err, core.ErrAsset)
}

func TestToRGBA(t *testing.T) {
	t.Run("packed rgba is returned as is", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		assert.Same(t, img, ToRGBA(img))
	})

	t.Run("sub image is repacked at the origin", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 8, 8))
		img.SetRGBA(5, 6, color.RGBA{G: 200, A: 255})
		sub := img.SubImage(image.Rect(4, 4, 8, 8))

		out := ToRGBA(sub)
		assert.Equal(t, image.Rect(0, 0, 4, 4), out.Bounds())
		assert.Equal(t, color.RGBA{G: 200, A: 255}, out.RGBAAt(1, 2))
	})
}
