package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/reaper/engine/core"
	"github.com/spaghettifunk/reaper/engine/platform/headless"
)

func writeSprite(t *testing.T, path string, w, h int, c color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	require.NoError(t, os.Rename(tmp, path))
}

func TestAcquireAndRelease(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reaper.png")
	writeSprite(t, path, 52, 72, color.RGBA{R: 10, A: 255})

	surface := headless.NewSurface(1280, 720)
	am, err := NewAssetManager(surface, false)
	require.NoError(t, err)

	img, err := am.Acquire(path)
	require.NoError(t, err)
	assert.NotEqual(t, [16]byte{}, [16]byte(img.ID))
	assert.Equal(t, int32(52), img.Width)
	assert.Equal(t, int32(72), img.Height)
	assert.Equal(t, 1, am.Live())
	require.Len(t, surface.Textures, 1)

	tex := surface.Textures[0]
	assert.Same(t, tex, img.Texture())

	img.Release()
	assert.True(t, img.Released())
	assert.True(t, tex.Destroyed)
	assert.Equal(t, 0, am.Live())

	// second release is a no-op
	img.Release()
	am.Release(img)
	assert.Equal(t, 0, am.Live())
}

func TestAcquireFailures(t *testing.T) {
	dir := t.TempDir()
	am, err := NewAssetManager(headless.NewSurface(10, 10), false)
	require.NoError(t, err)

	_, err = am.Acquire(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, core.ErrAsset)

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte{0x89, 'P', 'N', 'G'}, 0o644))
	_, err = am.Acquire(bad)
	assert.ErrorIs(t, err, core.ErrAsset)
	assert.Equal(t, 0, am.Live())
}

func TestShutdownReleasesEverything(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	writeSprite(t, a, 2, 2, color.RGBA{A: 255})
	writeSprite(t, b, 3, 3, color.RGBA{A: 255})

	surface := headless.NewSurface(10, 10)
	am, err := NewAssetManager(surface, true)
	require.NoError(t, err)

	_, err = am.Acquire(a)
	require.NoError(t, err)
	_, err = am.Acquire(b)
	require.NoError(t, err)
	_, err = am.Acquire(a)
	require.NoError(t, err)
	assert.Equal(t, 3, am.Live())

	require.NoError(t, am.Shutdown())
	assert.Equal(t, 0, am.Live())
	for _, tex := range surface.Textures {
		assert.True(t, tex.Destroyed)
	}
	assert.Zero(t, am.Refresh())
}

func TestRefreshReloadsChangedFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reaper.png")
	writeSprite(t, path, 4, 4, color.RGBA{R: 255, A: 255})

	surface := headless.NewSurface(10, 10)
	am, err := NewAssetManager(surface, true)
	require.NoError(t, err)
	defer am.Shutdown()

	img, err := am.Acquire(path)
	require.NoError(t, err)
	id := img.ID
	first := img.Texture()

	assert.Zero(t, am.Refresh(), "nothing changed yet")

	writeSprite(t, path, 8, 6, color.RGBA{B: 255, A: 255})

	require.Eventually(t, func() bool {
		return am.Refresh() > 0
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, id, img.ID, "handle identity survives reload")
	assert.NotSame(t, first, img.Texture())
	assert.True(t, first.(*headless.Texture).Destroyed)
	assert.Equal(t, int32(8), img.Width)
	assert.Equal(t, int32(6), img.Height)
}

func TestRefreshKeepsTextureOnBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reaper.png")
	writeSprite(t, path, 4, 4, color.RGBA{R: 255, A: 255})

	am, err := NewAssetManager(headless.NewSurface(10, 10), true)
	require.NoError(t, err)
	defer am.Shutdown()

	img, err := am.Acquire(path)
	require.NoError(t, err)
	before := img.Texture()

	require.NoError(t, os.WriteFile(path, []byte("broken"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, am.Refresh())
	assert.Same(t, before, img.Texture())
}

func TestLoadImageDoesNotUpload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reaper.png")
	writeSprite(t, path, 26, 36, color.RGBA{G: 200, A: 255})

	surface := headless.NewSurface(1280, 720)
	am, err := NewAssetManager(surface, false)
	require.NoError(t, err)

	pixels, err := am.LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 26, 36), pixels.Bounds())
	assert.Equal(t, color.RGBA{G: 200, A: 255}, pixels.RGBAAt(3, 4))
	assert.Empty(t, surface.Textures)
	assert.Equal(t, 0, am.Live())
}
