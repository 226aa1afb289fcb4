package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/spaghettifunk/reaper/engine/core"
)

// ImageLoader decodes PNG, JPEG, BMP and WebP files into RGBA pixels.
type ImageLoader struct{}

func (il *ImageLoader) Load(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", core.ErrAsset, err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %s", core.ErrAsset, path, err)
	}
	core.LogDebug("decoded %s image %s (%dx%d)", format, path, img.Bounds().Dx(), img.Bounds().Dy())

	return ToRGBA(img), nil
}

// ToRGBA returns img as tightly packed RGBA pixels anchored at (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
