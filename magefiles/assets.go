//go:build mage

package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

const spritePath = "assets/reaper.png"

type Assets mg.Namespace

// Writes a 26x36 placeholder sprite to assets/reaper.png.
func (Assets) Placeholder() error {
	if err := os.MkdirAll(filepath.Dir(spritePath), 0o755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, 26, 36))
	hood := color.RGBA{R: 40, G: 20, B: 60, A: 255}
	face := color.RGBA{R: 230, G: 230, B: 220, A: 255}
	for y := 0; y < 36; y++ {
		for x := 0; x < 26; x++ {
			switch {
			case y >= 6 && y < 16 && x >= 8 && x < 18:
				img.Set(x, y, face)
			case y >= 2 || (x >= 6 && x < 20):
				img.Set(x, y, hood)
			}
		}
	}

	f, err := os.Create(spritePath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", spritePath, err)
	}
	fmt.Printf("Wrote %s\n", spritePath)
	return nil
}
