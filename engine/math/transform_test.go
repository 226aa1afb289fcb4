package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenRect(t *testing.T) {
	fp := Footprint{Width: 26, Height: 36}

	t.Run("actor at origin is centered on the surface", func(t *testing.T) {
		r := ScreenRect(1280, 720, NewPoint(0, 0), fp)
		assert.Equal(t, NewPoint(640, 360), r.Center())
		assert.Equal(t, NewRect(627, 342, 26, 36), r)
	})

	t.Run("offset actor", func(t *testing.T) {
		r := ScreenRect(1280, 720, NewPoint(10, 10), fp)
		assert.Equal(t, NewPoint(650, 370), r.Center())
		assert.Equal(t, int32(26), r.W)
		assert.Equal(t, int32(36), r.H)
	})

	t.Run("actor off screen is not clamped", func(t *testing.T) {
		r := ScreenRect(1280, 720, NewPoint(-5000, 9000), fp)
		assert.Equal(t, NewPoint(-4360, 9360), r.Center())
	})

	t.Run("odd surface size", func(t *testing.T) {
		r := ScreenRect(641, 481, NewPoint(0, 0), Footprint{Width: 3, Height: 5})
		assert.Equal(t, NewRect(319, 238, 3, 5), r)
	})
}

func TestScreenRectTranslationEquivariant(t *testing.T) {
	sizes := [][2]int32{{1280, 720}, {640, 480}, {1, 1}, {333, 777}, {0, 0}}
	positions := []Point{{0, 0}, {10, 10}, {-13, 7}, {1000, -1000}}
	deltas := []Point{{1, 0}, {0, -1}, {10, 10}, {-37, 91}}
	fp := Footprint{SourceX: 4, SourceY: 8, Width: 26, Height: 36}

	for _, size := range sizes {
		for _, p := range positions {
			for _, d := range deltas {
				moved := ScreenRect(size[0], size[1], p.Add(d), fp)
				translated := ScreenRect(size[0], size[1], p, fp).Translate(d)
				assert.Equal(t, translated, moved, "size=%v pos=%v delta=%v", size, p, d)
			}
		}
	}
}

func TestFootprintSource(t *testing.T) {
	fp := Footprint{SourceX: 26, SourceY: 36, Width: 26, Height: 36}
	assert.Equal(t, NewRect(26, 36, 26, 36), fp.Source())
}

func TestRectEmpty(t *testing.T) {
	assert.True(t, NewRect(0, 0, 0, 10).Empty())
	assert.True(t, NewRect(0, 0, 10, -1).Empty())
	assert.False(t, NewRect(5, 5, 1, 1).Empty())
}

func TestHalf(t *testing.T) {
	assert.Equal(t, int32(640), Half(int32(1280)))
	assert.Equal(t, int32(-3), Half(int32(-7)))
	assert.Equal(t, uint16(3), Half(uint16(7)))
}
