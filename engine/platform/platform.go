package platform

import (
	"image"
	"image/color"

	"github.com/spaghettifunk/reaper/engine/core"
	"github.com/spaghettifunk/reaper/engine/math"
)

// Texture is an image uploaded to a surface.
type Texture interface {
	Size() (int32, int32)
	Destroy()
}

// Surface is the drawable canvas of a window.
type Surface interface {
	SetDrawColor(c color.RGBA)
	// Clear fills the whole canvas with the current draw color.
	Clear() error
	// Present makes everything drawn since the last present visible.
	Present() error
	// OutputSize reports the current size of the canvas in pixels.
	OutputSize() (int32, int32, error)
	CreateTexture(img *image.RGBA) (Texture, error)
	// Draw copies the src region of tex into the dst rectangle.
	Draw(tex Texture, src, dst math.Rect) error
}

// Platform owns the window, its surface and the input event queue.
type Platform interface {
	Startup(applicationName string, width, height int32) error
	// PumpMessages appends every event queued since the last call to dst and
	// returns it. It never blocks.
	PumpMessages(dst []core.EventContext) []core.EventContext
	Surface() Surface
	Shutdown() error
}
