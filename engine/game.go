package engine

import (
	"image/color"

	"github.com/spaghettifunk/reaper/engine/assets"
	"github.com/spaghettifunk/reaper/engine/core"
	"github.com/spaghettifunk/reaper/engine/platform"
)

// Game is the strategy the frame loop drives. Only FnBackground is
// required; the other callbacks are skipped when nil.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnBackground      Background
	FnRender          Render
	FnStatus          Status
	FnShutdown        Shutdown
}

// Context is what the engine hands to a game once the platform is up.
type Context struct {
	Events  *core.EventSystem
	Assets  *assets.AssetManager
	Surface platform.Surface
}

type Initialize func(ctx *Context) error

// Update advances the game once per frame, after input was dispatched.
type Update func() error

// Background is the clear color of the current frame.
type Background func() color.RGBA

type Render func(surface platform.Surface) error

// Status is extra text for the overlay.
type Status func() string

type Shutdown func() error
