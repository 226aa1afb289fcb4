package testbed

import (
	"image/color"

	"github.com/spaghettifunk/reaper/engine"
	"github.com/spaghettifunk/reaper/engine/core"
)

// Shown once before the first frame.
var splashColor = color.RGBA{R: 0, G: 255, B: 255, A: 255}

type cycleState struct {
	// Frame counter driving the background, always in [0, 255).
	i uint8
}

// CycleGame has no actor: the background color walks a red to blue ramp,
// one step per frame.
type CycleGame struct {
	*engine.Game
}

func NewCycleGame(config *engine.ApplicationConfig) *CycleGame {
	cg := &CycleGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State:             &cycleState{},
		},
	}

	cg.FnInitialize = cg.Initialize
	cg.FnUpdate = cg.Update
	cg.FnBackground = cg.Background

	return cg
}

func (g *CycleGame) state() *cycleState {
	return g.State.(*cycleState)
}

// Initialize clears the window once with the splash color.
func (g *CycleGame) Initialize(ctx *engine.Context) error {
	core.LogDebug("CycleGame initialize")
	ctx.Surface.SetDrawColor(splashColor)
	if err := ctx.Surface.Clear(); err != nil {
		return err
	}
	return ctx.Surface.Present()
}

func (g *CycleGame) Update() error {
	s := g.state()
	s.i = uint8((uint16(s.i) + 1) % 255)
	return nil
}

// Counter returns the current frame counter.
func (g *CycleGame) Counter() uint8 {
	return g.state().i
}

func (g *CycleGame) Background() color.RGBA {
	return CycleColor(g.state().i)
}

// CycleColor is the background for frame counter i.
func CycleColor(i uint8) color.RGBA {
	return color.RGBA{R: i, G: 64, B: 255 - i, A: 255}
}
