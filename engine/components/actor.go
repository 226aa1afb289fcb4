package components

import (
	"fmt"

	"github.com/spaghettifunk/reaper/engine/assets"
	"github.com/spaghettifunk/reaper/engine/core"
	"github.com/spaghettifunk/reaper/engine/math"
	"github.com/spaghettifunk/reaper/engine/platform"
)

type Direction uint8

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Step is the unit offset of one move in direction d. Screen space grows
// downwards, so up is negative y.
func (d Direction) Step() math.Point {
	switch d {
	case DirectionLeft:
		return math.Point{X: -1}
	case DirectionRight:
		return math.Point{X: 1}
	case DirectionUp:
		return math.Point{Y: -1}
	case DirectionDown:
		return math.Point{Y: 1}
	default:
		return math.Point{}
	}
}

// Actor is the single simulation entity: a sprite with a logical position
// relative to the screen center. Positions are never clamped.
type Actor struct {
	Position  math.Point
	Footprint math.Footprint
	// Pixels moved per key press.
	Speed int32

	asset *assets.Image
}

// NewActor builds an actor owning asset. The asset is released with the actor.
func NewActor(asset *assets.Image, position math.Point, footprint math.Footprint, speed int32) *Actor {
	return &Actor{
		Position:  position,
		Footprint: footprint,
		Speed:     speed,
		asset:     asset,
	}
}

// Move advances the actor one step of Speed pixels in direction d.
func (a *Actor) Move(d Direction) {
	step := d.Step()
	a.Position = a.Position.Add(math.Point{X: step.X * a.Speed, Y: step.Y * a.Speed})
}

func (a *Actor) Asset() *assets.Image {
	return a.asset
}

// ScreenRect is where the actor lands on a surface of the given size.
func (a *Actor) ScreenRect(surfaceWidth, surfaceHeight int32) math.Rect {
	return math.ScreenRect(surfaceWidth, surfaceHeight, a.Position, a.Footprint)
}

// Draw samples the footprint's region of the asset into the actor's screen
// rectangle. The surface size is queried on every call.
func (a *Actor) Draw(surface platform.Surface) error {
	w, h, err := surface.OutputSize()
	if err != nil {
		return err
	}
	if a.asset == nil || a.asset.Released() {
		return fmt.Errorf("%w: actor asset already released", core.ErrDraw)
	}
	return surface.Draw(a.asset.Texture(), a.Footprint.Source(), a.ScreenRect(w, h))
}

// Destroy releases the asset.
func (a *Actor) Destroy() {
	if a.asset != nil {
		a.asset.Release()
		a.asset = nil
	}
}
