package math

// Footprint describes the part of a visual asset an entity samples and the
// size it takes on screen.
type Footprint struct {
	// Offset of the sub-image inside the asset.
	SourceX, SourceY int32
	// Width and height, shared by the sub-image and the on-screen rectangle.
	Width, Height int32
}

// Source returns the region of the asset described by the footprint.
func (f Footprint) Source() Rect {
	return Rect{X: f.SourceX, Y: f.SourceY, W: f.Width, H: f.Height}
}

// ScreenOrigin returns the screen location of the simulation origin, which
// is the center of a surface of the given size.
func ScreenOrigin(surfaceWidth, surfaceHeight int32) Point {
	return Point{X: Half(surfaceWidth), Y: Half(surfaceHeight)}
}

// ScreenRect maps a simulation-space position to the screen-space rectangle
// it is drawn into. The simulation origin sits at the surface center, the
// rectangle is centered on the translated position and sized by the
// footprint. It must be evaluated with the live surface size every frame.
func ScreenRect(surfaceWidth, surfaceHeight int32, position Point, footprint Footprint) Rect {
	center := ScreenOrigin(surfaceWidth, surfaceHeight).Add(position)
	return RectFromCenter(center, footprint.Width, footprint.Height)
}
