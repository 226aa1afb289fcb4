// Package headless is an in-memory platform. It records every surface call
// and replays scripted input, one batch of events per pump.
package headless

import (
	"fmt"
	"image"
	"image/color"

	"github.com/spaghettifunk/reaper/engine/core"
	"github.com/spaghettifunk/reaper/engine/math"
	"github.com/spaghettifunk/reaper/engine/platform"
)

type OpKind uint8

const (
	OpSetDrawColor OpKind = iota
	OpClear
	OpDraw
	OpPresent
)

func (k OpKind) String() string {
	switch k {
	case OpSetDrawColor:
		return "set_draw_color"
	case OpClear:
		return "clear"
	case OpDraw:
		return "draw"
	case OpPresent:
		return "present"
	default:
		return "unknown"
	}
}

// Op is one recorded surface call.
type Op struct {
	Kind    OpKind
	Color   color.RGBA
	Texture *Texture
	Src     math.Rect
	Dst     math.Rect
}

type Platform struct {
	script  [][]core.EventContext
	pumps   int
	started bool
	surface *Surface
}

// New builds a headless platform whose input replays script: the i-th pump
// returns script[i], later pumps return nothing.
func New(script ...[]core.EventContext) *Platform {
	return &Platform{script: script}
}

func (p *Platform) Startup(applicationName string, width, height int32) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: invalid surface size %dx%d", core.ErrInit, width, height)
	}
	p.surface = NewSurface(width, height)
	p.started = true
	core.LogDebug("headless platform started: %dx%d %q", width, height, applicationName)
	return nil
}

func (p *Platform) PumpMessages(dst []core.EventContext) []core.EventContext {
	if p.pumps < len(p.script) {
		dst = append(dst, p.script[p.pumps]...)
	}
	p.pumps++
	return dst
}

// Pumps reports how many times the event queue was polled.
func (p *Platform) Pumps() int {
	return p.pumps
}

func (p *Platform) Surface() platform.Surface {
	return p.surface
}

// Recorder exposes the concrete surface so callers can inspect recorded operations.
func (p *Platform) Recorder() *Surface {
	return p.surface
}

func (p *Platform) Shutdown() error {
	p.started = false
	return nil
}

type Surface struct {
	width, height int32
	color         color.RGBA

	Ops      []Op
	Textures []*Texture

	// Failure injection for tests.
	FailQuery   error
	FailDraw    error
	FailPresent error
}

func NewSurface(width, height int32) *Surface {
	return &Surface{width: width, height: height}
}

// Resize changes the size reported by OutputSize.
func (s *Surface) Resize(width, height int32) {
	s.width, s.height = width, height
}

func (s *Surface) SetDrawColor(c color.RGBA) {
	s.color = c
	s.Ops = append(s.Ops, Op{Kind: OpSetDrawColor, Color: c})
}

func (s *Surface) Clear() error {
	s.Ops = append(s.Ops, Op{Kind: OpClear, Color: s.color})
	return nil
}

func (s *Surface) Present() error {
	if s.FailPresent != nil {
		return fmt.Errorf("%w: %s", core.ErrDraw, s.FailPresent)
	}
	s.Ops = append(s.Ops, Op{Kind: OpPresent})
	return nil
}

func (s *Surface) OutputSize() (int32, int32, error) {
	if s.FailQuery != nil {
		return 0, 0, fmt.Errorf("%w: %s", core.ErrQuery, s.FailQuery)
	}
	return s.width, s.height, nil
}

func (s *Surface) CreateTexture(img *image.RGBA) (platform.Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty image", core.ErrDraw)
	}
	t := &Texture{Image: img, width: int32(b.Dx()), height: int32(b.Dy())}
	s.Textures = append(s.Textures, t)
	return t, nil
}

func (s *Surface) Draw(tex platform.Texture, src, dst math.Rect) error {
	if s.FailDraw != nil {
		return fmt.Errorf("%w: %s", core.ErrDraw, s.FailDraw)
	}
	t, ok := tex.(*Texture)
	if !ok || t.Destroyed {
		return fmt.Errorf("%w: texture does not belong to this surface", core.ErrDraw)
	}
	if src.Empty() || dst.Empty() {
		return fmt.Errorf("%w: empty rectangle src=%v dst=%v", core.ErrDraw, src, dst)
	}
	s.Ops = append(s.Ops, Op{Kind: OpDraw, Texture: t, Src: src, Dst: dst})
	return nil
}

// Frames splits the recorded operations at every present.
func (s *Surface) Frames() [][]Op {
	var frames [][]Op
	var current []Op
	for _, op := range s.Ops {
		current = append(current, op)
		if op.Kind == OpPresent {
			frames = append(frames, current)
			current = nil
		}
	}
	return frames
}

type Texture struct {
	Image         *image.RGBA
	width, height int32
	Destroyed     bool
}

func (t *Texture) Size() (int32, int32) {
	return t.width, t.height
}

func (t *Texture) Destroy() {
	t.Destroyed = true
}
