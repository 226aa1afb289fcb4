// Package sdlbackend implements the platform on top of SDL2: one window, one
// accelerated renderer and the SDL event queue.
package sdlbackend

import (
	"fmt"
	"image"
	"image/color"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/spaghettifunk/reaper/engine/core"
	"github.com/spaghettifunk/reaper/engine/math"
	"github.com/spaghettifunk/reaper/engine/platform"
)

func init() {
	// SDL event handling must run on the main OS thread
	runtime.LockOSThread()
}

type Platform struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	surface  *Surface
}

func New() *Platform {
	return &Platform{}
}

func (p *Platform) Startup(applicationName string, width, height int32) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("%w: sdl init: %s", core.ErrInit, err)
	}

	window, err := sdl.CreateWindow(applicationName,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		width, height, uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("%w: create window: %s", core.ErrInit, err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("%w: create renderer: %s", core.ErrInit, err)
	}

	p.window = window
	p.renderer = renderer
	p.surface = &Surface{renderer: renderer}

	core.LogInfo("SDL platform started: %dx%d %q", width, height, applicationName)
	return nil
}

func (p *Platform) Surface() platform.Surface {
	return p.surface
}

func (p *Platform) PumpMessages(dst []core.EventContext) []core.EventContext {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		dst = append(dst, translate(event))
	}
	return dst
}

func (p *Platform) Shutdown() error {
	if p.renderer != nil {
		p.renderer.Destroy()
		p.renderer = nil
	}
	if p.window != nil {
		p.window.Destroy()
		p.window = nil
	}
	sdl.Quit()
	return nil
}

func translate(event sdl.Event) core.EventContext {
	switch t := event.(type) {
	case *sdl.QuitEvent:
		return core.QuitEvent()
	case *sdl.KeyboardEvent:
		key := translateKey(t.Keysym.Sym)
		switch t.Type {
		case sdl.KEYDOWN:
			return core.EventContext{
				Type: core.EVENT_CODE_KEY_PRESSED,
				Data: &core.KeyEvent{KeyCode: key, Repeat: t.Repeat != 0},
			}
		case sdl.KEYUP:
			return core.KeyReleasedEvent(key)
		}
	case *sdl.WindowEvent:
		if t.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return core.ResizedEvent(uint32(t.Data1), uint32(t.Data2))
		}
	}
	return core.OtherEvent(event)
}

var keymap = map[sdl.Keycode]core.KeyCode{
	sdl.K_ESCAPE:    core.KEY_ESCAPE,
	sdl.K_LEFT:      core.KEY_LEFT,
	sdl.K_RIGHT:     core.KEY_RIGHT,
	sdl.K_UP:        core.KEY_UP,
	sdl.K_DOWN:      core.KEY_DOWN,
	sdl.K_RETURN:    core.KEY_ENTER,
	sdl.K_SPACE:     core.KEY_SPACE,
	sdl.K_TAB:       core.KEY_TAB,
	sdl.K_BACKSPACE: core.KEY_BACKSPACE,
	sdl.K_PAUSE:     core.KEY_PAUSE,
	sdl.K_HOME:      core.KEY_HOME,
	sdl.K_END:       core.KEY_END,
	sdl.K_INSERT:    core.KEY_INSERT,
	sdl.K_DELETE:    core.KEY_DELETE,
	sdl.K_LSHIFT:    core.KEY_LSHIFT,
	sdl.K_RSHIFT:    core.KEY_RSHIFT,
	sdl.K_LCTRL:     core.KEY_LCONTROL,
	sdl.K_RCTRL:     core.KEY_RCONTROL,
	sdl.K_F1:        core.KEY_F1,
	sdl.K_F2:        core.KEY_F2,
	sdl.K_F3:        core.KEY_F3,
	sdl.K_F4:        core.KEY_F4,
	sdl.K_F5:        core.KEY_F5,
	sdl.K_F6:        core.KEY_F6,
	sdl.K_F7:        core.KEY_F7,
	sdl.K_F8:        core.KEY_F8,
	sdl.K_F9:        core.KEY_F9,
	sdl.K_F10:       core.KEY_F10,
	sdl.K_F11:       core.KEY_F11,
	sdl.K_F12:       core.KEY_F12,
	sdl.K_SEMICOLON: core.KEY_SEMICOLON,
	sdl.K_PLUS:      core.KEY_PLUS,
	sdl.K_COMMA:     core.KEY_COMMA,
	sdl.K_MINUS:     core.KEY_MINUS,
	sdl.K_PERIOD:    core.KEY_PERIOD,
	sdl.K_SLASH:     core.KEY_SLASH,
	sdl.K_BACKQUOTE: core.KEY_GRAVE,
}

func translateKey(sym sdl.Keycode) core.KeyCode {
	if k, ok := keymap[sym]; ok {
		return k
	}
	// SDL letter and digit keycodes are their lowercase ASCII value.
	switch {
	case sym >= sdl.K_a && sym <= sdl.K_z:
		return core.KEY_A + core.KeyCode(sym-sdl.K_a)
	case sym >= sdl.K_0 && sym <= sdl.K_9:
		return core.KEY_0 + core.KeyCode(sym-sdl.K_0)
	}
	return core.KEY_UNKNOWN
}

type Surface struct {
	renderer *sdl.Renderer
}

func (s *Surface) SetDrawColor(c color.RGBA) {
	s.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

func (s *Surface) Clear() error {
	if err := s.renderer.Clear(); err != nil {
		return fmt.Errorf("%w: clear: %s", core.ErrDraw, err)
	}
	return nil
}

func (s *Surface) Present() error {
	s.renderer.Present()
	return nil
}

func (s *Surface) OutputSize() (int32, int32, error) {
	w, h, err := s.renderer.GetOutputSize()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: output size: %s", core.ErrQuery, err)
	}
	return w, h, nil
}

func (s *Surface) CreateTexture(img *image.RGBA) (platform.Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty image", core.ErrDraw)
	}
	pixels := img.Pix
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&pixels[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(img.Stride), uint32(sdl.PIXELFORMAT_RGBA32))
	if err != nil {
		return nil, fmt.Errorf("%w: wrap pixels: %s", core.ErrDraw, err)
	}
	defer surface.Free()

	tex, err := s.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("%w: upload texture: %s", core.ErrDraw, err)
	}
	runtime.KeepAlive(pixels)
	return &Texture{tex: tex, width: int32(b.Dx()), height: int32(b.Dy())}, nil
}

func (s *Surface) Draw(tex platform.Texture, src, dst math.Rect) error {
	t, ok := tex.(*Texture)
	if !ok || t.tex == nil {
		return fmt.Errorf("%w: texture does not belong to this surface", core.ErrDraw)
	}
	srcRect := sdl.Rect{X: src.X, Y: src.Y, W: src.W, H: src.H}
	dstRect := sdl.Rect{X: dst.X, Y: dst.Y, W: dst.W, H: dst.H}
	if err := s.renderer.Copy(t.tex, &srcRect, &dstRect); err != nil {
		return fmt.Errorf("%w: copy: %s", core.ErrDraw, err)
	}
	return nil
}

type Texture struct {
	tex           *sdl.Texture
	width, height int32
}

func (t *Texture) Size() (int32, int32) {
	return t.width, t.height
}

func (t *Texture) Destroy() {
	if t.tex != nil {
		t.tex.Destroy()
		t.tex = nil
	}
}
