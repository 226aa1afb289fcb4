// Package raylibbackend implements the platform with raylib. raylib keeps its
// own frame limiter disabled so the engine pacer stays in charge.
package raylibbackend

import (
	"fmt"
	"image"
	"image/color"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/spaghettifunk/reaper/engine/core"
	"github.com/spaghettifunk/reaper/engine/math"
	"github.com/spaghettifunk/reaper/engine/platform"
)

func init() {
	runtime.LockOSThread()
}

type Platform struct {
	surface *Surface
	width   int32
	height  int32
}

func New() *Platform {
	return &Platform{}
}

func (p *Platform) Startup(applicationName string, width, height int32) error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(width, height, applicationName)
	if !rl.IsWindowReady() {
		return fmt.Errorf("%w: raylib window not ready", core.ErrInit)
	}
	// Escape is reported as a key press so the engine decides what it does.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(0)

	p.width, p.height = width, height
	p.surface = &Surface{}
	core.LogInfo("raylib platform started: %dx%d %q", width, height, applicationName)
	return nil
}

func (p *Platform) Surface() platform.Surface {
	return p.surface
}

func (p *Platform) PumpMessages(dst []core.EventContext) []core.EventContext {
	// raylib polls the OS when a frame is presented and resets its key queue
	// on every poll, so only poll here before the first frame.
	if !p.surface.presented {
		rl.PollInputEvents()
	}
	if rl.WindowShouldClose() {
		dst = append(dst, core.QuitEvent())
	}
	if rl.IsWindowResized() {
		w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
		if w != p.width || h != p.height {
			p.width, p.height = w, h
			dst = append(dst, core.ResizedEvent(uint32(w), uint32(h)))
		}
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		dst = append(dst, core.KeyPressedEvent(translateKey(key)))
	}
	return dst
}

func (p *Platform) Shutdown() error {
	if rl.IsWindowReady() {
		rl.CloseWindow()
	}
	return nil
}

var keymap = map[int32]core.KeyCode{
	rl.KeyEscape:       core.KEY_ESCAPE,
	rl.KeyLeft:         core.KEY_LEFT,
	rl.KeyRight:        core.KEY_RIGHT,
	rl.KeyUp:           core.KEY_UP,
	rl.KeyDown:         core.KEY_DOWN,
	rl.KeyEnter:        core.KEY_ENTER,
	rl.KeySpace:        core.KEY_SPACE,
	rl.KeyTab:          core.KEY_TAB,
	rl.KeyBackspace:    core.KEY_BACKSPACE,
	rl.KeyPause:        core.KEY_PAUSE,
	rl.KeyHome:         core.KEY_HOME,
	rl.KeyEnd:          core.KEY_END,
	rl.KeyInsert:       core.KEY_INSERT,
	rl.KeyDelete:       core.KEY_DELETE,
	rl.KeyLeftShift:    core.KEY_LSHIFT,
	rl.KeyRightShift:   core.KEY_RSHIFT,
	rl.KeyLeftControl:  core.KEY_LCONTROL,
	rl.KeyRightControl: core.KEY_RCONTROL,
	rl.KeyF1:           core.KEY_F1,
	rl.KeyF2:           core.KEY_F2,
	rl.KeyF3:           core.KEY_F3,
	rl.KeyF4:           core.KEY_F4,
	rl.KeyF5:           core.KEY_F5,
	rl.KeyF6:           core.KEY_F6,
	rl.KeyF7:           core.KEY_F7,
	rl.KeyF8:           core.KEY_F8,
	rl.KeyF9:           core.KEY_F9,
	rl.KeyF10:          core.KEY_F10,
	rl.KeyF11:          core.KEY_F11,
	rl.KeyF12:          core.KEY_F12,
	rl.KeySemicolon:    core.KEY_SEMICOLON,
	rl.KeyEqual:        core.KEY_PLUS,
	rl.KeyComma:        core.KEY_COMMA,
	rl.KeyMinus:        core.KEY_MINUS,
	rl.KeyPeriod:       core.KEY_PERIOD,
	rl.KeySlash:        core.KEY_SLASH,
	rl.KeyGrave:        core.KEY_GRAVE,
}

func translateKey(key int32) core.KeyCode {
	if k, ok := keymap[key]; ok {
		return k
	}
	// raylib letters and digits use their uppercase ASCII value.
	switch {
	case key >= rl.KeyA && key <= rl.KeyZ:
		return core.KEY_A + core.KeyCode(key-rl.KeyA)
	case key >= rl.KeyZero && key <= rl.KeyNine:
		return core.KEY_0 + core.KeyCode(key-rl.KeyZero)
	}
	return core.KEY_UNKNOWN
}

type Surface struct {
	color     rl.Color
	drawing   bool
	presented bool
}

func (s *Surface) begin() {
	if !s.drawing {
		rl.BeginDrawing()
		s.drawing = true
	}
}

func (s *Surface) SetDrawColor(c color.RGBA) {
	s.color = rl.NewColor(c.R, c.G, c.B, c.A)
}

func (s *Surface) Clear() error {
	s.begin()
	rl.ClearBackground(s.color)
	return nil
}

func (s *Surface) Present() error {
	s.begin()
	rl.EndDrawing()
	s.drawing = false
	s.presented = true
	return nil
}

func (s *Surface) OutputSize() (int32, int32, error) {
	if !rl.IsWindowReady() {
		return 0, 0, fmt.Errorf("%w: window closed", core.ErrQuery)
	}
	return int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), nil
}

func (s *Surface) CreateTexture(img *image.RGBA) (platform.Texture, error) {
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty image", core.ErrDraw)
	}
	rimg := rl.NewImageFromImage(img)
	defer rl.UnloadImage(rimg)

	tex := rl.LoadTextureFromImage(rimg)
	if tex.ID == 0 {
		return nil, fmt.Errorf("%w: upload texture", core.ErrDraw)
	}
	return &Texture{tex: tex, loaded: true}, nil
}

func (s *Surface) Draw(tex platform.Texture, src, dst math.Rect) error {
	t, ok := tex.(*Texture)
	if !ok || !t.loaded {
		return fmt.Errorf("%w: texture does not belong to this surface", core.ErrDraw)
	}
	s.begin()
	rl.DrawTexturePro(t.tex,
		rl.NewRectangle(float32(src.X), float32(src.Y), float32(src.W), float32(src.H)),
		rl.NewRectangle(float32(dst.X), float32(dst.Y), float32(dst.W), float32(dst.H)),
		rl.NewVector2(0, 0), 0, rl.White)
	return nil
}

type Texture struct {
	tex    rl.Texture2D
	loaded bool
}

func (t *Texture) Size() (int32, int32) {
	return t.tex.Width, t.tex.Height
}

func (t *Texture) Destroy() {
	if t.loaded {
		rl.UnloadTexture(t.tex)
		t.loaded = false
	}
}
