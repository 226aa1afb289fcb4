// Package config holds every tunable of the engine: defaults in code, an
// optional TOML or YAML file on top, and command line overrides last.
package config

import (
	"fmt"
	"image/color"

	"github.com/spaghettifunk/reaper/engine/core"
)

const (
	BackendSDL      = "sdl"
	BackendRaylib   = "raylib"
	BackendHeadless = "headless"

	// Color cycling background, no actor.
	VariantCycle = "cycle"
	// Movable sprite over a constant background.
	VariantActor = "actor"

	PacingFixed     = "fixed"
	PacingCorrected = "corrected"
)

type Config struct {
	Application Application `toml:"application" yaml:"application"`
	Loop        Loop        `toml:"loop" yaml:"loop"`
	Actor       Actor       `toml:"actor" yaml:"actor"`
	Input       Input       `toml:"input" yaml:"input"`
	Assets      Assets      `toml:"assets" yaml:"assets"`
	HUD         HUD         `toml:"hud" yaml:"hud"`
}

type Application struct {
	Name     string `toml:"name" yaml:"name"`
	Width    int32  `toml:"width" yaml:"width"`
	Height   int32  `toml:"height" yaml:"height"`
	Backend  string `toml:"backend" yaml:"backend"`
	Variant  string `toml:"variant" yaml:"variant"`
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

type Loop struct {
	TargetFPS int32  `toml:"target_fps" yaml:"target_fps"`
	Pacing    string `toml:"pacing" yaml:"pacing"`
	// Stop after this many presented frames, 0 runs until quit.
	MaxFrames uint64 `toml:"max_frames" yaml:"max_frames"`
}

type Color struct {
	R uint8 `toml:"r" yaml:"r"`
	G uint8 `toml:"g" yaml:"g"`
	B uint8 `toml:"b" yaml:"b"`
}

func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

type Actor struct {
	Asset      string `toml:"asset" yaml:"asset"`
	X          int32  `toml:"x" yaml:"x"`
	Y          int32  `toml:"y" yaml:"y"`
	SourceX    int32  `toml:"source_x" yaml:"source_x"`
	SourceY    int32  `toml:"source_y" yaml:"source_y"`
	Width      int32  `toml:"width" yaml:"width"`
	Height     int32  `toml:"height" yaml:"height"`
	Speed      int32  `toml:"speed" yaml:"speed"`
	Background Color  `toml:"background" yaml:"background"`
}

// Input names the keys bound to each action, see core.ParseKeyCode.
type Input struct {
	Left   string `toml:"left" yaml:"left"`
	Right  string `toml:"right" yaml:"right"`
	Up     string `toml:"up" yaml:"up"`
	Down   string `toml:"down" yaml:"down"`
	Cancel string `toml:"cancel" yaml:"cancel"`
}

type Assets struct {
	HotReload bool `toml:"hot_reload" yaml:"hot_reload"`
}

type HUD struct {
	// BMFont descriptor, empty disables the overlay.
	Font string `toml:"font" yaml:"font"`
}

// KeyBindings is Input with every name resolved.
type KeyBindings struct {
	Left, Right, Up, Down, Cancel core.KeyCode
}

func Default() *Config {
	return &Config{
		Application: Application{
			Name:     "Reaper",
			Width:    1280,
			Height:   720,
			Backend:  BackendSDL,
			Variant:  VariantActor,
			LogLevel: "info",
		},
		Loop: Loop{
			TargetFPS: 60,
			Pacing:    PacingFixed,
		},
		Actor: Actor{
			Asset:      "assets/reaper.png",
			Width:      26,
			Height:     36,
			Speed:      10,
			Background: Color{R: 0, G: 255, B: 255},
		},
		Input: Input{
			Left:   "left",
			Right:  "right",
			Up:     "up",
			Down:   "down",
			Cancel: "escape",
		},
	}
}

// Validate reports the first invalid value, wrapped in core.ErrConfig.
func (c *Config) Validate() error {
	if c.Application.Width <= 0 || c.Application.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", core.ErrConfig, c.Application.Width, c.Application.Height)
	}
	switch c.Application.Backend {
	case BackendSDL, BackendRaylib, BackendHeadless:
	default:
		return fmt.Errorf("%w: unknown backend %q", core.ErrConfig, c.Application.Backend)
	}
	switch c.Application.Variant {
	case VariantActor, VariantCycle:
	default:
		return fmt.Errorf("%w: unknown variant %q", core.ErrConfig, c.Application.Variant)
	}
	if _, err := core.ParseLogLevel(c.Application.LogLevel); err != nil {
		return err
	}
	if c.Loop.TargetFPS <= 0 {
		return fmt.Errorf("%w: target fps %d", core.ErrConfig, c.Loop.TargetFPS)
	}
	switch c.Loop.Pacing {
	case PacingFixed, PacingCorrected:
	default:
		return fmt.Errorf("%w: unknown pacing %q", core.ErrConfig, c.Loop.Pacing)
	}
	if c.Application.Variant == VariantActor {
		if c.Actor.Asset == "" {
			return fmt.Errorf("%w: actor asset path is empty", core.ErrConfig)
		}
		if c.Actor.Width <= 0 || c.Actor.Height <= 0 {
			return fmt.Errorf("%w: actor footprint %dx%d", core.ErrConfig, c.Actor.Width, c.Actor.Height)
		}
		if c.Actor.SourceX < 0 || c.Actor.SourceY < 0 {
			return fmt.Errorf("%w: actor source offset (%d, %d)", core.ErrConfig, c.Actor.SourceX, c.Actor.SourceY)
		}
		if c.Actor.Speed <= 0 {
			return fmt.Errorf("%w: actor speed %d", core.ErrConfig, c.Actor.Speed)
		}
	}
	_, err := c.KeyBindings()
	return err
}

func (c *Config) KeyBindings() (KeyBindings, error) {
	var kb KeyBindings
	names := []struct {
		name string
		dst  *core.KeyCode
	}{
		{c.Input.Left, &kb.Left},
		{c.Input.Right, &kb.Right},
		{c.Input.Up, &kb.Up},
		{c.Input.Down, &kb.Down},
		{c.Input.Cancel, &kb.Cancel},
	}
	seen := make(map[core.KeyCode]string, len(names))
	for _, n := range names {
		k, err := core.ParseKeyCode(n.name)
		if err != nil {
			return KeyBindings{}, err
		}
		if prev, dup := seen[k]; dup {
			return KeyBindings{}, fmt.Errorf("%w: key %q bound twice (%q)", core.ErrConfig, n.name, prev)
		}
		seen[k] = n.name
		*n.dst = k
	}
	return kb, nil
}
