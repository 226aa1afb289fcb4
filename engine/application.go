package engine

import (
	"github.com/spaghettifunk/reaper/engine/config"
	"github.com/spaghettifunk/reaper/engine/core"
)

type ApplicationConfig struct {
	// Window starting width.
	StartWidth int32
	// Window starting height.
	StartHeight int32
	// The application name used in windowing.
	Name     string
	LogLevel core.LogLevel

	TargetFPS int32
	Pacing    PacingMode
	// Stop after this many presented frames, 0 runs until quit.
	MaxFrames uint64

	// Key that ends the loop like a quit request.
	CancelKey core.KeyCode
	// Re-upload images whose files change on disk.
	HotReload bool
	// BMFont descriptor for the overlay, empty disables it.
	HUDFont string
}

// NewApplicationConfig derives the engine settings from a validated configuration.
func NewApplicationConfig(cfg *config.Config) (*ApplicationConfig, error) {
	level, err := core.ParseLogLevel(cfg.Application.LogLevel)
	if err != nil {
		return nil, err
	}
	pacing, err := ParsePacingMode(cfg.Loop.Pacing)
	if err != nil {
		return nil, err
	}
	keys, err := cfg.KeyBindings()
	if err != nil {
		return nil, err
	}
	return &ApplicationConfig{
		StartWidth:  cfg.Application.Width,
		StartHeight: cfg.Application.Height,
		Name:        cfg.Application.Name,
		LogLevel:    level,
		TargetFPS:   cfg.Loop.TargetFPS,
		Pacing:      pacing,
		MaxFrames:   cfg.Loop.MaxFrames,
		CancelKey:   keys.Cancel,
		HotReload:   cfg.Assets.HotReload,
		HUDFont:     cfg.HUD.Font,
	}, nil
}
