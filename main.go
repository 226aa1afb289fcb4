// reaper opens a window and runs the sprite loop until the window is closed
// or the cancel key is pressed.
//
// Usage:
//
//	reaper                       - Move the sprite with the arrow keys
//	reaper --variant cycle       - Color cycling background, no sprite
//	reaper --config reaper.toml  - Load settings from a TOML or YAML file
//
// Flags override the configuration file.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spaghettifunk/reaper/engine"
	"github.com/spaghettifunk/reaper/engine/config"
	"github.com/spaghettifunk/reaper/engine/core"
	"github.com/spaghettifunk/reaper/engine/platform"
	"github.com/spaghettifunk/reaper/engine/platform/headless"
	"github.com/spaghettifunk/reaper/engine/platform/raylibbackend"
	"github.com/spaghettifunk/reaper/engine/platform/sdlbackend"
	"github.com/spaghettifunk/reaper/testbed"
)

var (
	flagConfig   string
	flagBackend  string
	flagVariant  string
	flagPacing   string
	flagFPS      int32
	flagFrames   uint64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		core.LogError("%s", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reaper",
	Short: "Reaper - a single sprite in a fixed rate loop",
	Long: `Reaper opens a window and moves a sprite one step per arrow key press.

Controls:
  Arrows  - Move the sprite
  Esc     - Quit

Examples:
  reaper
  reaper --variant cycle
  reaper --backend raylib --pacing corrected
  reaper --backend headless --frames 120`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	defaults := config.Default()
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a TOML or YAML configuration file")
	rootCmd.Flags().StringVar(&flagBackend, "backend", defaults.Application.Backend, "Window backend: sdl, raylib, headless")
	rootCmd.Flags().StringVar(&flagVariant, "variant", defaults.Application.Variant, "Game variant: actor, cycle")
	rootCmd.Flags().StringVar(&flagPacing, "pacing", defaults.Loop.Pacing, "Frame pacing: fixed, corrected")
	rootCmd.Flags().Int32Var(&flagFPS, "fps", defaults.Loop.TargetFPS, "Target frames per second")
	rootCmd.Flags().Uint64Var(&flagFrames, "frames", 0, "Stop after this many frames (0 = until quit)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", defaults.Application.LogLevel, "Log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	appConfig, err := engine.NewApplicationConfig(cfg)
	if err != nil {
		return err
	}
	core.SetLogLevel(appConfig.LogLevel)

	g, err := newGame(cfg, appConfig)
	if err != nil {
		return err
	}

	e, err := engine.New(g, newPlatform(cfg.Application.Backend))
	if err != nil {
		return err
	}
	defer func() {
		if err := e.Shutdown(); err != nil {
			core.LogError("shutdown: %s", err)
		}
	}()

	if err := e.Initialize(); err != nil {
		return err
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(sigCh)

	// the loop picks a request up at its next poll
	stop := e.QuitOnSignal(sigCh)
	defer stop()

	return e.Run()
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Application.Backend = flagBackend
	}
	if flags.Changed("variant") {
		cfg.Application.Variant = flagVariant
	}
	if flags.Changed("pacing") {
		cfg.Loop.Pacing = flagPacing
	}
	if flags.Changed("fps") {
		cfg.Loop.TargetFPS = flagFPS
	}
	if flags.Changed("frames") {
		cfg.Loop.MaxFrames = flagFrames
	}
	if flags.Changed("log-level") {
		cfg.Application.LogLevel = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newGame(cfg *config.Config, appConfig *engine.ApplicationConfig) (*engine.Game, error) {
	switch cfg.Application.Variant {
	case config.VariantCycle:
		return testbed.NewCycleGame(appConfig).Game, nil
	case config.VariantActor:
		settings, err := testbed.NewActorSettings(cfg)
		if err != nil {
			return nil, err
		}
		return testbed.NewReaperGame(appConfig, settings).Game, nil
	default:
		return nil, fmt.Errorf("%w: unknown variant %q", core.ErrConfig, cfg.Application.Variant)
	}
}

func newPlatform(backend string) platform.Platform {
	switch backend {
	case config.BackendRaylib:
		return raylibbackend.New()
	case config.BackendHeadless:
		return headless.New()
	default:
		return sdlbackend.New()
	}
}
