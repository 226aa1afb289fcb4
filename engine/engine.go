package engine

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spaghettifunk/reaper/engine/assets"
	"github.com/spaghettifunk/reaper/engine/core"
	"github.com/spaghettifunk/reaper/engine/math"
	"github.com/spaghettifunk/reaper/engine/platform"
	"github.com/spaghettifunk/reaper/engine/ui"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// The loop ended, either on request or on a fatal error
	EngineStageTerminated
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

func (s Stage) String() string {
	switch s {
	case EngineStageUninitialized:
		return "uninitialized"
	case EngineStageInitializing:
		return "initializing"
	case EngineStageInitialized:
		return "initialized"
	case EngineStageRunning:
		return "running"
	case EngineStageTerminated:
		return "terminated"
	case EngineStageShuttingDown:
		return "shutting_down"
	default:
		return fmt.Sprintf("stage(%d)", uint8(s))
	}
}

// Where the overlay text starts, in screen pixels.
var hudOrigin = math.NewPoint(8, 8)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	platform     platform.Platform
	assetManager *assets.AssetManager
	eventSystem  *core.EventSystem
	clock        *core.Clock
	pacer        *Pacer
	metrics      *core.Metrics
	hud          *ui.HUD

	sleep      func(time.Duration)
	quit       chan struct{}
	frameCount uint64
	pending    []core.EventContext
}

type Option func(*Engine)

// WithClock replaces the wall clock used for pacing and metrics.
func WithClock(c *core.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithSleep replaces the function the pacer blocks with.
func WithSleep(sleep func(time.Duration)) Option {
	return func(e *Engine) {
		e.sleep = sleep
	}
}

func New(g *Game, p platform.Platform, opts ...Option) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, fmt.Errorf("%w: game has no application config", core.ErrInit)
	}
	if g.FnBackground == nil {
		return nil, fmt.Errorf("%w: game has no background", core.ErrInit)
	}
	if g.ApplicationConfig.TargetFPS <= 0 {
		return nil, fmt.Errorf("%w: target fps %d", core.ErrConfig, g.ApplicationConfig.TargetFPS)
	}

	e := &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		platform:     p,
		eventSystem:  core.NewEventSystem(),
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
		sleep:        time.Sleep,
		quit:         make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(e)
	}
	e.pacer = NewPacer(g.ApplicationConfig.Pacing, g.ApplicationConfig.TargetFPS, e.clock, e.sleep)
	return e, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	cfg := e.gameInstance.ApplicationConfig

	// register the engine listeners first so quit and cancel win over the game
	e.eventSystem.Register(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	e.eventSystem.Register(core.EVENT_CODE_KEY_PRESSED, e, e.onKey)
	e.eventSystem.Register(core.EVENT_CODE_RESIZED, e, e.onResized)

	if err := e.platform.Startup(cfg.Name, cfg.StartWidth, cfg.StartHeight); err != nil {
		return err
	}

	am, err := assets.NewAssetManager(e.platform.Surface(), cfg.HotReload)
	if err != nil {
		return err
	}
	e.assetManager = am

	if cfg.HUDFont != "" {
		hud, err := ui.NewHUD(am, cfg.HUDFont, hudOrigin)
		if err != nil {
			return err
		}
		e.hud = hud
	}

	if e.gameInstance.FnInitialize != nil {
		ctx := &Context{
			Events:  e.eventSystem,
			Assets:  e.assetManager,
			Surface: e.platform.Surface(),
		}
		if err := e.gameInstance.FnInitialize(ctx); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	core.LogInfo("engine initialized: %dx%d at %d fps, %s pacing", cfg.StartWidth, cfg.StartHeight, cfg.TargetFPS, cfg.Pacing)
	return nil
}

// Run drives frames until a quit request or a fatal error.
func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("%w: engine is %s, not initialized", core.ErrInit, e.currentStage)
	}
	e.currentStage = EngineStageRunning
	e.clock.Start()

	defer e.clock.Stop()

	for {
		running, err := e.Frame()
		if err != nil {
			e.clock.Update()
			core.LogError("frame %d failed after %s, shutting down: %s", e.frameCount, e.clock.Elapsed(), err)
			return err
		}
		if !running {
			break
		}
	}

	e.clock.Update()
	core.LogInfo("loop terminated after %d frames in %s", e.frameCount, e.clock.Elapsed())
	return nil
}

// Frame runs one iteration: poll and dispatch input, update, clear, draw,
// present, then pace. It reports whether the loop should keep going. A quit
// request stops dispatching immediately and skips the rest of the frame.
func (e *Engine) Frame() (bool, error) {
	if e.currentStage != EngineStageRunning {
		return false, nil
	}
	frameStart := e.clock.Now()

	e.pending = e.platform.PumpMessages(e.pending[:0])
	select {
	case <-e.quit:
		e.pending = append(e.pending, core.QuitEvent())
	default:
	}
	for _, ev := range e.pending {
		e.eventSystem.Fire(ev)
		if e.currentStage != EngineStageRunning {
			return false, nil
		}
	}

	e.assetManager.Refresh()

	g := e.gameInstance
	if g.FnUpdate != nil {
		if err := g.FnUpdate(); err != nil {
			return e.fail(err)
		}
	}

	surface := e.platform.Surface()
	surface.SetDrawColor(g.FnBackground())
	if err := surface.Clear(); err != nil {
		return e.fail(err)
	}

	if g.FnRender != nil {
		if err := g.FnRender(surface); err != nil {
			return e.fail(err)
		}
	}

	if e.hud != nil {
		if err := e.hud.Draw(surface, e.status()); err != nil {
			return e.fail(err)
		}
	}

	if err := surface.Present(); err != nil {
		return e.fail(err)
	}
	e.frameCount++

	if limit := g.ApplicationConfig.MaxFrames; limit > 0 && e.frameCount >= limit {
		core.LogInfo("frame limit %d reached", limit)
		e.currentStage = EngineStageTerminated
		return false, nil
	}

	e.pacer.Wait(frameStart)
	e.metrics.Update(e.clock.Now().Sub(frameStart))
	return true, nil
}

func (e *Engine) fail(err error) (bool, error) {
	e.currentStage = EngineStageTerminated
	return false, err
}

func (e *Engine) status() string {
	fps, frameMS := e.metrics.Frame()
	s := fmt.Sprintf("FPS %.0f  %.2fms", fps, frameMS)
	if e.gameInstance.FnStatus != nil {
		if extra := strings.TrimSpace(e.gameInstance.FnStatus()); extra != "" {
			s += "\n" + extra
		}
	}
	return s
}

// RequestQuit asks the loop to stop at its next poll. It is safe to call
// from any goroutine and never blocks.
func (e *Engine) RequestQuit() {
	select {
	case e.quit <- struct{}{}:
	default:
	}
}

// QuitOnSignal turns every value received on signals into a quit request.
// The returned stop function ends the forwarding goroutine and waits for it.
func (e *Engine) QuitOnSignal(signals <-chan os.Signal) (stop func()) {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		for {
			select {
			case sig := <-signals:
				core.LogInfo("received %s, quitting", sig)
				e.RequestQuit()
			case <-done:
				return
			}
		}
	}()
	return func() {
		close(done)
		<-exited
	}
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

// Frames is the number of presented frames.
func (e *Engine) Frames() uint64 {
	return e.frameCount
}

func (e *Engine) Metrics() *core.Metrics {
	return e.metrics
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown

	var errs []error
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			errs = append(errs, err)
		}
	}
	if e.hud != nil {
		e.hud.Destroy()
		e.hud = nil
	}
	if e.assetManager != nil {
		if err := e.assetManager.Shutdown(); err != nil {
			errs = append(errs, err)
		}
	}
	e.eventSystem.Shutdown()
	if err := e.platform.Shutdown(); err != nil {
		errs = append(errs, err)
	}

	e.currentStage = EngineStageUninitialized
	return errors.Join(errs...)
}

func (e *Engine) onEvent(context core.EventContext) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.currentStage = EngineStageTerminated
		return true
	}
	return false
}

func (e *Engine) onKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%s`", context.Type)
		return false
	}

	if ke.KeyCode == e.gameInstance.ApplicationConfig.CancelKey {
		// NOTE: Technically firing an event to itself, but there may be other listeners.
		e.eventSystem.Fire(core.QuitEvent())
		// Block anything else from processing this.
		return true
	}
	return false
}

func (e *Engine) onResized(context core.EventContext) bool {
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%s`", context.Type)
		return false
	}
	core.LogDebug("Window resize: %d, %d", se.WindowWidth, se.WindowHeight)
	return false
}
