package testbed

import (
	"fmt"
	"image/color"

	"github.com/spaghettifunk/reaper/engine"
	"github.com/spaghettifunk/reaper/engine/components"
	"github.com/spaghettifunk/reaper/engine/config"
	"github.com/spaghettifunk/reaper/engine/core"
	"github.com/spaghettifunk/reaper/engine/math"
	"github.com/spaghettifunk/reaper/engine/platform"
)

// ActorSettings is everything needed to build the sprite at startup.
type ActorSettings struct {
	AssetPath  string
	Position   math.Point
	Footprint  math.Footprint
	Speed      int32
	Background color.RGBA
	Keys       config.KeyBindings
}

func NewActorSettings(cfg *config.Config) (ActorSettings, error) {
	keys, err := cfg.KeyBindings()
	if err != nil {
		return ActorSettings{}, err
	}
	return ActorSettings{
		AssetPath: cfg.Actor.Asset,
		Position:  math.NewPoint(cfg.Actor.X, cfg.Actor.Y),
		Footprint: math.Footprint{
			SourceX: cfg.Actor.SourceX,
			SourceY: cfg.Actor.SourceY,
			Width:   cfg.Actor.Width,
			Height:  cfg.Actor.Height,
		},
		Speed:      cfg.Actor.Speed,
		Background: cfg.Actor.Background.RGBA(),
		Keys:       keys,
	}, nil
}

type reaperState struct {
	settings   ActorSettings
	directions map[core.KeyCode]components.Direction
	actor      *components.Actor
}

// ReaperGame moves a single sprite one step per directional key press over
// a constant background.
type ReaperGame struct {
	*engine.Game
}

func NewReaperGame(appConfig *engine.ApplicationConfig, settings ActorSettings) *ReaperGame {
	rg := &ReaperGame{
		Game: &engine.Game{
			ApplicationConfig: appConfig,
			State: &reaperState{
				settings: settings,
				directions: map[core.KeyCode]components.Direction{
					settings.Keys.Left:  components.DirectionLeft,
					settings.Keys.Right: components.DirectionRight,
					settings.Keys.Up:    components.DirectionUp,
					settings.Keys.Down:  components.DirectionDown,
				},
			},
		},
	}

	rg.FnInitialize = rg.Initialize
	rg.FnBackground = rg.Background
	rg.FnRender = rg.Render
	rg.FnStatus = rg.Status
	rg.FnShutdown = rg.Shutdown

	return rg
}

func (g *ReaperGame) state() *reaperState {
	return g.State.(*reaperState)
}

func (g *ReaperGame) Initialize(ctx *engine.Context) error {
	s := g.state()

	img, err := ctx.Assets.Acquire(s.settings.AssetPath)
	if err != nil {
		return err
	}
	s.actor = components.NewActor(img, s.settings.Position, s.settings.Footprint, s.settings.Speed)

	if !ctx.Events.Register(core.EVENT_CODE_KEY_PRESSED, g, g.onKey) {
		s.actor.Destroy()
		s.actor = nil
		return fmt.Errorf("%w: reaper key listener already registered", core.ErrInit)
	}

	core.LogInfo("reaper ready at (%d, %d), %dx%d sprite from %s", s.actor.Position.X, s.actor.Position.Y,
		s.settings.Footprint.Width, s.settings.Footprint.Height, s.settings.AssetPath)
	return nil
}

// Actor returns the sprite, nil before initialization and after shutdown.
func (g *ReaperGame) Actor() *components.Actor {
	return g.state().actor
}

func (g *ReaperGame) Background() color.RGBA {
	return g.state().settings.Background
}

func (g *ReaperGame) Render(surface platform.Surface) error {
	return g.state().actor.Draw(surface)
}

func (g *ReaperGame) Status() string {
	a := g.state().actor
	if a == nil {
		return ""
	}
	return fmt.Sprintf("POS %d,%d", a.Position.X, a.Position.Y)
}

func (g *ReaperGame) Shutdown() error {
	s := g.state()
	if s.actor != nil {
		s.actor.Destroy()
		s.actor = nil
	}
	return nil
}

func (g *ReaperGame) onKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		return false
	}
	s := g.state()
	d, ok := s.directions[ke.KeyCode]
	if !ok || s.actor == nil {
		return false
	}
	s.actor.Move(d)
	return true
}
