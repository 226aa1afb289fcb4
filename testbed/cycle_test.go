package testbed

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/reaper/engine"
	"github.com/spaghettifunk/reaper/engine/config"
	"github.com/spaghettifunk/reaper/engine/core"
	"github.com/spaghettifunk/reaper/engine/platform/headless"
)

func testAppConfig(t *testing.T, variant string) *engine.ApplicationConfig {
	t.Helper()
	cfg := config.Default()
	cfg.Application.Backend = config.BackendHeadless
	cfg.Application.Variant = variant
	cfg.Application.LogLevel = "warn"
	require.NoError(t, cfg.Validate())

	app, err := engine.NewApplicationConfig(cfg)
	require.NoError(t, err)
	return app
}

func TestCycleColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0, G: 64, B: 255, A: 255}, CycleColor(0))
	assert.Equal(t, color.RGBA{R: 100, G: 64, B: 155, A: 255}, CycleColor(100))
	assert.Equal(t, color.RGBA{R: 254, G: 64, B: 1, A: 255}, CycleColor(254))
}

func TestCycleCounterWraps(t *testing.T) {
	g := NewCycleGame(testAppConfig(t, config.VariantCycle))
	assert.Equal(t, uint8(0), g.Counter())

	for want := 1; want <= 254; want++ {
		require.NoError(t, g.Update())
		require.Equal(t, uint8(want), g.Counter())
	}
	require.NoError(t, g.Update())
	assert.Equal(t, uint8(0), g.Counter(), "255 is never reached")
}

func TestCycleGameFrames(t *testing.T) {
	app := testAppConfig(t, config.VariantCycle)
	app.MaxFrames = 300
	g := NewCycleGame(app)
	p := headless.New()

	e, err := engine.New(g.Game, p, engine.WithSleep(func(d time.Duration) {}))
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	defer e.Shutdown()
	require.NoError(t, e.Run())

	frames := p.Recorder().Frames()
	require.Len(t, frames, 301)

	// splash frame before the loop
	splash := frames[0]
	require.Len(t, splash, 3)
	assert.Equal(t, headless.OpClear, splash[1].Kind)
	assert.Equal(t, color.RGBA{R: 0, G: 255, B: 255, A: 255}, splash[1].Color)

	for n, f := range frames[1:] {
		want := CycleColor(uint8((n + 1) % 255))
		require.Equal(t, headless.OpClear, f[1].Kind)
		require.Equal(t, want, f[1].Color, "frame %d", n)
	}
}

func TestCycleGameQuits(t *testing.T) {
	g := NewCycleGame(testAppConfig(t, config.VariantCycle))
	p := headless.New(nil, nil, []core.EventContext{core.OtherEvent(nil), core.KeyPressedEvent(core.KEY_ESCAPE)})

	e, err := engine.New(g.Game, p, engine.WithSleep(func(d time.Duration) {}))
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	defer e.Shutdown()

	require.NoError(t, e.Run())
	assert.Equal(t, uint64(2), e.Frames())
	assert.Equal(t, uint8(2), g.Counter(), "the quit frame skips its update")
}
