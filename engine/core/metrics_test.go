package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := NewMetrics()

	for i := 0; i < 99; i++ {
		m.Update(10 * time.Millisecond)
	}
	assert.Zero(t, m.FPS(), "no full second accumulated yet")
	assert.InDelta(t, 10.0, m.FrameTime(), 0.0001)

	m.Update(10 * time.Millisecond)
	fps, frameMS := m.Frame()
	assert.Equal(t, 100.0, fps)
	assert.InDelta(t, 10.0, frameMS, 0.0001)
}

func TestMetricsAverageTracksRecentFrames(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < int(AVG_COUNT); i++ {
		m.Update(10 * time.Millisecond)
	}
	for i := 0; i < int(AVG_COUNT); i++ {
		m.Update(20 * time.Millisecond)
	}
	assert.InDelta(t, 20.0, m.FrameTime(), 0.0001)

	for i := 0; i < int(AVG_COUNT)/2; i++ {
		m.Update(10 * time.Millisecond)
	}
	assert.InDelta(t, 15.0, m.FrameTime(), 0.0001, "half the window is old samples")
}

func TestClock(t *testing.T) {
	now := time.Unix(100, 0)
	c := NewClockWithSource(func() time.Time { return now })

	c.Update()
	assert.Zero(t, c.Elapsed(), "clock not started")

	c.Start()
	now = now.Add(250 * time.Millisecond)
	c.Update()
	assert.Equal(t, 250*time.Millisecond, c.Elapsed())

	c.Stop()
	now = now.Add(time.Second)
	c.Update()
	assert.Equal(t, 250*time.Millisecond, c.Elapsed(), "stopped clock keeps its elapsed time")
}
