package core

import (
	"time"

	"github.com/spaghettifunk/reaper/engine/containers"
)

const AVG_COUNT uint8 = 30

// Metrics keeps a rolling average of the last AVG_COUNT frame times and the
// frame rate measured over the last full second.
type Metrics struct {
	msTimes            *containers.RingQueue[float64]
	msSum              float64
	msAvg              float64
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

func NewMetrics() *Metrics {
	return &Metrics{msTimes: containers.NewRingQueue[float64](int(AVG_COUNT))}
}

func (m *Metrics) Update(frameElapsed time.Duration) {
	// Calculate frame ms average
	frameMS := float64(frameElapsed) / float64(time.Millisecond)
	if oldest, dropped := m.msTimes.Overwrite(frameMS); dropped {
		m.msSum -= oldest
	}
	m.msSum += frameMS
	m.msAvg = m.msSum / float64(m.msTimes.Len())

	// Count all frames.
	m.frames++

	// Calculate frames per second.
	m.accumulatedFrameMS += frameMS
	if m.accumulatedFrameMS >= 1000 {
		m.fps = float64(m.frames)
		m.accumulatedFrameMS -= 1000
		m.frames = 0
	}
}

func (m *Metrics) FPS() float64 {
	return m.fps
}

func (m *Metrics) FrameTime() float64 {
	return m.msAvg
}

func (m *Metrics) Frame() (float64, float64) {
	return m.fps, m.msAvg
}
