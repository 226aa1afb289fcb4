package engine

import (
	"fmt"
	"time"

	"github.com/spaghettifunk/reaper/engine/config"
	"github.com/spaghettifunk/reaper/engine/core"
)

type PacingMode uint8

const (
	// Sleep the whole frame budget after every frame, whatever the frame cost.
	PacingFixed PacingMode = iota
	// Sleep only what is left of the frame budget.
	PacingCorrected
)

func (m PacingMode) String() string {
	switch m {
	case PacingFixed:
		return config.PacingFixed
	case PacingCorrected:
		return config.PacingCorrected
	default:
		return fmt.Sprintf("pacing(%d)", uint8(m))
	}
}

func ParsePacingMode(name string) (PacingMode, error) {
	switch name {
	case config.PacingFixed:
		return PacingFixed, nil
	case config.PacingCorrected:
		return PacingCorrected, nil
	default:
		return PacingFixed, fmt.Errorf("%w: unknown pacing %q", core.ErrConfig, name)
	}
}

// Pacer holds the frame rate down by sleeping at the end of each frame.
type Pacer struct {
	mode   PacingMode
	target time.Duration
	clock  *core.Clock
	sleep  func(time.Duration)
}

func NewPacer(mode PacingMode, fps int32, clock *core.Clock, sleep func(time.Duration)) *Pacer {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Pacer{
		mode:   mode,
		target: time.Second / time.Duration(fps),
		clock:  clock,
		sleep:  sleep,
	}
}

// Target is the duration of one frame at the configured rate.
func (p *Pacer) Target() time.Duration {
	return p.target
}

// Wait blocks for the rest of the frame that started at frameStart and
// returns how long it slept.
func (p *Pacer) Wait(frameStart time.Time) time.Duration {
	d := p.target
	if p.mode == PacingCorrected {
		d -= p.clock.Now().Sub(frameStart)
	}
	if d <= 0 {
		return 0
	}
	p.sleep(d)
	return d
}
