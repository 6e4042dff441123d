package effects

import (
	"math"
	"time"

	"github.com/automoto/doomerang-fx/config"
	"github.com/automoto/doomerang-fx/easing"
	"github.com/automoto/doomerang-fx/shared/gamemath"
)

// Telepathy is a pulsing area ring that follows the player for a fixed time.
type Telepathy struct {
	tuning *config.TelepathyConfig
	run    *telepathyRun
	center gamemath.Vec
}

type telepathyRun struct {
	start  time.Time
	radius float64
}

// TelepathyFrame holds the render parameters of an active telepathy pulse.
type TelepathyFrame struct {
	Progress      float64
	Center        gamemath.Vec
	Radius        float64
	FillOpacity   float64
	BorderOpacity float64
}

func (t *Telepathy) Start(now time.Time, at gamemath.Vec, radius float64) {
	t.run = &telepathyRun{start: now, radius: radius}
	t.center = at
}

func (t *Telepathy) Active() bool { return t.run != nil }

// Center is the position the ring was last centered on.
func (t *Telepathy) Center() gamemath.Vec { return t.center }

// Advance re-centers on pos every tick and deactivates once the duration
// has elapsed. Returns true while active.
func (t *Telepathy) Advance(now time.Time, pos gamemath.Vec) bool {
	t.center = pos
	if t.run == nil {
		return false
	}
	if now.Sub(t.run.start) >= t.tuning.Duration {
		t.run = nil
		return false
	}
	return true
}

func (t *Telepathy) Frame(now time.Time) (TelepathyFrame, bool) {
	if t.run == nil {
		return TelepathyFrame{}, false
	}
	p := easing.Progress(now.Sub(t.run.start), t.tuning.Duration)
	pulse := 1 + t.tuning.PulseAmplitude*math.Sin(p*2*math.Pi*t.tuning.PulseCycles)
	return TelepathyFrame{
		Progress:      p,
		Center:        t.center,
		Radius:        t.run.radius * pulse,
		FillOpacity:   t.tuning.FillOpacity * (1 - p),
		BorderOpacity: t.tuning.BorderOpacity * (1 - p),
	}, true
}
