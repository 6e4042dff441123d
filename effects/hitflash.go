package effects

import (
	"time"

	"github.com/automoto/doomerang-fx/config"
	"github.com/automoto/doomerang-fx/easing"
)

// HitFlash is a damage flash decaying linearly from full intensity. It has
// no phases and needs no Advance; a new hit restarts the decay.
type HitFlash struct {
	tuning *config.HitFlashConfig
	at     time.Time
	hit    bool
}

func (f *HitFlash) Trigger(now time.Time) {
	f.at = now
	f.hit = true
}

// Intensity is 1 at the moment of the hit, falling to 0 over the duration.
// A now before the hit clamps to 1.
func (f *HitFlash) Intensity(now time.Time) float64 {
	if !f.hit {
		return 0
	}
	return 1 - easing.Progress(now.Sub(f.at), f.tuning.Duration)
}
