package effects

import (
	"time"

	"github.com/automoto/doomerang-fx/config"
	"github.com/automoto/doomerang-fx/easing"
	"github.com/automoto/doomerang-fx/shared/gamemath"
)

// Knockback slides a player from where it stood when hit to the landing
// point the server computed, along an ease-out cubic curve.
type Knockback struct {
	tuning *config.KnockbackConfig
	run    *knockbackRun
}

type knockbackRun struct {
	start    time.Time
	from, to gamemath.Vec
	attacker gamemath.Vec // not used by the slide; kept for directional effects
}

func (k *Knockback) Start(now time.Time, from, attacker, to gamemath.Vec) {
	k.run = &knockbackRun{start: now, from: from, to: to, attacker: attacker}
}

func (k *Knockback) Active() bool { return k.run != nil }

// Attacker returns the attacker position of the running knockback.
func (k *Knockback) Attacker() (gamemath.Vec, bool) {
	if k.run == nil {
		return gamemath.Vec{}, false
	}
	return k.run.attacker, true
}

// Advance writes the eased position for now into pos and pins target to the
// landing point so network smoothing does not pull the player back once the
// slide ends. At or past the duration it snaps pos to the landing point
// exactly, deactivates and returns false.
func (k *Knockback) Advance(now time.Time, pos, target *gamemath.Vec) bool {
	if k.run == nil {
		return false
	}

	r := k.run
	*target = r.to

	elapsed := now.Sub(r.start)
	if elapsed >= k.tuning.Duration {
		*pos = r.to
		k.run = nil
		return false
	}

	*pos = r.from.Lerp(r.to, easing.OutCubic(easing.Progress(elapsed, k.tuning.Duration)))
	return true
}
