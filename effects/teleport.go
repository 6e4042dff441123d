package effects

import (
	"time"

	"github.com/automoto/doomerang-fx/config"
	"github.com/automoto/doomerang-fx/easing"
	"github.com/automoto/doomerang-fx/shared/gamemath"
)

type TeleportPhase int

const (
	TeleportNone TeleportPhase = iota
	TeleportDisappear
	TeleportAppear
)

func (p TeleportPhase) String() string {
	switch p {
	case TeleportDisappear:
		return "disappear"
	case TeleportAppear:
		return "appear"
	default:
		return "none"
	}
}

// teleportState is one of *teleportDisappearing or *teleportAppearing; nil
// means idle.
type teleportState interface {
	teleportPhase() TeleportPhase
}

type teleportDisappearing struct {
	start    time.Time
	from, to gamemath.Vec
}

type teleportAppearing struct {
	start    time.Time
	from, at gamemath.Vec
}

func (*teleportDisappearing) teleportPhase() TeleportPhase { return TeleportDisappear }
func (*teleportAppearing) teleportPhase() TeleportPhase    { return TeleportAppear }

// Teleport fades a player out where it stands, moves it to the destination
// in a single step, and plays an arrival burst there.
type Teleport struct {
	tuning *config.TeleportConfig
	state  teleportState
}

// TeleportFrame holds the render parameters of an active teleport.
type TeleportFrame struct {
	Phase    TeleportPhase
	Progress float64
	From, To gamemath.Vec

	// Applied to the player sprite while disappearing.
	EntityOpacity float64
	EntityScale   float64

	// Arrival burst and damage radius, only non-zero while appearing. The
	// radius is data for hit detection; nothing here applies damage.
	BurstOpacity  float64
	DamageRadius  float64
	DamageOpacity float64
}

func (t *Teleport) Start(now time.Time, from, to gamemath.Vec) {
	t.state = &teleportDisappearing{start: now, from: from, to: to}
}

func (t *Teleport) Active() bool { return t.state != nil }

func (t *Teleport) Phase() TeleportPhase {
	if t.state == nil {
		return TeleportNone
	}
	return t.state.teleportPhase()
}

// Advance steps the phase machine. The only position write happens at the
// disappear -> appear boundary, where pos and target both snap to the
// destination. Each phase starts exactly where the previous one was due to
// end, so late ticks do not stretch the effect. Returns true while active.
func (t *Teleport) Advance(now time.Time, pos, target *gamemath.Vec) bool {
	for {
		switch s := t.state.(type) {
		case *teleportDisappearing:
			if now.Sub(s.start) < t.tuning.Disappear {
				return true
			}
			*pos = s.to
			*target = s.to
			t.state = &teleportAppearing{start: s.start.Add(t.tuning.Disappear), from: s.from, at: s.to}
		case *teleportAppearing:
			if now.Sub(s.start) < t.tuning.Appear {
				return true
			}
			t.state = nil
			return false
		default:
			return false
		}
	}
}

// Frame returns the render parameters for now, or false when idle.
func (t *Teleport) Frame(now time.Time) (TeleportFrame, bool) {
	switch s := t.state.(type) {
	case *teleportDisappearing:
		p := easing.Progress(now.Sub(s.start), t.tuning.Disappear)
		return TeleportFrame{
			Phase:         TeleportDisappear,
			Progress:      p,
			From:          s.from,
			To:            s.to,
			EntityOpacity: 1 - p,
			EntityScale:   1 + p*t.tuning.DisappearScale,
		}, true
	case *teleportAppearing:
		p := easing.Progress(now.Sub(s.start), t.tuning.Appear)
		return TeleportFrame{
			Phase:         TeleportAppear,
			Progress:      p,
			From:          s.from,
			To:            s.at,
			EntityOpacity: 1,
			EntityScale:   1,
			BurstOpacity:  easing.Triangle(p),
			DamageRadius:  t.tuning.DamageRadius,
			DamageOpacity: t.tuning.DamageOpacity * (1 - p),
		}, true
	}
	return TeleportFrame{}, false
}
