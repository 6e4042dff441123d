package effects

import (
	"time"

	"github.com/automoto/doomerang-fx/config"
	"github.com/automoto/doomerang-fx/easing"
	"github.com/automoto/doomerang-fx/shared/gamemath"
)

type LaserPhase int

const (
	LaserNone LaserPhase = iota
	LaserAiming
	LaserFiring
)

func (p LaserPhase) String() string {
	switch p {
	case LaserAiming:
		return "aiming"
	case LaserFiring:
		return "firing"
	default:
		return "none"
	}
}

// laserState is one of *laserAiming or *laserFiring; nil means idle.
type laserState interface {
	laserPhase() LaserPhase
}

type laserAiming struct {
	start  time.Time
	origin gamemath.Vec // where the server says the aim began
	dir    gamemath.Vec
}

type laserFiring struct {
	start time.Time
	dir   gamemath.Vec
}

func (*laserAiming) laserPhase() LaserPhase { return LaserAiming }
func (*laserFiring) laserPhase() LaserPhase { return LaserFiring }

// Laser shows a dashed aim line that thickens until the shot goes off,
// either when the server says so or when the aim time runs out, then a
// short two-layer beam.
type Laser struct {
	tuning *config.LaserConfig
	state  laserState
}

// LaserFrame holds the render parameters of an active laser. The ray always
// starts at the player's live position.
type LaserFrame struct {
	Phase      LaserPhase
	Progress   float64
	Start, End gamemath.Vec
	Opacity    float64

	// Aiming
	Width  float64
	Dashed bool

	// Firing
	CoreWidth   float64
	GlowWidth   float64
	GlowOpacity float64
}

var defaultAim = gamemath.Vec{X: 1}

// StartAiming enters the aiming phase. dir is normalized; a zero vector aims
// to the right.
func (l *Laser) StartAiming(now time.Time, origin, dir gamemath.Vec) {
	l.state = &laserAiming{start: now, origin: origin, dir: dir.Normalize(defaultAim)}
}

// Fire switches to the firing phase immediately, discarding any aim time
// left. Calling it while firing restarts the beam. It is a no-op when idle.
func (l *Laser) Fire(now time.Time) bool {
	switch s := l.state.(type) {
	case *laserAiming:
		l.state = &laserFiring{start: now, dir: s.dir}
	case *laserFiring:
		l.state = &laserFiring{start: now, dir: s.dir}
	default:
		return false
	}
	return true
}

func (l *Laser) Active() bool { return l.state != nil }

func (l *Laser) Phase() LaserPhase {
	if l.state == nil {
		return LaserNone
	}
	return l.state.laserPhase()
}

// Direction returns the unit aim direction of the active laser.
func (l *Laser) Direction() (gamemath.Vec, bool) {
	switch s := l.state.(type) {
	case *laserAiming:
		return s.dir, true
	case *laserFiring:
		return s.dir, true
	}
	return gamemath.Vec{}, false
}

// AimOrigin returns where the server reported the aim started. The ray
// itself is cast from the live position.
func (l *Laser) AimOrigin() (gamemath.Vec, bool) {
	if s, ok := l.state.(*laserAiming); ok {
		return s.origin, true
	}
	return gamemath.Vec{}, false
}

// Advance fires automatically once the aim time is up and goes idle when
// the beam has run its course. Returns true while active.
func (l *Laser) Advance(now time.Time) bool {
	for {
		switch s := l.state.(type) {
		case *laserAiming:
			if now.Sub(s.start) < l.tuning.Aim {
				return true
			}
			l.state = &laserFiring{start: s.start.Add(l.tuning.Aim), dir: s.dir}
		case *laserFiring:
			if now.Sub(s.start) < l.tuning.Fire {
				return true
			}
			l.state = nil
			return false
		default:
			return false
		}
	}
}

// Frame returns the render parameters for a ray cast from origin, or false
// when idle.
func (l *Laser) Frame(now time.Time, origin gamemath.Vec) (LaserFrame, bool) {
	switch s := l.state.(type) {
	case *laserAiming:
		p := easing.Progress(now.Sub(s.start), l.tuning.Aim)
		return LaserFrame{
			Phase:    LaserAiming,
			Progress: p,
			Start:    origin,
			End:      origin.Add(s.dir.Scale(l.tuning.Range)),
			Opacity:  l.tuning.AimOpacityBase + p*l.tuning.AimOpacityGain,
			Width:    l.tuning.AimWidthBase + p*l.tuning.AimWidthGain,
			Dashed:   true,
		}, true
	case *laserFiring:
		p := easing.Progress(now.Sub(s.start), l.tuning.Fire)
		opacity := 1 - p*l.tuning.FireFade
		return LaserFrame{
			Phase:       LaserFiring,
			Progress:    p,
			Start:       origin,
			End:         origin.Add(s.dir.Scale(l.tuning.Range)),
			Opacity:     opacity,
			CoreWidth:   l.tuning.CoreWidth,
			GlowWidth:   l.tuning.GlowWidth,
			GlowOpacity: opacity * l.tuning.GlowWeight,
		}, true
	}
	return LaserFrame{}, false
}
