package effects

import (
	"time"

	"github.com/automoto/doomerang-fx/shared/gamemath"
)

// Frame is everything a renderer needs to draw one remote player at one
// instant. Effect sections are nil while their machine is idle.
type Frame struct {
	ID       uint
	Name     string
	Position gamemath.Vec
	Bounds   gamemath.Rect

	// Sprite modifiers
	Opacity float64
	Scale   float64
	Flash   float64

	Health     int
	MaxHealth  int
	Alive      bool
	Level      int
	Experience int

	Teleport  *TeleportFrame
	Laser     *LaserFrame
	Telepathy *TelepathyFrame
	Chat      *ChatFrame
}

// Frame collects the render parameters for now. It reads state only; call
// Advance first to move the machines to now.
func (p *RemotePlayer) Frame(now time.Time) Frame {
	f := Frame{
		ID:         p.ID,
		Name:       p.Name,
		Position:   p.pos,
		Bounds:     p.Bounds(),
		Opacity:    1,
		Scale:      1,
		Flash:      p.flash.Intensity(now),
		Health:     p.health,
		MaxHealth:  p.maxHealth,
		Alive:      p.IsAlive(),
		Level:      p.level,
		Experience: p.experience,
	}

	if tf, ok := p.teleport.Frame(now); ok {
		f.Teleport = &tf
		f.Opacity = tf.EntityOpacity
		f.Scale = tf.EntityScale
	}
	if lf, ok := p.laser.Frame(now, p.pos); ok {
		f.Laser = &lf
	}
	if pf, ok := p.telepathy.Frame(now); ok {
		f.Telepathy = &pf
	}
	if cf, ok := p.chat.Frame(now); ok {
		f.Chat = &cf
	}

	return f
}
