package netplayers

import (
	"log"
	"time"

	"github.com/automoto/doomerang-fx/effects"
	"github.com/automoto/doomerang-fx/shared/messages"
	"github.com/leap-fish/necs/esync"
)

// ApplyEvent starts the effect an event describes on its player. Events for
// unknown players are dropped. It reports whether the event took effect.
func (r *Registry) ApplyEvent(now time.Time, evt any) bool {
	switch e := evt.(type) {
	case messages.KnockbackEvent:
		return r.with(e.TargetNetworkID, evt, func(p *effects.RemotePlayer) bool {
			return r.claimed(p, "knockback", p.StartKnockback(now, e.AttackerX, e.AttackerY, e.EndX, e.EndY))
		})
	case messages.TeleportEvent:
		return r.with(e.NetworkID, evt, func(p *effects.RemotePlayer) bool {
			return r.claimed(p, "teleport", p.StartTeleport(now, e.StartX, e.StartY, e.EndX, e.EndY))
		})
	case messages.LaserAimEvent:
		return r.with(e.NetworkID, evt, func(p *effects.RemotePlayer) bool {
			p.StartLaserAim(now, e.X, e.Y, e.DirectionX, e.DirectionY)
			return true
		})
	case messages.LaserFireEvent:
		return r.with(e.NetworkID, evt, func(p *effects.RemotePlayer) bool {
			return p.FireLaser(now)
		})
	case messages.TelepathyEvent:
		return r.with(e.NetworkID, evt, func(p *effects.RemotePlayer) bool {
			p.StartTelepathy(now, e.X, e.Y, e.Radius)
			return true
		})
	case messages.DamageEvent:
		return r.with(e.TargetNetworkID, evt, func(p *effects.RemotePlayer) bool {
			if p.TakeDamage(now, e.Amount) {
				log.Printf("[netplayers] %d is down", e.TargetNetworkID)
			}
			return true
		})
	case messages.ChatEvent:
		return r.with(e.NetworkID, evt, func(p *effects.RemotePlayer) bool {
			p.SetChatMessage(now, e.Text)
			return true
		})
	}
	log.Printf("[netplayers] unhandled event %T", evt)
	return false
}

// ApplyEvents applies events in order.
func (r *Registry) ApplyEvents(now time.Time, events []any) {
	for _, evt := range events {
		r.ApplyEvent(now, evt)
	}
}

func (r *Registry) with(id uint, evt any, fn func(p *effects.RemotePlayer) bool) bool {
	p, ok := r.Get(esync.NetworkId(id))
	if !ok {
		log.Printf("[netplayers] %T for unknown player %d", evt, id)
		return false
	}
	return fn(p)
}

func (r *Registry) claimed(p *effects.RemotePlayer, what string, ok bool) bool {
	if !ok {
		log.Printf("[netplayers] %s refused for %d: position held by %s", what, p.ID, p.Authority())
	}
	return ok
}
