// Package effects animates remote players: network position smoothing plus
// the timed visual effects layered on top of it. Every call takes the
// current time explicitly, so a whole frame is a deterministic function of
// the timestamps the caller passes in.
package effects

import (
	"time"

	"github.com/automoto/doomerang-fx/config"
	"github.com/automoto/doomerang-fx/shared/gamemath"
)

const defaultMaxHealth = 100

// RemotePlayer is the animation state of one networked player. It owns one
// instance of every effect machine; an effect that is not running is idle,
// never absent.
type RemotePlayer struct {
	ID   uint
	Name string

	pos    gamemath.Vec
	target gamemath.Vec
	width  float64
	height float64

	health     int
	maxHealth  int
	level      int
	experience int

	authority Authority
	lastTick  time.Time
	ticked    bool

	tuning    *config.EffectsConfig
	knockback Knockback
	teleport  Teleport
	laser     Laser
	telepathy Telepathy
	flash     HitFlash
	chat      ChatBubble
}

// NewRemotePlayer places a player at pos with its network target on the same
// point. tuning is read live, so later changes apply to running players.
func NewRemotePlayer(id uint, name string, pos gamemath.Vec, tuning *config.EffectsConfig) *RemotePlayer {
	return &RemotePlayer{
		ID:        id,
		Name:      name,
		pos:       pos,
		target:    pos,
		width:     tuning.Display.Width,
		height:    tuning.Display.Height,
		health:    defaultMaxHealth,
		maxHealth: defaultMaxHealth,
		tuning:    tuning,
		knockback: Knockback{tuning: &tuning.Knockback},
		teleport:  Teleport{tuning: &tuning.Teleport},
		laser:     Laser{tuning: &tuning.Laser},
		telepathy: Telepathy{tuning: &tuning.Telepathy, center: pos},
		flash:     HitFlash{tuning: &tuning.HitFlash},
		chat:      ChatBubble{tuning: &tuning.Chat},
	}
}

// UpdatePosition sets the network target the player is smoothed toward.
func (p *RemotePlayer) UpdatePosition(x, y float64) {
	p.target = gamemath.Vec{X: x, Y: y}
}

func (p *RemotePlayer) Position() gamemath.Vec { return p.pos }

func (p *RemotePlayer) Target() gamemath.Vec { return p.target }

// Bounds is the display box centered on the current position.
func (p *RemotePlayer) Bounds() gamemath.Rect {
	return gamemath.CenteredRect(p.pos, p.width, p.height)
}

func (p *RemotePlayer) Size() (w, h float64) { return p.width, p.height }

// FitSprite sizes the player to the configured display height while keeping
// the sprite's aspect ratio. Empty images leave the size unchanged.
func (p *RemotePlayer) FitSprite(imgW, imgH int) {
	if imgW <= 0 || imgH <= 0 {
		return
	}
	p.height = p.tuning.Display.Height
	p.width = p.height * float64(imgW) / float64(imgH)
}

// Authority reports which effect currently owns the position.
func (p *RemotePlayer) Authority() Authority { return p.authority }

// StartKnockback slides the player from its current position to (endX, endY).
// It is refused, returning false, while a teleport still running at now owns
// the position.
func (p *RemotePlayer) StartKnockback(now time.Time, attackerX, attackerY, endX, endY float64) bool {
	p.settleAuthority(now, AuthorityKnockback)
	if !p.authority.claim(AuthorityKnockback) {
		return false
	}
	p.knockback.Start(now, p.pos, gamemath.Vec{X: attackerX, Y: attackerY}, gamemath.Vec{X: endX, Y: endY})
	return true
}

// StartTeleport moves the player to (endX, endY) through a disappear/appear
// sequence. It is refused, returning false, while a knockback still running
// at now owns the position.
func (p *RemotePlayer) StartTeleport(now time.Time, startX, startY, endX, endY float64) bool {
	p.settleAuthority(now, AuthorityTeleport)
	if !p.authority.claim(AuthorityTeleport) {
		return false
	}
	p.teleport.Start(now, gamemath.Vec{X: startX, Y: startY}, gamemath.Vec{X: endX, Y: endY})
	return true
}

// settleAuthority runs the other position holder up to now before want
// claims, so a holder whose time ran out since the last tick lands and lets
// go instead of blocking the claim.
func (p *RemotePlayer) settleAuthority(now time.Time, want Authority) {
	switch p.authority {
	case want, AuthorityNone:
		return
	case AuthorityKnockback:
		if !p.knockback.Advance(now, &p.pos, &p.target) {
			p.authority.release(AuthorityKnockback)
		}
	case AuthorityTeleport:
		if !p.teleport.Advance(now, &p.pos, &p.target) {
			p.authority.release(AuthorityTeleport)
		}
	}
}

func (p *RemotePlayer) StartLaserAim(now time.Time, x, y, dirX, dirY float64) {
	p.laser.StartAiming(now, gamemath.Vec{X: x, Y: y}, gamemath.Vec{X: dirX, Y: dirY})
}

// FireLaser fires an aiming laser right away. No-op when no laser is active.
func (p *RemotePlayer) FireLaser(now time.Time) bool {
	return p.laser.Fire(now)
}

func (p *RemotePlayer) StartTelepathy(now time.Time, x, y, radius float64) {
	p.telepathy.Start(now, gamemath.Vec{X: x, Y: y}, radius)
}

func (p *RemotePlayer) SetChatMessage(now time.Time, text string) {
	p.chat.Set(now, text)
}

// TakeDamage lowers health, never below zero, and restarts the hit flash.
// It reports whether the player is dead afterwards.
func (p *RemotePlayer) TakeDamage(now time.Time, amount int) bool {
	p.setHealth(p.health - amount)
	p.flash.Trigger(now)
	return !p.IsAlive()
}

// SetHealth applies an authoritative health reading, clamped to [0, max].
func (p *RemotePlayer) SetHealth(current, maxHP int) {
	p.maxHealth = max(maxHP, 0)
	p.setHealth(current)
}

func (p *RemotePlayer) setHealth(v int) {
	p.health = min(max(v, 0), p.maxHealth)
}

func (p *RemotePlayer) Health() (current, maxHP int) { return p.health, p.maxHealth }

func (p *RemotePlayer) IsAlive() bool { return p.health > 0 }

func (p *RemotePlayer) SetProgress(level, experience int) {
	p.level = level
	p.experience = experience
}

func (p *RemotePlayer) Progress() (level, experience int) { return p.level, p.experience }

func (p *RemotePlayer) KnockbackActive() bool { return p.knockback.Active() }

func (p *RemotePlayer) TeleportPhase() TeleportPhase { return p.teleport.Phase() }

func (p *RemotePlayer) LaserPhase() LaserPhase { return p.laser.Phase() }

func (p *RemotePlayer) TelepathyActive() bool { return p.telepathy.Active() }

func (p *RemotePlayer) TelepathyCenter() gamemath.Vec { return p.telepathy.Center() }

func (p *RemotePlayer) FlashIntensity(now time.Time) float64 { return p.flash.Intensity(now) }

func (p *RemotePlayer) ChatMessage() (string, bool) { return p.chat.Message() }

// Advance runs one tick at time now. Order: position (knockback, else
// smoothing unless a teleport holds authority), chat, laser, teleport,
// telepathy. The hit flash is derived on read and has no step.
//
// No machine reads another machine's output within a tick; they only share
// the position. Telepathy, last in line, sees the position written this
// tick. Keep this in mind before adding effects that react to each other.
//
// Every machine is a pure function of elapsed time, and smoothing only runs
// when now is past the previous tick, so repeating Advance with the same now
// changes nothing.
func (p *RemotePlayer) Advance(now time.Time) {
	fresh := !p.ticked || now.After(p.lastTick)

	p.resolvePosition(now, fresh)
	p.chat.Advance(now)
	p.laser.Advance(now)
	if !p.teleport.Advance(now, &p.pos, &p.target) {
		p.authority.release(AuthorityTeleport)
	}
	p.telepathy.Advance(now, p.pos)

	if fresh {
		p.lastTick = now
		p.ticked = true
	}
}

func (p *RemotePlayer) resolvePosition(now time.Time, fresh bool) {
	switch p.authority {
	case AuthorityKnockback:
		if p.knockback.Advance(now, &p.pos, &p.target) {
			return
		}
		p.authority.release(AuthorityKnockback)
	case AuthorityTeleport:
		return
	}

	if fresh {
		alpha := p.tuning.Interpolation.Alpha
		p.pos.X += (p.target.X - p.pos.X) * alpha
		p.pos.Y += (p.target.Y - p.pos.Y) * alpha
	}
}
