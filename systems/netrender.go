package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/doomerang-fx/config"
	"github.com/automoto/doomerang-fx/effects"
	"github.com/automoto/doomerang-fx/fonts"
	"github.com/automoto/doomerang-fx/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi/ecs"
)

// Draw renders every remote player from its frame parameters. Back to front:
// telepathy ring, damage zone, sprite, teleport burst, laser, bars and text.
func (rp *RemotePlayers) Draw(_ *ecs.ECS, screen *ebiten.Image) {
	rp.registry.Each(func(id esync.NetworkId, p *effects.RemotePlayer) {
		f := p.Frame(rp.now)
		base := cfg.Render.PlayerColors[int(id)%len(cfg.Render.PlayerColors)]

		if f.Telepathy != nil {
			drawTelepathy(screen, f.Telepathy)
		}
		if f.Teleport != nil && f.Teleport.DamageRadius > 0 && cfg.Overlay.ShowDamageZones {
			drawDamageZone(screen, f.Teleport)
		}
		drawBody(screen, f, base, rp.inZone[id])
		if f.Teleport != nil && f.Teleport.BurstOpacity > 0 {
			drawBurst(screen, f)
		}
		if f.Laser != nil {
			drawLaser(screen, f.Laser)
		}
		drawHealthBar(screen, f)
		if cfg.Overlay.ShowNameLabels {
			drawLabel(screen, f)
		}
		if f.Chat != nil && cfg.Overlay.ShowChatBubbles {
			drawChatBubble(screen, f)
		}
	})
}

func drawBody(screen *ebiten.Image, f effects.Frame, base color.RGBA, inZone bool) {
	if f.Opacity <= 0 {
		return
	}
	w, h := f.Bounds.W*f.Scale, f.Bounds.H*f.Scale
	box := gamemath.CenteredRect(f.Position, w, h)

	body := mix(base, cfg.White, f.Flash)
	if !f.Alive {
		body = mix(body, cfg.BlackOverlay, 0.6)
	}
	vector.DrawFilledRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), fade(body, f.Opacity), false)

	if inZone {
		vector.StrokeRect(screen, float32(box.X)-2, float32(box.Y)-2, float32(box.W)+4, float32(box.H)+4, 2, fade(cfg.Render.InZoneColor, f.Opacity), false)
	}
}

func drawTelepathy(screen *ebiten.Image, t *effects.TelepathyFrame) {
	cx, cy, r := float32(t.Center.X), float32(t.Center.Y), float32(t.Radius)
	vector.DrawFilledCircle(screen, cx, cy, r, fade(cfg.Render.TelepathyColor, t.FillOpacity), true)
	vector.StrokeCircle(screen, cx, cy, r, 2, fade(cfg.Render.TelepathyColor, t.BorderOpacity), true)
}

func drawDamageZone(screen *ebiten.Image, t *effects.TeleportFrame) {
	cx, cy, r := float32(t.To.X), float32(t.To.Y), float32(t.DamageRadius)
	vector.DrawFilledCircle(screen, cx, cy, r, fade(cfg.Render.DamageZoneColor, t.DamageOpacity*0.5), true)
	vector.StrokeCircle(screen, cx, cy, r, 2, fade(cfg.Render.DamageZoneColor, t.DamageOpacity), true)
}

func drawBurst(screen *ebiten.Image, f effects.Frame) {
	t := f.Teleport
	r := float32(max(f.Bounds.W, f.Bounds.H)) * float32(0.5+t.BurstOpacity*0.5)
	vector.DrawFilledCircle(screen, float32(t.To.X), float32(t.To.Y), r, fade(cfg.White, t.BurstOpacity*0.7), true)
}

func drawLaser(screen *ebiten.Image, l *effects.LaserFrame) {
	if l.Dashed {
		tuning := cfg.Effects.Laser
		for _, seg := range gamemath.Dashes(l.Start, l.End, tuning.DashLength, tuning.DashGap) {
			strokeSegment(screen, seg, l.Width, fade(cfg.Render.LaserColor, l.Opacity))
		}
		return
	}
	beam := gamemath.Segment{A: l.Start, B: l.End}
	strokeSegment(screen, beam, l.GlowWidth, fade(cfg.Render.LaserColor, l.GlowOpacity))
	strokeSegment(screen, beam, l.CoreWidth, fade(cfg.Render.LaserCoreColor, l.Opacity))
}

func strokeSegment(screen *ebiten.Image, s gamemath.Segment, width float64, clr color.Color) {
	vector.StrokeLine(screen, float32(s.A.X), float32(s.A.Y), float32(s.B.X), float32(s.B.Y), float32(width), clr, true)
}

func drawHealthBar(screen *ebiten.Image, f effects.Frame) {
	if f.MaxHealth <= 0 {
		return
	}
	w := float32(cfg.Render.HealthBarWidth)
	h := float32(cfg.Render.HealthBarHeight)
	x := float32(f.Position.X) - w/2
	y := float32(f.Bounds.Y) - h - 2

	ratio := float32(f.Health) / float32(f.MaxHealth)
	fill := cfg.Green
	switch {
	case ratio <= 0.25:
		fill = cfg.Red
	case ratio <= 0.5:
		fill = cfg.Yellow
	}

	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen, x, y, w*ratio, h, fill, false)
}

func drawLabel(screen *ebiten.Image, f effects.Frame) {
	face := fonts.Small.Get()
	label := f.Name
	if label == "" {
		label = fmt.Sprintf("ID:%d", f.ID)
	}
	if f.Level > 0 {
		label = fmt.Sprintf("%s Lv%d", label, f.Level)
	}
	bounds := text.BoundString(face, label)
	x := int(f.Position.X) - bounds.Dx()/2
	y := int(f.Bounds.Y - cfg.Render.HealthBarHeight - cfg.Render.LabelOffset)
	text.Draw(screen, label, face, x, y, cfg.White)
}

func drawChatBubble(screen *ebiten.Image, f effects.Frame) {
	face := fonts.Regular.Get()
	pad := cfg.Render.BubblePadding
	bounds := text.BoundString(face, f.Chat.Text)

	w := float64(bounds.Dx()) + pad*2
	h := float64(bounds.Dy()) + pad*2
	x := f.Position.X - w/2
	y := f.Bounds.Y - cfg.Render.BubbleOffset - h

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fade(cfg.Render.BubbleColor, f.Chat.Opacity), false)
	text.Draw(screen, f.Chat.Text, face, int(x+pad)-bounds.Min.X, int(y+pad)-bounds.Min.Y, fade(cfg.Render.BubbleTextColor, f.Chat.Opacity))
}

// fade scales a premultiplied color by opacity.
func fade(c color.RGBA, opacity float64) color.RGBA {
	a := max(0, min(opacity, 1))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func mix(from, to color.RGBA, t float64) color.RGBA {
	t = max(0, min(t, 1))
	lerp := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t) }
	return color.RGBA{
		R: lerp(from.R, to.R),
		G: lerp(from.G, to.G),
		B: lerp(from.B, to.B),
		A: lerp(from.A, to.A),
	}
}
