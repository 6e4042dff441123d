package systems

import (
	"image/color"

	cfg "github.com/automoto/doomerang-fx/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHitZones outlines the boxes the damage zone queries see.
func (rp *RemotePlayers) DrawHitZones(_ *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Overlay.ShowHitZones {
		return
	}

	c := color.RGBA{0, 255, 255, 255} // Cyan
	for _, b := range rp.registry.HitZones() {
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, c, false)
	}

	for _, z := range rp.zones {
		vector.StrokeCircle(screen, float32(z.Center.X), float32(z.Center.Y), float32(z.Radius), 1, cfg.Red, true)
	}
}
