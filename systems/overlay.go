package systems

import (
	cfg "github.com/automoto/doomerang-fx/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var overlayKeys = []struct {
	key    ebiten.Key
	toggle func(o *cfg.OverlayConfig)
}{
	{ebiten.KeyF1, func(o *cfg.OverlayConfig) { o.ShowHUD = !o.ShowHUD }},
	{ebiten.KeyF2, func(o *cfg.OverlayConfig) { o.ShowNameLabels = !o.ShowNameLabels }},
	{ebiten.KeyF3, func(o *cfg.OverlayConfig) { o.ShowChatBubbles = !o.ShowChatBubbles }},
	{ebiten.KeyF4, func(o *cfg.OverlayConfig) { o.ShowDamageZones = !o.ShowDamageZones }},
	{ebiten.KeyF5, func(o *cfg.OverlayConfig) { o.ShowHitZones = !o.ShowHitZones }},
}

// UpdateOverlayToggles flips overlay layers on F1-F5 and saves the result.
func UpdateOverlayToggles(_ *ecs.ECS) {
	changed := false
	for _, k := range overlayKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			k.toggle(&cfg.Overlay)
			changed = true
		}
	}
	if changed {
		SaveOverlay(cfg.Overlay) // logs its own failure
	}
}
