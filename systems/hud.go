package systems

import (
	"fmt"

	cfg "github.com/automoto/doomerang-fx/config"
	"github.com/automoto/doomerang-fx/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 4

// DrawHUD shows connection state and the overlay key bindings.
func (rp *RemotePlayers) DrawHUD(_ *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Overlay.ShowHUD {
		return
	}
	face := fonts.Small.Get()

	info := fmt.Sprintf("%s %s - Players: %d", rp.client.State(), rp.client.ServerName(), rp.registry.Len())
	if dropped := rp.client.Dropped(); dropped > 0 {
		info += fmt.Sprintf(" - Dropped events: %d", dropped)
	}
	text.Draw(screen, info, face, hudMargin, 12, cfg.LightGreen)

	zones := 0
	for _, z := range rp.zones {
		zones += len(z.Targets)
	}
	if zones > 0 {
		text.Draw(screen, fmt.Sprintf("In damage zones: %d", zones), face, hudMargin, 26, cfg.Orange)
	}

	help := "F1 HUD  F2 names  F3 chat  F4 zones  F5 hit boxes"
	text.Draw(screen, help, face, hudMargin, cfg.C.Height-hudMargin, cfg.White)
}
