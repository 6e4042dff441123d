package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HitZoneData is the player's box in the damage zone space. It follows the
// rendered position, not the network target.
type HitZoneData struct {
	*resolv.Object
}

var HitZone = donburi.NewComponentType[HitZoneData]()
