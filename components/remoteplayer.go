package components

import (
	"github.com/automoto/doomerang-fx/effects"
	"github.com/yohamta/donburi"
)

type RemotePlayerData struct {
	*effects.RemotePlayer
}

var RemotePlayer = donburi.NewComponentType[RemotePlayerData]()
