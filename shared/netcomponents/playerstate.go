package netcomponents

import "github.com/yohamta/donburi"

type NetPlayerStateData struct {
	Name       string
	Health     int
	MaxHealth  int
	Level      int
	Experience int
}

var NetPlayerState = donburi.NewComponentType[NetPlayerStateData]()
