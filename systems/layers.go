package systems

import "github.com/yohamta/donburi/ecs"

const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)
