package tags

import "github.com/yohamta/donburi"

var (
	RemotePlayer = donburi.NewTag().SetName("RemotePlayer")
)

// Resolv tags for damage zone queries
const (
	ResolvRemotePlayer = "RemotePlayer"
	ResolvDamageQuery  = "damagequery"
)
