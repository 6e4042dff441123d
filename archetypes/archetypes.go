package archetypes

import (
	"github.com/automoto/doomerang-fx/components"
	"github.com/automoto/doomerang-fx/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
)

var (
	RemotePlayer = newArchetype(
		tags.RemotePlayer,
		esync.NetworkIdComponent,
		components.RemotePlayer,
		components.HitZone,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return world.Entry(world.Create(append(a.components, cs...)...))
}
