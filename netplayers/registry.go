// Package netplayers keeps one animated remote player per network id in a
// donburi world and feeds it snapshots and effect events from the server.
package netplayers

import (
	"log"
	"sort"
	"time"

	"github.com/automoto/doomerang-fx/archetypes"
	"github.com/automoto/doomerang-fx/components"
	"github.com/automoto/doomerang-fx/config"
	"github.com/automoto/doomerang-fx/effects"
	"github.com/automoto/doomerang-fx/shared/gamemath"
	"github.com/automoto/doomerang-fx/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Registry maps network ids to remote player entities. It is not safe for
// concurrent use; the game loop owns it.
type Registry struct {
	world   donburi.World
	tuning  *config.EffectsConfig
	space   *resolv.Space
	origin  gamemath.Vec // world (0, 0) inside the space
	localID esync.NetworkId
	present map[esync.NetworkId]bool
}

func NewRegistry(world donburi.World, tuning *config.EffectsConfig) *Registry {
	return &Registry{
		world:  world,
		tuning: tuning,
		space: resolv.NewSpace(
			config.HitZone.SpaceWidth,
			config.HitZone.SpaceHeight,
			config.HitZone.CellSize,
			config.HitZone.CellSize,
		),
		origin: gamemath.Vec{
			X: float64(config.HitZone.SpaceWidth) / 2,
			Y: float64(config.HitZone.SpaceHeight) / 2,
		},
		present: make(map[esync.NetworkId]bool),
	}
}

// SetLocalID marks the id of the local player. Its state is never animated
// as a remote player. Zero means spectator.
func (r *Registry) SetLocalID(id esync.NetworkId) {
	if id == r.localID {
		return
	}
	r.localID = id
	if id != 0 {
		r.Leave(id)
	}
}

func (r *Registry) World() donburi.World { return r.world }

// HitZones returns the world-space box of every player's hit zone.
func (r *Registry) HitZones() []gamemath.Rect {
	var boxes []gamemath.Rect
	tags.RemotePlayer.Each(r.world, func(entry *donburi.Entry) {
		boxes = append(boxes, r.worldBox(components.HitZone.Get(entry).Object))
	})
	return boxes
}

// placeZone moves obj to the world box b. The space is centered on the world
// origin so negative coordinates stay on the grid.
func (r *Registry) placeZone(obj *resolv.Object, b gamemath.Rect) {
	obj.X, obj.Y = b.X+r.origin.X, b.Y+r.origin.Y
	obj.W, obj.H = b.W, b.H
}

func (r *Registry) worldBox(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: obj.X - r.origin.X, Y: obj.Y - r.origin.Y, W: obj.W, H: obj.H}
}

// onGrid reports whether b lies entirely inside the space.
func (r *Registry) onGrid(b gamemath.Rect) bool {
	x, y := b.X+r.origin.X, b.Y+r.origin.Y
	return x >= 0 && y >= 0 &&
		x+b.W < float64(config.HitZone.SpaceWidth) &&
		y+b.H < float64(config.HitZone.SpaceHeight)
}

// Join adds a player at (x, y), or returns the existing one.
func (r *Registry) Join(id esync.NetworkId, name string, x, y float64) *effects.RemotePlayer {
	if p, ok := r.Get(id); ok {
		return p
	}

	player := effects.NewRemotePlayer(uint(id), name, gamemath.Vec{X: x, Y: y}, r.tuning)
	entry := archetypes.RemotePlayer.Spawn(r.world)
	esync.NetworkIdComponent.SetValue(entry, id)
	components.RemotePlayer.SetValue(entry, components.RemotePlayerData{RemotePlayer: player})

	obj := resolv.NewObject(0, 0, 0, 0, tags.ResolvRemotePlayer)
	r.placeZone(obj, player.Bounds())
	obj.Data = id
	r.space.Add(obj)
	components.HitZone.SetValue(entry, components.HitZoneData{Object: obj})

	log.Printf("[netplayers] %q joined as %d", name, id)
	return player
}

// Leave removes a player and its hit zone. Unknown ids are ignored.
func (r *Registry) Leave(id esync.NetworkId) {
	entry, ok := r.entry(id)
	if !ok {
		return
	}
	if zone := components.HitZone.Get(entry); zone.Object != nil {
		r.space.Remove(zone.Object)
	}
	log.Printf("[netplayers] %d left", id)
	entry.Remove()
}

func (r *Registry) Get(id esync.NetworkId) (*effects.RemotePlayer, bool) {
	entry, ok := r.entry(id)
	if !ok {
		return nil, false
	}
	return components.RemotePlayer.Get(entry).RemotePlayer, true
}

func (r *Registry) entry(id esync.NetworkId) (*donburi.Entry, bool) {
	entity := esync.FindByNetworkId(r.world, id)
	if !r.world.Valid(entity) {
		return nil, false
	}
	entry := r.world.Entry(entity)
	if !entry.HasComponent(components.RemotePlayer) {
		return nil, false
	}
	return entry, true
}

func (r *Registry) Len() int {
	n := 0
	tags.RemotePlayer.Each(r.world, func(*donburi.Entry) { n++ })
	return n
}

// IDs returns every known id in ascending order.
func (r *Registry) IDs() []esync.NetworkId {
	var ids []esync.NetworkId
	tags.RemotePlayer.Each(r.world, func(entry *donburi.Entry) {
		ids = append(ids, esync.NetworkIdComponent.GetValue(entry))
	})
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Each visits players in ascending id order so draw order is stable.
func (r *Registry) Each(fn func(id esync.NetworkId, p *effects.RemotePlayer)) {
	for _, id := range r.IDs() {
		if p, ok := r.Get(id); ok {
			fn(id, p)
		}
	}
}

// Advance moves every player to now and refreshes the hit zones.
func (r *Registry) Advance(now time.Time) {
	tags.RemotePlayer.Each(r.world, func(entry *donburi.Entry) {
		player := components.RemotePlayer.Get(entry).RemotePlayer
		player.Advance(now)

		obj := components.HitZone.Get(entry).Object
		r.placeZone(obj, player.Bounds())
		obj.Update()
	})
}
