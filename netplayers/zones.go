package netplayers

import (
	"sort"
	"time"

	"github.com/automoto/doomerang-fx/components"
	"github.com/automoto/doomerang-fx/effects"
	"github.com/automoto/doomerang-fx/shared/gamemath"
	"github.com/automoto/doomerang-fx/tags"
	"github.com/leap-fish/necs/esync"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// DamageZone is the area around a teleport landing and who stands in it.
type DamageZone struct {
	Source  esync.NetworkId
	Center  gamemath.Vec
	Radius  float64
	Targets []esync.NetworkId
}

// DamageZones lists every teleport damage zone showing at now together with
// the other players whose boxes overlap it. Call after Advance.
func (r *Registry) DamageZones(now time.Time) []DamageZone {
	var zones []DamageZone
	r.Each(func(id esync.NetworkId, p *effects.RemotePlayer) {
		tf := p.Frame(now).Teleport
		if tf == nil || tf.DamageRadius <= 0 {
			return
		}
		zones = append(zones, DamageZone{
			Source:  id,
			Center:  tf.To,
			Radius:  tf.DamageRadius,
			Targets: r.PlayersInRadius(tf.To, tf.DamageRadius, id),
		})
	})
	return zones
}

// PlayersInRadius returns, in ascending order, the players whose hit zone
// overlaps the circle, skipping exclude. The grid narrows the candidates and
// an exact circle test decides. A circle reaching past the grid is checked
// against every player instead.
func (r *Registry) PlayersInRadius(center gamemath.Vec, radius float64, exclude esync.NetworkId) []esync.NetworkId {
	if radius <= 0 {
		return nil
	}

	area := gamemath.CenteredRect(center, radius*2, radius*2)
	var candidates []*resolv.Object
	if r.onGrid(area) {
		candidates = r.nearbyZones(area)
	} else {
		candidates = r.allZones()
	}

	var ids []esync.NetworkId
	seen := make(map[esync.NetworkId]bool)
	for _, obj := range candidates {
		id, ok := obj.Data.(esync.NetworkId)
		if !ok || id == exclude || seen[id] {
			continue
		}
		if r.worldBox(obj).IntersectsCircle(center, radius) {
			ids = append(ids, id)
			seen[id] = true
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *Registry) nearbyZones(area gamemath.Rect) []*resolv.Object {
	query := resolv.NewObject(0, 0, 0, 0, tags.ResolvDamageQuery)
	r.placeZone(query, area)
	r.space.Add(query)
	defer r.space.Remove(query)

	check := query.Check(0, 0, tags.ResolvRemotePlayer)
	if check == nil {
		return nil
	}
	return check.Objects
}

func (r *Registry) allZones() []*resolv.Object {
	var zones []*resolv.Object
	tags.RemotePlayer.Each(r.world, func(entry *donburi.Entry) {
		zones = append(zones, components.HitZone.Get(entry).Object)
	})
	return zones
}
