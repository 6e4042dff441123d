package netplayers

import (
	"log"

	"github.com/automoto/doomerang-fx/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// ApplySnapshot deserializes a server snapshot. Players seen for the first
// time join, players missing from it leave, and the local player is skipped.
func (r *Registry) ApplySnapshot(snapshot esync.WorldSnapshot) {
	clear(r.present)

	for _, ent := range snapshot {
		var compData []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				log.Printf("[netplayers] bad component for %d: %v", ent.Id, err)
				continue
			}
			compData = append(compData, instance)
		}
		r.ApplyState(ent.Id, compData)
	}

	r.Prune()
}

// ApplyState applies the deserialized components of one entity. Entities
// without a position are not players and are ignored.
func (r *Registry) ApplyState(id esync.NetworkId, compData []any) {
	if id == r.localID && id != 0 {
		return
	}

	var pos *netcomponents.NetPositionData
	var state *netcomponents.NetPlayerStateData
	for _, data := range compData {
		switch v := data.(type) {
		case netcomponents.NetPositionData:
			pos = &v
		case netcomponents.NetPlayerStateData:
			state = &v
		}
	}

	player, known := r.Get(id)
	if !known {
		if pos == nil {
			return
		}
		name := ""
		if state != nil {
			name = state.Name
		}
		player = r.Join(id, name, pos.X, pos.Y)
	}
	r.present[id] = true

	if pos != nil {
		player.UpdatePosition(pos.X, pos.Y)
	}
	if state != nil {
		if state.Name != "" {
			player.Name = state.Name
		}
		player.SetHealth(state.Health, state.MaxHealth)
		player.SetProgress(state.Level, state.Experience)
	}
}

// Prune removes every player not applied since the last snapshot began.
func (r *Registry) Prune() {
	for _, id := range r.IDs() {
		if !r.present[id] {
			r.Leave(id)
		}
	}
	clear(r.present)
}
