package systems

import (
	"time"

	"github.com/automoto/doomerang-fx/clock"
	"github.com/automoto/doomerang-fx/netplayers"
	"github.com/automoto/doomerang-fx/network"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi/ecs"
)

// RemotePlayers feeds network traffic into the registry once per frame and
// keeps the frame time so every renderer draws the same instant.
type RemotePlayers struct {
	client   *network.Client
	registry *netplayers.Registry
	clock    clock.Clock

	now    time.Time
	zones  []netplayers.DamageZone
	inZone map[esync.NetworkId]bool
}

func NewRemotePlayers(client *network.Client, registry *netplayers.Registry, clk clock.Clock) *RemotePlayers {
	return &RemotePlayers{
		client:   client,
		registry: registry,
		clock:    clk,
		inZone:   make(map[esync.NetworkId]bool),
	}
}

// Update applies the latest snapshot, then queued events, then advances every
// player to the current time.
func (rp *RemotePlayers) Update(_ *ecs.ECS) {
	rp.now = rp.clock.Now()
	rp.registry.SetLocalID(rp.client.NetworkID())

	if snap := rp.client.LatestSnapshot(); snap != nil {
		rp.registry.ApplySnapshot(*snap)
	}
	rp.registry.ApplyEvents(rp.now, rp.client.DrainEvents())
	rp.registry.Advance(rp.now)

	rp.zones = rp.registry.DamageZones(rp.now)
	clear(rp.inZone)
	for _, z := range rp.zones {
		for _, id := range z.Targets {
			rp.inZone[id] = true
		}
	}
}

func (rp *RemotePlayers) Now() time.Time { return rp.now }
