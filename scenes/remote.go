package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/doomerang-fx/clock"
	"github.com/automoto/doomerang-fx/fonts"
	"github.com/automoto/doomerang-fx/netplayers"
	"github.com/automoto/doomerang-fx/network"
	"github.com/automoto/doomerang-fx/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/doomerang-fx/config"
)

// RemotePlayersScene shows every player on a server with their effects. It
// reconnects on its own after the connection drops.
type RemotePlayersScene struct {
	ecsWorld  *ecs.ECS
	netClient *network.Client
	players   *systems.RemotePlayers
	tuning    *cfg.EffectsConfig
	clock     clock.Clock
	once      sync.Once

	address string
	name    string
	lostAt  time.Time
}

func NewRemotePlayersScene(client *network.Client, tuning *cfg.EffectsConfig, clk clock.Clock, address, name string) *RemotePlayersScene {
	return &RemotePlayersScene{
		netClient: client,
		tuning:    tuning,
		clock:     clk,
		address:   address,
		name:      name,
	}
}

func (rs *RemotePlayersScene) Update() {
	rs.once.Do(rs.configure)

	state := rs.netClient.State()
	if state == network.StateDisconnected || state == network.StateError {
		rs.retry()
	} else {
		rs.lostAt = time.Time{}
	}

	rs.ecsWorld.Update()
}

func (rs *RemotePlayersScene) retry() {
	now := rs.clock.Now()
	if rs.lostAt.IsZero() {
		if err := rs.netClient.LastError(); err != nil {
			log.Printf("[scene] connection lost: %v", err)
		} else {
			log.Println("[scene] connection lost")
		}
		rs.lostAt = now
		return
	}
	if now.Sub(rs.lostAt) < cfg.Net.RetryDelay {
		return
	}

	log.Printf("[scene] reconnecting to %s", rs.address)
	rs.netClient.Disconnect()
	rs.netClient.Connect(rs.address, cfg.Net.Version, rs.name, cfg.Net.Spectator)
	rs.lostAt = time.Time{}
}

func (rs *RemotePlayersScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if rs.ecsWorld == nil {
		return
	}

	rs.ecsWorld.Draw(screen)

	if state := rs.netClient.State(); state != network.StateJoinedGame {
		msg := fmt.Sprintf("%s %s", state, rs.address)
		text.Draw(screen, msg, fonts.Bold.Get(), cfg.C.Width/2-80, cfg.C.Height/2, cfg.White)
	}
}

func (rs *RemotePlayersScene) configure() {
	world := donburi.NewWorld()
	rs.ecsWorld = ecs.NewECS(world)

	registry := netplayers.NewRegistry(world, rs.tuning)
	rs.players = systems.NewRemotePlayers(rs.netClient, registry, rs.clock)

	rs.ecsWorld.AddSystem(systems.UpdateOverlayToggles)
	rs.ecsWorld.AddSystem(rs.players.Update)
	rs.ecsWorld.AddRenderer(systems.LayerWorld, rs.players.Draw)
	rs.ecsWorld.AddRenderer(systems.LayerHUD, rs.players.DrawHitZones)
	rs.ecsWorld.AddRenderer(systems.LayerHUD, rs.players.DrawHUD)

	rs.netClient.Connect(rs.address, cfg.Net.Version, rs.name, cfg.Net.Spectator)
}
