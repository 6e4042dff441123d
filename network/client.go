// Package network connects to the game server and queues what it sends
// until the game loop is ready to apply it.
package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/doomerang-fx/config"
	"github.com/automoto/doomerang-fx/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateJoinedGame:
		return "joined"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("ClientState(%d)", int(s))
}

var ErrNotConnected = errors.New("not connected")

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state          ClientState
	lastError      error
	networkID      esync.NetworkId
	reconnectToken string
	serverName     string
	tickRate       int
	conn           *websocket.Conn
	dropped        int

	snapshotCh chan esync.WorldSnapshot // size-1 buffered; latest wins

	// Effect events share one queue so they are applied in arrival order.
	eventCh chan any
}

func NewClient() *Client {
	size := config.Net.EventBuffer
	if size <= 0 {
		size = 1
	}
	return &Client{
		state:      StateDisconnected,
		snapshotCh: make(chan esync.WorldSnapshot, 1),
		eventCh:    make(chan any, size),
	}
}

// Connect dials the server in a background goroutine. The join request goes
// out once the socket is up; the server's answer moves the client to joined
// or error.
func (c *Client) Connect(address, version, playerName string, spectator bool) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	join := messages.JoinRequest{
		Version:    version,
		PlayerName: playerName,
		Spectator:  spectator,
	}
	router.OnConnect(func(*router.NetworkClient) { c.onConnected(join) })
	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) { c.onJoinAccepted(msg) })
	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) { c.onJoinRejected(msg) })
	router.OnDisconnect(func(_ *router.NetworkClient, err error) { c.onDisconnected(err) })
	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})
	c.routeWorld()

	go c.dial("ws://" + address)
}

// routeWorld queues snapshots and effect events for the game loop.
func (c *Client) routeWorld() {
	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		c.pushSnapshot(snapshot)
	})

	router.On(func(_ *router.NetworkClient, evt messages.KnockbackEvent) { c.push(evt) })
	router.On(func(_ *router.NetworkClient, evt messages.TeleportEvent) { c.push(evt) })
	router.On(func(_ *router.NetworkClient, evt messages.LaserAimEvent) { c.push(evt) })
	router.On(func(_ *router.NetworkClient, evt messages.LaserFireEvent) { c.push(evt) })
	router.On(func(_ *router.NetworkClient, evt messages.TelepathyEvent) { c.push(evt) })
	router.On(func(_ *router.NetworkClient, evt messages.DamageEvent) { c.push(evt) })
	router.On(func(_ *router.NetworkClient, evt messages.ChatEvent) { c.push(evt) })
}

func (c *Client) dial(url string) {
	transport := transports.NewWsClientTransport(url)
	err := transport.Start(func(conn *websocket.Conn) {
		c.mu.Lock()
		c.conn = conn
		c.mu.Unlock()
	})
	if err != nil {
		c.setError(fmt.Errorf("connection failed: %w", err))
	}
}

// onConnected sends join, carrying the token from an earlier session so the
// server can hand back the same network id.
func (c *Client) onConnected(join messages.JoinRequest) {
	log.Println("[client] connected to server")
	c.mu.Lock()
	c.state = StateConnected
	join.ReconnectToken = c.reconnectToken
	c.mu.Unlock()

	if err := c.SendMessage(join); err != nil {
		c.setError(fmt.Errorf("failed to send join request: %w", err))
	}
}

func (c *Client) onJoinAccepted(msg messages.JoinAccepted) {
	log.Printf("[client] join accepted: networkID=%d server=%s tickRate=%d",
		msg.NetworkID, msg.ServerName, msg.TickRate)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.networkID = msg.NetworkID
	c.reconnectToken = msg.ReconnectToken
	c.serverName = msg.ServerName
	c.tickRate = msg.TickRate
	c.state = StateJoinedGame
}

func (c *Client) onJoinRejected(msg messages.JoinRejected) {
	log.Printf("[client] join rejected: %s", msg.Reason)
	c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
}

// onDisconnected keeps an error state so the cause stays visible.
func (c *Client) onDisconnected(err error) {
	log.Printf("[client] disconnected: %v", err)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateError {
		c.state = StateDisconnected
	}
	c.conn = nil
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// NetworkID is the id of the local player, zero for spectators.
func (c *Client) NetworkID() esync.NetworkId {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.networkID
}

func (c *Client) ServerName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverName
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

// Dropped counts effect events discarded because the queue was full.
func (c *Client) Dropped() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dropped
}

// LatestSnapshot returns the most recent WorldSnapshot, or nil. Non-blocking.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	select {
	case snap := <-c.snapshotCh:
		return &snap
	default:
		return nil
	}
}

// DrainEvents returns all pending effect events in arrival order, non-blocking.
func (c *Client) DrainEvents() []any {
	return drainChan(c.eventCh)
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return ErrNotConnected
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

func (c *Client) pushSnapshot(snapshot esync.WorldSnapshot) {
	select { // drain stale, push latest
	case <-c.snapshotCh:
	default:
	}
	select {
	case c.snapshotCh <- snapshot:
	default:
	}
}

func (c *Client) push(evt any) {
	select {
	case c.eventCh <- evt:
	default:
		c.mu.Lock()
		c.dropped++
		c.mu.Unlock()
		log.Printf("[client] event queue full, dropping %T", evt)
	}
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
