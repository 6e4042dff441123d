package network

import (
	"errors"
	"reflect"
	"testing"

	"github.com/automoto/doomerang-fx/config"
	"github.com/automoto/doomerang-fx/shared/messages"
	"github.com/leap-fish/necs/esync"
)

func TestDrainEventsKeepsArrivalOrder(t *testing.T) {
	c := NewClient()

	in := []any{
		messages.TeleportEvent{NetworkID: 1, EndX: 10},
		messages.DamageEvent{TargetNetworkID: 2, Amount: 5},
		messages.ChatEvent{NetworkID: 1, Text: "gg"},
	}
	for _, evt := range in {
		c.push(evt)
	}

	if got := c.DrainEvents(); !reflect.DeepEqual(got, in) {
		t.Errorf("DrainEvents() = %v, want %v", got, in)
	}
	if got := c.DrainEvents(); len(got) != 0 {
		t.Errorf("second DrainEvents() = %v, want empty", got)
	}
}

func TestFullQueueDropsNewest(t *testing.T) {
	prev := config.Net.EventBuffer
	config.Net.EventBuffer = 2
	defer func() { config.Net.EventBuffer = prev }()

	c := NewClient()
	c.push(messages.LaserFireEvent{NetworkID: 1})
	c.push(messages.LaserFireEvent{NetworkID: 2})
	c.push(messages.LaserFireEvent{NetworkID: 3})

	got := c.DrainEvents()
	want := []any{messages.LaserFireEvent{NetworkID: 1}, messages.LaserFireEvent{NetworkID: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DrainEvents() = %v, want %v", got, want)
	}
	if c.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", c.Dropped())
	}
}

func TestLatestSnapshotKeepsOnlyNewest(t *testing.T) {
	c := NewClient()

	if c.LatestSnapshot() != nil {
		t.Fatal("LatestSnapshot() on new client is not nil")
	}

	var snap esync.WorldSnapshot
	c.pushSnapshot(snap)
	c.pushSnapshot(snap)

	if c.LatestSnapshot() == nil {
		t.Error("LatestSnapshot() = nil after push")
	}
	if c.LatestSnapshot() != nil {
		t.Error("LatestSnapshot() returned a stale snapshot")
	}
}

func TestSendMessageWithoutConnection(t *testing.T) {
	c := NewClient()

	err := c.SendMessage(messages.ChatEvent{Text: "hello"})
	if !errors.Is(err, ErrNotConnected) {
		t.Errorf("SendMessage() error = %v, want ErrNotConnected", err)
	}
}

func TestClientStateString(t *testing.T) {
	tests := []struct {
		state ClientState
		want  string
	}{
		{StateDisconnected, "disconnected"},
		{StateJoinedGame, "joined"},
		{StateError, "error"},
		{ClientState(99), "ClientState(99)"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("ClientState(%d).String() = %q, want %q", int(tt.state), got, tt.want)
		}
	}
}

func TestJoinHandshakeStates(t *testing.T) {
	c := NewClient()

	c.onJoinAccepted(messages.JoinAccepted{
		NetworkID:      7,
		ReconnectToken: "tok",
		ServerName:     "arena",
		TickRate:       30,
	})
	if got := c.State(); got != StateJoinedGame {
		t.Fatalf("State() after accept = %v, want %v", got, StateJoinedGame)
	}
	if c.NetworkID() != 7 || c.ServerName() != "arena" || c.TickRate() != 30 {
		t.Errorf("joined as (%d, %q, %d), want (7, %q, 30)",
			c.NetworkID(), c.ServerName(), c.TickRate(), "arena")
	}

	c.onDisconnected(errors.New("closed"))
	if got := c.State(); got != StateDisconnected {
		t.Errorf("State() after disconnect = %v, want %v", got, StateDisconnected)
	}
}

func TestJoinFailuresStickAcrossDisconnect(t *testing.T) {
	tests := []struct {
		name string
		fail func(c *Client)
	}{
		{
			name: "rejected",
			fail: func(c *Client) { c.onJoinRejected(messages.JoinRejected{Reason: "full"}) },
		},
		{
			// no socket yet, so the join request cannot go out
			name: "send failed",
			fail: func(c *Client) { c.onConnected(messages.JoinRequest{PlayerName: "p"}) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient()
			tt.fail(c)
			if got := c.State(); got != StateError {
				t.Fatalf("State() = %v, want %v", got, StateError)
			}
			if c.LastError() == nil {
				t.Fatal("LastError() = nil, want the failure")
			}

			c.onDisconnected(nil)
			if got := c.State(); got != StateError {
				t.Errorf("State() after disconnect = %v, want %v", got, StateError)
			}
		})
	}
}
