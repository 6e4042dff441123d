package messages

import "github.com/leap-fish/necs/esync"

// JoinRequest is sent by a client after connecting. Spectators receive
// snapshots and effect events but never own a player.
type JoinRequest struct {
	Version        string
	PlayerName     string
	Spectator      bool
	ReconnectToken string
}

// JoinAccepted is sent by the server when a client's join request is accepted.
// NetworkID is zero for spectators.
type JoinAccepted struct {
	NetworkID      esync.NetworkId
	ReconnectToken string
	ServerName     string
	TickRate       int
}

// JoinRejected is sent by the server when a client's join request is rejected.
type JoinRejected struct {
	Reason string
}
