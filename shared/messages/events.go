package messages

// KnockbackEvent is broadcast when an attack pushes a player back
type KnockbackEvent struct {
	TargetNetworkID      uint
	AttackerX, AttackerY float64
	EndX, EndY           float64 // Where the target comes to rest
}

// TeleportEvent is broadcast when a player blinks to a new position
type TeleportEvent struct {
	NetworkID      uint
	StartX, StartY float64
	EndX, EndY     float64
}

// LaserAimEvent is sent when a player starts charging a laser
type LaserAimEvent struct {
	NetworkID  uint
	X, Y       float64
	DirectionX float64 // Need not be normalized
	DirectionY float64
}

// LaserFireEvent releases a charging laser before the aim time is up
type LaserFireEvent struct {
	NetworkID uint
}

// TelepathyEvent is sent when a player emits a telepathy pulse
type TelepathyEvent struct {
	NetworkID uint
	X, Y      float64
	Radius    float64
}

// DamageEvent is broadcast when a player takes damage
type DamageEvent struct {
	TargetNetworkID uint
	Amount          int
}

// ChatEvent carries one chat line. Empty text clears the sender's bubble.
type ChatEvent struct {
	NetworkID uint
	Text      string
}
