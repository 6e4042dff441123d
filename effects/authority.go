package effects

// Authority names the mechanism that owns a player's rendered position for
// the current tick. Knockback and teleport claim it on start and release it
// when they deactivate; while it is AuthorityNone, plain network smoothing
// moves the player.
type Authority int

const (
	AuthorityNone Authority = iota
	AuthorityKnockback
	AuthorityTeleport
)

func (a Authority) String() string {
	switch a {
	case AuthorityKnockback:
		return "knockback"
	case AuthorityTeleport:
		return "teleport"
	default:
		return "none"
	}
}

// claim grants want to the caller unless a different position-authoritative
// effect already holds it. Re-claiming by the current holder succeeds, which
// is how a restart of a running effect goes through.
func (a *Authority) claim(want Authority) bool {
	if *a != AuthorityNone && *a != want {
		return false
	}
	*a = want
	return true
}

func (a *Authority) release(held Authority) {
	if *a == held {
		*a = AuthorityNone
	}
}
