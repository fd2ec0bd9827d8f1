package config

// StateID identifies the behaviour state an enemy is in.
type StateID int

const (
	StatePatrol StateID = iota
	StateChase
	StateCircle
)

func (s StateID) String() string {
	switch s {
	case StatePatrol:
		return "Patrol"
	case StateChase:
		return "Chase"
	case StateCircle:
		return "Circle"
	default:
		return "Unknown"
	}
}

// Animation parameter names published to the animation sink.
const (
	AnimIdle      = "IsIdle"
	AnimWalking   = "IsWalking"
	AnimRunning   = "IsRunning"
	AnimCircling  = "IsCircling"
	AnimAttacking = "IsAttacking"
)

// AnimationParams lists every parameter in the order they are published.
var AnimationParams = []string{AnimIdle, AnimWalking, AnimRunning, AnimCircling, AnimAttacking}
