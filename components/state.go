package components

import (
	"github.com/automoto/enemyai/config"
	"github.com/yohamta/donburi"
)

// StateData records the most recent transition for overlays and diagnostics.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // seconds spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
