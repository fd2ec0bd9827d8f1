package systems

import (
	"github.com/automoto/enemyai/components"
	"github.com/yohamta/donburi/features/events"
)

// AttackEvent is published when an enemy starts an attack. Hit resolution is
// left to subscribers.
var AttackEvent = events.NewEventType[components.AttackEventData]()

// DeathEvent is published once per enemy teardown.
var DeathEvent = events.NewEventType[components.DeathEventData]()
