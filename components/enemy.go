package components

import (
	"github.com/automoto/enemyai/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "Bokoblin", "Moblin" etc...
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration

	// AI state management
	State               config.StateID
	Chasing             bool    // Target currently counts as detected (sticky for LoseSightTime)
	TimeSinceTargetSeen float64 // Seconds since the last successful sight check
	Speed               float64 // Movement speed last handed to navigation
	FacingTarget        bool    // Behaviour turned the body this tick; locomotion leaves yaw alone
}

var Enemy = donburi.NewComponentType[EnemyData]()

// TargetData is a weak handle on the tracked hostile entity. It is resolved
// every tick and may point at an entity that no longer exists.
type TargetData struct {
	Entity donburi.Entity
}

var Target = donburi.NewComponentType[TargetData]()

// Resolve looks the target up in w. It reports false for a stale or unset handle.
func (t *TargetData) Resolve(w donburi.World) (*donburi.Entry, bool) {
	if t == nil || !w.Valid(t.Entity) {
		return nil, false
	}
	e := w.Entry(t.Entity)
	if !e.HasComponent(Transform) {
		return nil, false
	}
	return e, true
}
