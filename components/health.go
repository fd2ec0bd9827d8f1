package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
	Dead    bool // teardown has run
}

// Fraction is the health bar fill in [0, 1].
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

var Health = donburi.NewComponentType[HealthData]()

// KnockbackData is the mode flag owned by damage handling. While Active, the
// behaviour state machine and navigation are suspended and physics moves the body.
type KnockbackData struct {
	Active       bool
	Timer        float64 // seconds until control is handed back
	RecoveryTime float64
}

var Knockback = donburi.NewComponentType[KnockbackData]()
