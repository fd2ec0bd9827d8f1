package components

import (
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PlayerData drives the hostile entity around a scripted route in headless
// runs. Interactive front ends replace Route with input.
type PlayerData struct {
	Route []gamemath.Vec3
	Index int
	Speed float64
	Pause float64 // seconds to hold at each route point
	Hold  float64
}

var Player = donburi.NewComponentType[PlayerData]()
