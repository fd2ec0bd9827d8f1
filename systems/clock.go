package systems

import "github.com/yohamta/donburi/ecs"

// timerEpsilon absorbs the float drift of subtracting dt every tick.
const timerEpsilon = 1e-9

// expired reports whether a countdown has run out.
func expired(remaining float64) bool {
	return remaining <= timerEpsilon
}

// UpdateClock accounts for the tick whose Delta the driver has just set.
func UpdateClock(ecs *ecs.ECS) {
	c := clockOf(ecs.World)
	if c == nil {
		return
	}
	c.Elapsed += c.Delta
	c.Tick++
}
