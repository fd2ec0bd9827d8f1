package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// ClockData is the singleton simulation clock.
type ClockData struct {
	Delta   float64 // seconds covered by the current tick
	Elapsed float64
	Tick    uint64
}

var Clock = donburi.NewComponentType[ClockData]()

// RandomData is the singleton seeded random source.
type RandomData struct {
	Rand *rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
