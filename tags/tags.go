package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Wall     = donburi.NewTag().SetName("Wall")
	Enemy    = donburi.NewTag().SetName("Enemy")
	NavPoint = donburi.NewTag().SetName("NavPoint")
	Spawner  = donburi.NewTag().SetName("Spawner")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlayer   = "Player"
	ResolvEnemy    = "Enemy"
	ResolvNavPoint = "NavPoint"
)
