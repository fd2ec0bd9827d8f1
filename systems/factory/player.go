package factory

import (
	"github.com/automoto/enemyai/archetypes"
	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/physics"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/automoto/enemyai/tags"
	"github.com/yohamta/donburi"
)

// playerMaxHealth is the hostile entity's health pool.
const playerMaxHealth = 100

// CreatePlayer spawns the hostile entity enemies track. route may be empty
// for a stationary target.
func CreatePlayer(w donburi.World, pos gamemath.Vec3, route []gamemath.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	r := config.Target.Radius
	obj := physics.NewObjectAt(pos, 2*r, 2*r, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Transform.SetValue(player, components.TransformData{Position: pos})
	components.Player.SetValue(player, components.PlayerData{
		Route: route,
		Speed: config.Target.Speed,
		Pause: 1,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: playerMaxHealth,
		Max:     playerMaxHealth,
	})

	return player
}
