package factory

import (
	"math"

	"github.com/automoto/enemyai/archetypes"
	"github.com/automoto/enemyai/components"
	cfg "github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/navigation"
	"github.com/automoto/enemyai/physics"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/automoto/enemyai/tags"
	"github.com/yohamta/donburi"
)

// EnemyPorts are the collaborators an enemy drives. Nil fields are filled
// with the built-in implementations.
type EnemyPorts struct {
	Agent    components.NavAgent
	Body     components.Rigidbody
	Animator components.AnimationSink
	Visual   components.VisualSink
}

// CreateEnemy spawns an enemy of the named type with the built-in
// collaborators. Unknown type names fall back to the default type.
func CreateEnemy(w donburi.World, enemyTypeName string, pos gamemath.Vec3, target donburi.Entity) *donburi.Entry {
	return CreateEnemyWithPorts(w, enemyTypeName, pos, target, EnemyPorts{})
}

// CreateEnemyWithPorts spawns an enemy wired to the given collaborators. The
// patrol route is discovered from nearby NavPoint markers and, if any were
// found, the first one is issued as the initial destination.
func CreateEnemyWithPorts(w donburi.World, enemyTypeName string, pos gamemath.Vec3, target donburi.Entity, ports EnemyPorts) *donburi.Entry {
	enemyType, enemyTypeName := cfg.EnemyType(enemyTypeName)

	enemy := archetypes.Enemy.Spawn(w)

	// Create collision object
	r := enemyType.Radius
	obj := physics.NewObjectAt(pos, 2*r, 2*r, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	if ports.Agent == nil {
		ports.Agent = navigation.NewAgent(navGrid(w), enemyType.CalmSpeed)
	}
	if ports.Body == nil {
		ports.Body = physics.NewBody(obj, enemyType.Mass)
	}
	if ports.Animator == nil {
		ports.Animator = components.NewBoolAnimator()
	}
	if ports.Visual == nil {
		ports.Visual = components.NewSurfaceSet(enemyType.TintColor, cfg.White)
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:            enemyTypeName,
		TypeConfig:          &enemyType,
		State:               cfg.StatePatrol,
		TimeSinceTargetSeen: math.Inf(1),
		Speed:               enemyType.CalmSpeed,
	})
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.StatePatrol,
		PreviousState: cfg.StatePatrol,
	})
	components.Transform.SetValue(enemy, components.TransformData{Position: pos})
	components.Target.SetValue(enemy, components.TargetData{Entity: target})
	components.Attack.SetValue(enemy, components.AttackData{Cooldown: enemyType.AttackCooldown})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.MaxHealth,
		Max:     enemyType.MaxHealth,
	})
	components.Knockback.SetValue(enemy, components.KnockbackData{RecoveryTime: enemyType.KnockbackRecoveryTime})
	components.Navigation.SetValue(enemy, components.NavigationData{Agent: ports.Agent})
	components.Body.SetValue(enemy, components.BodyData{Body: ports.Body})
	components.Animator.SetValue(enemy, components.AnimatorData{Sink: ports.Animator})
	components.Surfaces.SetValue(enemy, components.SurfacesData{Sink: ports.Visual})

	ports.Body.SetKinematic(true)
	ports.Agent.SetSpeed(enemyType.CalmSpeed)

	patrol := components.PatrolData{Points: findPatrolPoints(w, pos, enemyType.PatrolSearchRange)}
	components.Patrol.SetValue(enemy, patrol)
	if len(patrol.Points) > 0 {
		ports.Agent.SetDestination(patrol.Points[0])
	}

	return enemy
}

// findPatrolPoints collects the NavPoint markers within radius of pos.
func findPatrolPoints(w donburi.World, pos gamemath.Vec3, radius float64) []gamemath.Vec3 {
	e, ok := components.PhysicsWorld.First(w)
	if !ok {
		return nil
	}
	query := components.PhysicsWorld.Get(e).Query
	if query == nil {
		return nil
	}

	var points []gamemath.Vec3
	for _, hit := range query.OverlapSphere(pos, radius, tags.ResolvNavPoint) {
		if !w.Valid(hit.Entity) {
			continue
		}
		marker := w.Entry(hit.Entity)
		if !marker.HasComponent(tags.NavPoint) {
			continue
		}
		points = append(points, components.Transform.Get(marker).Position)
	}
	return points
}

// navGrid returns the grid behind the navigation surface singleton.
func navGrid(w donburi.World) *navigation.Grid {
	if e, ok := components.NavSurface.First(w); ok {
		if g, ok := components.NavSurface.Get(e).Sampler.(*navigation.Grid); ok {
			return g
		}
	}
	panic("factory: enemy created without a navigation grid")
}
