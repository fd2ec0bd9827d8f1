package components

import (
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Rigidbody is the physics body of an enemy. Kinematic bodies follow
// navigation; dynamic bodies are moved by impulses.
type Rigidbody interface {
	AddImpulse(impulse gamemath.Vec3)
	SetKinematic(kinematic bool)
	Kinematic() bool
}

type BodyData struct {
	Body Rigidbody
}

var Body = donburi.NewComponentType[BodyData]()

// Hit is the result of a physics query.
type Hit struct {
	Entity   donburi.Entity
	Point    gamemath.Vec3
	Distance float64
}

// PhysicsQuery answers ray and overlap queries against the collision world.
type PhysicsQuery interface {
	Raycast(origin, dir gamemath.Vec3, maxDistance float64) (Hit, bool)
	OverlapSphere(origin gamemath.Vec3, radius float64, tags ...string) []Hit
}

// PhysicsWorldData is the singleton physics query service.
type PhysicsWorldData struct {
	Query PhysicsQuery
}

var PhysicsWorld = donburi.NewComponentType[PhysicsWorldData]()
