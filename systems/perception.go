package systems

import (
	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CanSeeTarget reports whether target, standing at targetPos, is detectable
// from pose. The checks run cheapest first: range, view cone, then a ray from
// eye height that must hit the target before anything else.
func CanSeeTarget(query components.PhysicsQuery, typ *config.EnemyTypeConfig, pose *components.TransformData, target donburi.Entity, targetPos gamemath.Vec3) bool {
	toTarget := targetPos.Sub(pose.Position)
	if toTarget.Magnitude() > typ.DetectionRange {
		return false
	}
	if gamemath.Angle(pose.Forward(), toTarget) > typ.FieldOfView/2 {
		return false
	}
	if query == nil {
		return false
	}

	eye := pose.Position.Add(gamemath.Up.Scale(typ.EyeHeight))
	hit, ok := query.Raycast(eye, toTarget, typ.DetectionRange)
	return ok && hit.Entity == target
}
