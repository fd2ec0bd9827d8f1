package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/shared/gamemath"
)

// BuildOrbitRing samples a ring of navigable points around center. If the
// full radius yields fewer than components.MinOrbitPoints, a second pass at
// the fallback radius tops the ring up. start is a random index into a usable
// ring and 0 otherwise.
func BuildOrbitRing(sampler components.NavSampler, typ *config.EnemyTypeConfig, center gamemath.Vec3, rng *rand.Rand) (points []gamemath.Vec3, start int) {
	if sampler == nil || typ.OrbitPointCount <= 0 {
		return nil, 0
	}

	points = sampleRing(sampler, typ, center, typ.CircleRadius, points, typ.OrbitPointCount)
	if len(points) < components.MinOrbitPoints {
		points = sampleRing(sampler, typ, center, typ.CircleRadius*typ.OrbitFallbackScale, points, components.MinOrbitPoints)
	}

	if len(points) >= components.MinOrbitPoints {
		start = rng.Intn(len(points))
	}
	return points, start
}

// sampleRing walks orbitPointCount evenly spaced candidates on a circle and
// appends accepted ones to points, stopping once points holds limit entries.
func sampleRing(sampler components.NavSampler, typ *config.EnemyTypeConfig, center gamemath.Vec3, radius float64, points []gamemath.Vec3, limit int) []gamemath.Vec3 {
	step := 2 * math.Pi / float64(typ.OrbitPointCount)
	for i := 0; i < typ.OrbitPointCount && len(points) < limit; i++ {
		raw := center.Add(gamemath.Forward(step * float64(i)).Scale(radius))
		p, ok := sampler.SamplePosition(raw, typ.OrbitPointSampleDist)
		if !ok {
			continue
		}
		if len(points) > 0 && gamemath.Distance(p, points[len(points)-1]) <= typ.MinPointDistance {
			continue
		}
		if gamemath.Distance(p, center) <= typ.OrbitMinTargetClearance {
			continue
		}
		points = append(points, p)
	}
	return points
}
