// Package physics implements the physics collaborators of the enemy
// controller on top of a resolv space. Resolv X is world X and resolv Y is
// world Z, both scaled to pixels; every object is treated as infinitely tall.
package physics

import (
	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/automoto/enemyai/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// World answers ray and overlap queries against a resolv space.
type World struct {
	Space   *resolv.Space
	RayStep float64
	// Blocking lists the resolv tags that stop a ray.
	Blocking []string
}

func NewWorld(space *resolv.Space) *World {
	return &World{
		Space:    space,
		RayStep:  config.Physics.RayStep,
		Blocking: []string{tags.ResolvSolid, tags.ResolvPlayer, tags.ResolvEnemy},
	}
}

// Raycast marches along dir from origin and reports the first blocking object
// it enters. Objects that already contain the origin are ignored, so a ray
// cast from inside an agent's own body does not hit that body.
func (w *World) Raycast(origin, dir gamemath.Vec3, maxDistance float64) (components.Hit, bool) {
	if w.Space == nil || maxDistance <= 0 {
		return components.Hit{}, false
	}
	dir = dir.Normalized()
	if dir == gamemath.Zero {
		return components.Hit{}, false
	}
	step := w.RayStep
	if step <= 0 {
		step = 0.25
	}

	var candidates []*resolv.Object
	for _, obj := range w.Space.Objects() {
		if !hasAnyTag(obj, w.Blocking) || containsPoint(obj, origin.X, origin.Z) {
			continue
		}
		candidates = append(candidates, obj)
	}

	for d := step; ; d += step {
		if d > maxDistance {
			d = maxDistance
		}
		p := origin.Add(dir.Scale(d))
		for _, obj := range candidates {
			if containsPoint(obj, p.X, p.Z) {
				return components.Hit{Entity: entityOf(obj), Point: p, Distance: d}, true
			}
		}
		if d >= maxDistance {
			return components.Hit{}, false
		}
	}
}

// OverlapSphere returns every object carrying one of tags whose footprint lies
// within radius of origin on the ground plane, in space order. With no tags
// every object is considered.
func (w *World) OverlapSphere(origin gamemath.Vec3, radius float64, tags ...string) []components.Hit {
	if w.Space == nil {
		return nil
	}
	var hits []components.Hit
	for _, obj := range w.Space.Objects() {
		if len(tags) > 0 && !hasAnyTag(obj, tags) {
			continue
		}
		x, z, width, depth := Bounds(obj)
		cx := gamemath.ClampFloat(origin.X, x, x+width)
		cz := gamemath.ClampFloat(origin.Z, z, z+depth)
		closest := gamemath.Vec3{X: cx, Y: origin.Y, Z: cz}
		dist := gamemath.FlatDistance(origin, closest)
		if dist > radius {
			continue
		}
		hits = append(hits, components.Hit{Entity: entityOf(obj), Point: closest, Distance: dist})
	}
	return hits
}

func hasAnyTag(obj *resolv.Object, tags []string) bool {
	for _, t := range tags {
		if obj.HasTags(t) {
			return true
		}
	}
	return false
}

// containsPoint tests a world point against obj's footprint.
func containsPoint(obj *resolv.Object, px, pz float64) bool {
	x, z, w, d := Bounds(obj)
	return px >= x && px <= x+w && pz >= z && pz <= z+d
}

// overlaps tests a world rectangle against obj's footprint.
func overlaps(ax, az, aw, ad float64, obj *resolv.Object) bool {
	x, z, w, d := Bounds(obj)
	return ax < x+w && ax+aw > x && az < z+d && az+ad > z
}

// entityOf reads the entry linked to an object through its Data field.
func entityOf(obj *resolv.Object) donburi.Entity {
	if e, ok := obj.Data.(*donburi.Entry); ok && e != nil {
		return e.Entity()
	}
	return 0
}
