package systems

import (
	"log/slog"
	"math/rand"

	"github.com/automoto/enemyai/components"
	cfg "github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/automoto/enemyai/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// minFacingSqr is the squared horizontal distance below which facing is skipped.
const minFacingSqr = 0.001

// enemyTick bundles what one enemy needs for a single behaviour update.
type enemyTick struct {
	world   donburi.World
	entry   *donburi.Entry
	enemy   *components.EnemyData
	typ     *cfg.EnemyTypeConfig
	state   *components.StateData
	pose    *components.TransformData
	patrol  *components.PatrolData
	orbit   *components.OrbitData
	attack  *components.AttackData
	nav     components.NavAgent
	query   components.PhysicsQuery
	sampler components.NavSampler
	rng     *rand.Rand
	dt      float64

	target    donburi.Entity
	targetPos gamemath.Vec3
}

func UpdateEnemies(ecs *ecs.ECS) {
	w := ecs.World
	dt := deltaTime(w)
	query := physicsQuery(w)
	sampler := navSampler(w)
	rng := randomSource(w)

	for e := range tags.Enemy.Iter(w) {
		UpdateEnemy(w, e, dt, query, sampler, rng)
	}
}

// UpdateEnemy runs one behaviour tick for a single enemy: perception, then the
// state transition, then movement issuance, facing and animation signals.
// It does nothing while the enemy is knocked back or its target is gone.
func UpdateEnemy(w donburi.World, e *donburi.Entry, dt float64, query components.PhysicsQuery, sampler components.NavSampler, rng *rand.Rand) {
	if IsKnockedBack(e) {
		return
	}

	enemy := components.Enemy.Get(e)
	enemy.FacingTarget = false

	targetEntry, ok := components.Target.Get(e).Resolve(w)
	if !ok {
		return
	}

	t := &enemyTick{
		world:     w,
		entry:     e,
		enemy:     enemy,
		typ:       enemy.TypeConfig,
		state:     components.State.Get(e),
		pose:      components.Transform.Get(e),
		patrol:    components.Patrol.Get(e),
		orbit:     components.Orbit.Get(e),
		attack:    components.Attack.Get(e),
		nav:       components.Navigation.Get(e).Agent,
		query:     query,
		sampler:   sampler,
		rng:       rng,
		dt:        dt,
		target:    targetEntry.Entity(),
		targetPos: components.Transform.Get(targetEntry).Position,
	}
	t.state.StateTimer += dt

	t.updatePerception()

	switch t.state.CurrentState {
	case cfg.StatePatrol:
		t.handlePatrolState()
	case cfg.StateChase:
		t.handleChaseState()
	case cfg.StateCircle:
		t.handleCircleState()
	}

	t.publishAnimation()
}

func (t *enemyTick) updatePerception() {
	if CanSeeTarget(t.query, t.typ, t.pose, t.target, t.targetPos) {
		t.enemy.Chasing = true
		t.enemy.TimeSinceTargetSeen = 0
		t.setSpeed(t.typ.AlertSpeed)
		return
	}
	t.enemy.TimeSinceTargetSeen += t.dt
	if t.enemy.TimeSinceTargetSeen > t.typ.LoseSightTime {
		t.enemy.Chasing = false
	}
	t.setSpeed(t.typ.CalmSpeed)
}

func (t *enemyTick) setSpeed(speed float64) {
	t.enemy.Speed = speed
	t.nav.SetSpeed(speed)
}

func (t *enemyTick) transition(to cfg.StateID) {
	slog.Debug("enemy state change",
		"entity", t.entry.Entity(),
		"type", t.enemy.TypeName,
		"from", t.state.CurrentState,
		"to", to)
	t.state.PreviousState = t.state.CurrentState
	t.state.CurrentState = to
	t.state.StateTimer = 0
	t.enemy.State = to
}

func (t *enemyTick) handlePatrolState() {
	if t.enemy.Chasing {
		t.transition(cfg.StateChase)
		t.nav.ResetPath()
		return
	}
	t.stepPatrol()
}

func (t *enemyTick) stepPatrol() {
	p := t.patrol
	if len(p.Points) == 0 {
		return
	}

	if p.Waiting {
		p.WaitTimer -= t.dt
		if expired(p.WaitTimer) {
			p.Waiting = false
			p.Index = nextPatrolIndex(t.rng, p.Index, len(p.Points))
			t.nav.SetDestination(p.Points[p.Index])
		}
		return
	}

	if !t.nav.PathPending() && t.nav.RemainingDistance() < t.typ.WaypointTolerance {
		p.Waiting = true
		p.WaitTimer = randRange(t.rng, t.typ.MinWaitTime, t.typ.MaxWaitTime)
		t.nav.ResetPath()
	}
}

func (t *enemyTick) handleChaseState() {
	if !t.enemy.Chasing {
		t.transition(cfg.StatePatrol)
		t.patrol.Waiting = false
		if p, ok := t.patrol.Current(); ok {
			t.nav.SetDestination(p)
		}
		return
	}

	if gamemath.Distance(t.pose.Position, t.targetPos) <= t.typ.AttackRange {
		t.transition(cfg.StateCircle)
		t.rebuildOrbit()
		if p, ok := t.orbit.Current(); ok {
			t.nav.SetDestination(p)
		}
		return
	}

	t.nav.SetDestination(t.targetPos)
}

func (t *enemyTick) handleCircleState() {
	d := gamemath.Distance(t.pose.Position, t.targetPos)

	if d > t.typ.AttackRange+t.typ.EscapeMargin {
		t.transition(cfg.StateChase)
		t.orbit.Clear()
		t.nav.SetDestination(t.targetPos)
		return
	}

	if d > t.typ.AttackRange {
		t.approachAndFace()
		return
	}

	if !t.circleMovement() {
		// No usable ring: hold a striking distance instead of orbiting.
		t.nav.SetDestination(t.approachPoint())
	}
	if TryAttack(t.attack) {
		t.reportAttack()
	}
	t.faceTarget()
}

// circleMovement steers along the orbit ring. It reports false when there is
// no usable ring to follow.
func (t *enemyTick) circleMovement() bool {
	o := t.orbit
	moved := gamemath.FlatDistance(o.Center, t.targetPos) > t.typ.RebuildOrbitThreshold

	if !o.Usable() {
		if !moved {
			return false
		}
		t.rebuildOrbit()
		p, ok := o.Current()
		if !ok {
			return false
		}
		t.nav.SetDestination(p)
		return true
	}

	if moved && t.typ.RebuildOrbitOnMove {
		t.rebuildOrbit()
		if p, ok := o.Current(); ok {
			t.nav.SetDestination(p)
			return true
		}
		return false
	}

	if !t.nav.PathPending() && t.nav.RemainingDistance() < t.typ.OrbitReachTolerance {
		t.nav.SetDestination(o.Advance())
	}
	return true
}

func (t *enemyTick) rebuildOrbit() {
	points, start := BuildOrbitRing(t.sampler, t.typ, t.targetPos, t.rng)
	t.orbit.Points = points
	t.orbit.Index = start
	t.orbit.Center = t.targetPos
	if !t.orbit.Usable() {
		slog.Debug("orbit ring unavailable, circling disabled until target moves",
			"entity", t.entry.Entity(),
			"points", len(points),
			"center", t.targetPos)
	}
}

// approachPoint is just inside attack range on the line from the target to
// the enemy.
func (t *enemyTick) approachPoint() gamemath.Vec3 {
	dir := t.targetPos.Sub(t.pose.Position).Normalized()
	return t.targetPos.Sub(dir.Scale(t.typ.AttackRange * t.typ.ApproachFactor))
}

func (t *enemyTick) approachAndFace() {
	t.nav.SetDestination(t.approachPoint())
	t.faceTarget()
}

func (t *enemyTick) faceTarget() {
	look := t.targetPos.Sub(t.pose.Position).Flat()
	if look.SqrMagnitude() <= minFacingSqr {
		return
	}
	t.pose.Yaw = gamemath.LerpAngle(t.pose.Yaw, gamemath.YawOf(look), t.dt*t.typ.TurnSmoothing)
	t.enemy.FacingTarget = true
}

func (t *enemyTick) reportAttack() {
	slog.Debug("enemy attacks",
		"entity", t.entry.Entity(),
		"type", t.enemy.TypeName,
		"count", t.attack.Count)
	AttackEvent.Publish(t.world, components.AttackEventData{
		Entity:   t.entry.Entity(),
		TypeName: t.enemy.TypeName,
		Position: t.pose.Position,
		Target:   t.targetPos,
	})
}

func (t *enemyTick) publishAnimation() {
	if !t.entry.HasComponent(components.Animator) {
		return
	}
	sink := components.Animator.Get(t.entry).Sink
	if sink == nil {
		return
	}
	s := t.state.CurrentState
	sink.SetBool(cfg.AnimIdle, s == cfg.StatePatrol && t.patrol.Waiting)
	sink.SetBool(cfg.AnimWalking, s == cfg.StatePatrol)
	sink.SetBool(cfg.AnimRunning, s == cfg.StateChase)
	sink.SetBool(cfg.AnimCircling, s == cfg.StateCircle)
	sink.SetBool(cfg.AnimAttacking, t.attack.IsAttacking)
}

// nextPatrolIndex picks a random route index other than current when the
// route has more than one point.
func nextPatrolIndex(rng *rand.Rand, current, n int) int {
	if n <= 1 {
		return 0
	}
	next := rng.Intn(n - 1)
	if next >= current {
		next++
	}
	return next
}

// randRange returns a value in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
