package systems

import (
	"testing"

	"github.com/automoto/enemyai/components"
	"github.com/automoto/enemyai/config"
	"github.com/automoto/enemyai/shared/gamemath"
	"github.com/automoto/enemyai/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

type fakeAgent struct {
	enabled      bool
	pending      bool
	remaining    float64
	speed        float64
	destinations []gamemath.Vec3
	resets       int
}

func newFakeAgent() *fakeAgent {
	return &fakeAgent{enabled: true, remaining: 100}
}

func (a *fakeAgent) SetDestination(p gamemath.Vec3) { a.destinations = append(a.destinations, p) }
func (a *fakeAgent) ResetPath()                     { a.resets++ }
func (a *fakeAgent) PathPending() bool              { return a.pending }
func (a *fakeAgent) RemainingDistance() float64     { return a.remaining }
func (a *fakeAgent) SetEnabled(enabled bool)        { a.enabled = enabled }
func (a *fakeAgent) Enabled() bool                  { return a.enabled }
func (a *fakeAgent) SetSpeed(speed float64)         { a.speed = speed }

func (a *fakeAgent) lastDestination() (gamemath.Vec3, bool) {
	if len(a.destinations) == 0 {
		return gamemath.Vec3{}, false
	}
	return a.destinations[len(a.destinations)-1], true
}

type fakeBody struct {
	kinematic bool
	impulses  []gamemath.Vec3
}

func (b *fakeBody) AddImpulse(impulse gamemath.Vec3) { b.impulses = append(b.impulses, impulse) }
func (b *fakeBody) SetKinematic(kinematic bool)     { b.kinematic = kinematic }
func (b *fakeBody) Kinematic() bool                 { return b.kinematic }

// fakeQuery answers every ray with hitEntity when hit is set.
type fakeQuery struct {
	hit       bool
	hitEntity donburi.Entity
	rays      int
	overlaps  []components.Hit
}

func (q *fakeQuery) Raycast(origin, dir gamemath.Vec3, maxDistance float64) (components.Hit, bool) {
	q.rays++
	if !q.hit {
		return components.Hit{}, false
	}
	return components.Hit{Entity: q.hitEntity}, true
}

func (q *fakeQuery) OverlapSphere(origin gamemath.Vec3, radius float64, tags ...string) []components.Hit {
	return q.overlaps
}

// fakeSampler returns query points unchanged unless blocked rejects them.
type fakeSampler struct {
	blocked func(p gamemath.Vec3) bool
	calls   int
}

func (s *fakeSampler) SamplePosition(p gamemath.Vec3, maxDistance float64) (gamemath.Vec3, bool) {
	s.calls++
	if s.blocked != nil && s.blocked(p) {
		return gamemath.Vec3{}, false
	}
	return p, true
}

type testWorld struct {
	w       donburi.World
	ecs     *ecs.ECS
	query   *fakeQuery
	sampler *fakeSampler
	target  *donburi.Entry
	deaths  []components.DeathEventData
	attacks []components.AttackEventData
}

type testEnemy struct {
	entry    *donburi.Entry
	agent    *fakeAgent
	body     *fakeBody
	animator *components.BoolAnimator
	surfaces *components.SurfaceSet
}

// newTestWorld builds a world around fake collaborators with the target at
// targetPos and every ray hitting the target.
func newTestWorld(t *testing.T, targetPos gamemath.Vec3) *testWorld {
	t.Helper()
	config.Reset()
	t.Cleanup(config.Reset)

	tw := &testWorld{
		w:       donburi.NewWorld(),
		query:   &fakeQuery{hit: true},
		sampler: &fakeSampler{},
	}
	factory.CreateWorld(tw.w, 1, tw.query, tw.sampler)
	tw.target = factory.CreatePlayer(tw.w, targetPos, nil)
	tw.query.hitEntity = tw.target.Entity()

	tw.ecs = ecs.NewECS(tw.w)
	tw.ecs.AddSystem(UpdateClock)
	tw.ecs.AddSystem(UpdateCombat)
	tw.ecs.AddSystem(UpdateKnockback)
	tw.ecs.AddSystem(UpdateAttackCooldowns)
	tw.ecs.AddSystem(UpdateEnemies)
	tw.ecs.AddSystem(UpdateEffects)
	tw.ecs.AddSystem(func(e *ecs.ECS) { events.ProcessAllEvents(e.World) })

	DeathEvent.Subscribe(tw.w, func(w donburi.World, e components.DeathEventData) {
		tw.deaths = append(tw.deaths, e)
	})
	AttackEvent.Subscribe(tw.w, func(w donburi.World, e components.AttackEventData) {
		tw.attacks = append(tw.attacks, e)
	})
	return tw
}

// spawnEnemy creates a Bokoblin at pos facing yaw.
func (tw *testWorld) spawnEnemy(pos gamemath.Vec3, yaw float64) *testEnemy {
	te := &testEnemy{
		agent:    newFakeAgent(),
		body:     &fakeBody{},
		animator: components.NewBoolAnimator(),
		surfaces: components.NewSurfaceSet(config.White, config.Blue),
	}
	te.entry = factory.CreateEnemyWithPorts(tw.w, "Bokoblin", pos, tw.target.Entity(), factory.EnemyPorts{
		Agent:    te.agent,
		Body:     te.body,
		Animator: te.animator,
		Visual:   te.surfaces,
	})
	components.Transform.Get(te.entry).Yaw = yaw
	return te
}

func (tw *testWorld) step(dt float64) {
	if e, ok := components.Clock.First(tw.w); ok {
		components.Clock.Get(e).Delta = dt
	}
	tw.ecs.Update()
}

func (tw *testWorld) moveTarget(p gamemath.Vec3) {
	components.Transform.Get(tw.target).Position = p
}

func (te *testEnemy) state() config.StateID {
	return components.State.Get(te.entry).CurrentState
}

func (te *testEnemy) setState(s config.StateID) {
	components.State.Get(te.entry).CurrentState = s
	components.Enemy.Get(te.entry).State = s
}

func (te *testEnemy) enemy() *components.EnemyData {
	return components.Enemy.Get(te.entry)
}
