package system

import (
	"math"
	"testing"

	"go-td-sim/internal/component"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/session"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/vmath"
)

type abilityRig struct {
	world      *entity.World
	dispatcher *event.Dispatcher
	sys        *AbilitySystem
}

func newAbilityRig() *abilityRig {
	w := entity.NewWorld()
	d := event.NewDispatcher()
	return &abilityRig{
		world:      w,
		dispatcher: d,
		sys:        NewAbilitySystem(w, session.NewContext(), d),
	}
}

func (r *abilityRig) tower(def *defs.AbilityDef) (types.EntityID, *component.Ability) {
	id := r.world.NewEntity()
	r.world.Transforms.Add(id, &component.Transform{Pos: vmath.Vec2{}})
	ab := &component.Ability{Def: def, State: component.AbilityReady}
	r.world.Abilities.Add(id, ab)
	return id, ab
}

func (r *abilityRig) enemy(pos vmath.Vec2, health float64) types.EntityID {
	id := newTestEnemy(r.world, health, 0, 0)
	r.world.Transforms.Add(id, &component.Transform{Pos: pos})
	return id
}

func TestAbilityStateMachine(t *testing.T) {
	r := newAbilityRig()
	_, ab := r.tower(&defs.AbilityDef{
		Kind: defs.AbilityMultiShot, Cooldown: 8, Damage: 5, Radius: 100, Count: 2,
	})
	r.enemy(vmath.Vec2{X: 20, Y: 0}, 100)

	r.sys.Update(0.01)
	if ab.State != component.AbilityCooldown {
		t.Fatalf("Expected COOLDOWN after trigger, got %v", ab.State)
	}
	if ab.CooldownRemaining != 8 {
		t.Errorf("Expected cooldown 8, got %f", ab.CooldownRemaining)
	}
	if r.world.Projectiles.Len() != 1 {
		t.Errorf("Expected 1 projectile for 1 target, got %d", r.world.Projectiles.Len())
	}

	r.sys.Update(4.0)
	if ab.State != component.AbilityCooldown {
		t.Error("Expected cooldown to still be running")
	}
	r.sys.Update(5.0)
	if ab.State != component.AbilityReady {
		t.Errorf("Expected READY after cooldown elapsed, got %v", ab.State)
	}
}

func TestAbilityNoTargetStaysReady(t *testing.T) {
	r := newAbilityRig()
	_, ab := r.tower(&defs.AbilityDef{
		Kind: defs.AbilityMultiShot, Cooldown: 8, Damage: 5, Radius: 100, Count: 2,
	})

	r.sys.Update(1.0)
	if ab.State != component.AbilityReady {
		t.Errorf("Expected READY with no targets, got %v", ab.State)
	}
}

func TestAbilityStunFreezesCooldown(t *testing.T) {
	r := newAbilityRig()
	id, ab := r.tower(&defs.AbilityDef{
		Kind: defs.AbilityMultiShot, Cooldown: 8, Damage: 5, Radius: 100, Count: 2,
	})
	ab.State = component.AbilityCooldown
	ab.CooldownRemaining = 5
	ApplyStun(r.world, id, 100)

	r.sys.Update(3.0)
	if ab.CooldownRemaining != 5 {
		t.Errorf("Expected cooldown frozen at 5 while stunned, got %f", ab.CooldownRemaining)
	}
}

func TestMultiShotVolley(t *testing.T) {
	r := newAbilityRig()
	r.tower(&defs.AbilityDef{
		Kind: defs.AbilityMultiShot, Cooldown: 8, Damage: 5, Radius: 100, Count: 3,
	})
	r.enemy(vmath.Vec2{X: 10, Y: 0}, 100)
	r.enemy(vmath.Vec2{X: 20, Y: 0}, 100)
	r.enemy(vmath.Vec2{X: 30, Y: 0}, 100)
	r.enemy(vmath.Vec2{X: 40, Y: 0}, 100)

	r.sys.Update(0.01)
	if r.world.Projectiles.Len() != 3 {
		t.Errorf("Expected volley of 3 projectiles, got %d", r.world.Projectiles.Len())
	}
}

type explosionRecorder struct {
	points []vmath.Vec2
}

func (r *explosionRecorder) OnEvent(e event.Event) {
	if data, ok := e.Data.(event.ExplosionData); ok {
		r.points = append(r.points, data.Pos)
	}
}

func TestCarpetBombOverlapsHitPerExplosion(t *testing.T) {
	r := newAbilityRig()
	r.tower(&defs.AbilityDef{
		Kind: defs.AbilityCarpetBomb, Cooldown: 12, Damage: 10,
		Radius: 500, Count: 3, ExplosionRadius: 50,
	})
	// Count=3 кладёт взрывы в (100,0), (150,0) и (50,0): центр на ближайшем
	// враге плюс кольцо радиусом ExplosionRadius.
	center := r.enemy(vmath.Vec2{X: 100, Y: 0}, 100)  // в трёх кругах (граница включительно)
	overlap := r.enemy(vmath.Vec2{X: 130, Y: 0}, 100) // в двух кругах
	edge := r.enemy(vmath.Vec2{X: 190, Y: 0}, 100)    // только в правом
	outside := r.enemy(vmath.Vec2{X: 300, Y: 0}, 100) // вне всех кругов

	r.sys.Update(0.01)

	expect := func(id types.EntityID, want float64, label string) {
		health, _ := r.world.Healths.Get(id)
		if !almostEqual(health.Current, want) {
			t.Errorf("Expected %s enemy at %f health, got %f", label, want, health.Current)
		}
	}
	// Каждый накрывший круг бьёт отдельно, без дедупликации.
	expect(center, 70, "triple-covered")
	expect(overlap, 80, "double-covered")
	expect(edge, 90, "single-covered")
	expect(outside, 100, "uncovered")
}

func TestCarpetBombCentersOnClosestEnemy(t *testing.T) {
	r := newAbilityRig()
	rec := &explosionRecorder{}
	r.dispatcher.Subscribe(event.ExplosionAt, rec)
	_, ab := r.tower(&defs.AbilityDef{
		Kind: defs.AbilityCarpetBomb, Cooldown: 12, Damage: 10,
		Radius: 500, Count: 3, ExplosionRadius: 50,
	})
	r.enemy(vmath.Vec2{X: 80, Y: 0}, 100)
	far := r.enemy(vmath.Vec2{X: 200, Y: 0}, 100)

	r.sys.Update(0.01)

	if len(rec.points) != 3 {
		t.Fatalf("Expected 3 explosions, got %d", len(rec.points))
	}
	if !almostEqual(rec.points[0].X, 80) || !almostEqual(rec.points[0].Y, 0) {
		t.Errorf("Expected first explosion on the closest enemy (80, 0), got (%f, %f)",
			rec.points[0].X, rec.points[0].Y)
	}
	for i, p := range rec.points[1:] {
		if !almostEqual(p.DistSq(rec.points[0]), 50*50) {
			t.Errorf("Expected ring explosion %d at distance 50 from the center, got %f",
				i+1, math.Sqrt(p.DistSq(rec.points[0])))
		}
	}
	// Дальний враг остаётся вне серии, сосредоточенной вокруг ближайшего.
	health, _ := r.world.Healths.Get(far)
	if health.Current != 100 {
		t.Errorf("Expected the distant enemy untouched, got %f health", health.Current)
	}
	if ab.State != component.AbilityCooldown {
		t.Errorf("Expected COOLDOWN after the strike, got %v", ab.State)
	}
}

func TestChainStormHitsEveryEnemy(t *testing.T) {
	r := newAbilityRig()
	counter := newEventCounter(r.dispatcher, event.ChainLink, event.AbilityTriggered)
	r.tower(&defs.AbilityDef{
		Kind: defs.AbilityChainStorm, Cooldown: 10, Damage: 10,
	})
	ids := []types.EntityID{
		r.enemy(vmath.Vec2{X: 10, Y: 0}, 100),
		r.enemy(vmath.Vec2{X: 400, Y: 300}, 100),
		r.enemy(vmath.Vec2{X: 900, Y: 700}, 100),
	}

	r.sys.Update(0.01)

	for _, id := range ids {
		health, _ := r.world.Healths.Get(id)
		if health.Current != 90 {
			t.Errorf("Expected every enemy at 90 health, got %f", health.Current)
		}
	}
	if counter.counts[event.ChainLink] != 3 {
		t.Errorf("Expected 3 chain links, got %d", counter.counts[event.ChainLink])
	}
	if counter.counts[event.AbilityTriggered] != 1 {
		t.Errorf("Expected one AbilityTriggered event, got %d", counter.counts[event.AbilityTriggered])
	}
}

func TestDurationAbilityActivates(t *testing.T) {
	r := newAbilityRig()
	_, ab := r.tower(&defs.AbilityDef{
		Kind: defs.AbilityMassFreeze, Cooldown: 20, Duration: 3, Radius: 100,
	})
	id := r.enemy(vmath.Vec2{X: 30, Y: 0}, 100)

	r.sys.Update(0.1)
	if ab.State != component.AbilityActive {
		t.Fatalf("Expected ACTIVE, got %v", ab.State)
	}
	// Импульсы идут в тиках активной фазы.
	r.sys.Update(0.1)
	if !IsStunned(r.world, id) {
		t.Error("Expected enemy stunned by freeze pulse")
	}

	// По истечении длительности — перезарядка.
	r.sys.Update(3.0)
	if ab.State != component.AbilityCooldown {
		t.Errorf("Expected COOLDOWN after duration, got %v", ab.State)
	}
}

func TestSingularityPullClampsAtMinDistance(t *testing.T) {
	r := newAbilityRig()
	_, ab := r.tower(&defs.AbilityDef{
		Kind: defs.AbilitySingularity, Cooldown: 20, Duration: 10,
		Radius: 200, PullSpeed: 100, MinDistance: 25,
	})
	ab.State = component.AbilityActive
	ab.DurationRemaining = 10
	id := r.enemy(vmath.Vec2{X: 30, Y: 0}, 100)

	r.sys.Update(1.0)

	pos, _ := r.world.Transforms.Get(id)
	dist := pos.Pos.Len()
	if math.Abs(dist-25) > 1e-9 {
		t.Errorf("Expected pull clamped at min distance 25, got %f", dist)
	}

	r.sys.Update(1.0)
	pos, _ = r.world.Transforms.Get(id)
	if math.Abs(pos.Pos.Len()-25) > 1e-9 {
		t.Errorf("Expected enemy held at min distance, got %f", pos.Pos.Len())
	}
}

func TestPlagueSpreadsOneStepPerTick(t *testing.T) {
	r := newAbilityRig()
	_, ab := r.tower(&defs.AbilityDef{
		Kind: defs.AbilityPlague, Cooldown: 30, Duration: 10,
		Radius: 500, SpreadRadius: 50,
		DamageType: defs.DamagePoison, DotPerSecond: 2, DotDuration: 4,
	})
	ab.State = component.AbilityActive
	ab.DurationRemaining = 10

	carrier := r.enemy(vmath.Vec2{X: 0, Y: 10}, 100)
	near := r.enemy(vmath.Vec2{X: 40, Y: 10}, 100)   // в 40 от носителя
	distant := r.enemy(vmath.Vec2{X: 80, Y: 10}, 100) // в 40 от near, в 80 от носителя
	ApplyDot(r.world, carrier, defs.DamagePoison, 3, 5)

	r.sys.Update(0.1)
	if se, ok := r.world.Statuses.Get(near); !ok || se.DotOf(defs.DamagePoison) == nil {
		t.Fatal("Expected infection to reach the adjacent enemy on the first tick")
	}
	if se, ok := r.world.Statuses.Get(distant); ok && se.DotOf(defs.DamagePoison) != nil {
		t.Error("Expected the distant enemy to stay clean after one tick")
	}

	r.sys.Update(0.1)
	if se, ok := r.world.Statuses.Get(distant); !ok || se.DotOf(defs.DamagePoison) == nil {
		t.Error("Expected infection to reach the distant enemy through the new carrier")
	}
}

func TestPlagueInfectionIsWeakerThanSource(t *testing.T) {
	r := newAbilityRig()
	_, ab := r.tower(&defs.AbilityDef{
		Kind: defs.AbilityPlague, Cooldown: 30, Duration: 10,
		Radius: 500, SpreadRadius: 50,
		DamageType: defs.DamagePoison, DotPerSecond: 2, DotDuration: 4,
	})
	ab.State = component.AbilityActive
	ab.DurationRemaining = 10

	carrier := r.enemy(vmath.Vec2{X: 0, Y: 10}, 100)
	near := r.enemy(vmath.Vec2{X: 40, Y: 10}, 100)
	ApplyDot(r.world, carrier, defs.DamagePoison, 6, 8)

	r.sys.Update(0.1)
	se, _ := r.world.Statuses.Get(near)
	dot := se.DotOf(defs.DamagePoison)
	if dot == nil {
		t.Fatal("Expected the neighbor to be infected")
	}
	if dot.DamagePerSecond != 2 || dot.Remaining != 4 {
		t.Errorf("Expected contagion dot (2, 4) from the ability, got (%f, %f)",
			dot.DamagePerSecond, dot.Remaining)
	}
}
