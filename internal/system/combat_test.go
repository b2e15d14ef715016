package system

import (
	"math"
	"testing"

	"go-td-sim/internal/component"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/session"
	"go-td-sim/internal/types"
	"go-td-sim/internal/utils"
	"go-td-sim/pkg/vmath"
)

func TestTakeDamageArmorCurve(t *testing.T) {
	w := entity.NewWorld()
	id := newTestEnemy(w, 1000, 50, 0)

	dealt := TakeDamage(w, id, 100, defs.DamagePhysical, false)

	// 50 / (50 + 100) = 1/3 смягчения.
	want := 100.0 * (1.0 - 50.0/150.0)
	if math.Abs(dealt-want) > 1e-9 {
		t.Errorf("Expected %f damage dealt, got %f", want, dealt)
	}
}

func TestTakeDamageShieldAbsorbsFirst(t *testing.T) {
	w := entity.NewWorld()
	id := newTestEnemy(w, 100, 0, 30)

	dealt := TakeDamage(w, id, 50, defs.DamagePhysical, false)

	health, _ := w.Healths.Get(id)
	if health.Shield != 0 {
		t.Errorf("Expected shield 0, got %f", health.Shield)
	}
	if health.Current != 80 {
		t.Errorf("Expected health 80, got %f", health.Current)
	}
	if dealt != 50 {
		t.Errorf("Expected 50 total removed, got %f", dealt)
	}
}

func TestTakeDamagePureIgnoresArmor(t *testing.T) {
	w := entity.NewWorld()
	armored := newTestEnemy(w, 1000, 200, 0)

	if dealt := TakeDamage(w, armored, 100, defs.DamagePure, false); dealt != 100 {
		t.Errorf("Expected PURE damage to bypass armor, got %f", dealt)
	}

	sniper := newTestEnemy(w, 1000, 200, 0)
	if dealt := TakeDamage(w, sniper, 100, defs.DamagePhysical, true); dealt != 100 {
		t.Errorf("Expected ignoreArmor hit to bypass armor, got %f", dealt)
	}
}

func TestTakeDamageArmorBreak(t *testing.T) {
	w := entity.NewWorld()
	id := newTestEnemy(w, 1000, 100, 0)
	ApplyArmorBreak(w, id, 0.5, 5)

	dealt := TakeDamage(w, id, 100, defs.DamagePhysical, false)

	// Эффективная броня 50 -> смягчение 1/3.
	want := 100.0 * (1.0 - 50.0/150.0)
	if math.Abs(dealt-want) > 1e-9 {
		t.Errorf("Expected %f with broken armor, got %f", want, dealt)
	}
}

func TestTakeDamageMarkAmplifies(t *testing.T) {
	w := entity.NewWorld()
	id := newTestEnemy(w, 1000, 0, 0)
	ApplyMark(w, id, 0.25, 5)

	if dealt := TakeDamage(w, id, 100, defs.DamagePhysical, false); dealt != 125 {
		t.Errorf("Expected 125 amplified damage, got %f", dealt)
	}
}

func TestTakeDamageResistance(t *testing.T) {
	w := entity.NewWorld()
	id := newTestEnemy(w, 1000, 0, 0)
	w.Resistances.Add(id, &component.Resistances{
		Values: map[defs.DamageType]float64{defs.DamageFire: 0.5},
	})

	if dealt := TakeDamage(w, id, 100, defs.DamageFire, false); dealt != 50 {
		t.Errorf("Expected fire damage halved by resistance, got %f", dealt)
	}
	if dealt := TakeDamage(w, id, 100, defs.DamageFrost, false); dealt != 100 {
		t.Errorf("Expected frost damage unaffected, got %f", dealt)
	}
}

func TestTakeDamageNeverDestroysEntity(t *testing.T) {
	w := entity.NewWorld()
	id := newTestEnemy(w, 10, 0, 0)

	dealt := TakeDamage(w, id, 1000, defs.DamagePhysical, false)
	if dealt != 10 {
		t.Errorf("Expected removed amount capped at 10, got %f", dealt)
	}
	health, ok := w.Healths.Get(id)
	if !ok {
		t.Fatal("Expected entity to survive as a component holder")
	}
	if health.Current != 0 {
		t.Errorf("Expected health clamped to 0, got %f", health.Current)
	}
	if !health.IsDead() {
		t.Error("Expected IsDead at zero health")
	}
	if !w.Alive(id) {
		t.Error("Expected the damage pipeline to leave destruction to the death system")
	}
}

func TestTakeDamageMonotonicInArmor(t *testing.T) {
	prev := math.Inf(1)
	for _, armor := range []float64{0, 25, 50, 100, 200, 400} {
		w := entity.NewWorld()
		id := newTestEnemy(w, 1e9, armor, 0)
		dealt := TakeDamage(w, id, 100, defs.DamagePhysical, false)
		if dealt >= prev {
			t.Errorf("Expected damage to fall as armor grows: armor=%f dealt=%f prev=%f",
				armor, dealt, prev)
		}
		if dealt <= 0 {
			t.Errorf("Expected reduction below 100%% at armor %f, dealt %f", armor, dealt)
		}
		prev = dealt
	}
}

func placeCombatEnemy(w *entity.World, pos vmath.Vec2, health, progress float64) types.EntityID {
	id := newTestEnemy(w, health, 0, 0)
	w.Transforms.Add(id, &component.Transform{Pos: pos})
	w.Paths.Add(id, &component.Path{WaypointIndex: 1, Progress: progress})
	return id
}

func TestSelectTargetModes(t *testing.T) {
	w := entity.NewWorld()
	sys := NewCombatSystem(w, session.NewContext(), utils.NewPRNGService(1))

	near := placeCombatEnemy(w, vmath.Vec2{X: 10, Y: 0}, 50, 30)
	mid := placeCombatEnemy(w, vmath.Vec2{X: 20, Y: 0}, 200, 80)
	far := placeCombatEnemy(w, vmath.Vec2{X: 30, Y: 0}, 120, 5)

	candidates := EnemiesInRange(w, vmath.Vec2{}, 100, false)
	if len(candidates) != 3 {
		t.Fatalf("Expected 3 candidates, got %d", len(candidates))
	}

	tests := []struct {
		mode defs.TargetingMode
		want types.EntityID
	}{
		{defs.TargetClosest, near},
		{defs.TargetFirst, mid},   // наибольший прогресс по маршруту
		{defs.TargetLast, far},    // наименьший прогресс
		{defs.TargetStrongest, mid},
		{defs.TargetWeakest, near},
	}
	for _, tt := range tests {
		if got := sys.SelectTarget(candidates, tt.mode); got != tt.want {
			t.Errorf("Mode %s: expected %v, got %v", tt.mode, tt.want, got)
		}
	}
}

func TestSelectTargetTieKeepsFirstEncountered(t *testing.T) {
	w := entity.NewWorld()
	sys := NewCombatSystem(w, session.NewContext(), utils.NewPRNGService(1))

	a := placeCombatEnemy(w, vmath.Vec2{X: 10, Y: 0}, 100, 50)
	placeCombatEnemy(w, vmath.Vec2{X: 20, Y: 0}, 100, 50)

	candidates := EnemiesInRange(w, vmath.Vec2{}, 100, false)
	if got := sys.SelectTarget(candidates, defs.TargetStrongest); got != a {
		t.Errorf("Expected tie to keep first encountered %v, got %v", a, got)
	}
	if got := sys.SelectTarget(candidates, defs.TargetFirst); got != a {
		t.Errorf("Expected progress tie to keep first encountered %v, got %v", a, got)
	}
}

func TestEnemiesInRangeSortedAndFiltered(t *testing.T) {
	w := entity.NewWorld()
	far := placeCombatEnemy(w, vmath.Vec2{X: 90, Y: 0}, 100, 0)
	near := placeCombatEnemy(w, vmath.Vec2{X: 10, Y: 0}, 100, 0)
	placeCombatEnemy(w, vmath.Vec2{X: 500, Y: 0}, 100, 0) // вне радиуса

	got := EnemiesInRange(w, vmath.Vec2{}, 100, false)
	if len(got) != 2 {
		t.Fatalf("Expected 2 enemies in range, got %d", len(got))
	}
	if got[0].ID != near || got[1].ID != far {
		t.Errorf("Expected closest-first order [%v %v], got [%v %v]",
			near, far, got[0].ID, got[1].ID)
	}
}

func TestPhasedEnemyNotTargetable(t *testing.T) {
	w := entity.NewWorld()
	id := placeCombatEnemy(w, vmath.Vec2{X: 10, Y: 0}, 100, 0)
	w.Phasings.Add(id, &component.Phasing{Phased: true})

	if len(EnemiesInRange(w, vmath.Vec2{}, 100, true)) != 0 {
		t.Error("Expected phased enemy to be untargetable")
	}
	if len(EnemiesInRange(w, vmath.Vec2{}, 100, false)) != 1 {
		t.Error("Expected phased enemy to still count for area effects")
	}
}

func TestStealthRevealedByProximityOrMark(t *testing.T) {
	w := entity.NewWorld()
	id := placeCombatEnemy(w, vmath.Vec2{X: 80, Y: 0}, 100, 0)
	w.Stealths.Add(id, &component.Stealth{RevealRadius: 50})

	if len(EnemiesInRange(w, vmath.Vec2{}, 200, true)) != 0 {
		t.Error("Expected distant stealth enemy to be hidden")
	}
	if len(EnemiesInRange(w, vmath.Vec2{X: 60, Y: 0}, 200, true)) != 1 {
		t.Error("Expected stealth enemy revealed within RevealRadius")
	}

	ApplyMark(w, id, 0.2, 5)
	if len(EnemiesInRange(w, vmath.Vec2{}, 200, true)) != 1 {
		t.Error("Expected marked stealth enemy to be targetable from any range")
	}
}

func TestStunnedTowerHoldsFire(t *testing.T) {
	w := entity.NewWorld()
	sess := session.NewContext()
	sys := NewCombatSystem(w, sess, utils.NewPRNGService(1))

	towerID := w.NewEntity()
	w.Transforms.Add(towerID, &component.Transform{Pos: vmath.Vec2{}})
	w.Combats.Add(towerID, &component.Combat{
		Damage: 10, FireRate: 1.0, Range: 100,
		DamageType: defs.DamagePhysical, Targeting: defs.TargetClosest,
	})
	placeCombatEnemy(w, vmath.Vec2{X: 10, Y: 0}, 100, 0)

	ApplyStun(w, towerID, 5)
	sys.Update(0.1)
	if w.Projectiles.Len() != 0 {
		t.Error("Expected stunned tower not to fire")
	}

	se, _ := w.Statuses.Get(towerID)
	se.Stun = nil
	sys.Update(0.1)
	if w.Projectiles.Len() != 1 {
		t.Errorf("Expected one projectile after stun lifted, got %d", w.Projectiles.Len())
	}
}

func TestFireRateSynergySpeedsCooldown(t *testing.T) {
	w := entity.NewWorld()
	sys := NewCombatSystem(w, session.NewContext(), utils.NewPRNGService(1))

	towerID := w.NewEntity()
	w.Transforms.Add(towerID, &component.Transform{Pos: vmath.Vec2{}})
	combat := &component.Combat{
		Damage: 10, FireRate: 2.0, Range: 100,
		DamageType: defs.DamagePhysical, Targeting: defs.TargetClosest,
	}
	w.Combats.Add(towerID, combat)
	w.Synergies.Add(towerID, &component.Synergy{Active: []component.ActiveSynergy{
		{Kind: defs.SynergyFireRate, Multiplier: 1.25},
	}})
	placeCombatEnemy(w, vmath.Vec2{X: 10, Y: 0}, 100, 0)

	sys.Update(0.1)
	want := 1.0 / (2.0 * 1.25)
	if math.Abs(combat.FireCooldown-want) > 1e-9 {
		t.Errorf("Expected cooldown %f with fire-rate synergy, got %f", want, combat.FireCooldown)
	}
}
