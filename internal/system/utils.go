// internal/system/utils.go
package system

import (
	"sort"

	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/vmath"
)

// TakeDamage проводит урон через общий конвейер:
//  1. эффективная броня: 0 при ignoreArmor, иначе armor * (1 - armorBreak);
//  2. смягчение: effArmor / (effArmor + ArmorPivot) — убывающая отдача;
//  3. множитель резиста по типу урона;
//  4. усиление от метки: 1 + amplification;
//  5. щит поглощает первым, остаток снимает здоровье.
//
// Возвращает суммарно снятое (щит + здоровье). Сущностей не уничтожает:
// смерть обнаруживает и обрабатывает DeathSystem.
func TakeDamage(w *entity.World, id types.EntityID, amount float64, damageType defs.DamageType, ignoreArmor bool) float64 {
	if amount <= 0 {
		return 0
	}
	health, ok := w.Healths.Get(id)
	if !ok {
		return 0
	}

	effectiveArmor := 0.0
	if !ignoreArmor && damageType != defs.DamagePure {
		effectiveArmor = health.Armor
		if se, ok := w.Statuses.Get(id); ok && se.ArmorBreak != nil {
			effectiveArmor *= 1.0 - se.ArmorBreak.Reduction
		}
		if effectiveArmor < 0 {
			effectiveArmor = 0
		}
	}
	reduction := effectiveArmor / (effectiveArmor + config.ArmorPivot)

	if res, ok := w.Resistances.Get(id); ok {
		amount *= res.Multiplier(damageType)
	}
	if se, ok := w.Statuses.Get(id); ok && se.Mark != nil {
		amount *= 1.0 + se.Mark.Amplification
	}

	actual := amount * (1.0 - reduction)

	shieldDamage := actual
	if shieldDamage > health.Shield {
		shieldDamage = health.Shield
	}
	health.Shield -= shieldDamage
	healthDamage := actual - shieldDamage
	if healthDamage > health.Current {
		healthDamage = health.Current
	}
	health.Current -= healthDamage

	// Попадание откладывает регенерацию щита.
	if regen, ok := w.ShieldRegens.Get(id); ok {
		regen.SinceHit = 0
	}

	return shieldDamage + healthDamage
}

// Targetable сообщает, может ли башня в точке from выбрать врага целью.
// Враг в фазе — нет; скрытный враг — только вблизи или под меткой.
func Targetable(w *entity.World, id types.EntityID, from vmath.Vec2) bool {
	if ph, ok := w.Phasings.Get(id); ok && ph.Phased {
		return false
	}
	if st, ok := w.Stealths.Get(id); ok && !IsMarked(w, id) {
		pos, hasPos := w.Transforms.Get(id)
		if !hasPos {
			return false
		}
		if pos.Pos.DistSq(from) > st.RevealRadius*st.RevealRadius {
			return false
		}
	}
	return true
}

// Candidate — враг в радиусе, с предрассчитанным квадратом дистанции.
type Candidate struct {
	ID     types.EntityID
	DistSq float64
}

// EnemiesInRange возвращает живых врагов в радиусе, отсортированных по
// возрастанию квадрата дистанции. "Ближайший первым" — часть контракта:
// потребители, берущие первый элемент, получают ближайшего врага.
// Сортировка стабильная, поэтому равные дистанции сохраняют порядок обхода.
func EnemiesInRange(w *entity.World, center vmath.Vec2, radius float64, requireTargetable bool) []Candidate {
	radiusSq := radius * radius
	var found []Candidate
	w.Enemies.ForEach(func(id types.EntityID, _ *component.Enemy) bool {
		pos, ok := w.Transforms.Get(id)
		if !ok {
			return true
		}
		if requireTargetable && !Targetable(w, id, center) {
			return true
		}
		d := pos.Pos.DistSq(center)
		if d <= radiusSq {
			found = append(found, Candidate{ID: id, DistSq: d})
		}
		return true
	})
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].DistSq < found[j].DistSq
	})
	return found
}
