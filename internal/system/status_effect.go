// internal/system/status_effect.go
package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/types"
)

// statuses возвращает набор эффектов сущности, создавая компонент при
// первом наложении. Мёртвым и несуществующим сущностям эффекты не вешаются.
func statuses(w *entity.World, id types.EntityID) *component.StatusEffects {
	if !w.Alive(id) {
		return nil
	}
	if se, ok := w.Statuses.Get(id); ok {
		return se
	}
	se := &component.StatusEffects{}
	w.Statuses.Add(id, se)
	return se
}

// ApplyDot накладывает периодический урон. Внутри одного типа урона DOT не
// суммируется: и dps, и длительность обновляются до максимума. Разные типы
// живут независимо.
func ApplyDot(w *entity.World, id types.EntityID, t defs.DamageType, dps, duration float64) {
	se := statuses(w, id)
	if se == nil {
		return
	}
	if dot := se.DotOf(t); dot != nil {
		if dps > dot.DamagePerSecond {
			dot.DamagePerSecond = dps
		}
		if duration > dot.Remaining {
			dot.Remaining = duration
		}
		return
	}
	se.Dots = append(se.Dots, component.DotEffect{Type: t, DamagePerSecond: dps, Remaining: duration})
}

// ApplySlow накладывает замедление: процент и длительность — максимум из
// старого и нового.
func ApplySlow(w *entity.World, id types.EntityID, percent, duration float64) {
	se := statuses(w, id)
	if se == nil {
		return
	}
	if se.Slow == nil {
		se.Slow = &component.SlowEffect{Percent: percent, Remaining: duration}
		return
	}
	if percent > se.Slow.Percent {
		se.Slow.Percent = percent
	}
	if duration > se.Slow.Remaining {
		se.Slow.Remaining = duration
	}
}

// ApplyStun накладывает оглушение, длительность — максимум.
func ApplyStun(w *entity.World, id types.EntityID, duration float64) {
	se := statuses(w, id)
	if se == nil {
		return
	}
	if se.Stun == nil {
		se.Stun = &component.StunEffect{Remaining: duration}
		return
	}
	if duration > se.Stun.Remaining {
		se.Stun.Remaining = duration
	}
}

// ApplyArmorBreak снижает эффективную броню, параметры — максимум.
func ApplyArmorBreak(w *entity.World, id types.EntityID, reduction, duration float64) {
	se := statuses(w, id)
	if se == nil {
		return
	}
	if se.ArmorBreak == nil {
		se.ArmorBreak = &component.ArmorBreakEffect{Reduction: reduction, Remaining: duration}
		return
	}
	if reduction > se.ArmorBreak.Reduction {
		se.ArmorBreak.Reduction = reduction
	}
	if duration > se.ArmorBreak.Remaining {
		se.ArmorBreak.Remaining = duration
	}
}

// ApplyMark вешает метку усиления урона, параметры — максимум.
func ApplyMark(w *entity.World, id types.EntityID, amplification, duration float64) {
	se := statuses(w, id)
	if se == nil {
		return
	}
	if se.Mark == nil {
		se.Mark = &component.MarkEffect{Amplification: amplification, Remaining: duration}
		return
	}
	if amplification > se.Mark.Amplification {
		se.Mark.Amplification = amplification
	}
	if duration > se.Mark.Remaining {
		se.Mark.Remaining = duration
	}
}

// IsStunned — пер-тиковый гейт: оглушённая сущность не двигается и не
// продвигает перезарядки.
func IsStunned(w *entity.World, id types.EntityID) bool {
	se, ok := w.Statuses.Get(id)
	return ok && se.Stun != nil
}

// SlowMultiplier возвращает множитель скорости движения от замедления.
func SlowMultiplier(w *entity.World, id types.EntityID) float64 {
	se, ok := w.Statuses.Get(id)
	if !ok || se.Slow == nil {
		return 1.0
	}
	return 1.0 - se.Slow.Percent
}

// IsMarked сообщает, висит ли на сущности метка.
func IsMarked(w *entity.World, id types.EntityID) bool {
	se, ok := w.Statuses.Get(id)
	return ok && se.Mark != nil
}

// StatusEffectSystem управляет жизненным циклом эффектов.
type StatusEffectSystem struct {
	world *entity.World
}

func NewStatusEffectSystem(world *entity.World) *StatusEffectSystem {
	return &StatusEffectSystem{world: world}
}

// Update уменьшает таймеры всех эффектов, снимает истёкшие и проводит урон
// от DOT через общий конвейер урона — он так же смягчается бронёй, щитом и
// меткой, как прямые попадания. Возвращает суммарный сырой DOT-урон тика.
func (s *StatusEffectSystem) Update(deltaTime float64) float64 {
	type pendingDot struct {
		id     types.EntityID
		dtype  defs.DamageType
		amount float64
	}
	var pending []pendingDot
	total := 0.0

	s.world.Statuses.ForEach(func(id types.EntityID, se *component.StatusEffects) bool {
		kept := se.Dots[:0]
		for i := range se.Dots {
			dot := &se.Dots[i]
			dot.Remaining -= deltaTime
			amount := dot.DamagePerSecond * deltaTime
			total += amount
			pending = append(pending, pendingDot{id: id, dtype: dot.Type, amount: amount})
			if dot.Remaining > 0 {
				kept = append(kept, *dot)
			}
		}
		se.Dots = kept

		if se.Slow != nil {
			se.Slow.Remaining -= deltaTime
			if se.Slow.Remaining <= 0 {
				se.Slow = nil
			}
		}
		if se.Stun != nil {
			se.Stun.Remaining -= deltaTime
			if se.Stun.Remaining <= 0 {
				se.Stun = nil
			}
		}
		if se.ArmorBreak != nil {
			se.ArmorBreak.Remaining -= deltaTime
			if se.ArmorBreak.Remaining <= 0 {
				se.ArmorBreak = nil
			}
		}
		if se.Mark != nil {
			se.Mark.Remaining -= deltaTime
			if se.Mark.Remaining <= 0 {
				se.Mark = nil
			}
		}

		if se.Empty() {
			s.world.Statuses.Remove(id)
		}
		return true
	})

	// Урон применяется после обхода, чтобы не менять хранилища под итерацией.
	for _, p := range pending {
		TakeDamage(s.world, p.id, p.amount, p.dtype, false)
	}
	return total
}
