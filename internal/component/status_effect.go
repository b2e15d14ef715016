// internal/component/status_effect.go
package component

import "go-td-sim/internal/defs"

// DotEffect — периодический урон. На сущности может быть не больше одного
// DOT каждого типа урона; повторное наложение того же типа обновляет до
// максимума, а не суммирует.
type DotEffect struct {
	Type            defs.DamageType
	DamagePerSecond float64
	Remaining       float64
}

// SlowEffect — замедление. Множитель скорости равен 1 - Percent.
type SlowEffect struct {
	Percent   float64 // 0..1
	Remaining float64
}

// StunEffect — оглушение: движение и перезарядки останавливаются.
type StunEffect struct {
	Remaining float64
}

// ArmorBreakEffect — снижение эффективной брони: armor * (1 - Reduction).
type ArmorBreakEffect struct {
	Reduction float64 // 0..1
	Remaining float64
}

// MarkEffect — метка: весь входящий урон умножается на 1 + Amplification.
type MarkEffect struct {
	Amplification float64
	Remaining     float64
}

// StatusEffects — набор активных эффектов одной сущности.
// Кроме DOT, каждая категория представлена максимум одним экземпляром.
type StatusEffects struct {
	Dots       []DotEffect
	Slow       *SlowEffect
	Stun       *StunEffect
	ArmorBreak *ArmorBreakEffect
	Mark       *MarkEffect
}

// DotOf возвращает активный DOT указанного типа урона, если он есть.
func (se *StatusEffects) DotOf(t defs.DamageType) *DotEffect {
	for i := range se.Dots {
		if se.Dots[i].Type == t {
			return &se.Dots[i]
		}
	}
	return nil
}

// Empty сообщает, что эффектов не осталось и компонент можно снять.
func (se *StatusEffects) Empty() bool {
	return len(se.Dots) == 0 && se.Slow == nil && se.Stun == nil &&
		se.ArmorBreak == nil && se.Mark == nil
}
