// internal/component/enemy.go
package component

import "go-td-sim/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID      string // ID из библиотеки врагов
	GoldReward int    // Базовая награда за убийство, до множителей сессии
	LeakDamage int    // Урон игроку, если враг дошёл до конца
}

// Resistances — множители входящего урона по типам. Отсутствующий тип
// означает множитель 1.0.
type Resistances struct {
	Values map[defs.DamageType]float64
}

// Multiplier возвращает множитель урона для типа.
func (r *Resistances) Multiplier(t defs.DamageType) float64 {
	if r == nil || r.Values == nil {
		return 1.0
	}
	if m, ok := r.Values[t]; ok {
		return m
	}
	return 1.0
}
