// component/health.go
package component

// Health — здоровье, броня и щит сущности.
// Инварианты: 0 <= Current <= Max, 0 <= Shield <= MaxShield.
// Урон сначала поглощается щитом, остаток снимает здоровье.
type Health struct {
	Current   float64
	Max       float64
	Armor     float64 // Плоское значение брони до кривой смягчения
	Shield    float64
	MaxShield float64
}

func (h *Health) IsDead() bool {
	return h.Current <= 0
}

// ShieldRegen — восстановление щита после паузы без попаданий.
type ShieldRegen struct {
	PerSecond float64
	Delay     float64 // Сколько секунд без урона нужно до начала регенерации
	SinceHit  float64 // Время с последнего попадания
}
