// component/tower.go
package component

import "go-td-sim/internal/defs"

// Tower — башня на клетке сетки.
type Tower struct {
	DefID string // ID из библиотеки башен
	GridX int
	GridY int
}

// Combat — компонент для башен, управляющий атакой.
type Combat struct {
	Damage       float64            // Базовый урон выстрела
	FireRate     float64            // Скорострельность (выстрелов в секунду)
	FireCooldown float64            // Оставшееся время до следующего выстрела
	Range        float64            // Радиус действия в пикселях
	DamageType   defs.DamageType
	Targeting    defs.TargetingMode
	IgnoreArmor  bool
	SplashRadius float64        // 0 — без сплэша
	OnHit        *defs.OnHitDef // Эффекты, накладываемые попаданием
}
