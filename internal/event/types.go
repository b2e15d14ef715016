// internal/event/types.go
package event

import (
	"go-td-sim/internal/defs"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/vmath"
)

const (
	TowerPlaced      EventType = "TowerPlaced"
	TowerRemoved     EventType = "TowerRemoved"
	EnemyKilled      EventType = "EnemyKilled"      // Враг уничтожен
	EnemyReachedEnd  EventType = "EnemyReachedEnd"  // Враг дошёл до выхода
	WaveStarted      EventType = "WaveStarted"
	WaveCompleted    EventType = "WaveCompleted"    // Волна зачищена
	GameOver         EventType = "GameOver"
	Victory          EventType = "Victory"
	ExplosionAt      EventType = "ExplosionAt"      // Для слоя VFX
	ChainLink        EventType = "ChainLink"        // Звено цепной молнии
	AbilityTriggered EventType = "AbilityTriggered"
)

// TowerData — полезная нагрузка TowerPlaced/TowerRemoved.
type TowerData struct {
	ID    types.EntityID
	DefID string
}

// KillData — полезная нагрузка EnemyKilled.
type KillData struct {
	ID   types.EntityID
	Gold int // Базовая награда, до множителей сессии
}

// LeakData — полезная нагрузка EnemyReachedEnd.
type LeakData struct {
	ID     types.EntityID
	Damage int
}

// WaveData — полезная нагрузка WaveStarted/WaveCompleted.
type WaveData struct {
	Number    int
	BonusGold int
}

// ExplosionData — полезная нагрузка ExplosionAt.
type ExplosionData struct {
	Pos        vmath.Vec2
	Radius     float64
	DamageType defs.DamageType
}

// ChainLinkData — полезная нагрузка ChainLink.
type ChainLinkData struct {
	From vmath.Vec2
	To   vmath.Vec2
}

// AbilityData — полезная нагрузка AbilityTriggered.
type AbilityData struct {
	TowerID types.EntityID
	Kind    defs.AbilityKind
}
