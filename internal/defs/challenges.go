// internal/defs/challenges.go
package defs

// ChallengeDefinition — правила испытания на одну сессию. Усложняющие
// множители применяются к врагам, компенсирующие — к наградам.
// CostInflationPerWave задаёт рост стоимости башен: множитель цены равен
// 1 + rate*wave и пересчитывается от текущего номера волны при каждом
// запросе, без накопления состояния.
type ChallengeDefinition struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	EnemyHealthMultiplier float64 `json:"enemy_health_multiplier"`
	EnemySpeedMultiplier  float64 `json:"enemy_speed_multiplier"`
	TowerDamageMultiplier float64 `json:"tower_damage_multiplier"`
	GoldMultiplier        float64 `json:"gold_multiplier"`
	CostInflationPerWave  float64 `json:"cost_inflation_per_wave"`
	StartingHealth        int     `json:"starting_health,omitempty"` // 0 — стандартное
}

// ChallengeLibrary is the library of all challenge definitions.
var ChallengeLibrary = map[string]ChallengeDefinition{
	"CHALLENGE_IRONCLAD": {
		ID: "CHALLENGE_IRONCLAD", Name: "Ironclad",
		EnemyHealthMultiplier: 1.5, EnemySpeedMultiplier: 1.0,
		TowerDamageMultiplier: 1.0, GoldMultiplier: 1.3,
	},
	"CHALLENGE_SWARM": {
		ID: "CHALLENGE_SWARM", Name: "Swarm",
		EnemyHealthMultiplier: 0.8, EnemySpeedMultiplier: 1.4,
		TowerDamageMultiplier: 1.0, GoldMultiplier: 1.2,
	},
	"CHALLENGE_INFLATION": {
		ID: "CHALLENGE_INFLATION", Name: "Inflation",
		EnemyHealthMultiplier: 1.0, EnemySpeedMultiplier: 1.0,
		TowerDamageMultiplier: 1.0, GoldMultiplier: 1.5,
		CostInflationPerWave: 0.05,
	},
	"CHALLENGE_GLASS": {
		ID: "CHALLENGE_GLASS", Name: "Glass Fortress",
		EnemyHealthMultiplier: 1.2, EnemySpeedMultiplier: 1.0,
		TowerDamageMultiplier: 1.5, GoldMultiplier: 1.0,
		StartingHealth: 25,
	},
}
