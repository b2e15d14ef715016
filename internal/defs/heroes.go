// internal/defs/heroes.go
package defs

// HeroDefinition — пассивные бонусы выбранного героя на время сессии.
// Все множители по умолчанию 1.0; StartingGoldBonus — единственный
// аддитивный бонус.
type HeroDefinition struct {
	ID                        string  `json:"id"`
	Name                      string  `json:"name"`
	DamageMultiplier          float64 `json:"damage_multiplier"`
	FireRateMultiplier        float64 `json:"fire_rate_multiplier"`
	GoldMultiplier            float64 `json:"gold_multiplier"`
	AbilityCooldownMultiplier float64 `json:"ability_cooldown_multiplier"`
	StartingGoldBonus         int     `json:"starting_gold_bonus"`
}

// HeroLibrary is the library of all hero definitions, mapped by their ID.
var HeroLibrary = map[string]HeroDefinition{
	"HERO_WARDEN": {
		ID: "HERO_WARDEN", Name: "Warden",
		DamageMultiplier: 1.15, FireRateMultiplier: 1.0,
		GoldMultiplier: 1.0, AbilityCooldownMultiplier: 1.0,
	},
	"HERO_ALCHEMIST": {
		ID: "HERO_ALCHEMIST", Name: "Alchemist",
		DamageMultiplier: 1.0, FireRateMultiplier: 1.0,
		GoldMultiplier: 1.25, AbilityCooldownMultiplier: 1.0,
		StartingGoldBonus: 50,
	},
	"HERO_CHRONOMANCER": {
		ID: "HERO_CHRONOMANCER", Name: "Chronomancer",
		DamageMultiplier: 1.0, FireRateMultiplier: 1.2,
		GoldMultiplier: 1.0, AbilityCooldownMultiplier: 0.85,
	},
}
