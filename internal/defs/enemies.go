// internal/defs/enemies.go
package defs

import "image/color"

// HealerTrait — периодически лечит врагов вокруг себя.
type HealerTrait struct {
	Radius   float64 `json:"radius"`
	Amount   float64 `json:"amount"`
	Interval float64 `json:"interval"`
}

// PhasingTrait — враг циклически уходит в фазу и становится неуязвим для
// таргетинга.
type PhasingTrait struct {
	VisibleTime float64 `json:"visible_time"`
	PhasedTime  float64 `json:"phased_time"`
}

// SplittingTrait — при смерти враг распадается на несколько детей.
type SplittingTrait struct {
	ChildID string `json:"child_id"`
	Count   int    `json:"count"`
}

// StealthTrait — враг невидим для башен дальше радиуса обнаружения,
// если на нём нет метки.
type StealthTrait struct {
	RevealRadius float64 `json:"reveal_radius"`
}

// SpawnerTrait — враг периодически призывает миньонов позади себя.
type SpawnerTrait struct {
	ChildID  string  `json:"child_id"`
	Interval float64 `json:"interval"`
	Max      int     `json:"max"`
}

// ShieldRegenTrait — щит восстанавливается после паузы без попаданий.
type ShieldRegenTrait struct {
	PerSecond float64 `json:"per_second"`
	Delay     float64 `json:"delay"`
}

// TraitsDef groups optional special behaviors of an enemy type.
type TraitsDef struct {
	Healer      *HealerTrait      `json:"healer,omitempty"`
	Phasing     *PhasingTrait     `json:"phasing,omitempty"`
	Splitting   *SplittingTrait   `json:"splitting,omitempty"`
	Stealth     *StealthTrait     `json:"stealth,omitempty"`
	Spawner     *SpawnerTrait     `json:"spawner,omitempty"`
	ShieldRegen *ShieldRegenTrait `json:"shield_regen,omitempty"`
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Health      float64                `json:"health"`
	Speed       float64                `json:"speed"`
	Armor       float64                `json:"armor"`
	Shield      float64                `json:"shield,omitempty"`
	GoldReward  int                    `json:"gold_reward"`
	LeakDamage  int                    `json:"leak_damage"` // Урон игроку при проходе до конца
	Resistances map[DamageType]float64 `json:"resistances,omitempty"`
	Traits      *TraitsDef             `json:"traits,omitempty"`
	Visuals     Visuals                `json:"visuals"`
}

// FallbackEnemyID is used when imported content references an unknown enemy.
const FallbackEnemyID = "ENEMY_BASIC"

// EnemyLibrary is the library of all enemy definitions, mapped by their ID.
var EnemyLibrary = map[string]EnemyDefinition{
	"ENEMY_BASIC": {
		ID: "ENEMY_BASIC", Name: "Walker", Health: 100, Speed: 60,
		GoldReward: 8, LeakDamage: 10,
		Visuals: Visuals{Color: color.RGBA{180, 60, 60, 255}, Radius: 9},
	},
	"ENEMY_FAST": {
		ID: "ENEMY_FAST", Name: "Runner", Health: 60, Speed: 110,
		GoldReward: 7, LeakDamage: 5,
		Visuals: Visuals{Color: color.RGBA{230, 160, 60, 255}, Radius: 7},
	},
	"ENEMY_TOUGH": {
		ID: "ENEMY_TOUGH", Name: "Juggernaut", Health: 260, Speed: 40, Armor: 50,
		GoldReward: 15, LeakDamage: 15,
		Resistances: map[DamageType]float64{DamagePhysical: 0.8},
		Visuals:     Visuals{Color: color.RGBA{120, 120, 140, 255}, Radius: 12},
	},
	"ENEMY_SHIELDED": {
		ID: "ENEMY_SHIELDED", Name: "Warden", Health: 140, Speed: 55,
		Shield: 80, GoldReward: 14, LeakDamage: 10,
		Resistances: map[DamageType]float64{DamageArcane: 0.7},
		Traits:      &TraitsDef{ShieldRegen: &ShieldRegenTrait{PerSecond: 15, Delay: 2.5}},
		Visuals:     Visuals{Color: color.RGBA{80, 140, 220, 255}, Radius: 10},
	},
	"ENEMY_HEALER": {
		ID: "ENEMY_HEALER", Name: "Mender", Health: 120, Speed: 50,
		GoldReward: 16, LeakDamage: 8,
		Traits:  &TraitsDef{Healer: &HealerTrait{Radius: 90, Amount: 20, Interval: 2}},
		Visuals: Visuals{Color: color.RGBA{120, 220, 140, 255}, Radius: 9},
	},
	"ENEMY_PHASE": {
		ID: "ENEMY_PHASE", Name: "Shade", Health: 90, Speed: 70,
		GoldReward: 14, LeakDamage: 8,
		Traits:  &TraitsDef{Phasing: &PhasingTrait{VisibleTime: 2.5, PhasedTime: 1.5}},
		Visuals: Visuals{Color: color.RGBA{150, 150, 220, 255}, Radius: 9},
	},
	"ENEMY_SPLITTER": {
		ID: "ENEMY_SPLITTER", Name: "Blob", Health: 150, Speed: 50,
		GoldReward: 12, LeakDamage: 10,
		Traits:  &TraitsDef{Splitting: &SplittingTrait{ChildID: "ENEMY_SPLITTER_CHILD", Count: 2}},
		Visuals: Visuals{Color: color.RGBA{200, 110, 190, 255}, Radius: 11},
	},
	"ENEMY_SPLITTER_CHILD": {
		ID: "ENEMY_SPLITTER_CHILD", Name: "Blobling", Health: 50, Speed: 75,
		GoldReward: 3, LeakDamage: 4,
		Visuals: Visuals{Color: color.RGBA{200, 110, 190, 255}, Radius: 6},
	},
	"ENEMY_STEALTH": {
		ID: "ENEMY_STEALTH", Name: "Prowler", Health: 80, Speed: 80,
		GoldReward: 13, LeakDamage: 8,
		Traits:  &TraitsDef{Stealth: &StealthTrait{RevealRadius: 80}},
		Visuals: Visuals{Color: color.RGBA{90, 90, 90, 255}, Radius: 8},
	},
	"ENEMY_BROOD": {
		ID: "ENEMY_BROOD", Name: "Broodmother", Health: 320, Speed: 35,
		GoldReward: 25, LeakDamage: 20,
		Traits:  &TraitsDef{Spawner: &SpawnerTrait{ChildID: "ENEMY_FAST", Interval: 4, Max: 6}},
		Visuals: Visuals{Color: color.RGBA{170, 80, 40, 255}, Radius: 13},
	},
	"ENEMY_BOSS": {
		ID: "ENEMY_BOSS", Name: "Overlord", Health: 1500, Speed: 30, Armor: 80,
		Shield: 300, GoldReward: 120, LeakDamage: 50,
		Resistances: map[DamageType]float64{
			DamagePhysical: 0.8,
			DamageFire:     0.8,
			DamageFrost:    0.6,
		},
		Traits:  &TraitsDef{ShieldRegen: &ShieldRegenTrait{PerSecond: 25, Delay: 3}},
		Visuals: Visuals{Color: color.RGBA{40, 40, 40, 255}, Radius: 16, HasStroke: true},
	},
}
