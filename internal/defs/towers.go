// internal/defs/towers.go
package defs

import "image/color"

// SlowParams describes an on-hit slow.
type SlowParams struct {
	Percent  float64 `json:"percent"`
	Duration float64 `json:"duration"`
}

// DotParams describes an on-hit damage-over-time effect.
type DotParams struct {
	Type            DamageType `json:"type"`
	DamagePerSecond float64    `json:"damage_per_second"`
	Duration        float64    `json:"duration"`
}

// ArmorBreakParams describes an on-hit armor reduction.
type ArmorBreakParams struct {
	Reduction float64 `json:"reduction"`
	Duration  float64 `json:"duration"`
}

// MarkParams describes an on-hit damage amplification mark.
type MarkParams struct {
	Amplification float64 `json:"amplification"`
	Duration      float64 `json:"duration"`
}

// StunParams describes an on-hit stun.
type StunParams struct {
	Duration float64 `json:"duration"`
}

// OnHitDef groups the status effects a hit applies.
// Using pointers to avoid including all fields for all towers.
type OnHitDef struct {
	Slow       *SlowParams       `json:"slow,omitempty"`
	Dot        *DotParams        `json:"dot,omitempty"`
	ArmorBreak *ArmorBreakParams `json:"armor_break,omitempty"`
	Mark       *MarkParams       `json:"mark,omitempty"`
	Stun       *StunParams       `json:"stun,omitempty"`
}

// CombatStats contains parameters related to a tower's attack.
type CombatStats struct {
	Damage       float64       `json:"damage"`
	FireRate     float64       `json:"fire_rate"` // Shots per second
	Range        float64       `json:"range"`     // In pixels
	DamageType   DamageType    `json:"damage_type"`
	Targeting    TargetingMode `json:"targeting"`
	IgnoreArmor  bool          `json:"ignore_armor,omitempty"`
	SplashRadius float64       `json:"splash_radius,omitempty"`
	OnHit        *OnHitDef     `json:"on_hit,omitempty"`
}

// AbilityDef describes a tower ability. Only the fields relevant to the
// ability kind are populated.
type AbilityDef struct {
	Kind            AbilityKind `json:"kind"`
	Cooldown        float64     `json:"cooldown"`
	Duration        float64     `json:"duration,omitempty"` // 0 — мгновенная способность
	Damage          float64     `json:"damage,omitempty"`
	Radius          float64     `json:"radius,omitempty"`
	Count           int         `json:"count,omitempty"`
	ExplosionRadius float64     `json:"explosion_radius,omitempty"`
	SpreadRadius    float64     `json:"spread_radius,omitempty"`
	PullSpeed       float64     `json:"pull_speed,omitempty"`
	MinDistance     float64     `json:"min_distance,omitempty"`
	SlowPercent     float64     `json:"slow_percent,omitempty"`
	DamageType      DamageType  `json:"damage_type,omitempty"`
	DotPerSecond    float64     `json:"dot_per_second,omitempty"`
	DotDuration     float64     `json:"dot_duration,omitempty"`
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color     color.RGBA `json:"color"`
	Radius    float32    `json:"radius"`
	HasStroke bool       `json:"has_stroke"`
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Cost    int          `json:"cost"`
	Combat  *CombatStats `json:"combat,omitempty"`
	Ability *AbilityDef  `json:"ability,omitempty"`
	Visuals Visuals      `json:"visuals"`
}

// TowerLibrary is the library of all tower definitions, mapped by their ID.
var TowerLibrary = map[string]TowerDefinition{
	"TOWER_ARROW": {
		ID: "TOWER_ARROW", Name: "Arrow Tower", Cost: 50,
		Combat: &CombatStats{
			Damage: 12, FireRate: 1.6, Range: 160,
			DamageType: DamagePhysical, Targeting: TargetFirst,
		},
		Visuals: Visuals{Color: color.RGBA{200, 170, 60, 255}, Radius: 11, HasStroke: true},
	},
	"TOWER_GATLING": {
		ID: "TOWER_GATLING", Name: "Gatling Tower", Cost: 80,
		Combat: &CombatStats{
			Damage: 5, FireRate: 4.0, Range: 130,
			DamageType: DamagePhysical, Targeting: TargetClosest,
		},
		Ability: &AbilityDef{
			Kind: AbilityMultiShot, Cooldown: 12, Count: 4, Damage: 8,
		},
		Visuals: Visuals{Color: color.RGBA{150, 150, 150, 255}, Radius: 11, HasStroke: true},
	},
	"TOWER_CANNON": {
		ID: "TOWER_CANNON", Name: "Cannon Tower", Cost: 110,
		Combat: &CombatStats{
			Damage: 35, FireRate: 0.5, Range: 180,
			DamageType: DamagePhysical, Targeting: TargetStrongest,
			SplashRadius: 45,
		},
		Ability: &AbilityDef{
			Kind: AbilityCarpetBomb, Cooldown: 18, Count: 5,
			Damage: 25, Radius: 180, ExplosionRadius: 55,
		},
		Visuals: Visuals{Color: color.RGBA{120, 90, 50, 255}, Radius: 13, HasStroke: true},
	},
	"TOWER_SNIPER": {
		ID: "TOWER_SNIPER", Name: "Sniper Tower", Cost: 130,
		Combat: &CombatStats{
			Damage: 60, FireRate: 0.35, Range: 320,
			DamageType: DamagePhysical, Targeting: TargetStrongest,
			IgnoreArmor: true,
			OnHit:       &OnHitDef{ArmorBreak: &ArmorBreakParams{Reduction: 0.4, Duration: 4}},
		},
		Visuals: Visuals{Color: color.RGBA{60, 90, 60, 255}, Radius: 11, HasStroke: true},
	},
	"TOWER_FIRE": {
		ID: "TOWER_FIRE", Name: "Flame Tower", Cost: 95,
		Combat: &CombatStats{
			Damage: 8, FireRate: 2.0, Range: 120,
			DamageType: DamageFire, Targeting: TargetFirst,
			OnHit: &OnHitDef{Dot: &DotParams{Type: DamageFire, DamagePerSecond: 6, Duration: 3}},
		},
		Visuals: Visuals{Color: color.RGBA{230, 90, 30, 255}, Radius: 11, HasStroke: true},
	},
	"TOWER_POISON": {
		ID: "TOWER_POISON", Name: "Venom Tower", Cost: 95,
		Combat: &CombatStats{
			Damage: 6, FireRate: 1.4, Range: 140,
			DamageType: DamagePoison, Targeting: TargetWeakest,
			OnHit: &OnHitDef{Dot: &DotParams{Type: DamagePoison, DamagePerSecond: 5, Duration: 5}},
		},
		Ability: &AbilityDef{
			Kind: AbilityPlague, Cooldown: 20, Duration: 6,
			Radius: 200, SpreadRadius: 70,
			DamageType: DamagePoison, DotPerSecond: 3, DotDuration: 4,
		},
		Visuals: Visuals{Color: color.RGBA{90, 180, 60, 255}, Radius: 11, HasStroke: true},
	},
	"TOWER_FROST": {
		ID: "TOWER_FROST", Name: "Frost Tower", Cost: 100,
		Combat: &CombatStats{
			Damage: 7, FireRate: 1.2, Range: 140,
			DamageType: DamageFrost, Targeting: TargetFirst,
			OnHit: &OnHitDef{Slow: &SlowParams{Percent: 0.4, Duration: 2}},
		},
		Ability: &AbilityDef{
			Kind: AbilityMassFreeze, Cooldown: 25, Duration: 3, Radius: 170,
		},
		Visuals: Visuals{Color: color.RGBA{110, 190, 240, 255}, Radius: 11, HasStroke: true},
	},
	"TOWER_TESLA": {
		ID: "TOWER_TESLA", Name: "Tesla Tower", Cost: 150,
		Combat: &CombatStats{
			Damage: 20, FireRate: 1.0, Range: 150,
			DamageType: DamageArcane, Targeting: TargetClosest,
		},
		Ability: &AbilityDef{
			Kind: AbilityChainStorm, Cooldown: 22, Damage: 18,
		},
		Visuals: Visuals{Color: color.RGBA{180, 120, 240, 255}, Radius: 12, HasStroke: true},
	},
	"TOWER_ARCANE": {
		ID: "TOWER_ARCANE", Name: "Arcane Tower", Cost: 140,
		Combat: &CombatStats{
			Damage: 14, FireRate: 0.9, Range: 170,
			DamageType: DamageArcane, Targeting: TargetRandom,
			OnHit: &OnHitDef{Mark: &MarkParams{Amplification: 0.25, Duration: 4}},
		},
		Ability: &AbilityDef{
			Kind: AbilitySingularity, Cooldown: 24, Duration: 2.5,
			Radius: 220, PullSpeed: 90, MinDistance: 20,
		},
		Visuals: Visuals{Color: color.RGBA{140, 60, 200, 255}, Radius: 12, HasStroke: true},
	},
	"TOWER_CHRONO": {
		ID: "TOWER_CHRONO", Name: "Chrono Tower", Cost: 120,
		Combat: &CombatStats{
			Damage: 5, FireRate: 1.0, Range: 150,
			DamageType: DamageArcane, Targeting: TargetFirst,
			OnHit: &OnHitDef{Stun: &StunParams{Duration: 0.5}},
		},
		Ability: &AbilityDef{
			Kind: AbilityMassSlow, Cooldown: 18, Duration: 4,
			Radius: 190, SlowPercent: 0.5,
		},
		Visuals: Visuals{Color: color.RGBA{230, 220, 120, 255}, Radius: 11, HasStroke: true},
	},
}
