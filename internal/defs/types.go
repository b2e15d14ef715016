// internal/defs/types.go
package defs

// DamageType defines the type of damage dealt. DOT status effects are keyed
// by this type as well.
type DamageType string

const (
	DamagePhysical DamageType = "PHYSICAL"
	DamageFire     DamageType = "FIRE"
	DamagePoison   DamageType = "POISON"
	DamageFrost    DamageType = "FROST"
	DamageArcane   DamageType = "ARCANE"
	DamagePure     DamageType = "PURE" // Не смягчается ничем
)

// TargetingMode defines how a tower picks its target among in-range enemies.
type TargetingMode string

const (
	TargetFirst     TargetingMode = "FIRST"     // Дальше всех по маршруту
	TargetLast      TargetingMode = "LAST"      // Ближе всех к началу маршрута
	TargetStrongest TargetingMode = "STRONGEST" // Максимум текущего здоровья
	TargetWeakest   TargetingMode = "WEAKEST"   // Минимум текущего здоровья
	TargetClosest   TargetingMode = "CLOSEST"   // Минимальная дистанция до башни
	TargetRandom    TargetingMode = "RANDOM"    // Равновероятный выбор
)

// AbilityKind enumerates tower ability variants.
type AbilityKind string

const (
	AbilityCarpetBomb  AbilityKind = "CARPET_BOMB" // Серия взрывов вокруг цели
	AbilityChainStorm  AbilityKind = "CHAIN_STORM" // Урон каждому живому врагу
	AbilityMultiShot   AbilityKind = "MULTI_SHOT"  // Залп по нескольким целям
	AbilityMassFreeze  AbilityKind = "MASS_FREEZE"
	AbilitySingularity AbilityKind = "SINGULARITY" // Стягивание врагов к башне
	AbilityMassSlow    AbilityKind = "MASS_SLOW"
	AbilityPlague      AbilityKind = "PLAGUE" // Заражение распространяет DOT
)

// SynergyKind enumerates the bonus granted by a tower pair.
type SynergyKind string

const (
	SynergyDamage       SynergyKind = "DAMAGE"
	SynergyFireRate     SynergyKind = "FIRE_RATE"
	SynergySplash       SynergyKind = "SPLASH"
	SynergySlowDuration SynergyKind = "SLOW_DURATION"
	SynergyChain        SynergyKind = "CHAIN"
)
