// internal/component/ability.go
package component

import "go-td-sim/internal/defs"

// AbilityState — фаза способности башни.
type AbilityState int

const (
	AbilityReady AbilityState = iota
	AbilityActive
	AbilityCooldown
)

// Ability — способность башни с машиной состояний
// READY -> ACTIVE (для длительных) -> COOLDOWN -> READY.
// Мгновенные способности из READY уходят сразу в COOLDOWN.
type Ability struct {
	Def               *defs.AbilityDef
	State             AbilityState
	CooldownRemaining float64
	DurationRemaining float64
}
