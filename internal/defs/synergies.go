// internal/defs/synergies.go
package defs

// SynergyDefinition описывает бонус за пару башен, стоящих рядом.
// Дистанция считается по Чебышёву на клетках сетки: max(|dx|, |dy|).
type SynergyDefinition struct {
	Kind       SynergyKind `json:"kind"`
	TowerA     string      `json:"tower_a"`
	TowerB     string      `json:"tower_b"`
	Range      int         `json:"range"` // В клетках
	Multiplier float64     `json:"multiplier"`
}

// PairKey возвращает ключ пары типов башен, не зависящий от порядка.
func PairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "+" + b
}

// SynergyLibrary maps an unordered tower-type pair to its synergy.
var SynergyLibrary = map[string]SynergyDefinition{
	PairKey("TOWER_ARROW", "TOWER_GATLING"): {
		Kind: SynergyFireRate, TowerA: "TOWER_ARROW", TowerB: "TOWER_GATLING",
		Range: 2, Multiplier: 1.25,
	},
	PairKey("TOWER_CANNON", "TOWER_SNIPER"): {
		Kind: SynergyDamage, TowerA: "TOWER_CANNON", TowerB: "TOWER_SNIPER",
		Range: 2, Multiplier: 1.3,
	},
	PairKey("TOWER_FIRE", "TOWER_POISON"): {
		Kind: SynergyDamage, TowerA: "TOWER_FIRE", TowerB: "TOWER_POISON",
		Range: 2, Multiplier: 1.2,
	},
	PairKey("TOWER_FIRE", "TOWER_CANNON"): {
		Kind: SynergySplash, TowerA: "TOWER_FIRE", TowerB: "TOWER_CANNON",
		Range: 2, Multiplier: 1.5,
	},
	PairKey("TOWER_FROST", "TOWER_CHRONO"): {
		Kind: SynergySlowDuration, TowerA: "TOWER_FROST", TowerB: "TOWER_CHRONO",
		Range: 2, Multiplier: 1.5,
	},
	PairKey("TOWER_TESLA", "TOWER_ARCANE"): {
		Kind: SynergyChain, TowerA: "TOWER_TESLA", TowerB: "TOWER_ARCANE",
		Range: 2, Multiplier: 1.25,
	},
}

// SynergyFor ищет синергию для пары типов башен.
func SynergyFor(a, b string) (SynergyDefinition, bool) {
	def, ok := SynergyLibrary[PairKey(a, b)]
	return def, ok
}
