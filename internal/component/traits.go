// internal/component/traits.go
package component

// Healer — враг периодически лечит союзников вокруг себя.
type Healer struct {
	Radius   float64
	Amount   float64
	Interval float64
	Timer    float64
}

// Phasing — враг циклически уходит в фазу; в фазе он не может быть целью.
type Phasing struct {
	VisibleTime float64
	PhasedTime  float64
	Timer       float64
	Phased      bool
}

// Splitting — при смерти враг распадается на детей.
type Splitting struct {
	ChildID string
	Count   int
}

// Stealth — враг не может быть целью дальше RevealRadius, пока на нём нет
// метки.
type Stealth struct {
	RevealRadius float64
}

// Spawner — враг периодически призывает миньонов.
type Spawner struct {
	ChildID  string
	Interval float64
	Timer    float64
	Max      int
	Spawned  int
}

// Lifetime — сущность уничтожается по истечении времени.
type Lifetime struct {
	Remaining float64
}
