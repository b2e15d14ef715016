// internal/component/synergy.go
package component

import (
	"go-td-sim/internal/defs"
	"go-td-sim/internal/types"
)

// ActiveSynergy — одна действующая связь с башней-партнёром.
type ActiveSynergy struct {
	Kind       defs.SynergyKind
	Multiplier float64
	Partner    types.EntityID
}

// Synergy — список активных связей башни. Отношение симметрично: если A
// связана с B, у B есть зеркальная запись.
type Synergy struct {
	Active []ActiveSynergy
}

// Linked сообщает, есть ли уже связь с партнёром.
func (s *Synergy) Linked(partner types.EntityID) bool {
	for _, a := range s.Active {
		if a.Partner == partner {
			return true
		}
	}
	return false
}

// Multiplier возвращает произведение множителей связей данного вида.
func (s *Synergy) Multiplier(kind defs.SynergyKind) float64 {
	m := 1.0
	if s == nil {
		return m
	}
	for _, a := range s.Active {
		if a.Kind == kind {
			m *= a.Multiplier
		}
	}
	return m
}
