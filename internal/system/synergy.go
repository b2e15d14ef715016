// internal/system/synergy.go
package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/utils"
)

// SynergySystem поддерживает связи между парами башен. Пересчёт только
// событийный — на постройке и сносе, не каждый тик; сами бонусы — чистые
// выборки по списку активных связей.
type SynergySystem struct {
	world *entity.World
}

func NewSynergySystem(world *entity.World, dispatcher *event.Dispatcher) *SynergySystem {
	s := &SynergySystem{world: world}
	dispatcher.Subscribe(event.TowerPlaced, s)
	dispatcher.Subscribe(event.TowerRemoved, s)
	return s
}

func (s *SynergySystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.TowerData)
	if !ok {
		return
	}
	switch e.Type {
	case event.TowerPlaced:
		s.linkNewTower(data.ID)
	case event.TowerRemoved:
		s.unlinkTower(data.ID)
	}
}

// linkNewTower ищет партнёров для только что построенной башни.
// Дистанция клеточная, по Чебышёву: max(|dx|, |dy|) — квадратная
// окрестность, обе оси ограничены независимо.
func (s *SynergySystem) linkNewTower(id types.EntityID) {
	tower, ok := s.world.Towers.Get(id)
	if !ok {
		return
	}
	s.world.Towers.ForEach(func(otherID types.EntityID, other *component.Tower) bool {
		if otherID == id {
			return true
		}
		def, found := defs.SynergyFor(tower.DefID, other.DefID)
		if !found {
			return true
		}
		if utils.Chebyshev(tower.GridX-other.GridX, tower.GridY-other.GridY) > def.Range {
			return true
		}
		s.link(id, otherID, def)
		return true
	})
}

// link создаёт симметричную связь. Повторная линковка уже связанной пары —
// no-op.
func (s *SynergySystem) link(a, b types.EntityID, def defs.SynergyDefinition) {
	synA := s.synergyOf(a)
	synB := s.synergyOf(b)
	if synA.Linked(b) || synB.Linked(a) {
		return
	}
	synA.Active = append(synA.Active, component.ActiveSynergy{
		Kind: def.Kind, Multiplier: def.Multiplier, Partner: b,
	})
	synB.Active = append(synB.Active, component.ActiveSynergy{
		Kind: def.Kind, Multiplier: def.Multiplier, Partner: a,
	})
}

func (s *SynergySystem) synergyOf(id types.EntityID) *component.Synergy {
	if syn, ok := s.world.Synergies.Get(id); ok {
		return syn
	}
	syn := &component.Synergy{}
	s.world.Synergies.Add(id, syn)
	return syn
}

// unlinkTower разрывает связи снесённой башни с обеих сторон.
func (s *SynergySystem) unlinkTower(id types.EntityID) {
	syn, ok := s.world.Synergies.Get(id)
	if !ok {
		return
	}
	for _, active := range syn.Active {
		partner, ok := s.world.Synergies.Get(active.Partner)
		if !ok {
			continue
		}
		kept := partner.Active[:0]
		for _, p := range partner.Active {
			if p.Partner != id {
				kept = append(kept, p)
			}
		}
		partner.Active = kept
		if len(partner.Active) == 0 {
			s.world.Synergies.Remove(active.Partner)
		}
	}
	s.world.Synergies.Remove(id)
}
