// internal/system/traits.go
package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/session"
	"go-td-sim/internal/types"
)

// TraitSystem обновляет особые повадки врагов: лечение, фазу, призыв
// миньонов, регенерацию щита и таймеры жизни.
type TraitSystem struct {
	world   *entity.World
	session *session.Context
}

func NewTraitSystem(world *entity.World, sess *session.Context) *TraitSystem {
	return &TraitSystem{world: world, session: sess}
}

func (s *TraitSystem) Update(deltaTime float64) {
	s.updateHealers(deltaTime)
	s.updatePhasings(deltaTime)
	s.updateSpawners(deltaTime)
	s.updateShieldRegens(deltaTime)
	s.updateLifetimes(deltaTime)
}

func (s *TraitSystem) updateHealers(deltaTime float64) {
	s.world.Healers.ForEach(func(id types.EntityID, healer *component.Healer) bool {
		if IsStunned(s.world, id) {
			return true
		}
		healer.Timer += deltaTime
		if healer.Timer < healer.Interval {
			return true
		}
		healer.Timer = 0

		pos, ok := s.world.Transforms.Get(id)
		if !ok {
			return true
		}
		for _, c := range EnemiesInRange(s.world, pos.Pos, healer.Radius, false) {
			if c.ID == id {
				continue
			}
			if health, ok := s.world.Healths.Get(c.ID); ok && !health.IsDead() {
				health.Current += healer.Amount
				if health.Current > health.Max {
					health.Current = health.Max
				}
			}
		}
		return true
	})
}

func (s *TraitSystem) updatePhasings(deltaTime float64) {
	s.world.Phasings.ForEach(func(id types.EntityID, ph *component.Phasing) bool {
		ph.Timer += deltaTime
		if ph.Phased {
			if ph.Timer >= ph.PhasedTime {
				ph.Timer = 0
				ph.Phased = false
			}
		} else if ph.Timer >= ph.VisibleTime {
			ph.Timer = 0
			ph.Phased = true
		}
		return true
	})
}

func (s *TraitSystem) updateSpawners(deltaTime float64) {
	s.world.Spawners.ForEach(func(id types.EntityID, sp *component.Spawner) bool {
		if IsStunned(s.world, id) || sp.Spawned >= sp.Max {
			return true
		}
		sp.Timer += deltaTime
		if sp.Timer < sp.Interval {
			return true
		}
		sp.Timer = 0

		pos, hasPos := s.world.Transforms.Get(id)
		path, hasPath := s.world.Paths.Get(id)
		if !hasPos || !hasPath {
			return true
		}
		// Миньон появляется в точке носителя и продолжает его маршрут.
		SpawnEnemyAt(s.world, s.session, sp.ChildID, path.PathIndex, pos.Pos, path.WaypointIndex, path.Progress)
		sp.Spawned++
		return true
	})
}

func (s *TraitSystem) updateShieldRegens(deltaTime float64) {
	s.world.ShieldRegens.ForEach(func(id types.EntityID, regen *component.ShieldRegen) bool {
		regen.SinceHit += deltaTime
		if regen.SinceHit < regen.Delay {
			return true
		}
		if health, ok := s.world.Healths.Get(id); ok && health.Shield < health.MaxShield {
			health.Shield += regen.PerSecond * deltaTime
			if health.Shield > health.MaxShield {
				health.Shield = health.MaxShield
			}
		}
		return true
	})
}

func (s *TraitSystem) updateLifetimes(deltaTime float64) {
	s.world.Lifetimes.ForEach(func(id types.EntityID, lt *component.Lifetime) bool {
		lt.Remaining -= deltaTime
		if lt.Remaining <= 0 {
			s.world.DestroyEntity(id)
		}
		return true
	})
}
