// internal/system/death.go
package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/session"
	"go-td-sim/internal/types"
)

// DeathSystem превращает состояние "здоровье <= 0" и "дошёл до конца" в
// уничтожение сущностей и события для слушателей. Конвейер урона сам
// сущностей не уничтожает — это единственное место, где враги умирают.
type DeathSystem struct {
	world      *entity.World
	session    *session.Context
	dispatcher *event.Dispatcher
}

func NewDeathSystem(world *entity.World, sess *session.Context, dispatcher *event.Dispatcher) *DeathSystem {
	return &DeathSystem{world: world, session: sess, dispatcher: dispatcher}
}

func (s *DeathSystem) Update(deltaTime float64) {
	s.world.Enemies.ForEach(func(id types.EntityID, enemy *component.Enemy) bool {
		health, hasHealth := s.world.Healths.Get(id)
		if hasHealth && health.IsDead() {
			s.handleDeath(id, enemy)
			return true
		}
		if path, ok := s.world.Paths.Get(id); ok && path.ReachedEnd {
			s.dispatcher.Dispatch(event.Event{
				Type: event.EnemyReachedEnd,
				Data: event.LeakData{ID: id, Damage: enemy.LeakDamage},
			})
			s.world.DestroyEntity(id)
		}
		return true
	})
}

func (s *DeathSystem) handleDeath(id types.EntityID, enemy *component.Enemy) {
	// Расщепление: дети появляются на месте родителя и наследуют его
	// продвижение по маршруту.
	if split, ok := s.world.Splittings.Get(id); ok {
		pos, hasPos := s.world.Transforms.Get(id)
		path, hasPath := s.world.Paths.Get(id)
		if hasPos && hasPath {
			for i := 0; i < split.Count; i++ {
				SpawnEnemyAt(s.world, s.session, split.ChildID,
					path.PathIndex, pos.Pos, path.WaypointIndex, path.Progress)
			}
		}
	}

	s.dispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.KillData{ID: id, Gold: enemy.GoldReward},
	})
	s.world.DestroyEntity(id)
}
