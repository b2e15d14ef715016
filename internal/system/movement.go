// internal/system/movement.go
package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/types"
)

// MovementSystem ведёт сущности по вейпоинтам их маршрута.
// Достижение конца маршрута здесь только помечается; потерю здоровья игрока
// и уничтожение сущности обрабатывает слой волны.
type MovementSystem struct {
	world *entity.World
	level *defs.LevelDefinition
}

func NewMovementSystem(world *entity.World, level *defs.LevelDefinition) *MovementSystem {
	return &MovementSystem{world: world, level: level}
}

func (s *MovementSystem) Update(deltaTime float64) {
	s.world.Paths.ForEach(func(id types.EntityID, path *component.Path) bool {
		if path.ReachedEnd {
			return true
		}
		pos, hasPos := s.world.Transforms.Get(id)
		vel, hasVel := s.world.Velocities.Get(id)
		if !hasPos || !hasVel {
			return true
		}
		if path.PathIndex < 0 || path.PathIndex >= len(s.level.Paths) {
			return true
		}
		waypoints := s.level.Paths[path.PathIndex]
		if path.WaypointIndex >= len(waypoints) {
			path.ReachedEnd = true
			return true
		}

		// Оглушение останавливает полностью, замедление — пропорционально:
		// множитель скорости равен 1 - slowPercent, без нижнего предела.
		if IsStunned(s.world, id) {
			return true
		}
		remaining := vel.Speed * SlowMultiplier(s.world, id) * deltaTime
		for remaining > 0 && path.WaypointIndex < len(waypoints) {
			target := waypoints[path.WaypointIndex]
			delta := target.Sub(pos.Pos)
			dist := delta.Len()

			if dist <= remaining {
				pos.Pos = target
				path.Progress += dist
				remaining -= dist
				path.WaypointIndex++
				continue
			}
			pos.Pos = pos.Pos.Add(delta.Mul(remaining / dist))
			path.Progress += remaining
			remaining = 0
		}

		if path.WaypointIndex >= len(waypoints) {
			path.ReachedEnd = true
		}
		return true
	})
}
