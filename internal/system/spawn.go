// internal/system/spawn.go
package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/session"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/vmath"
)

// SpawnEnemy создаёт врага в начале маршрута. Неизвестный ID врага
// подменяется запасным внутри ResolveEnemy.
func SpawnEnemy(w *entity.World, sess *session.Context, level *defs.LevelDefinition, defID string, pathIndex int) types.EntityID {
	if pathIndex < 0 || pathIndex >= len(level.Paths) {
		pathIndex = 0
	}
	start := level.Paths[pathIndex][0]
	return SpawnEnemyAt(w, sess, defID, pathIndex, start, 1, 0)
}

// SpawnEnemyAt создаёт врага в произвольной точке маршрута — так появляются
// дети расщепления и призванные миньоны.
func SpawnEnemyAt(w *entity.World, sess *session.Context, defID string, pathIndex int, at vmath.Vec2, waypointIndex int, progress float64) types.EntityID {
	def := defs.ResolveEnemy(defID)

	id := w.NewEntity()
	w.Transforms.Add(id, &component.Transform{Pos: at})
	w.Velocities.Add(id, &component.Velocity{Speed: def.Speed * sess.EnemySpeedMultiplier()})
	w.Paths.Add(id, &component.Path{
		PathIndex:     pathIndex,
		WaypointIndex: waypointIndex,
		Progress:      progress,
	})

	health := def.Health * sess.EnemyHealthMultiplier()
	w.Healths.Add(id, &component.Health{
		Current:   health,
		Max:       health,
		Armor:     def.Armor,
		Shield:    def.Shield,
		MaxShield: def.Shield,
	})
	w.Enemies.Add(id, &component.Enemy{
		DefID:      def.ID,
		GoldReward: def.GoldReward,
		LeakDamage: def.LeakDamage,
	})
	if len(def.Resistances) > 0 {
		w.Resistances.Add(id, &component.Resistances{Values: def.Resistances})
	}
	w.Renderables.Add(id, &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    def.Visuals.Radius,
		HasStroke: def.Visuals.HasStroke,
	})

	if t := def.Traits; t != nil {
		if t.Healer != nil {
			w.Healers.Add(id, &component.Healer{
				Radius: t.Healer.Radius, Amount: t.Healer.Amount, Interval: t.Healer.Interval,
			})
		}
		if t.Phasing != nil {
			w.Phasings.Add(id, &component.Phasing{
				VisibleTime: t.Phasing.VisibleTime, PhasedTime: t.Phasing.PhasedTime,
			})
		}
		if t.Splitting != nil {
			w.Splittings.Add(id, &component.Splitting{
				ChildID: t.Splitting.ChildID, Count: t.Splitting.Count,
			})
		}
		if t.Stealth != nil {
			w.Stealths.Add(id, &component.Stealth{RevealRadius: t.Stealth.RevealRadius})
		}
		if t.Spawner != nil {
			w.Spawners.Add(id, &component.Spawner{
				ChildID: t.Spawner.ChildID, Interval: t.Spawner.Interval, Max: t.Spawner.Max,
			})
		}
		if t.ShieldRegen != nil {
			w.ShieldRegens.Add(id, &component.ShieldRegen{
				PerSecond: t.ShieldRegen.PerSecond, Delay: t.ShieldRegen.Delay,
			})
		}
	}
	return id
}
