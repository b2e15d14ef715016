// internal/system/ability.go
package system

import (
	"math"

	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/session"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/vmath"
)

// AbilitySystem ведёт машину состояний способностей башен:
// READY -> ACTIVE (для длительных) -> COOLDOWN -> READY.
// Способность срабатывает сама, как только готова и есть подходящая цель.
type AbilitySystem struct {
	world      *entity.World
	session    *session.Context
	dispatcher *event.Dispatcher
}

func NewAbilitySystem(world *entity.World, sess *session.Context, dispatcher *event.Dispatcher) *AbilitySystem {
	return &AbilitySystem{world: world, session: sess, dispatcher: dispatcher}
}

func (s *AbilitySystem) Update(deltaTime float64) {
	s.world.Abilities.ForEach(func(id types.EntityID, ab *component.Ability) bool {
		if ab.Def == nil {
			return true
		}
		// Оглушение башни замораживает и перезарядку, и активную фазу.
		if IsStunned(s.world, id) {
			return true
		}
		switch ab.State {
		case component.AbilityCooldown:
			ab.CooldownRemaining -= deltaTime
			if ab.CooldownRemaining <= 0 {
				ab.State = component.AbilityReady
			}
		case component.AbilityReady:
			s.tryTrigger(id, ab)
		case component.AbilityActive:
			s.tickActive(id, ab, deltaTime)
			ab.DurationRemaining -= deltaTime
			if ab.DurationRemaining <= 0 {
				s.enterCooldown(ab)
			}
		}
		return true
	})
}

func (s *AbilitySystem) enterCooldown(ab *component.Ability) {
	ab.State = component.AbilityCooldown
	ab.CooldownRemaining = ab.Def.Cooldown * s.session.AbilityCooldownMultiplier()
}

// abilityDamage применяет множители сессии и синергий к базовому урону
// способности до конвейера урона.
func (s *AbilitySystem) abilityDamage(towerID types.EntityID, base float64) float64 {
	synergy, _ := s.world.Synergies.Get(towerID)
	return base * synergy.Multiplier(defs.SynergyDamage) * s.session.DamageMultiplier()
}

func (s *AbilitySystem) tryTrigger(id types.EntityID, ab *component.Ability) {
	pos, ok := s.world.Transforms.Get(id)
	if !ok {
		return
	}

	triggered := false
	switch ab.Def.Kind {
	case defs.AbilityCarpetBomb:
		triggered = s.carpetBomb(id, ab.Def, pos.Pos)
	case defs.AbilityChainStorm:
		triggered = s.chainStorm(id, ab.Def, pos.Pos)
	case defs.AbilityMultiShot:
		triggered = s.multiShot(id, ab.Def, pos.Pos)
	case defs.AbilityMassFreeze, defs.AbilityMassSlow, defs.AbilitySingularity, defs.AbilityPlague:
		// Длительные способности стартуют при наличии врага в радиусе.
		if len(EnemiesInRange(s.world, pos.Pos, ab.Def.Radius, false)) > 0 {
			ab.State = component.AbilityActive
			ab.DurationRemaining = ab.Def.Duration
			s.dispatcher.Dispatch(event.Event{
				Type: event.AbilityTriggered,
				Data: event.AbilityData{TowerID: id, Kind: ab.Def.Kind},
			})
		}
		return
	}

	if triggered {
		s.dispatcher.Dispatch(event.Event{
			Type: event.AbilityTriggered,
			Data: event.AbilityData{TowerID: id, Kind: ab.Def.Kind},
		})
		s.enterCooldown(ab)
	}
}

// carpetBomb выбирает точку по ближайшему врагу в радиусе и кладёт серию
// взрывов по фиксированным смещениям вокруг неё. Каждый взрыв независимо
// ищет врагов в своём радиусе: перекрытия бьют повторно, без дедупликации.
func (s *AbilitySystem) carpetBomb(id types.EntityID, def *defs.AbilityDef, from vmath.Vec2) bool {
	candidates := EnemiesInRange(s.world, from, def.Radius, false)
	if len(candidates) == 0 {
		return false
	}
	centerPos, ok := s.world.Transforms.Get(candidates[0].ID)
	if !ok {
		return false
	}
	center := centerPos.Pos

	damage := s.abilityDamage(id, def.Damage)
	for i := 0; i < def.Count; i++ {
		point := center
		if i > 0 {
			angle := 2 * math.Pi * float64(i-1) / float64(def.Count-1)
			point = center.Add(vmath.Vec2{
				X: math.Cos(angle) * def.ExplosionRadius,
				Y: math.Sin(angle) * def.ExplosionRadius,
			})
		}
		s.dispatcher.Dispatch(event.Event{
			Type: event.ExplosionAt,
			Data: event.ExplosionData{Pos: point, Radius: def.ExplosionRadius, DamageType: defs.DamagePhysical},
		})
		for _, c := range EnemiesInRange(s.world, point, def.ExplosionRadius, false) {
			TakeDamage(s.world, c.ID, damage, defs.DamagePhysical, false)
		}
	}
	return true
}

// chainStorm бьёт каждого живого врага мира фиксированным уроном, без
// ограничения радиусом. Порядок обхода определяет только визуальную цепь.
func (s *AbilitySystem) chainStorm(id types.EntityID, def *defs.AbilityDef, from vmath.Vec2) bool {
	if s.world.Enemies.Len() == 0 {
		return false
	}
	synergy, _ := s.world.Synergies.Get(id)
	damage := s.abilityDamage(id, def.Damage) * synergy.Multiplier(defs.SynergyChain)

	previous := from
	s.world.Enemies.ForEach(func(enemyID types.EntityID, _ *component.Enemy) bool {
		if pos, ok := s.world.Transforms.Get(enemyID); ok {
			s.dispatcher.Dispatch(event.Event{
				Type: event.ChainLink,
				Data: event.ChainLinkData{From: previous, To: pos.Pos},
			})
			previous = pos.Pos
		}
		TakeDamage(s.world, enemyID, damage, defs.DamageArcane, false)
		return true
	})
	return true
}

// multiShot выпускает залп снарядов по нескольким ближайшим целям.
func (s *AbilitySystem) multiShot(id types.EntityID, def *defs.AbilityDef, from vmath.Vec2) bool {
	radius := def.Radius
	damageType := defs.DamagePhysical
	if combat, ok := s.world.Combats.Get(id); ok {
		if radius == 0 {
			radius = combat.Range
		}
		damageType = combat.DamageType
	}
	candidates := EnemiesInRange(s.world, from, radius, true)
	if len(candidates) == 0 {
		return false
	}

	damage := s.abilityDamage(id, def.Damage)
	count := def.Count
	if count > len(candidates) {
		count = len(candidates)
	}
	for i := 0; i < count; i++ {
		projID := s.world.NewEntity()
		s.world.Transforms.Add(projID, &component.Transform{Pos: from})
		s.world.Projectiles.Add(projID, &component.Projectile{
			TargetID:   candidates[i].ID,
			SourceID:   id,
			Speed:      config.ProjectileSpeed,
			Damage:     damage,
			DamageType: damageType,
		})
		s.world.Lifetimes.Add(projID, &component.Lifetime{Remaining: 5.0})
		s.world.Renderables.Add(projID, &component.Renderable{
			Color:  projectileColor(damageType),
			Radius: config.ProjectileRadius,
		})
	}
	return true
}

func (s *AbilitySystem) tickActive(id types.EntityID, ab *component.Ability, deltaTime float64) {
	pos, ok := s.world.Transforms.Get(id)
	if !ok {
		return
	}
	def := ab.Def

	switch def.Kind {
	case defs.AbilityMassFreeze:
		// Пока фаза активна, оглушение каждый тик обновляется коротким
		// импульсом и спадает само после завершения.
		for _, c := range EnemiesInRange(s.world, pos.Pos, def.Radius, false) {
			ApplyStun(s.world, c.ID, config.PulseEffectDuration)
		}
	case defs.AbilityMassSlow:
		for _, c := range EnemiesInRange(s.world, pos.Pos, def.Radius, false) {
			ApplySlow(s.world, c.ID, def.SlowPercent, config.PulseEffectDuration)
		}
	case defs.AbilitySingularity:
		s.pullEnemies(pos.Pos, def, deltaTime)
	case defs.AbilityPlague:
		s.spreadPlague(pos.Pos, def)
	}
}

// pullEnemies стягивает врагов к башне с фиксированной скоростью, не давая
// им пересечь минимальную дистанцию — иначе враги осциллировали бы в центре.
func (s *AbilitySystem) pullEnemies(center vmath.Vec2, def *defs.AbilityDef, deltaTime float64) {
	for _, c := range EnemiesInRange(s.world, center, def.Radius, false) {
		pos, ok := s.world.Transforms.Get(c.ID)
		if !ok {
			continue
		}
		delta := pos.Pos.Sub(center)
		dist := delta.Len()
		if dist <= def.MinDistance {
			continue
		}
		pull := def.PullSpeed * deltaTime
		if dist-pull < def.MinDistance {
			pull = dist - def.MinDistance
		}
		pos.Pos = pos.Pos.Sub(delta.Mul(pull / dist))
	}
}

// spreadPlague — одношаговое заражение за тик: от врагов-носителей DOT
// нужного типа к чистым врагам в SpreadRadius, ослабленной копией. Скорость
// распространения ограничена частотой тиков, это не заливка всего радиуса.
func (s *AbilitySystem) spreadPlague(center vmath.Vec2, def *defs.AbilityDef) {
	inRange := EnemiesInRange(s.world, center, def.Radius, false)

	var carriers []vmath.Vec2
	for _, c := range inRange {
		if se, ok := s.world.Statuses.Get(c.ID); ok && se.DotOf(def.DamageType) != nil {
			if pos, ok := s.world.Transforms.Get(c.ID); ok {
				carriers = append(carriers, pos.Pos)
			}
		}
	}
	if len(carriers) == 0 {
		return
	}

	spreadSq := def.SpreadRadius * def.SpreadRadius
	for _, c := range inRange {
		if se, ok := s.world.Statuses.Get(c.ID); ok && se.DotOf(def.DamageType) != nil {
			continue
		}
		pos, ok := s.world.Transforms.Get(c.ID)
		if !ok {
			continue
		}
		for _, carrier := range carriers {
			if pos.Pos.DistSq(carrier) <= spreadSq {
				ApplyDot(s.world, c.ID, def.DamageType, def.DotPerSecond, def.DotDuration)
				break
			}
		}
	}
}
