// internal/system/combat.go
package system

import (
	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/session"
	"go-td-sim/internal/types"
	"go-td-sim/internal/utils"
)

// CombatSystem управляет таргетингом и расписанием атак башен.
type CombatSystem struct {
	world   *entity.World
	session *session.Context
	rng     *utils.PRNGService
}

func NewCombatSystem(world *entity.World, sess *session.Context, rng *utils.PRNGService) *CombatSystem {
	return &CombatSystem{world: world, session: sess, rng: rng}
}

func (s *CombatSystem) Update(deltaTime float64) {
	s.world.Combats.ForEach(func(id types.EntityID, combat *component.Combat) bool {
		// Оглушённая башня не продвигает перезарядку и не действует.
		if IsStunned(s.world, id) {
			return true
		}
		if combat.FireCooldown > 0 {
			combat.FireCooldown -= deltaTime
			return true
		}

		towerPos, ok := s.world.Transforms.Get(id)
		if !ok {
			return true
		}

		candidates := EnemiesInRange(s.world, towerPos.Pos, combat.Range, true)
		if len(candidates) == 0 {
			return true
		}

		targetID := s.SelectTarget(candidates, combat.Targeting)
		if targetID == types.InvalidEntity {
			return true
		}

		s.fireAt(id, targetID, combat)

		synergy, _ := s.world.Synergies.Get(id)
		effectiveFireRate := combat.FireRate *
			synergy.Multiplier(defs.SynergyFireRate) *
			s.session.FireRateMultiplier()
		if effectiveFireRate <= 0 {
			effectiveFireRate = combat.FireRate
		}
		combat.FireCooldown = 1.0 / effectiveFireRate
		return true
	})
}

// SelectTarget выбирает цель по режиму таргетинга. Кандидаты приходят
// отсортированными по дистанции. При равенстве ключа ранжирования остаётся
// встреченный первым — выбор детерминирован, без пере-рандома.
func (s *CombatSystem) SelectTarget(candidates []Candidate, mode defs.TargetingMode) types.EntityID {
	if len(candidates) == 0 {
		return types.InvalidEntity
	}
	switch mode {
	case defs.TargetClosest:
		return candidates[0].ID
	case defs.TargetRandom:
		return candidates[s.rng.Intn(len(candidates))].ID
	case defs.TargetFirst, defs.TargetLast:
		best := types.InvalidEntity
		bestProgress := 0.0
		for _, c := range candidates {
			path, ok := s.world.Paths.Get(c.ID)
			if !ok {
				continue
			}
			if best == types.InvalidEntity ||
				(mode == defs.TargetFirst && path.Progress > bestProgress) ||
				(mode == defs.TargetLast && path.Progress < bestProgress) {
				best = c.ID
				bestProgress = path.Progress
			}
		}
		if best == types.InvalidEntity {
			best = candidates[0].ID
		}
		return best
	case defs.TargetStrongest, defs.TargetWeakest:
		best := types.InvalidEntity
		bestHealth := 0.0
		for _, c := range candidates {
			health, ok := s.world.Healths.Get(c.ID)
			if !ok {
				continue
			}
			if best == types.InvalidEntity ||
				(mode == defs.TargetStrongest && health.Current > bestHealth) ||
				(mode == defs.TargetWeakest && health.Current < bestHealth) {
				best = c.ID
				bestHealth = health.Current
			}
		}
		if best == types.InvalidEntity {
			best = candidates[0].ID
		}
		return best
	default:
		return candidates[0].ID
	}
}

// fireAt создаёт снаряд. Множители синергии и сессии применяются к базовому
// урону здесь: конвейер TakeDamage про множители не знает.
func (s *CombatSystem) fireAt(towerID, targetID types.EntityID, combat *component.Combat) {
	towerPos, ok := s.world.Transforms.Get(towerID)
	if !ok {
		return
	}
	synergy, _ := s.world.Synergies.Get(towerID)

	damage := combat.Damage *
		synergy.Multiplier(defs.SynergyDamage) *
		s.session.DamageMultiplier()
	splash := combat.SplashRadius * synergy.Multiplier(defs.SynergySplash)

	projID := s.world.NewEntity()
	s.world.Transforms.Add(projID, &component.Transform{Pos: towerPos.Pos})
	s.world.Projectiles.Add(projID, &component.Projectile{
		TargetID:     targetID,
		SourceID:     towerID,
		Speed:        config.ProjectileSpeed,
		Damage:       damage,
		DamageType:   combat.DamageType,
		IgnoreArmor:  combat.IgnoreArmor,
		SplashRadius: splash,
		OnHit:        combat.OnHit,
	})
	s.world.Lifetimes.Add(projID, &component.Lifetime{Remaining: 5.0})
	s.world.Renderables.Add(projID, &component.Renderable{
		Color:  projectileColor(combat.DamageType),
		Radius: config.ProjectileRadius,
	})
}
