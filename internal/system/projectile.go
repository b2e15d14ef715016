// internal/system/projectile.go
package system

import (
	"image/color"

	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/types"
	"go-td-sim/pkg/vmath"
)

// ProjectileSystem управляет движением снарядов и нанесением урона.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	s.world.Projectiles.ForEach(func(id types.EntityID, proj *component.Projectile) bool {
		pos, ok := s.world.Transforms.Get(id)
		if !ok {
			s.world.DestroyEntity(id)
			return true
		}

		// Цель пропала — снаряд снимается, долетать некуда.
		targetPos, ok := s.world.Transforms.Get(proj.TargetID)
		if !ok || !s.world.Alive(proj.TargetID) {
			s.world.DestroyEntity(id)
			return true
		}

		delta := targetPos.Pos.Sub(pos.Pos)
		dist := delta.Len()
		step := proj.Speed * deltaTime

		if dist <= step || dist <= config.ProjectileHitRadius {
			s.hitTarget(id, proj, targetPos.Pos)
			return true
		}
		pos.Pos = pos.Pos.Add(delta.Mul(step / dist))
		return true
	})
}

func (s *ProjectileSystem) hitTarget(projectileID types.EntityID, proj *component.Projectile, at vmath.Vec2) {
	TakeDamage(s.world, proj.TargetID, proj.Damage, proj.DamageType, proj.IgnoreArmor)
	s.applyOnHit(proj, proj.TargetID)

	// Сплэш задевает соседей основной цели ослабленным уроном.
	if proj.SplashRadius > 0 {
		for _, c := range EnemiesInRange(s.world, at, proj.SplashRadius, false) {
			if c.ID == proj.TargetID {
				continue
			}
			TakeDamage(s.world, c.ID, proj.Damage*config.SplashDamageFactor, proj.DamageType, proj.IgnoreArmor)
		}
	}

	s.world.DestroyEntity(projectileID)
}

// applyOnHit накладывает статусные эффекты попадания. Длительность
// замедления масштабируется синергией башни-источника.
func (s *ProjectileSystem) applyOnHit(proj *component.Projectile, targetID types.EntityID) {
	onHit := proj.OnHit
	if onHit == nil {
		return
	}
	slowDurationMult := 1.0
	if synergy, ok := s.world.Synergies.Get(proj.SourceID); ok {
		slowDurationMult = synergy.Multiplier(defs.SynergySlowDuration)
	}
	if onHit.Slow != nil {
		ApplySlow(s.world, targetID, onHit.Slow.Percent, onHit.Slow.Duration*slowDurationMult)
	}
	if onHit.Dot != nil {
		ApplyDot(s.world, targetID, onHit.Dot.Type, onHit.Dot.DamagePerSecond, onHit.Dot.Duration)
	}
	if onHit.ArmorBreak != nil {
		ApplyArmorBreak(s.world, targetID, onHit.ArmorBreak.Reduction, onHit.ArmorBreak.Duration)
	}
	if onHit.Mark != nil {
		ApplyMark(s.world, targetID, onHit.Mark.Amplification, onHit.Mark.Duration)
	}
	if onHit.Stun != nil {
		ApplyStun(s.world, targetID, onHit.Stun.Duration)
	}
}

func projectileColor(damageType defs.DamageType) color.RGBA {
	switch damageType {
	case defs.DamagePhysical:
		return color.RGBA{230, 230, 140, 255}
	case defs.DamageFire:
		return color.RGBA{240, 120, 40, 255}
	case defs.DamagePoison:
		return color.RGBA{120, 220, 80, 255}
	case defs.DamageFrost:
		return color.RGBA{130, 200, 250, 255}
	case defs.DamageArcane:
		return color.RGBA{190, 120, 250, 255}
	default:
		return color.RGBA{255, 255, 255, 255}
	}
}
