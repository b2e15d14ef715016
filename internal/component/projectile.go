// internal/component/projectile.go
package component

import (
	"go-td-sim/internal/defs"
	"go-td-sim/internal/types"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	TargetID     types.EntityID
	SourceID     types.EntityID // Башня-источник, для бонусов синергий
	Speed        float64
	Damage       float64
	DamageType   defs.DamageType
	IgnoreArmor  bool
	SplashRadius float64
	OnHit        *defs.OnHitDef
}
