// internal/session/modifiers.go
package session

import "go-td-sim/internal/defs"

// Context — модификаторы одной игровой сессии: испытание, герой и престиж.
// Передаётся в системы явно, а не через глобальное состояние, поэтому
// несколько симуляций (например, в тестах) не мешают друг другу.
// Все геттеры мультипликативны и возвращают 1.0 для неактивного источника;
// единственный аддитивный бонус — стартовое золото.
type Context struct {
	challenge    *defs.ChallengeDefinition
	hero         *defs.HeroDefinition
	prestigeTier int
}

func NewContext() *Context {
	return &Context{}
}

// SetChallenge активирует испытание. Неизвестный ID просто игнорируется.
func (c *Context) SetChallenge(id string) {
	if def, ok := defs.ChallengeLibrary[id]; ok {
		c.challenge = &def
	}
}

// SetHero выбирает героя сессии.
func (c *Context) SetHero(id string) {
	if def, ok := defs.HeroLibrary[id]; ok {
		c.hero = &def
	}
}

// SetPrestigeTier задаёт уровень престижа.
func (c *Context) SetPrestigeTier(tier int) {
	if tier < 0 {
		tier = 0
	}
	c.prestigeTier = tier
}

// Reset очищает все модификаторы в конце сессии.
func (c *Context) Reset() {
	c.challenge = nil
	c.hero = nil
	c.prestigeTier = 0
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1.0
	}
	return v
}

// DamageMultiplier — итоговый множитель урона башен.
func (c *Context) DamageMultiplier() float64 {
	m := 1.0
	if c.challenge != nil {
		m *= nonZero(c.challenge.TowerDamageMultiplier)
	}
	if c.hero != nil {
		m *= nonZero(c.hero.DamageMultiplier)
	}
	m *= 1.0 + 0.1*float64(c.prestigeTier)
	return m
}

// FireRateMultiplier — итоговый множитель скорострельности.
func (c *Context) FireRateMultiplier() float64 {
	m := 1.0
	if c.hero != nil {
		m *= nonZero(c.hero.FireRateMultiplier)
	}
	return m
}

// GoldMultiplier — итоговый множитель наград золотом.
func (c *Context) GoldMultiplier() float64 {
	m := 1.0
	if c.challenge != nil {
		m *= nonZero(c.challenge.GoldMultiplier)
	}
	if c.hero != nil {
		m *= nonZero(c.hero.GoldMultiplier)
	}
	m *= 1.0 + 0.05*float64(c.prestigeTier)
	return m
}

// EnemyHealthMultiplier — множитель здоровья врагов при спавне.
func (c *Context) EnemyHealthMultiplier() float64 {
	if c.challenge != nil {
		return nonZero(c.challenge.EnemyHealthMultiplier)
	}
	return 1.0
}

// EnemySpeedMultiplier — множитель скорости врагов при спавне.
func (c *Context) EnemySpeedMultiplier() float64 {
	if c.challenge != nil {
		return nonZero(c.challenge.EnemySpeedMultiplier)
	}
	return 1.0
}

// AbilityCooldownMultiplier — множитель перезарядки способностей.
func (c *Context) AbilityCooldownMultiplier() float64 {
	if c.hero != nil {
		return nonZero(c.hero.AbilityCooldownMultiplier)
	}
	return 1.0
}

// TowerCostMultiplier — множитель стоимости башен. Инфляция испытания —
// функция от текущего номера волны, пересчитывается при каждом запросе и
// не накапливается.
func (c *Context) TowerCostMultiplier(waveNumber int) float64 {
	if c.challenge == nil || c.challenge.CostInflationPerWave == 0 {
		return 1.0
	}
	if waveNumber < 0 {
		waveNumber = 0
	}
	return 1.0 + c.challenge.CostInflationPerWave*float64(waveNumber)
}

// StartingGoldBonus — аддитивный бонус к стартовому золоту.
func (c *Context) StartingGoldBonus() int {
	bonus := 0
	if c.hero != nil {
		bonus += c.hero.StartingGoldBonus
	}
	bonus += 25 * c.prestigeTier
	return bonus
}

// StartingHealthOverride — стартовое здоровье испытания; 0 — стандартное.
func (c *Context) StartingHealthOverride() int {
	if c.challenge != nil {
		return c.challenge.StartingHealth
	}
	return 0
}
