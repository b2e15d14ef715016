package session

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDefaultsAreNeutral(t *testing.T) {
	c := NewContext()

	if c.DamageMultiplier() != 1.0 {
		t.Errorf("Expected damage multiplier 1.0, got %f", c.DamageMultiplier())
	}
	if c.FireRateMultiplier() != 1.0 {
		t.Errorf("Expected fire rate multiplier 1.0, got %f", c.FireRateMultiplier())
	}
	if c.GoldMultiplier() != 1.0 {
		t.Errorf("Expected gold multiplier 1.0, got %f", c.GoldMultiplier())
	}
	if c.EnemyHealthMultiplier() != 1.0 {
		t.Errorf("Expected enemy health multiplier 1.0, got %f", c.EnemyHealthMultiplier())
	}
	if c.TowerCostMultiplier(10) != 1.0 {
		t.Errorf("Expected cost multiplier 1.0 without a challenge, got %f", c.TowerCostMultiplier(10))
	}
	if c.StartingGoldBonus() != 0 {
		t.Errorf("Expected no starting gold bonus, got %d", c.StartingGoldBonus())
	}
	if c.StartingHealthOverride() != 0 {
		t.Errorf("Expected no health override, got %d", c.StartingHealthOverride())
	}
}

func TestUnknownIDsIgnored(t *testing.T) {
	c := NewContext()
	c.SetChallenge("CHALLENGE_NONEXISTENT")
	c.SetHero("HERO_NONEXISTENT")

	if c.DamageMultiplier() != 1.0 || c.GoldMultiplier() != 1.0 {
		t.Error("Expected unknown IDs to leave the context neutral")
	}
}

func TestChallengeModifiers(t *testing.T) {
	c := NewContext()
	c.SetChallenge("CHALLENGE_IRONCLAD")

	if !almostEqual(c.EnemyHealthMultiplier(), 1.5) {
		t.Errorf("Expected enemy health x1.5, got %f", c.EnemyHealthMultiplier())
	}
	if !almostEqual(c.GoldMultiplier(), 1.3) {
		t.Errorf("Expected gold x1.3, got %f", c.GoldMultiplier())
	}
}

func TestHeroModifiers(t *testing.T) {
	c := NewContext()
	c.SetHero("HERO_CHRONOMANCER")

	if !almostEqual(c.FireRateMultiplier(), 1.2) {
		t.Errorf("Expected fire rate x1.2, got %f", c.FireRateMultiplier())
	}
	if !almostEqual(c.AbilityCooldownMultiplier(), 0.85) {
		t.Errorf("Expected cooldown x0.85, got %f", c.AbilityCooldownMultiplier())
	}
}

func TestSourcesCompose(t *testing.T) {
	c := NewContext()
	c.SetChallenge("CHALLENGE_GLASS") // урон башен x1.5
	c.SetHero("HERO_WARDEN")          // урон x1.15
	c.SetPrestigeTier(2)              // урон x1.2

	want := 1.5 * 1.15 * 1.2
	if !almostEqual(c.DamageMultiplier(), want) {
		t.Errorf("Expected composed damage multiplier %f, got %f", want, c.DamageMultiplier())
	}
}

func TestPrestigeBonuses(t *testing.T) {
	c := NewContext()
	c.SetPrestigeTier(3)

	if !almostEqual(c.DamageMultiplier(), 1.3) {
		t.Errorf("Expected damage x1.3 at tier 3, got %f", c.DamageMultiplier())
	}
	if !almostEqual(c.GoldMultiplier(), 1.15) {
		t.Errorf("Expected gold x1.15 at tier 3, got %f", c.GoldMultiplier())
	}
	if c.StartingGoldBonus() != 75 {
		t.Errorf("Expected 75 starting gold at tier 3, got %d", c.StartingGoldBonus())
	}

	c.SetPrestigeTier(-5)
	if c.DamageMultiplier() != 1.0 {
		t.Errorf("Expected negative tier clamped to 0, got %f", c.DamageMultiplier())
	}
}

func TestCostInflationRecomputedPerWave(t *testing.T) {
	c := NewContext()
	c.SetChallenge("CHALLENGE_INFLATION") // 0.05 за волну

	if !almostEqual(c.TowerCostMultiplier(0), 1.0) {
		t.Errorf("Expected x1.0 at wave 0, got %f", c.TowerCostMultiplier(0))
	}
	if !almostEqual(c.TowerCostMultiplier(10), 1.5) {
		t.Errorf("Expected x1.5 at wave 10, got %f", c.TowerCostMultiplier(10))
	}
	// Функция от номера волны, а не накопленное состояние: повторный запрос
	// той же волны даёт то же значение.
	if !almostEqual(c.TowerCostMultiplier(10), 1.5) {
		t.Errorf("Expected repeated query to stay x1.5, got %f", c.TowerCostMultiplier(10))
	}
	if !almostEqual(c.TowerCostMultiplier(4), 1.2) {
		t.Errorf("Expected x1.2 at wave 4, got %f", c.TowerCostMultiplier(4))
	}
}

func TestStartingHealthOverride(t *testing.T) {
	c := NewContext()
	c.SetChallenge("CHALLENGE_GLASS")
	if c.StartingHealthOverride() != 25 {
		t.Errorf("Expected starting health override 25, got %d", c.StartingHealthOverride())
	}
}

func TestResetClearsModifiers(t *testing.T) {
	c := NewContext()
	c.SetChallenge("CHALLENGE_IRONCLAD")
	c.SetHero("HERO_ALCHEMIST")
	c.SetPrestigeTier(5)

	c.Reset()

	if c.DamageMultiplier() != 1.0 || c.GoldMultiplier() != 1.0 || c.StartingGoldBonus() != 0 {
		t.Error("Expected all modifiers neutral after Reset")
	}
}
