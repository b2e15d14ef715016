// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1000
	ScreenHeight = 760

	// Фиксированный шаг симуляции; рендер может идти с другой частотой.
	TickRate     = 60.0
	FixedDelta   = 1.0 / TickRate
	MaxDeltaTime = 0.06

	// Кривая брони: reduction = armor / (armor + ArmorPivot).
	// Асимптотически приближается к 100%, никогда их не достигая.
	ArmorPivot = 100.0

	CellSize = 40.0 // Размер клетки сетки башен в пикселях

	ProjectileSpeed     = 340.0
	ProjectileRadius    = 4.0
	ProjectileHitRadius = 10.0
	SplashDamageFactor  = 0.5 // Доля урона по соседям при сплэше

	// Короткий период, на который длительные способности обновляют свои
	// эффекты каждый тик.
	PulseEffectDuration = 0.25

	InterWaveDelay = 4.0 // Пауза перед автостартом следующей волны
	ScorePerKill   = 10
	ScorePerWave   = 100
	FinalWave      = 50 // Победа после зачистки этой волны
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	PathColor        = color.RGBA{70, 100, 120, 220}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	HUDTextColor     = color.RGBA{240, 240, 240, 255}
	ShieldColor      = color.RGBA{80, 160, 255, 160}
	StunColor        = color.RGBA{255, 255, 120, 200}
)
