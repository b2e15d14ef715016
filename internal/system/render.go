// internal/system/render.go
package system

import (
	"fmt"

	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	world    *entity.World
	level    *defs.LevelDefinition
	waves    *WaveSystem
	fontFace font.Face
}

func NewRenderSystem(world *entity.World, level *defs.LevelDefinition, waves *WaveSystem) *RenderSystem {
	return &RenderSystem{
		world:    world,
		level:    level,
		waves:    waves,
		fontFace: basicfont.Face7x13,
	}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.drawPaths(screen)
	s.drawEntities(screen)
	s.drawHUD(screen)
}

func (s *RenderSystem) drawPaths(screen *ebiten.Image) {
	for _, path := range s.level.Paths {
		for i := 1; i < len(path); i++ {
			a, b := path[i-1], path[i]
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 6.0, config.PathColor, true)
		}
	}
}

func (s *RenderSystem) drawEntities(screen *ebiten.Image) {
	s.world.Renderables.ForEach(func(id types.EntityID, render *component.Renderable) bool {
		pos, ok := s.world.Transforms.Get(id)
		if !ok {
			return true
		}
		x, y := float32(pos.Pos.X), float32(pos.Pos.Y)
		if render.HasStroke {
			vector.DrawFilledCircle(screen, x, y, float32(render.Radius)+2, config.TowerStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, float32(render.Radius), render.Color, true)

		// Поверх тела — кольцо щита и метка оглушения.
		if health, ok := s.world.Healths.Get(id); ok && health.Shield > 0 {
			vector.StrokeCircle(screen, x, y, float32(render.Radius)+4, 2.0, config.ShieldColor, true)
		}
		if IsStunned(s.world, id) {
			vector.DrawFilledCircle(screen, x, y-float32(render.Radius)-6, 3, config.StunColor, true)
		}
		return true
	})
}

func (s *RenderSystem) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("Wave %d [%s]  Gold %d  HP %d  Score %d",
		s.waves.CurrentWave(), s.waves.State(), s.waves.Gold(),
		s.waves.PlayerHealth(), s.waves.Score())
	text.Draw(screen, hud, s.fontFace, 12, 20, config.HUDTextColor)

	if s.waves.IsGameOver() {
		text.Draw(screen, "GAME OVER", s.fontFace, config.ScreenWidth/2-35, config.ScreenHeight/2, config.HUDTextColor)
	} else if s.waves.IsVictory() {
		text.Draw(screen, "VICTORY", s.fontFace, config.ScreenWidth/2-28, config.ScreenHeight/2, config.HUDTextColor)
	}
}
