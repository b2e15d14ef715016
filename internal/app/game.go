// internal/app/game.go
package app

import (
	"fmt"

	"go-td-sim/internal/component"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/session"
	"go-td-sim/internal/system"
	"go-td-sim/internal/types"
	"go-td-sim/internal/utils"
	"go-td-sim/pkg/vmath"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game собирает мир, системы и ресурсы игрока в один работающий цикл
// симуляции. Порядок систем в Update фиксирован: движение -> стрельба ->
// снаряды -> статусы -> способности -> повадки -> смерть -> волны.
// Между фазами мир сбрасывает отложенные уничтожения, чтобы ни одна
// система не увидела наполовину удалённую сущность.
type Game struct {
	World      *entity.World
	Session    *session.Context
	Dispatcher *event.Dispatcher
	Level      *defs.LevelDefinition
	Rng        *utils.PRNGService

	movement    *system.MovementSystem
	combat      *system.CombatSystem
	projectiles *system.ProjectileSystem
	statuses    *system.StatusEffectSystem
	abilities   *system.AbilitySystem
	traits      *system.TraitSystem
	death       *system.DeathSystem
	synergies   *system.SynergySystem
	Waves       *system.WaveSystem
	render      *system.RenderSystem

	// Занятость клеток сетки башнями.
	towersByCell map[[2]int]types.EntityID

	interWaveTimer float64
	autoWaves      bool
}

func NewGame(levelID string, sess *session.Context, seed int64) *Game {
	def := defs.ResolveLevel(levelID)
	level := &def
	world := entity.NewWorld()
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		World:        world,
		Session:      sess,
		Dispatcher:   dispatcher,
		Level:        level,
		Rng:          rng,
		towersByCell: make(map[[2]int]types.EntityID),
		autoWaves:    true,
	}
	g.movement = system.NewMovementSystem(world, level)
	g.combat = system.NewCombatSystem(world, sess, rng)
	g.projectiles = system.NewProjectileSystem(world)
	g.statuses = system.NewStatusEffectSystem(world)
	g.abilities = system.NewAbilitySystem(world, sess, dispatcher)
	g.traits = system.NewTraitSystem(world, sess)
	g.death = system.NewDeathSystem(world, sess, dispatcher)
	g.synergies = system.NewSynergySystem(world, dispatcher)
	g.Waves = system.NewWaveSystem(world, sess, dispatcher, level)
	g.render = system.NewRenderSystem(world, level, g.Waves)
	return g
}

// SetAutoWaves выключает автостарт волн — волны тогда запускаются только
// явным StartWave.
func (g *Game) SetAutoWaves(enabled bool) { g.autoWaves = enabled }

func (g *Game) Update(deltaTime float64) {
	if g.Waves.IsGameOver() {
		return
	}
	g.World.GameTime += deltaTime

	g.movement.Update(deltaTime)
	g.World.Flush()
	g.combat.Update(deltaTime)
	g.World.Flush()
	g.projectiles.Update(deltaTime)
	g.World.Flush()
	g.statuses.Update(deltaTime)
	g.World.Flush()
	g.abilities.Update(deltaTime)
	g.World.Flush()
	g.traits.Update(deltaTime)
	g.World.Flush()
	g.death.Update(deltaTime)
	g.World.Flush()
	g.Waves.Update(deltaTime)
	g.World.Flush()

	g.tickAutoWaves(deltaTime)
}

func (g *Game) tickAutoWaves(deltaTime float64) {
	if !g.autoWaves || g.Waves.IsVictory() {
		return
	}
	state := g.Waves.State()
	if state != system.WaveWaiting && state != system.WaveCompleted {
		g.interWaveTimer = 0
		return
	}
	g.interWaveTimer += deltaTime
	if g.interWaveTimer >= config.InterWaveDelay {
		g.interWaveTimer = 0
		g.Waves.StartWave()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(screen)
}

// PlaceTower строит башню в клетке сетки. Цена растёт с номером волны по
// модификаторам сессии. Ошибка — неизвестный тип, занятая клетка или
// нехватка золота.
func (g *Game) PlaceTower(defID string, gridX, gridY int) (types.EntityID, error) {
	def, ok := defs.TowerLibrary[defID]
	if !ok {
		return types.InvalidEntity, fmt.Errorf("place tower: unknown tower %q", defID)
	}
	cell := [2]int{gridX, gridY}
	if _, occupied := g.towersByCell[cell]; occupied {
		return types.InvalidEntity, fmt.Errorf("place tower: cell (%d,%d) occupied", gridX, gridY)
	}
	cost := towerCost(&def, g.Session, g.Waves.CurrentWave())
	if !g.Waves.SpendGold(cost) {
		return types.InvalidEntity, fmt.Errorf("place tower: need %d gold, have %d", cost, g.Waves.Gold())
	}

	id := g.World.NewEntity()
	g.World.Transforms.Add(id, &component.Transform{Pos: vmath.Vec2{
		X: (float64(gridX) + 0.5) * config.CellSize,
		Y: (float64(gridY) + 0.5) * config.CellSize,
	}})
	g.World.Towers.Add(id, &component.Tower{DefID: def.ID, GridX: gridX, GridY: gridY})
	if def.Combat != nil {
		g.World.Combats.Add(id, &component.Combat{
			Damage:       def.Combat.Damage,
			FireRate:     def.Combat.FireRate,
			Range:        def.Combat.Range,
			DamageType:   def.Combat.DamageType,
			Targeting:    def.Combat.Targeting,
			IgnoreArmor:  def.Combat.IgnoreArmor,
			SplashRadius: def.Combat.SplashRadius,
			OnHit:        def.Combat.OnHit,
		})
	}
	if def.Ability != nil {
		g.World.Abilities.Add(id, &component.Ability{Def: def.Ability, State: component.AbilityReady})
	}
	g.World.Renderables.Add(id, &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    def.Visuals.Radius,
		HasStroke: def.Visuals.HasStroke,
	})

	g.towersByCell[cell] = id
	g.Dispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{ID: id, DefID: def.ID},
	})
	return id, nil
}

// RemoveTower сносит башню в клетке и возвращает половину базовой цены.
func (g *Game) RemoveTower(gridX, gridY int) bool {
	cell := [2]int{gridX, gridY}
	id, ok := g.towersByCell[cell]
	if !ok {
		return false
	}
	tower, ok := g.World.Towers.Get(id)
	if !ok {
		delete(g.towersByCell, cell)
		return false
	}
	if def, ok := defs.TowerLibrary[tower.DefID]; ok {
		g.Waves.AddGold(def.Cost / 2)
	}

	// Сначала событие — синергии должны разорвать связи, пока башня жива.
	g.Dispatcher.Dispatch(event.Event{
		Type: event.TowerRemoved,
		Data: event.TowerData{ID: id, DefID: tower.DefID},
	})
	g.World.DestroyEntity(id)
	g.World.Flush()
	delete(g.towersByCell, cell)
	return true
}

// TowerAt возвращает башню в клетке, если она там есть.
func (g *Game) TowerAt(gridX, gridY int) (types.EntityID, bool) {
	id, ok := g.towersByCell[[2]int{gridX, gridY}]
	return id, ok
}

func towerCost(def *defs.TowerDefinition, sess *session.Context, wave int) int {
	return int(float64(def.Cost)*sess.TowerCostMultiplier(wave) + 0.5)
}

// Reset возвращает игру к началу уровня, сохраняя модификаторы сессии.
func (g *Game) Reset() {
	g.World.Reset()
	g.Waves.Reset()
	g.towersByCell = make(map[[2]int]types.EntityID)
	g.interWaveTimer = 0
}
