// internal/system/wave.go
package system

import (
	"sort"

	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/entity"
	"go-td-sim/internal/event"
	"go-td-sim/internal/session"
)

// WaveState — фаза жизненного цикла волны.
type WaveState int

const (
	WaveWaiting WaveState = iota
	WaveSpawning
	WaveInProgress
	WaveCompleted
)

func (s WaveState) String() string {
	switch s {
	case WaveWaiting:
		return "WAITING"
	case WaveSpawning:
		return "SPAWNING"
	case WaveInProgress:
		return "IN_PROGRESS"
	case WaveCompleted:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}

// queuedSpawn — один враг в очереди спавна с абсолютным временем появления
// от старта волны.
type queuedSpawn struct {
	enemyID   string
	pathIndex int
	spawnTime float64
}

// WaveSystem управляет волнами и ресурсами игрока: золотом, здоровьем
// базы и счётом. Живых врагов считает по миру, а не по событиям спавна —
// дети расщепления и призванные миньоны продлевают волну так же, как
// враги из очереди.
type WaveSystem struct {
	world      *entity.World
	session    *session.Context
	dispatcher *event.Dispatcher
	level      *defs.LevelDefinition

	state       WaveState
	currentWave int
	clock       float64
	queue       []queuedSpawn
	nextSpawn   int
	bonusGold   int

	gold         int
	playerHealth int
	score        int
	gameOver     bool
	victory      bool
}

func NewWaveSystem(world *entity.World, sess *session.Context, dispatcher *event.Dispatcher, level *defs.LevelDefinition) *WaveSystem {
	s := &WaveSystem{
		world:      world,
		session:    sess,
		dispatcher: dispatcher,
		level:      level,
	}
	s.Reset()
	dispatcher.Subscribe(event.EnemyKilled, s)
	dispatcher.Subscribe(event.EnemyReachedEnd, s)
	return s
}

// Reset возвращает систему к стартовому состоянию уровня с учётом
// модификаторов сессии.
func (s *WaveSystem) Reset() {
	s.state = WaveWaiting
	s.currentWave = 0
	s.clock = 0
	s.queue = nil
	s.nextSpawn = 0
	s.bonusGold = 0
	s.gold = s.level.StartingGold + s.session.StartingGoldBonus()
	s.playerHealth = s.level.StartingHealth
	if override := s.session.StartingHealthOverride(); override > 0 {
		s.playerHealth = override
	}
	s.score = 0
	s.gameOver = false
	s.victory = false
}

// StartWave запускает следующую волну. Вызов во время SPAWNING или
// IN_PROGRESS — no-op: волна не перезапускается.
func (s *WaveSystem) StartWave() {
	if s.state == WaveSpawning || s.state == WaveInProgress {
		return
	}
	if s.gameOver || s.victory {
		return
	}

	s.currentWave++
	def := s.waveFor(s.currentWave)
	s.queue = buildSpawnQueue(def, len(s.level.Paths))
	s.nextSpawn = 0
	s.clock = 0
	s.bonusGold = def.BonusGold
	s.state = WaveSpawning

	s.dispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Number: s.currentWave, BonusGold: def.BonusGold},
	})
}

// waveFor берёт авторскую волну уровня, если она есть, иначе —
// детерминированную процедурную по номеру.
func (s *WaveSystem) waveFor(number int) defs.WaveDefinition {
	for _, def := range s.level.Waves {
		if def.Number == number {
			return def
		}
	}
	return defs.GenerateWave(number)
}

// buildSpawnQueue разворачивает группы волны в плоскую очередь отдельных
// врагов. Задержки групп накапливаются, внутри группы враги идут через
// интервал. На многодорожечных картах маршруты раздаются по кругу,
// иначе используется маршрут группы. Сортировка стабильная: при равном
// времени порядок вставки сохраняется.
func buildSpawnQueue(def defs.WaveDefinition, pathCount int) []queuedSpawn {
	var queue []queuedSpawn
	accumulated := 0.0
	roundRobin := 0
	for _, spawn := range def.Spawns {
		accumulated += spawn.Delay
		for i := 0; i < spawn.Count; i++ {
			pathIndex := spawn.PathIndex
			if pathCount > 1 {
				pathIndex = roundRobin % pathCount
				roundRobin++
			}
			queue = append(queue, queuedSpawn{
				enemyID:   spawn.EnemyID,
				pathIndex: pathIndex,
				spawnTime: accumulated + float64(i)*spawn.Interval,
			})
		}
	}
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].spawnTime < queue[j].spawnTime
	})
	return queue
}

func (s *WaveSystem) Update(deltaTime float64) {
	switch s.state {
	case WaveSpawning:
		s.clock += deltaTime
		for s.nextSpawn < len(s.queue) && s.queue[s.nextSpawn].spawnTime <= s.clock {
			q := s.queue[s.nextSpawn]
			SpawnEnemy(s.world, s.session, s.level, q.enemyID, q.pathIndex)
			s.nextSpawn++
		}
		if s.nextSpawn >= len(s.queue) {
			s.state = WaveInProgress
			s.checkWaveCleared()
		}
	case WaveInProgress:
		s.checkWaveCleared()
	}
}

func (s *WaveSystem) checkWaveCleared() {
	if s.world.Enemies.Len() > 0 || s.gameOver {
		return
	}
	s.state = WaveCompleted
	s.gold += scaleGold(s.bonusGold, s.session.GoldMultiplier())
	s.score += config.ScorePerWave

	s.dispatcher.Dispatch(event.Event{
		Type: event.WaveCompleted,
		Data: event.WaveData{Number: s.currentWave, BonusGold: s.bonusGold},
	})

	if s.currentWave >= config.FinalWave && !s.victory {
		s.victory = true
		s.dispatcher.Dispatch(event.Event{Type: event.Victory})
	}
}

func (s *WaveSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if data, ok := e.Data.(event.KillData); ok {
			s.gold += scaleGold(data.Gold, s.session.GoldMultiplier())
			s.score += config.ScorePerKill
		}
	case event.EnemyReachedEnd:
		if data, ok := e.Data.(event.LeakData); ok {
			s.onLeak(data.Damage)
		}
	}
}

// onLeak снимает здоровье базы. GameOver рассылается ровно один раз,
// сколько бы врагов ни просочилось после нуля.
func (s *WaveSystem) onLeak(damage int) {
	if s.gameOver {
		return
	}
	s.playerHealth -= damage
	if s.playerHealth <= 0 {
		s.playerHealth = 0
		s.gameOver = true
		s.dispatcher.Dispatch(event.Event{Type: event.GameOver})
	}
}

// scaleGold применяет множитель сессии к базовой сумме, округляя к
// ближайшему целому.
func scaleGold(base int, multiplier float64) int {
	return int(float64(base)*multiplier + 0.5)
}

// SpendGold списывает золото, если его хватает.
func (s *WaveSystem) SpendGold(amount int) bool {
	if amount > s.gold {
		return false
	}
	s.gold -= amount
	return true
}

func (s *WaveSystem) AddGold(amount int)  { s.gold += amount }
func (s *WaveSystem) Gold() int           { return s.gold }
func (s *WaveSystem) PlayerHealth() int   { return s.playerHealth }
func (s *WaveSystem) Score() int          { return s.score }
func (s *WaveSystem) CurrentWave() int    { return s.currentWave }
func (s *WaveSystem) State() WaveState    { return s.state }
func (s *WaveSystem) IsGameOver() bool    { return s.gameOver }
func (s *WaveSystem) IsVictory() bool     { return s.victory }
