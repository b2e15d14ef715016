// internal/defs/waves.go
package defs

// WaveSpawn описывает одну группу спавна внутри волны.
type WaveSpawn struct {
	EnemyID   string  `json:"enemy_id"`
	Count     int     `json:"count"`
	Delay     float64 `json:"delay"`    // Пауза перед группой, секунды
	Interval  float64 `json:"interval"` // Пауза между врагами группы
	PathIndex int     `json:"path_index"`
}

// WaveDefinition описывает параметры одной волны врагов.
// Неизменяема после генерации.
type WaveDefinition struct {
	Number    int         `json:"number"`
	Spawns    []WaveSpawn `json:"spawns"`
	BonusGold int         `json:"bonus_gold"`
}

// WavePatterns определяет авторские волны начала игры. Ключ — номер волны.
var WavePatterns = map[int]WaveDefinition{
	1: {Number: 1, BonusGold: 30, Spawns: []WaveSpawn{
		{EnemyID: "ENEMY_BASIC", Count: 6, Delay: 0, Interval: 1.2},
	}},
	2: {Number: 2, BonusGold: 35, Spawns: []WaveSpawn{
		{EnemyID: "ENEMY_BASIC", Count: 8, Delay: 0, Interval: 1.0},
	}},
	3: {Number: 3, BonusGold: 40, Spawns: []WaveSpawn{
		{EnemyID: "ENEMY_BASIC", Count: 6, Delay: 0, Interval: 1.0},
		{EnemyID: "ENEMY_FAST", Count: 4, Delay: 3, Interval: 0.6},
	}},
	4: {Number: 4, BonusGold: 45, Spawns: []WaveSpawn{
		{EnemyID: "ENEMY_TOUGH", Count: 4, Delay: 0, Interval: 2.0},
		{EnemyID: "ENEMY_FAST", Count: 6, Delay: 2, Interval: 0.5},
	}},
	5: {Number: 5, BonusGold: 55, Spawns: []WaveSpawn{
		{EnemyID: "ENEMY_SHIELDED", Count: 5, Delay: 0, Interval: 1.5},
		{EnemyID: "ENEMY_HEALER", Count: 2, Delay: 4, Interval: 2.0},
	}},
	6: {Number: 6, BonusGold: 60, Spawns: []WaveSpawn{
		{EnemyID: "ENEMY_SPLITTER", Count: 6, Delay: 0, Interval: 1.4},
	}},
	7: {Number: 7, BonusGold: 65, Spawns: []WaveSpawn{
		{EnemyID: "ENEMY_STEALTH", Count: 8, Delay: 0, Interval: 0.9},
		{EnemyID: "ENEMY_PHASE", Count: 4, Delay: 3, Interval: 1.2},
	}},
	8: {Number: 8, BonusGold: 70, Spawns: []WaveSpawn{
		{EnemyID: "ENEMY_TOUGH", Count: 6, Delay: 0, Interval: 1.5},
		{EnemyID: "ENEMY_HEALER", Count: 3, Delay: 2, Interval: 2.0},
	}},
	9: {Number: 9, BonusGold: 80, Spawns: []WaveSpawn{
		{EnemyID: "ENEMY_BROOD", Count: 2, Delay: 0, Interval: 5.0},
		{EnemyID: "ENEMY_FAST", Count: 10, Delay: 2, Interval: 0.4},
	}},
	10: {Number: 10, BonusGold: 150, Spawns: []WaveSpawn{
		{EnemyID: "ENEMY_BOSS", Count: 1, Delay: 2, Interval: 0},
		{EnemyID: "ENEMY_HEALER", Count: 2, Delay: 4, Interval: 3.0},
	}},
}

// roster задаёт порядок усложнения процедурных волн.
var roster = []string{
	"ENEMY_BASIC", "ENEMY_FAST", "ENEMY_TOUGH", "ENEMY_SHIELDED",
	"ENEMY_SPLITTER", "ENEMY_STEALTH", "ENEMY_PHASE", "ENEMY_HEALER",
}

// GenerateWave возвращает определение волны для номера. Авторские волны
// берутся из WavePatterns, дальше волна строится детерминированно от номера:
// никакого случайного состояния, одинаковый номер — одинаковая волна.
func GenerateWave(number int) WaveDefinition {
	if number < 1 {
		number = 1
	}
	if def, ok := WavePatterns[number]; ok {
		return def
	}

	// Каждая десятая волна — босс с эскортом.
	if number%10 == 0 {
		return WaveDefinition{
			Number:    number,
			BonusGold: 100 + number*5,
			Spawns: []WaveSpawn{
				{EnemyID: "ENEMY_BOSS", Count: 1 + number/30, Delay: 2, Interval: 6.0},
				{EnemyID: "ENEMY_HEALER", Count: 2 + number/20, Delay: 4, Interval: 3.0},
			},
		}
	}

	main := roster[number%len(roster)]
	second := roster[(number/2)%len(roster)]
	return WaveDefinition{
		Number:    number,
		BonusGold: 40 + number*3,
		Spawns: []WaveSpawn{
			{EnemyID: main, Count: 6 + number/2, Delay: 0, Interval: 0.9},
			{EnemyID: second, Count: 3 + number/3, Delay: 3, Interval: 0.7},
		},
	}
}
