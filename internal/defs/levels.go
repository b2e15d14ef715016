// internal/defs/levels.go
package defs

import (
	"go-td-sim/pkg/vmath"
)

// LevelDefinition — статическая карта: маршруты врагов и стартовые ресурсы.
// Маршрут — ломаная из вейпоинтов в пиксельных координатах; первый
// вейпоинт — точка спавна, последний — выход.
type LevelDefinition struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Paths          [][]vmath.Vec2 `json:"paths"`
	StartingGold   int            `json:"starting_gold"`
	StartingHealth int            `json:"starting_health"`
	// Custom waves; nil — волны генерируются процедурно по номеру.
	Waves []WaveDefinition `json:"waves,omitempty"`
}

// FallbackLevelID is used when an unknown level is requested.
const FallbackLevelID = "LEVEL_MEADOW"

// LevelLibrary is the library of all level definitions, mapped by their ID.
var LevelLibrary = map[string]LevelDefinition{
	"LEVEL_MEADOW": {
		ID: "LEVEL_MEADOW", Name: "Meadow",
		StartingGold: 220, StartingHealth: 100,
		Paths: [][]vmath.Vec2{
			{
				{X: -20, Y: 150}, {X: 300, Y: 150}, {X: 300, Y: 450},
				{X: 700, Y: 450}, {X: 700, Y: 200}, {X: 1020, Y: 200},
			},
		},
	},
	"LEVEL_CROSSROADS": {
		ID: "LEVEL_CROSSROADS", Name: "Crossroads",
		StartingGold: 260, StartingHealth: 100,
		Paths: [][]vmath.Vec2{
			{
				{X: -20, Y: 120}, {X: 500, Y: 120}, {X: 500, Y: 400},
				{X: 1020, Y: 400},
			},
			{
				{X: -20, Y: 620}, {X: 500, Y: 620}, {X: 500, Y: 400},
				{X: 1020, Y: 400},
			},
		},
	},
}
