// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadTowerDefinitions reads a tower content file and replaces the built-in
// TowerLibrary entries with the loaded ones.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	for _, def := range towerDefs {
		TowerLibrary[def.ID] = def
	}
	return nil
}

// LoadEnemyDefinitions reads an enemy content file and replaces the built-in
// EnemyLibrary entries with the loaded ones.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	for _, def := range enemyDefs {
		EnemyLibrary[def.ID] = def
	}
	return nil
}

// LoadLevelDefinitions reads a level content file (custom levels included).
func LoadLevelDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read level definitions file: %w", err)
	}

	var levelDefs []LevelDefinition
	if err := json.Unmarshal(file, &levelDefs); err != nil {
		return fmt.Errorf("failed to unmarshal level definitions: %w", err)
	}

	for _, def := range levelDefs {
		LevelLibrary[def.ID] = def
	}
	return nil
}

// ResolveEnemy возвращает определение врага. Неизвестный ID из внешнего
// контента не валит симуляцию: подставляется запасной враг, проблема
// только логируется.
func ResolveEnemy(id string) EnemyDefinition {
	if def, ok := EnemyLibrary[id]; ok {
		return def
	}
	log.Printf("defs: unknown enemy %q, falling back to %s", id, FallbackEnemyID)
	return EnemyLibrary[FallbackEnemyID]
}

// ResolveLevel возвращает определение карты с тем же запасным поведением.
func ResolveLevel(id string) LevelDefinition {
	if def, ok := LevelLibrary[id]; ok {
		return def
	}
	log.Printf("defs: unknown level %q, falling back to %s", id, FallbackLevelID)
	return LevelLibrary[FallbackLevelID]
}
