// cmd/game/main.go
package main

import (
	"go-td-sim/internal/app"
	"go-td-sim/internal/config"
	"go-td-sim/internal/defs"
	"go-td-sim/internal/session"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	game           *app.Game
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.game.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.game.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	sess := session.NewContext()
	game := app.NewGame(defs.FallbackLevelID, sess, time.Now().UnixNano())

	// Стартовая расстановка, чтобы первая волна не прошла без боя.
	if _, err := game.PlaceTower("TOWER_ARROW", 6, 5); err != nil {
		log.Println(err)
	}
	if _, err := game.PlaceTower("TOWER_FROST", 7, 5); err != nil {
		log.Println(err)
	}

	appGame := &AppGame{
		game:           game,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Defense Sim")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
}
