package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-arena-clash/internal/config"
	"go-arena-clash/internal/defs"
	"go-arena-clash/internal/state"
	"go-arena-clash/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "сид симуляции, 0 — от текущего времени")
	flag.Parse()

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	lib, err := defs.LoadLibrary(config.UnitDefsPath, config.FactionDefsPath)
	if err != nil {
		log.Fatal(err)
	}
	face := ui.LoadFontFace()

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, lib, face, *seed))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arena Clash")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
