// internal/app/scoreboard.go
package app

import (
	"go-arena-clash/internal/event"
	"go-arena-clash/internal/unit"
)

// Scoreboard считает выставленных и потерянных юнитов по слотам игроков.
// Подписан на события боя; читается HUD'ом.
type Scoreboard struct {
	Spawned []int
	Lost    []int
}

func NewScoreboard(playerCount int, dispatcher *event.Dispatcher) *Scoreboard {
	sb := &Scoreboard{
		Spawned: make([]int, playerCount),
		Lost:    make([]int, playerCount),
	}
	dispatcher.Subscribe(event.UnitSpawned, sb)
	dispatcher.Subscribe(event.UnitKilled, sb)
	return sb
}

func (sb *Scoreboard) OnEvent(e event.Event) {
	u, ok := e.Data.(*unit.Unit)
	if !ok {
		return
	}
	slot := u.PlayerIndex()
	if slot < 0 || slot >= len(sb.Spawned) {
		return
	}
	switch e.Type {
	case event.UnitSpawned:
		sb.Spawned[slot]++
	case event.UnitKilled:
		sb.Lost[slot]++
	}
}
