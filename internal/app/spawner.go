// internal/app/spawner.go
package app

import (
	"fmt"
	"log"

	"go-arena-clash/internal/config"
	"go-arena-clash/internal/defs"
	"go-arena-clash/internal/event"
	"go-arena-clash/internal/unit"
	"go-arena-clash/pkg/geom"
)

// SpawnUnit создает юнит указанного архетипа в случайной точке сектора
// и добавляет его в реестр. Точка берется равномерно по радиусу в пределах
// кольца [0.7×R, R] и по углу в пределах 45°-го сектора.
func (g *Game) SpawnUnit(defID string, sector defs.Sector, factionID string, playerIndex int) (*unit.Unit, error) {
	start, end, err := defs.SectorSpan(sector)
	if err != nil {
		return nil, fmt.Errorf("spawn failed: %w", err)
	}

	center := geom.Vec2{X: config.ArenaCenterX, Y: config.ArenaCenterY}
	radius := g.Rng.FloatRange(config.ArenaRadius*config.InnerRingFactor, config.ArenaRadius)
	angle := g.Rng.FloatRange(start, end)
	pos := geom.FromPolar(center, radius, angle)

	u, err := unit.New(g.nextID, g.Library, defID, factionID, pos, playerIndex)
	if err != nil {
		return nil, err
	}
	g.nextID++
	g.units[u.ID()] = u
	g.order = append(g.order, u.ID())

	g.EventDispatcher.Dispatch(event.Event{Type: event.UnitSpawned, Data: u})
	return u, nil
}

// autoSpawner периодически выставляет юниты за слот без локального игрока.
type autoSpawner struct {
	slot  int
	timer float64
}

func newAutoSpawner(slot int) *autoSpawner {
	return &autoSpawner{slot: slot, timer: config.AutoSpawnInterval}
}

func (s *autoSpawner) update(deltaTime float64, g *Game) {
	if _, over := g.IsOver(); over {
		return
	}
	s.timer -= deltaTime
	if s.timer > 0 {
		return
	}
	s.timer = config.AutoSpawnInterval

	defID := g.Rng.ChooseWeighted(g.Library.Units())
	if defID == "" {
		return
	}
	if _, err := g.SpawnUnit(defID, g.PlayerSector(s.slot), g.PlayerFaction(s.slot), s.slot); err != nil {
		log.Printf("auto spawn failed for slot %d: %v", s.slot, err)
	}
}
