// internal/app/game.go
package app

import (
	"sort"

	"go-arena-clash/internal/config"
	"go-arena-clash/internal/defs"
	"go-arena-clash/internal/event"
	"go-arena-clash/internal/types"
	"go-arena-clash/internal/unit"
	"go-arena-clash/internal/utils"
	"go-arena-clash/pkg/geom"
)

// Game — драйвер симуляции. Он единолично владеет реестром живых юнитов:
// добавление (спавн) и удаление (истёкшие трупы) происходят только между
// обновлениями юнитов внутри кадра.
type Game struct {
	Library         *defs.Library
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Scoreboard      *Scoreboard

	units  map[types.EntityID]*unit.Unit
	order  []types.EntityID // ID в порядке возрастания, порядок обхода реестра
	nextID types.EntityID

	playerCount    int
	sectors        []defs.Sector
	playerFactions []string
	autoSpawn      []*autoSpawner

	gameTime      float64
	announcedDead map[types.EntityID]bool
	engaged       bool // на арене уже встречались минимум две фракции
	battleOver    bool
	winner        string
}

// NewGame initializes a new game instance for the given player count.
func NewGame(lib *defs.Library, playerCount int, seed int64) *Game {
	if lib == nil {
		panic("library cannot be nil")
	}

	g := &Game{
		Library:         lib,
		EventDispatcher: event.NewDispatcher(),
		Rng:             utils.NewPRNGService(seed),
		units:           make(map[types.EntityID]*unit.Unit),
		nextID:          1,
		playerCount:     playerCount,
		sectors:         defs.SectorsForPlayers(playerCount),
		announcedDead:   make(map[types.EntityID]bool),
	}
	g.playerFactions = assignFactions(lib, playerCount)
	g.Scoreboard = NewScoreboard(playerCount, g.EventDispatcher)

	// Слот 0 — локальный игрок, остальные сектора спавнят сами
	for slot := 1; slot < playerCount; slot++ {
		g.autoSpawn = append(g.autoSpawn, newAutoSpawner(slot))
	}
	return g
}

// assignFactions раздает фракции слотам игроков по кругу, в стабильном порядке.
func assignFactions(lib *defs.Library, playerCount int) []string {
	facs := lib.Factions()
	sort.Slice(facs, func(i, j int) bool { return facs[i].ID < facs[j].ID })
	out := make([]string, playerCount)
	for i := 0; i < playerCount; i++ {
		out[i] = facs[i%len(facs)].ID
	}
	return out
}

// Update продвигает симуляцию на deltaTime секунд: тик каждого юнита,
// попарная проверка столкновений, уборка трупов и события конца кадра.
func (g *Game) Update(deltaTime float64) {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	g.gameTime += deltaTime

	var expired []types.EntityID
	for _, id := range g.order {
		u := g.units[id]
		if u.Update(deltaTime, g) {
			expired = append(expired, id)
		}
	}

	g.resolveCollisions()
	g.announceDeaths()
	g.evict(expired)

	for _, s := range g.autoSpawn {
		s.update(deltaTime, g)
	}

	g.checkBattleOver()
	g.EventDispatcher.Flush()
}

// resolveCollisions — O(n²) проход по неупорядоченным парам живых юнитов.
// Пересечение кругов: враги атакуют друг друга, союзники расталкиваются
// на половину глубины пересечения каждый.
func (g *Game) resolveCollisions() {
	for i := 0; i < len(g.order); i++ {
		a := g.units[g.order[i]]
		if !a.IsAlive() {
			continue
		}
		for j := i + 1; j < len(g.order); j++ {
			b := g.units[g.order[j]]
			if !b.IsAlive() {
				continue
			}
			d := geom.Dist(a.Position(), b.Position())
			minDist := a.Radius() + b.Radius()
			if d >= minDist {
				continue
			}
			if a.FactionID() != b.FactionID() {
				a.Attack(b)
				b.Attack(a)
				continue
			}
			if d == 0 {
				// Центры совпали, направления нет — растолкнёт separation
				continue
			}
			overlap := minDist - d
			dir := a.Position().Sub(b.Position()).Normalize()
			a.Nudge(dir.Scale(overlap / 2))
			b.Nudge(dir.Scale(-overlap / 2))
		}
	}
}

// announceDeaths отправляет UnitKilled для юнитов, умерших в этом кадре.
func (g *Game) announceDeaths() {
	for _, id := range g.order {
		u := g.units[id]
		if !u.IsAlive() && !g.announcedDead[id] {
			g.announcedDead[id] = true
			g.EventDispatcher.Defer(event.Event{Type: event.UnitKilled, Data: u})
		}
	}
}

// evict убирает из реестра трупы, отлежавшие задержку.
func (g *Game) evict(ids []types.EntityID) {
	for _, id := range ids {
		u, ok := g.units[id]
		if !ok {
			continue
		}
		delete(g.units, id)
		delete(g.announcedDead, id)
		for i, oid := range g.order {
			if oid == id {
				g.order = append(g.order[:i], g.order[i+1:]...)
				break
			}
		}
		g.EventDispatcher.Defer(event.Event{Type: event.UnitRemoved, Data: u})
	}
}

// checkBattleOver объявляет конец боя, когда после встречи минимум двух
// фракций живой осталась максимум одна.
func (g *Game) checkBattleOver() {
	if g.battleOver {
		return
	}
	alive := g.FactionsAlive()
	if len(alive) >= 2 {
		g.engaged = true
		return
	}
	if !g.engaged {
		return
	}
	g.battleOver = true
	if len(alive) == 1 {
		g.winner = alive[0]
	}
	g.EventDispatcher.Defer(event.Event{Type: event.BattleEnded, Data: g.winner})
}

// FactionsAlive возвращает отсортированный список фракций с живыми юнитами.
func (g *Game) FactionsAlive() []string {
	seen := make(map[string]bool)
	for _, id := range g.order {
		u := g.units[id]
		if u.IsAlive() {
			seen[u.FactionID()] = true
		}
	}
	out := make([]string, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Unit возвращает юнит по ID или nil, если он уже убран с арены.
func (g *Game) Unit(id types.EntityID) *unit.Unit {
	return g.units[id]
}

// ForEachUnit обходит реестр в порядке возрастания ID, пока fn возвращает true.
func (g *Game) ForEachUnit(fn func(*unit.Unit) bool) {
	for _, id := range g.order {
		if !fn(g.units[id]) {
			return
		}
	}
}

// Rand — источник случайности симуляции.
func (g *Game) Rand() *utils.PRNGService {
	return g.Rng
}

// UnitCount возвращает число юнитов в реестре, включая трупы.
func (g *Game) UnitCount() int {
	return len(g.order)
}

// GameTime возвращает накопленное симуляционное время в секундах.
func (g *Game) GameTime() float64 {
	return g.gameTime
}

// PlayerFaction возвращает фракцию слота игрока.
func (g *Game) PlayerFaction(slot int) string {
	return g.playerFactions[slot]
}

// PlayerSector возвращает сектор спавна слота игрока.
func (g *Game) PlayerSector(slot int) defs.Sector {
	return g.sectors[slot]
}

// PlayerCount возвращает число игровых слотов.
func (g *Game) PlayerCount() int {
	return g.playerCount
}

// IsOver сообщает, закончен ли бой, и победившую фракцию (пустая при ничьей).
func (g *Game) IsOver() (string, bool) {
	return g.winner, g.battleOver
}
