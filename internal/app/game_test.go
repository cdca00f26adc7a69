package app

import (
	"testing"

	"go-arena-clash/internal/config"
	"go-arena-clash/internal/defs"
	"go-arena-clash/internal/event"
	"go-arena-clash/internal/unit"
	"go-arena-clash/pkg/geom"
)

func testLibrary() *defs.Library {
	return defs.NewLibrary(
		[]defs.UnitDefinition{
			{ID: "UNIT_WARRIOR", Name: "Warrior", Role: defs.RoleMelee, Health: 150, Damage: 65, Speed: 90, Range: 30, AttackSpeed: 1.2, SpawnWeight: 1},
		},
		[]defs.FactionDefinition{
			{ID: "FACTION_NETRUNNERS", Name: "Netrunners", Multipliers: defs.Neutral()},
			{ID: "FACTION_GHOSTWIRE", Name: "Ghostwire", Multipliers: defs.Neutral()},
		},
	)
}

// recorder накапливает события для проверок.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// spawnAt выставляет юнит и жёстко переносит его в точку pos.
func spawnAt(t *testing.T, g *Game, factionID string, slot int, pos geom.Vec2) *unit.Unit {
	t.Helper()
	u, err := g.SpawnUnit("UNIT_WARRIOR", g.PlayerSector(slot), factionID, slot)
	if err != nil {
		t.Fatalf("spawn failed: %v", err)
	}
	u.Nudge(pos.Sub(u.Position()))
	return u
}

func newTestGame() *Game {
	return NewGame(testLibrary(), 2, 42)
}

func TestCollision_CrossFactionOverlapTriggersMutualAttack(t *testing.T) {
	g := newTestGame()
	center := geom.Vec2{X: config.ArenaCenterX, Y: config.ArenaCenterY}
	a := spawnAt(t, g, "FACTION_NETRUNNERS", 0, center.Add(geom.Vec2{X: -10, Y: 0}))
	b := spawnAt(t, g, "FACTION_GHOSTWIRE", 1, center.Add(geom.Vec2{X: 10, Y: 0}))

	g.resolveCollisions()

	if !a.IsAttacking() || a.Target() != b.ID() {
		t.Fatal("overlapping enemy a must attack b")
	}
	if !b.IsAttacking() || b.Target() != a.ID() {
		t.Fatal("overlapping enemy b must attack a")
	}
}

func TestCollision_SameFactionOverlapPushesApart(t *testing.T) {
	g := newTestGame()
	center := geom.Vec2{X: config.ArenaCenterX, Y: config.ArenaCenterY}
	a := spawnAt(t, g, "FACTION_NETRUNNERS", 0, center.Add(geom.Vec2{X: -5, Y: 0}))
	b := spawnAt(t, g, "FACTION_NETRUNNERS", 0, center.Add(geom.Vec2{X: 5, Y: 0}))

	before := geom.Dist(a.Position(), b.Position())
	g.resolveCollisions()
	after := geom.Dist(a.Position(), b.Position())

	if after <= before {
		t.Fatalf("allies must be pushed apart: before %.2f after %.2f", before, after)
	}
	if a.IsAttacking() || b.IsAttacking() {
		t.Fatal("allies must not attack each other")
	}
	// Растолкнуло ровно до касания кругов
	if want := a.Radius() + b.Radius(); after < want-1e-9 {
		t.Fatalf("push-apart left an overlap: dist %.2f, want at least %.2f", after, want)
	}
}

func TestDriver_KilledAndRemovedEvents(t *testing.T) {
	g := newTestGame()
	rec := &recorder{}
	g.EventDispatcher.Subscribe(event.UnitKilled, rec)
	g.EventDispatcher.Subscribe(event.UnitRemoved, rec)

	center := geom.Vec2{X: config.ArenaCenterX, Y: config.ArenaCenterY}
	victim := spawnAt(t, g, "FACTION_NETRUNNERS", 0, center)
	victim.TakeDamage(1000)

	g.Update(0.05)
	if rec.count(event.UnitKilled) != 1 {
		t.Fatalf("expected 1 UnitKilled, got %d", rec.count(event.UnitKilled))
	}
	if rec.count(event.UnitRemoved) != 0 {
		t.Fatal("corpse must not be removed before the grace delay")
	}

	// Дожидаемся конца задержки трупа
	for i := 0; i < 25; i++ {
		g.Update(0.05)
	}
	if rec.count(event.UnitRemoved) != 1 {
		t.Fatalf("expected 1 UnitRemoved after the grace delay, got %d", rec.count(event.UnitRemoved))
	}
	if g.Unit(victim.ID()) != nil {
		t.Fatal("evicted unit must be gone from the registry")
	}
	if g.UnitCount() != 0 {
		t.Fatalf("registry must be empty, has %d units", g.UnitCount())
	}
}

func TestDriver_CorpseNotTargetableDuringGrace(t *testing.T) {
	g := newTestGame()
	center := geom.Vec2{X: config.ArenaCenterX, Y: config.ArenaCenterY}
	corpse := spawnAt(t, g, "FACTION_NETRUNNERS", 0, center.Add(geom.Vec2{X: -10, Y: 0}))
	hunter := spawnAt(t, g, "FACTION_GHOSTWIRE", 1, center.Add(geom.Vec2{X: 10, Y: 0}))
	corpse.TakeDamage(1000)

	// Несколько циклов поиска цели, труп всё ещё в реестре
	for i := 0; i < 12; i++ {
		g.Update(0.05)
	}
	if hunter.IsAttacking() {
		t.Fatal("a corpse inside the grace window must not be acquired as a target")
	}
}

func TestDriver_BattleEndsWhenOneFactionRemains(t *testing.T) {
	g := newTestGame()
	rec := &recorder{}
	g.EventDispatcher.Subscribe(event.BattleEnded, rec)

	center := geom.Vec2{X: config.ArenaCenterX, Y: config.ArenaCenterY}
	spawnAt(t, g, "FACTION_NETRUNNERS", 0, center.Add(geom.Vec2{X: -200, Y: 0}))
	loser := spawnAt(t, g, "FACTION_GHOSTWIRE", 1, center.Add(geom.Vec2{X: 200, Y: 0}))

	g.Update(0.05) // обе фракции живы, бой считается начавшимся
	if _, over := g.IsOver(); over {
		t.Fatal("battle must not be over while two factions live")
	}

	loser.TakeDamage(1000)
	g.Update(0.05)

	winner, over := g.IsOver()
	if !over {
		t.Fatal("battle must end once one faction remains")
	}
	if winner != "FACTION_NETRUNNERS" {
		t.Fatalf("expected FACTION_NETRUNNERS to win, got %q", winner)
	}
	if rec.count(event.BattleEnded) != 1 {
		t.Fatalf("expected 1 BattleEnded event, got %d", rec.count(event.BattleEnded))
	}
}

func TestDriver_AutoSpawnFillsAISlots(t *testing.T) {
	g := newTestGame()

	// Слот 1 без игрока должен получить юниты после интервала автоспавна
	for i := 0; i < 60; i++ {
		g.Update(0.05)
	}
	if g.Scoreboard.Spawned[1] == 0 {
		t.Fatal("AI slot must auto-spawn units")
	}
	if g.Scoreboard.Spawned[0] != 0 {
		t.Fatal("the local player slot must not auto-spawn")
	}
}

func TestScoreboard_CountsSpawnsAndLosses(t *testing.T) {
	g := newTestGame()
	center := geom.Vec2{X: config.ArenaCenterX, Y: config.ArenaCenterY}
	u := spawnAt(t, g, "FACTION_NETRUNNERS", 0, center)

	if g.Scoreboard.Spawned[0] != 1 {
		t.Fatalf("expected 1 spawned for slot 0, got %d", g.Scoreboard.Spawned[0])
	}

	u.TakeDamage(1000)
	g.Update(0.05)
	if g.Scoreboard.Lost[0] != 1 {
		t.Fatalf("expected 1 lost for slot 0, got %d", g.Scoreboard.Lost[0])
	}
}
