// internal/state/battle_state.go
package state

import (
	"fmt"
	"log"

	game "go-arena-clash/internal/app"
	"go-arena-clash/internal/config"
	"go-arena-clash/internal/defs"
	"go-arena-clash/internal/system"
	"go-arena-clash/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// BattleState — состояние боя: драйвер симуляции, рендер и кнопки спавна
// для локального игрока (слот 0).
type BattleState struct {
	sm       *StateMachine
	game     *game.Game
	renderer *system.RenderSystem
	hud      *ui.HUD

	spawnButtons []*ui.Button
	spawnDefIDs  []string
}

func NewBattleState(sm *StateMachine, lib *defs.Library, face font.Face, playerCount int, seed int64) *BattleState {
	g := game.NewGame(lib, playerCount, seed)
	b := &BattleState{
		sm:       sm,
		game:     g,
		renderer: system.NewRenderSystem(g),
		hud:      ui.NewHUD(face),
	}

	y := float32(config.SpawnButtonMarginY)
	for _, def := range lib.Units() {
		b.spawnButtons = append(b.spawnButtons, ui.NewButton(
			config.SpawnButtonMarginX, y,
			config.SpawnButtonWidth, config.SpawnButtonHeight,
			def.Name, face,
		))
		b.spawnDefIDs = append(b.spawnDefIDs, def.ID)
		y += config.SpawnButtonHeight + config.SpawnButtonSpacing
	}
	return b
}

func (b *BattleState) Enter() {}

func (b *BattleState) Update(deltaTime float64) {
	for i, btn := range b.spawnButtons {
		if btn.IsClicked() {
			defID := b.spawnDefIDs[i]
			if _, err := b.game.SpawnUnit(defID, b.game.PlayerSector(0), b.game.PlayerFaction(0), 0); err != nil {
				log.Printf("spawn %s failed: %v", defID, err)
			}
		}
	}
	b.game.Update(deltaTime)
}

func (b *BattleState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	b.renderer.Draw(screen)

	for _, btn := range b.spawnButtons {
		btn.Draw(screen)
	}

	b.hud.DrawScore(screen, b.scoreLines())
	if winner, over := b.game.IsOver(); over {
		b.hud.DrawBattleResult(screen, b.factionName(winner))
	}
}

func (b *BattleState) Exit() {}

func (b *BattleState) scoreLines() []string {
	lines := make([]string, 0, b.game.PlayerCount())
	for slot := 0; slot < b.game.PlayerCount(); slot++ {
		lines = append(lines, fmt.Sprintf(
			"P%d %-12s spawned %d, lost %d",
			slot+1,
			b.factionName(b.game.PlayerFaction(slot)),
			b.game.Scoreboard.Spawned[slot],
			b.game.Scoreboard.Lost[slot],
		))
	}
	return lines
}

func (b *BattleState) factionName(id string) string {
	if def, ok := b.game.Library.Faction(id); ok {
		return def.Name
	}
	return id
}
