// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-arena-clash/internal/config"
	"go-arena-clash/internal/defs"
	"go-arena-clash/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState — выбор числа игроков перед боем
type MenuState struct {
	sm      *StateMachine
	lib     *defs.Library
	face    font.Face
	seed    int64
	buttons []*ui.Button
	counts  []int
}

func NewMenuState(sm *StateMachine, lib *defs.Library, face font.Face, seed int64) *MenuState {
	m := &MenuState{sm: sm, lib: lib, face: face, seed: seed}
	counts := []int{2, 3, 4, 5, 6, 7, 8}
	x := float32(config.ScreenWidth)/2 - config.SpawnButtonWidth/2
	y := float32(260)
	for _, n := range counts {
		m.buttons = append(m.buttons, ui.NewButton(
			x, y, config.SpawnButtonWidth, config.SpawnButtonHeight,
			fmt.Sprintf("%d players", n), face,
		))
		m.counts = append(m.counts, n)
		y += config.SpawnButtonHeight + config.SpawnButtonSpacing
	}
	return m
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	for i, b := range m.buttons {
		if b.IsClicked() {
			m.sm.SetState(NewBattleState(m.sm, m.lib, m.face, m.counts[i], m.seed))
			return
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	title := "ARENA CLASH"
	bounds := text.BoundString(m.face, title)
	text.Draw(screen, title, m.face, (config.ScreenWidth-bounds.Dx())/2, 200, config.TextLightColor)
	for _, b := range m.buttons {
		b.Draw(screen)
	}
}

func (m *MenuState) Exit() {}
