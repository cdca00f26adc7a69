// internal/ui/hud.go
package ui

import (
	"fmt"

	"go-arena-clash/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUD выводит счёт боя и итоговую надпись.
type HUD struct {
	Font font.Face
}

func NewHUD(face font.Face) *HUD {
	return &HUD{Font: face}
}

// DrawScore рисует по строке на слот игрока: фракция, выставлено, потеряно.
func (h *HUD) DrawScore(screen *ebiten.Image, lines []string) {
	y := int(config.SpawnButtonMarginY) + config.FontSize
	for _, line := range lines {
		text.Draw(screen, line, h.Font, config.ScreenWidth-320, y, config.TextLightColor)
		y += config.FontSize + 6
	}
}

// DrawBattleResult рисует крупную надпись о конце боя по центру экрана.
func (h *HUD) DrawBattleResult(screen *ebiten.Image, winner string) {
	msg := "Draw"
	if winner != "" {
		msg = fmt.Sprintf("%s wins", winner)
	}
	bounds := text.BoundString(h.Font, msg)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, msg, h.Font, x, config.ScreenHeight/2, config.TextLightColor)
}
