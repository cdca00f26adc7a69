// internal/ui/button.go
package ui

import (
	"image/color"

	"go-arena-clash/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, Width, Height float32
	Text                string
	TextColor           color.RGBA
	BgColor             color.RGBA
	HoverColor          color.RGBA
	Font                font.Face
}

// NewButton создает новую кнопку.
func NewButton(x, y, width, height float32, label string, face font.Face) *Button {
	return &Button{
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Text:       label,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
		Font:       face,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(mx, my int) bool {
	x, y := float32(mx), float32(my)
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

// IsClicked проверяет, был ли сделан клик по кнопке в этом кадре.
func (b *Button) IsClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	return b.Contains(mx, my)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bgColor := b.BgColor
	if mx, my := ebiten.CursorPosition(); b.Contains(mx, my) {
		bgColor = b.HoverColor
	}

	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bgColor, false)
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 2, config.UnitStrokeColor, false)

	bounds := text.BoundString(b.Font, b.Text)
	tx := int(b.X) + (int(b.Width)-bounds.Dx())/2
	ty := int(b.Y) + int(b.Height)/2 + bounds.Dy()/2
	text.Draw(screen, b.Text, b.Font, tx, ty, b.TextColor)
}
