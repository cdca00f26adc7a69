// internal/system/render.go
package system

import (
	"image/color"

	"go-arena-clash/internal/app"
	"go-arena-clash/internal/config"
	"go-arena-clash/internal/unit"
	"go-arena-clash/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует арену и юниты
type RenderSystem struct {
	game *app.Game
}

func NewRenderSystem(game *app.Game) *RenderSystem {
	return &RenderSystem{game: game}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawArena(screen)

	// Сначала трупы, потом живые поверх
	s.game.ForEachUnit(func(u *unit.Unit) bool {
		if !u.IsAlive() {
			s.drawCorpse(screen, u)
		}
		return true
	})
	s.game.ForEachUnit(func(u *unit.Unit) bool {
		if u.IsAlive() {
			s.drawUnit(screen, u)
		}
		return true
	})
}

// drawArena рисует внешнюю и внутреннюю границы кольца спавна и контрольную зону.
func (s *RenderSystem) drawArena(screen *ebiten.Image) {
	center := geom.Vec2{X: config.ArenaCenterX, Y: config.ArenaCenterY}
	s.strokeOctagon(screen, geom.OctagonPoints(center, config.ArenaRadius))
	s.strokeOctagon(screen, geom.OctagonPoints(center, config.ArenaRadius*config.InnerRingFactor))
	vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), config.ControlRadius, config.ControlZoneColor, true)
}

func (s *RenderSystem) strokeOctagon(screen *ebiten.Image, pts [8]geom.Vec2) {
	for i := 0; i < 8; i++ {
		a := pts[i]
		b := pts[(i+1)%8]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2.0, config.RingColor, true)
	}
}

func (s *RenderSystem) drawUnit(screen *ebiten.Image, u *unit.Unit) {
	pos := u.Position()
	radius := s.visualRadius(u)

	if stroke := s.strokeWidth(u); stroke > 0 {
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius+float32(stroke), config.UnitStrokeColor, true)
	}
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), radius, s.factionColor(u), true)

	s.drawHealthBar(screen, u, radius)
}

// drawCorpse рисует затухающий труп на время задержки перед уборкой.
func (s *RenderSystem) drawCorpse(screen *ebiten.Image, u *unit.Unit) {
	pos := u.Position()
	c := config.CorpseColor
	c.A = uint8(float64(c.A) * (1 - u.CorpseProgress()))
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), s.visualRadius(u), c, true)
}

// drawHealthBar рисует полоску здоровья над юнитом. Доля всегда в [0, 1].
func (s *RenderSystem) drawHealthBar(screen *ebiten.Image, u *unit.Unit, radius float32) {
	pos := u.Position()
	width := radius * 4
	x := float32(pos.X) - width/2
	y := float32(pos.Y) - radius - config.HealthBarOffsetY

	vector.DrawFilledRect(screen, x, y, width, config.HealthBarHeight, config.HealthBarBack, false)
	vector.DrawFilledRect(screen, x, y, width*float32(u.HealthRatio()), config.HealthBarHeight, config.HealthBarFill, false)
}

func (s *RenderSystem) visualRadius(u *unit.Unit) float32 {
	factor := 1.0
	if def, ok := s.game.Library.Unit(u.DefID()); ok && def.Visuals.RadiusFactor > 0 {
		factor = def.Visuals.RadiusFactor
	}
	return float32(u.Radius() * factor)
}

func (s *RenderSystem) strokeWidth(u *unit.Unit) float64 {
	if def, ok := s.game.Library.Unit(u.DefID()); ok {
		return def.Visuals.StrokeWidth
	}
	return 0
}

func (s *RenderSystem) factionColor(u *unit.Unit) color.RGBA {
	if def, ok := s.game.Library.Faction(u.FactionID()); ok {
		c := def.Color
		return color.RGBA{c[0], c[1], c[2], c[3]}
	}
	return config.TextLightColor
}
