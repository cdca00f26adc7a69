// internal/unit/targeting.go
package unit

import (
	"math"

	"go-arena-clash/internal/config"
	"go-arena-clash/internal/defs"
	"go-arena-clash/pkg/geom"
)

// runTargeting — политика выбора цели. Вызывается не каждый тик, а раз в
// config.TargetSearchInterval, это осознанное решение по нагрузке и поведению.
//
// Юнит за пределами контрольной зоны не ищет врагов, а возвращается к точке
// сбора в центре арены (с небольшим разбросом, чтобы толпа не сходилась в одну
// точку). Внутри зоны — сканирует реестр: дальнобойные архетипы сразу берут
// первую цель в предпочтительной полосе [0.5×range, range], остальные (и
// дальнобойные без такой цели) берут ближайшую в радиусе.
func (u *Unit) runTargeting(w World) {
	center := geom.Vec2{X: config.ArenaCenterX, Y: config.ArenaCenterY}
	if geom.Dist(u.pos, center) > config.ControlRadius {
		rng := w.Rand()
		u.MoveTo(geom.Vec2{
			X: center.X + rng.Jitter(config.RallyJitter),
			Y: center.Y + rng.Jitter(config.RallyJitter),
		})
		return
	}

	var best *Unit
	bestDist := math.MaxFloat64
	maxRange := float64(u.attackRange)

	w.ForEachUnit(func(other *Unit) bool {
		if other == u || !other.IsAlive() || other.factionID == u.factionID {
			return true
		}
		d := geom.Dist(u.pos, other.pos)
		if u.role == defs.RoleRanged && d >= maxRange*0.5 && d <= maxRange {
			// Первая цель в предпочтительной полосе обрывает сканирование.
			// Зависимость от порядка обхода — известное поведение, реестр
			// обходится по возрастанию ID, так что результат воспроизводим.
			best = other
			return false
		}
		if d <= maxRange && d < bestDist {
			bestDist = d
			best = other
		}
		return true
	})

	if best == nil {
		// Внутри зоны и врагов в радиусе нет — держим позицию
		u.Stop()
		return
	}
	if u.IsInRange(best) {
		u.Attack(best)
	} else {
		u.MoveTo(best.Position())
	}
}
