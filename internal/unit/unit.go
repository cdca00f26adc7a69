// internal/unit/unit.go
package unit

import (
	"errors"
	"fmt"
	"math"

	"go-arena-clash/internal/config"
	"go-arena-clash/internal/defs"
	"go-arena-clash/internal/types"
	"go-arena-clash/internal/utils"
	"go-arena-clash/pkg/geom"
)

// ErrUnknownUnitType возвращается при попытке создать юнит с неизвестным ID архетипа.
var ErrUnknownUnitType = errors.New("unknown unit type")

// World даёт юниту доступ к реестру живых юнитов во время тика.
// Реестром владеет драйвер симуляции; юниты держат только ID целей.
type World interface {
	// Unit возвращает юнит по ID или nil, если он уже убран с арены.
	Unit(id types.EntityID) *Unit
	// ForEachUnit обходит все юниты в порядке возрастания ID.
	// Обход прекращается, когда fn возвращает false.
	ForEachUnit(fn func(*Unit) bool)
	// Rand — единый сидированный источник случайности симуляции.
	Rand() *utils.PRNGService
}

// Unit — боевая единица на арене. Статы вычисляются один раз при создании
// и после этого не меняются, кроме текущего здоровья.
type Unit struct {
	id          types.EntityID
	defID       string
	factionID   string
	role        defs.Role
	playerIndex int

	maxHealth   int
	health      int
	damage      int
	speed       float64
	attackRange int
	attackSpeed float64 // атак в секунду
	radius      float64

	pos           geom.Vec2
	moveTarget    geom.Vec2
	hasMoveTarget bool
	targetID      types.EntityID
	attacking     bool
	dead          bool

	searchCooldown float64
	attackCooldown float64
	deathClock     float64
}

// New создает юнит указанного архетипа и фракции в точке pos.
// Неизвестный архетип — ошибка конфигурации; фракция без зарегистрированных
// множителей получает нейтральные 1.0 и это не ошибка.
func New(id types.EntityID, lib *defs.Library, defID, factionID string, pos geom.Vec2, playerIndex int) (*Unit, error) {
	def, ok := lib.Unit(defID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnitType, defID)
	}
	m := lib.Multipliers(factionID)

	health := int(math.Round(float64(def.Health) * m.Health))
	u := &Unit{
		id:          id,
		defID:       def.ID,
		factionID:   factionID,
		role:        def.Role,
		playerIndex: playerIndex,
		maxHealth:   health,
		health:      health,
		damage:      int(math.Round(float64(def.Damage) * m.Damage)),
		speed:       def.Speed * m.Speed,
		attackRange: int(math.Round(float64(def.Range) * m.Range)),
		attackSpeed: def.AttackSpeed, // скорость атаки фракция не масштабирует
		radius:      config.UnitRadius,
		pos:         pos,
	}
	return u, nil
}

// Update продвигает юнит на deltaTime секунд симуляционного времени.
// Возвращает true, когда труп отлежал своё и драйвер должен убрать юнит.
func (u *Unit) Update(deltaTime float64, w World) bool {
	if u.dead {
		u.deathClock += deltaTime
		return u.deathClock >= config.CorpseGraceDelay
	}

	if u.attackCooldown > 0 {
		u.attackCooldown -= deltaTime
	}

	u.searchCooldown -= deltaTime
	if u.searchCooldown <= 0 {
		u.runTargeting(w)
		u.searchCooldown = config.TargetSearchInterval
	}

	if u.hasMoveTarget {
		u.stepMovement(deltaTime, w)
	}

	if u.attacking {
		u.stepAttack(w)
	}

	return false
}

// stepMovement делает один шаг к цели движения, смешивая направление на цель
// с вектором расталкивания от соседей.
func (u *Unit) stepMovement(deltaTime float64, w World) {
	toTarget := u.moveTarget.Sub(u.pos)
	if toTarget.Len() < config.ArriveEpsilon {
		u.Stop()
		return
	}
	if toTarget.Len() <= u.speed*deltaTime {
		// Шаг перепрыгнул бы цель — встаём на неё
		u.pos = u.moveTarget
		u.Stop()
		return
	}

	targetDir := toTarget.Normalize()
	sep := u.separation(w)
	final := targetDir.Add(sep.Scale(config.SeparationWeight)).Normalize()
	if final.Len() == 0 {
		// Расталкивание полностью погасило направление — идём напрямую
		final = targetDir
	}

	u.pos = u.pos.Add(final.Scale(u.speed * deltaTime))
}

// separation собирает вектор расталкивания от всех живых соседей ближе
// минимальной дистанции. Вклад соседа тем сильнее, чем он ближе.
func (u *Unit) separation(w World) geom.Vec2 {
	var sum geom.Vec2
	count := 0
	w.ForEachUnit(func(other *Unit) bool {
		if other == u || !other.IsAlive() {
			return true
		}
		minSep := config.MinSeparation + u.radius + other.radius
		d := geom.Dist(u.pos, other.pos)
		if d >= minSep || d == 0 {
			return true
		}
		away := u.pos.Sub(other.pos).Normalize().Scale(1 - d/minSep)
		sum = sum.Add(away)
		count++
		return true
	})
	if count == 0 {
		return geom.Vec2{}
	}
	return sum.Scale(1 / float64(count)).Normalize()
}

// stepAttack разрешает атаку по текущей цели, когда кулдаун истёк.
// Потерянная цель (убрана из реестра или мертва) сбрасывает состояние атаки.
func (u *Unit) stepAttack(w World) {
	target := w.Unit(u.targetID)
	if target == nil || !target.IsAlive() {
		u.targetID = 0
		u.attacking = false
		return
	}
	if u.attackCooldown > 0 {
		return
	}
	if u.IsInRange(target) {
		roll := w.Rand().DamageRoll(u.damage, config.DamageRollMin, config.DamageRollMax)
		target.TakeDamage(roll)
		u.attackCooldown = 1.0 / u.attackSpeed
	} else {
		// Цель вышла из радиуса — догоняем её текущую позицию
		u.MoveTo(target.Position())
	}
}

// TakeDamage снимает amount здоровья. Мёртвый юнит урон не получает.
// Здоровье зажимается в [0, maxHealth]; на нуле юнит умирает.
func (u *Unit) TakeDamage(amount int) bool {
	if u.dead {
		return false
	}
	u.health -= amount
	if u.health <= 0 {
		u.health = 0
		u.dead = true
		u.attacking = false
		u.targetID = 0
		u.hasMoveTarget = false
	}
	if u.health > u.maxHealth {
		u.health = u.maxHealth
	}
	return true
}

// Heal восстанавливает amount здоровья, не выше максимума. Мёртвых не лечим.
func (u *Unit) Heal(amount int) bool {
	if u.dead {
		return false
	}
	u.health += amount
	if u.health > u.maxHealth {
		u.health = u.maxHealth
	}
	return true
}

// Attack назначает цель атаки. Отклоняется (false), если атакующий или цель
// мертвы либо цель вне радиуса.
func (u *Unit) Attack(target *Unit) bool {
	if u.dead || target == nil || !target.IsAlive() {
		return false
	}
	if !u.IsInRange(target) {
		return false
	}
	u.targetID = target.id
	u.attacking = true
	// В радиусе атаки двигаться больше незачем
	u.hasMoveTarget = false
	return true
}

// MoveTo задает цель движения. Мёртвый юнит не двигается.
func (u *Unit) MoveTo(p geom.Vec2) {
	if u.dead {
		return
	}
	u.moveTarget = p
	u.hasMoveTarget = true
}

// Stop сбрасывает цель движения.
func (u *Unit) Stop() {
	u.hasMoveTarget = false
	u.moveTarget = geom.Vec2{}
}

// IsInRange сообщает, находится ли цель в радиусе атаки этого юнита.
// Отношение несимметрично: радиусы у юнитов разные.
func (u *Unit) IsInRange(target *Unit) bool {
	return geom.Dist(u.pos, target.pos) <= float64(u.attackRange)
}

// IsAlive сообщает, жив ли юнит.
func (u *Unit) IsAlive() bool {
	return !u.dead
}

// Nudge смещает юнит на delta. Используется драйвером для жёсткого
// расталкивания пересекающихся союзников.
func (u *Unit) Nudge(delta geom.Vec2) {
	u.pos = u.pos.Add(delta)
}

func (u *Unit) ID() types.EntityID       { return u.id }
func (u *Unit) DefID() string            { return u.defID }
func (u *Unit) FactionID() string        { return u.factionID }
func (u *Unit) Role() defs.Role          { return u.role }
func (u *Unit) PlayerIndex() int         { return u.playerIndex }
func (u *Unit) Position() geom.Vec2      { return u.pos }
func (u *Unit) Radius() float64          { return u.radius }
func (u *Unit) Health() int              { return u.health }
func (u *Unit) MaxHealth() int           { return u.maxHealth }
func (u *Unit) Damage() int              { return u.damage }
func (u *Unit) Speed() float64           { return u.speed }
func (u *Unit) Range() int               { return u.attackRange }
func (u *Unit) AttackSpeed() float64     { return u.attackSpeed }
func (u *Unit) IsMoving() bool           { return u.hasMoveTarget }
func (u *Unit) IsAttacking() bool        { return u.attacking }
func (u *Unit) Target() types.EntityID   { return u.targetID }
func (u *Unit) MoveTarget() (geom.Vec2, bool) { return u.moveTarget, u.hasMoveTarget }

// HealthRatio возвращает долю оставшегося здоровья в [0, 1] для полоски здоровья.
func (u *Unit) HealthRatio() float64 {
	if u.maxHealth == 0 {
		return 0
	}
	return float64(u.health) / float64(u.maxHealth)
}

// CorpseProgress возвращает долю истёкшей задержки трупа в [0, 1].
// Для живого юнита всегда 0.
func (u *Unit) CorpseProgress() float64 {
	if !u.dead {
		return 0
	}
	p := u.deathClock / config.CorpseGraceDelay
	if p > 1 {
		p = 1
	}
	return p
}
