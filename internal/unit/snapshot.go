// internal/unit/snapshot.go
package unit

import (
	"encoding/json"

	"go-arena-clash/internal/defs"
	"go-arena-clash/internal/types"
	"go-arena-clash/pkg/geom"
)

// snapshot — сериализуемая пара (статы, состояние) юнита. Восстановленный из
// снимка юнит при тех же розыгрышах PRNG продолжает ту же траекторию.
type snapshot struct {
	ID          types.EntityID `json:"id"`
	DefID       string         `json:"def_id"`
	FactionID   string         `json:"faction_id"`
	Role        defs.Role      `json:"role"`
	PlayerIndex int            `json:"player_index"`

	MaxHealth   int     `json:"max_health"`
	Health      int     `json:"health"`
	Damage      int     `json:"damage"`
	Speed       float64 `json:"speed"`
	Range       int     `json:"range"`
	AttackSpeed float64 `json:"attack_speed"`
	Radius      float64 `json:"radius"`

	Pos           geom.Vec2      `json:"pos"`
	MoveTarget    geom.Vec2      `json:"move_target"`
	HasMoveTarget bool           `json:"has_move_target"`
	TargetID      types.EntityID `json:"target_id"`
	Attacking     bool           `json:"attacking"`
	Dead          bool           `json:"dead"`

	SearchCooldown float64 `json:"search_cooldown"`
	AttackCooldown float64 `json:"attack_cooldown"`
	DeathClock     float64 `json:"death_clock"`
}

// Snapshot сериализует полное состояние юнита в JSON.
func (u *Unit) Snapshot() ([]byte, error) {
	return json.Marshal(snapshot{
		ID:             u.id,
		DefID:          u.defID,
		FactionID:      u.factionID,
		Role:           u.role,
		PlayerIndex:    u.playerIndex,
		MaxHealth:      u.maxHealth,
		Health:         u.health,
		Damage:         u.damage,
		Speed:          u.speed,
		Range:          u.attackRange,
		AttackSpeed:    u.attackSpeed,
		Radius:         u.radius,
		Pos:            u.pos,
		MoveTarget:     u.moveTarget,
		HasMoveTarget:  u.hasMoveTarget,
		TargetID:       u.targetID,
		Attacking:      u.attacking,
		Dead:           u.dead,
		SearchCooldown: u.searchCooldown,
		AttackCooldown: u.attackCooldown,
		DeathClock:     u.deathClock,
	})
}

// Restore восстанавливает юнит из снимка, сделанного Snapshot.
func Restore(data []byte) (*Unit, error) {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &Unit{
		id:             s.ID,
		defID:          s.DefID,
		factionID:      s.FactionID,
		role:           s.Role,
		playerIndex:    s.PlayerIndex,
		maxHealth:      s.MaxHealth,
		health:         s.Health,
		damage:         s.Damage,
		speed:          s.Speed,
		attackRange:    s.Range,
		attackSpeed:    s.AttackSpeed,
		radius:         s.Radius,
		pos:            s.Pos,
		moveTarget:     s.MoveTarget,
		hasMoveTarget:  s.HasMoveTarget,
		targetID:       s.TargetID,
		attacking:      s.Attacking,
		dead:           s.Dead,
		searchCooldown: s.SearchCooldown,
		attackCooldown: s.AttackCooldown,
		deathClock:     s.DeathClock,
	}, nil
}
