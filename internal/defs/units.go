// internal/defs/units.go
package defs

// UnitDefinition holds all the static data for a specific unit archetype.
type UnitDefinition struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Role        Role    `json:"role"`
	Health      int     `json:"health"`
	Damage      int     `json:"damage"`
	Speed       float64 `json:"speed"`
	Range       int     `json:"range"`
	AttackSpeed float64 `json:"attack_speed"` // атак в секунду
	SpawnWeight int     `json:"spawn_weight"` // вес для автоспавна
	Visuals     Visuals `json:"visuals"`
}
