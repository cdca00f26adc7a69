// internal/defs/factions.go
package defs

// StatMultipliers scale the base stats of every unit a faction fields.
// A value of 1.0 leaves the stat untouched.
type StatMultipliers struct {
	Health float64 `json:"health"`
	Damage float64 `json:"damage"`
	Speed  float64 `json:"speed"`
	Range  float64 `json:"range"`
}

// Neutral returns the identity multiplier set.
func Neutral() StatMultipliers {
	return StatMultipliers{Health: 1, Damage: 1, Speed: 1, Range: 1}
}

// FactionDefinition holds the static data for a playable faction.
type FactionDefinition struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Color       [4]uint8        `json:"color"` // RGBA
	Multipliers StatMultipliers `json:"multipliers"`
}
