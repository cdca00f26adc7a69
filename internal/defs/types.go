// internal/defs/types.go
package defs

// Role defines the combat role of a unit archetype.
type Role string

const (
	RoleMelee   Role = "MELEE"
	RoleRanged  Role = "RANGED"
	RoleSupport Role = "SUPPORT"
)

// Visuals holds the presentation hints attached to a definition.
type Visuals struct {
	StrokeWidth  float64 `json:"stroke_width"`
	RadiusFactor float64 `json:"radius_factor"`
}
