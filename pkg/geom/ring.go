package geom

import "math"

// FromPolar converts a (radius, angle) pair around center into a point.
// Angle is in radians, measured counter-clockwise from east.
func FromPolar(center Vec2, radius, angle float64) Vec2 {
	return Vec2{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// OctagonPoints returns the 8 vertices of a regular octagon inscribed in the
// circle of the given radius around center. The first vertex sits on the
// east axis and the rest follow counter-clockwise.
func OctagonPoints(center Vec2, radius float64) [8]Vec2 {
	var pts [8]Vec2
	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		pts[i] = FromPolar(center, radius, angle)
	}
	return pts
}
