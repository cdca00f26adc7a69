// internal/defs/sectors.go
package defs

import (
	"fmt"
	"math"
)

// Sector names one of the 8 compass octants of the spawn ring.
type Sector string

const (
	SectorN  Sector = "N"
	SectorNE Sector = "NE"
	SectorE  Sector = "E"
	SectorSE Sector = "SE"
	SectorS  Sector = "S"
	SectorSW Sector = "SW"
	SectorW  Sector = "W"
	SectorNW Sector = "NW"
)

// sectorOrder lists the octants clockwise, starting from north.
// Углы экранные: ось Y направлена вниз, поэтому "по часовой" — это +угол.
var sectorOrder = []Sector{
	SectorN, SectorNE, SectorE, SectorSE, SectorS, SectorSW, SectorW, SectorNW,
}

// sectorStartAngles maps each sector to the start of its 45° span, in radians
// measured from east with screen-down Y. North is -π/2; the span is centered
// on the compass direction.
var sectorStartAngles = map[Sector]float64{
	SectorN:  -math.Pi/2 - math.Pi/8,
	SectorNE: -math.Pi/4 - math.Pi/8,
	SectorE:  0 - math.Pi/8,
	SectorSE: math.Pi/4 - math.Pi/8,
	SectorS:  math.Pi/2 - math.Pi/8,
	SectorSW: 3*math.Pi/4 - math.Pi/8,
	SectorW:  math.Pi - math.Pi/8,
	SectorNW: 5*math.Pi/4 - math.Pi/8,
}

// SectorSpan returns the angular span [start, end) of the given sector.
// End совпадает с началом следующего сектора по часовой стрелке.
func SectorSpan(s Sector) (start, end float64, err error) {
	start, ok := sectorStartAngles[s]
	if !ok {
		return 0, 0, fmt.Errorf("unknown sector %q", s)
	}
	return start, start + math.Pi/4, nil
}

// playerSectors maps a player count to the sectors assigned to the player
// slots, spread as evenly as the octant grid allows.
var playerSectors = map[int][]Sector{
	2: {SectorN, SectorS},
	3: {SectorN, SectorSE, SectorSW},
	4: {SectorN, SectorE, SectorS, SectorW},
	5: {SectorN, SectorE, SectorSE, SectorSW, SectorW},
	6: {SectorN, SectorNE, SectorSE, SectorS, SectorSW, SectorNW},
	7: {SectorN, SectorNE, SectorE, SectorSE, SectorS, SectorSW, SectorW},
	8: {SectorN, SectorNE, SectorE, SectorSE, SectorS, SectorSW, SectorW, SectorNW},
}

// SectorsForPlayers returns the sector assigned to each player slot for the
// given player count. Counts outside [2,8] fall back to the full ring.
func SectorsForPlayers(n int) []Sector {
	if s, ok := playerSectors[n]; ok {
		return s
	}
	return sectorOrder
}
