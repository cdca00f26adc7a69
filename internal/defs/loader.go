// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
)

// Library holds the loaded definition tables. It is built once at startup;
// game code receives it instead of reaching for globals.
type Library struct {
	units    map[string]UnitDefinition
	factions map[string]FactionDefinition
	warned   map[string]bool // фракции, по которым уже был warning
}

// NewLibrary builds a library from already-parsed definitions. Tests use this
// to avoid touching the filesystem.
func NewLibrary(units []UnitDefinition, factions []FactionDefinition) *Library {
	l := &Library{
		units:    make(map[string]UnitDefinition),
		factions: make(map[string]FactionDefinition),
		warned:   make(map[string]bool),
	}
	for _, def := range units {
		l.units[def.ID] = def
	}
	for _, def := range factions {
		l.factions[def.ID] = def
	}
	return l
}

// LoadLibrary reads the unit and faction configuration files and populates a library.
func LoadLibrary(unitsPath, factionsPath string) (*Library, error) {
	unitData, err := os.ReadFile(unitsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit definitions file: %w", err)
	}
	var unitDefs []UnitDefinition
	if err := json.Unmarshal(unitData, &unitDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal unit definitions: %w", err)
	}

	factionData, err := os.ReadFile(factionsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read faction definitions file: %w", err)
	}
	var factionDefs []FactionDefinition
	if err := json.Unmarshal(factionData, &factionDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal faction definitions: %w", err)
	}

	l := NewLibrary(unitDefs, factionDefs)
	fmt.Printf("Loaded %d unit and %d faction definitions\n", len(l.units), len(l.factions))
	return l, nil
}

// Unit looks up a unit archetype definition by ID.
func (l *Library) Unit(id string) (UnitDefinition, bool) {
	def, ok := l.units[id]
	return def, ok
}

// Faction looks up a faction definition by ID.
func (l *Library) Faction(id string) (FactionDefinition, bool) {
	def, ok := l.factions[id]
	return def, ok
}

// Multipliers returns the stat multipliers for a faction. Незарегистрированная
// фракция получает нейтральные множители, это не ошибка.
func (l *Library) Multipliers(factionID string) StatMultipliers {
	if def, ok := l.factions[factionID]; ok {
		return def.Multipliers
	}
	if !l.warned[factionID] {
		l.warned[factionID] = true
		log.Printf("unknown faction %q, using neutral multipliers", factionID)
	}
	return Neutral()
}

// UnitIDs returns every known archetype ID in ascending order.
func (l *Library) UnitIDs() []string {
	ids := make([]string, 0, len(l.units))
	for id := range l.units {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Units returns every unit definition, ordered by ID so that seeded random
// draws over the table stay reproducible.
func (l *Library) Units() []UnitDefinition {
	defs := make([]UnitDefinition, 0, len(l.units))
	for _, id := range l.UnitIDs() {
		defs = append(defs, l.units[id])
	}
	return defs
}

// Factions returns every faction definition. Order is not specified.
func (l *Library) Factions() []FactionDefinition {
	defs := make([]FactionDefinition, 0, len(l.factions))
	for _, def := range l.factions {
		defs = append(defs, def)
	}
	return defs
}
