package defs

import (
	"os"
	"path/filepath"
	"testing"
)

const unitsJSON = `[
  {"id": "UNIT_WARRIOR", "name": "Warrior", "role": "MELEE",
   "health": 150, "damage": 65, "speed": 90, "range": 30,
   "attack_speed": 1.2, "spawn_weight": 3,
   "visuals": {"stroke_width": 2, "radius_factor": 1.0}},
  {"id": "UNIT_SLINGER", "name": "Slinger", "role": "RANGED",
   "health": 90, "damage": 40, "speed": 85, "range": 120,
   "attack_speed": 1.4, "spawn_weight": 2,
   "visuals": {"stroke_width": 1, "radius_factor": 0.9}}
]`

const factionsJSON = `[
  {"id": "FACTION_NETRUNNERS", "name": "Netrunners",
   "color": [120, 220, 232, 255],
   "multipliers": {"health": 1.0, "damage": 1.0, "speed": 1.0, "range": 1.0}},
  {"id": "FACTION_CHROME_DOGS", "name": "Chrome Dogs",
   "color": [232, 120, 96, 255],
   "multipliers": {"health": 1.2, "damage": 1.1, "speed": 0.85, "range": 1.0}}
]`

func writeDefs(t *testing.T) (unitsPath, factionsPath string) {
	t.Helper()
	dir := t.TempDir()
	unitsPath = filepath.Join(dir, "units.json")
	factionsPath = filepath.Join(dir, "factions.json")
	if err := os.WriteFile(unitsPath, []byte(unitsJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(factionsPath, []byte(factionsJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return unitsPath, factionsPath
}

func TestLoadLibrary_ParsesDefinitionTables(t *testing.T) {
	unitsPath, factionsPath := writeDefs(t)
	lib, err := LoadLibrary(unitsPath, factionsPath)
	if err != nil {
		t.Fatalf("LoadLibrary failed: %v", err)
	}

	warrior, ok := lib.Unit("UNIT_WARRIOR")
	if !ok {
		t.Fatal("UNIT_WARRIOR not found")
	}
	if warrior.Health != 150 || warrior.Damage != 65 || warrior.Range != 30 {
		t.Fatalf("warrior stats mismatch: %+v", warrior)
	}
	if warrior.Role != RoleMelee {
		t.Fatalf("warrior role = %q, want %q", warrior.Role, RoleMelee)
	}
	if warrior.AttackSpeed != 1.2 {
		t.Fatalf("warrior attack speed = %v, want 1.2", warrior.AttackSpeed)
	}

	slinger, ok := lib.Unit("UNIT_SLINGER")
	if !ok {
		t.Fatal("UNIT_SLINGER not found")
	}
	if slinger.Role != RoleRanged || slinger.Range != 120 {
		t.Fatalf("slinger mismatch: %+v", slinger)
	}

	dogs, ok := lib.Faction("FACTION_CHROME_DOGS")
	if !ok {
		t.Fatal("FACTION_CHROME_DOGS not found")
	}
	if dogs.Multipliers.Health != 1.2 || dogs.Multipliers.Speed != 0.85 {
		t.Fatalf("faction multipliers mismatch: %+v", dogs.Multipliers)
	}
	if dogs.Color != [4]uint8{232, 120, 96, 255} {
		t.Fatalf("faction color mismatch: %v", dogs.Color)
	}
}

func TestLoadLibrary_MissingFileFails(t *testing.T) {
	_, factionsPath := writeDefs(t)
	if _, err := LoadLibrary(filepath.Join(t.TempDir(), "nope.json"), factionsPath); err == nil {
		t.Fatal("expected an error for a missing units file")
	}
}

func TestLoadLibrary_MalformedJSONFails(t *testing.T) {
	dir := t.TempDir()
	unitsPath := filepath.Join(dir, "units.json")
	if err := os.WriteFile(unitsPath, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, factionsPath := writeDefs(t)
	if _, err := LoadLibrary(unitsPath, factionsPath); err == nil {
		t.Fatal("expected an error for malformed unit definitions")
	}
}

func TestMultipliers_UnknownFactionIsNeutral(t *testing.T) {
	lib := NewLibrary(nil, nil)
	m := lib.Multipliers("FACTION_NOPE")
	if m != Neutral() {
		t.Fatalf("unknown faction must get neutral multipliers, got %+v", m)
	}
}

func TestUnits_OrderedByID(t *testing.T) {
	lib := NewLibrary([]UnitDefinition{
		{ID: "UNIT_C"}, {ID: "UNIT_A"}, {ID: "UNIT_B"},
	}, nil)

	got := lib.Units()
	want := []string{"UNIT_A", "UNIT_B", "UNIT_C"}
	if len(got) != len(want) {
		t.Fatalf("got %d units, want %d", len(got), len(want))
	}
	for i, def := range got {
		if def.ID != want[i] {
			t.Fatalf("units[%d] = %q, want %q", i, def.ID, want[i])
		}
	}
}
