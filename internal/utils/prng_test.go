package utils

import (
	"testing"

	"go-arena-clash/internal/defs"
)

func TestPRNG_SameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}

func TestFloatRange_StaysInBounds(t *testing.T) {
	s := NewPRNGService(1)
	for i := 0; i < 1000; i++ {
		v := s.FloatRange(280, 400)
		if v < 280 || v >= 400 {
			t.Fatalf("FloatRange produced %v outside [280, 400)", v)
		}
	}
}

func TestJitter_StaysInSpread(t *testing.T) {
	s := NewPRNGService(1)
	for i := 0; i < 1000; i++ {
		v := s.Jitter(10)
		if v < -10 || v >= 10 {
			t.Fatalf("Jitter produced %v outside [-10, 10)", v)
		}
	}
}

func TestDamageRoll_StaysAroundBase(t *testing.T) {
	s := NewPRNGService(1)
	for i := 0; i < 1000; i++ {
		dmg := s.DamageRoll(65, 0.8, 1.2)
		if dmg < 52 || dmg > 78 {
			t.Fatalf("DamageRoll produced %d outside [52, 78]", dmg)
		}
	}
}

func TestChooseWeighted_RespectsWeights(t *testing.T) {
	table := []defs.UnitDefinition{
		{ID: "UNIT_COMMON", SpawnWeight: 9},
		{ID: "UNIT_RARE", SpawnWeight: 1},
	}
	s := NewPRNGService(1)

	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		counts[s.ChooseWeighted(table)]++
	}
	if counts["UNIT_COMMON"] == 0 || counts["UNIT_RARE"] == 0 {
		t.Fatalf("both entries must be drawn, got %v", counts)
	}
	if counts["UNIT_COMMON"] <= counts["UNIT_RARE"] {
		t.Fatalf("the heavier entry must dominate, got %v", counts)
	}
}

func TestChooseWeighted_Degenerate(t *testing.T) {
	s := NewPRNGService(1)
	if got := s.ChooseWeighted(nil); got != "" {
		t.Fatalf("empty table must yield an empty ID, got %q", got)
	}
	zeroed := []defs.UnitDefinition{{ID: "UNIT_ONLY", SpawnWeight: 0}}
	if got := s.ChooseWeighted(zeroed); got != "UNIT_ONLY" {
		t.Fatalf("zero total weight must fall back to the first entry, got %q", got)
	}
}
