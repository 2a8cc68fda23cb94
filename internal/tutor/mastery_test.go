package tutor

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestUpdateMastery(t *testing.T) {
	orig := map[string]float64{"A": 0.5, "B": 0.98, "C": 0.7}
	got := UpdateMastery(orig, []string{"A", "B", "New"}, DefaultDelta)

	if !approx(got["A"], 0.55) {
		t.Errorf("A: got %v, want 0.55", got["A"])
	}
	if got["B"] != 1.0 {
		t.Errorf("B: got %v, want clamp to 1.0", got["B"])
	}
	if !approx(got["New"], 0.35) {
		t.Errorf("New: got %v, want 0.35", got["New"])
	}
	if got["C"] != 0.7 {
		t.Errorf("C: unstudied concept changed to %v", got["C"])
	}
	if orig["A"] != 0.5 || len(orig) != 3 {
		t.Errorf("input map modified: %v", orig)
	}
}

func TestUpdateMastery_NegativeDeltaClamps(t *testing.T) {
	got := UpdateMastery(map[string]float64{"A": 0.1}, []string{"A"}, -0.5)
	if got["A"] != 0 {
		t.Errorf("got %v, want 0", got["A"])
	}
}

func TestUpdateMastery_NilMap(t *testing.T) {
	got := UpdateMastery(nil, []string{"A"}, DefaultDelta)
	if !approx(got["A"], 0.35) {
		t.Errorf("got %v, want 0.35", got["A"])
	}
}

func TestSeedMastery(t *testing.T) {
	orig := map[string]float64{"A": 0.8}
	got := SeedMastery(orig, []string{"A", "B"})
	if got["A"] != 0.8 {
		t.Errorf("A: existing score overwritten: %v", got["A"])
	}
	if got["B"] != DefaultMastery {
		t.Errorf("B: got %v, want %v", got["B"], DefaultMastery)
	}
	if _, ok := orig["B"]; ok {
		t.Error("input map modified")
	}
}
