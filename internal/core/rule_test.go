package core

import (
	"math"
	"testing"
)

func TestDefaultRuleDeltas(t *testing.T) {
	in := Cell{0.5, 0.5, 0.5, 0.5}
	out := DefaultRule(in, 1)
	want := Cell{0.51, 0.495, 0.501, 0.5005}
	for i := range want {
		if math.Abs(float64(out[i]-want[i])) > 1e-6 {
			t.Fatalf("channel %d = %f, want %f", i, out[i], want[i])
		}
	}
}

func TestDefaultRuleClampsAtBoundaries(t *testing.T) {
	low := DefaultRule(Cell{0, 0, 0, 0}, -5)
	if low[Density] != 0 || low[Temperature] != 0 {
		t.Fatalf("low boundary escaped: %v", low)
	}
	high := DefaultRule(Cell{1, 1, 1, 1}, 5)
	for i, v := range high {
		if v > 1 {
			t.Fatalf("channel %d = %f above 1", i, v)
		}
	}
}

func TestRuleRegistry(t *testing.T) {
	if _, ok := Rules()[DefaultRuleName]; !ok {
		t.Fatal("default rule not registered")
	}
	names := RuleNames()
	if len(names) < 2 {
		t.Fatalf("expected at least two rules, got %v", names)
	}
	Register("", DefaultRule)
	Register("nil", nil)
	if _, ok := Rules()["nil"]; ok {
		t.Fatal("nil rule should be ignored")
	}
}
