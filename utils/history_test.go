package utils

import (
	"fmt"
	"testing"
)

func TestHistoryDetectsStaticState(t *testing.T) {
	var h History
	for i := range 4 {
		if h.Stagnant("same") && i < 3 {
			t.Fatalf("stagnant after only %d generations", i)
		}
		h.Push("same")
	}
	if !h.Stagnant("same") {
		t.Fatal("static state not detected")
	}
}

func TestHistoryDetectsShortCycle(t *testing.T) {
	var h History
	// Period-2 oscillation: a, b, a, b, ...
	h.Push("a")
	h.Push("b")
	h.Push("a")
	if !h.Stagnant("b") {
		t.Fatal("period-2 cycle not detected")
	}
	if !h.Stagnant("a") {
		t.Fatal("period-3 lookback missed a repeat")
	}
}

func TestHistoryIgnoresFreshStates(t *testing.T) {
	var h History
	for i := range 10 {
		hash := fmt.Sprintf("gen-%d", i)
		if h.Stagnant(hash) {
			t.Fatalf("fresh state %q flagged stagnant", hash)
		}
		h.Push(hash)
	}
}

func TestHistoryReset(t *testing.T) {
	var h History
	for range 5 {
		h.Push("same")
	}
	h.Reset()
	if h.Stagnant("same") {
		t.Fatal("reset history still reports stagnation")
	}
}
