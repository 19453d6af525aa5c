package util

import (
	"testing"
)

func TestFoldSeedIsStable(t *testing.T) {
	a := FoldSeed(1, 2, 3)
	b := FoldSeed(1, 2, 3)
	if a != b {
		t.Errorf("FoldSeed not deterministic: %d vs %d", a, b)
	}
	if FoldSeed(1, 2, 3) == FoldSeed(3, 2, 1) {
		t.Errorf("FoldSeed ignores ordering")
	}
	if FoldSeed(0) == FoldSeed(0, 0) {
		t.Errorf("FoldSeed ignores length")
	}
}

func TestNewRandIsReproducible(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 100; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
	c := NewRand(43)
	d := NewRand(42)
	same := true
	for i := 0; i < 10; i++ {
		if c.Uint64() != d.Uint64() {
			same = false
		}
	}
	if same {
		t.Errorf("different seeds produced identical streams")
	}
}

func TestNewSeedVaries(t *testing.T) {
	seen := map[uint64]bool{}
	for i := 0; i < 16; i++ {
		seen[NewSeed()] = true
	}
	// The wall clock moves between calls; a handful of draws should not
	// all collide.
	if len(seen) < 2 {
		t.Errorf("NewSeed returned %d distinct values over 16 calls", len(seen))
	}
}
