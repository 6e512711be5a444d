package core

import (
	"testing"
)

func TestRNGDeterminism(t *testing.T) {
	r1 := NewRNG(12345)
	r2 := NewRNG(12345)

	for i := 0; i < 100; i++ {
		if r1.Next() != r2.Next() {
			t.Fatalf("Same seed should produce identical sequences (diverged at %d)", i)
		}
	}
}

func TestRNGSeedsDiffer(t *testing.T) {
	r1 := NewRNG(1)
	r2 := NewRNG(2)

	same := 0
	for i := 0; i < 20; i++ {
		if r1.Next() == r2.Next() {
			same++
		}
	}
	if same == 20 {
		t.Error("Different seeds should produce different sequences")
	}
}

func TestRNGZeroSeed(t *testing.T) {
	// Zero would freeze a multiplicative generator's state at zero forever,
	// so it gets normalized.
	r := NewRNG(0)
	a := r.Next()
	b := r.Next()
	if a == b {
		t.Error("Zero-seeded RNG should still advance")
	}
}

func TestRNGIntn(t *testing.T) {
	r := NewRNG(42)

	for i := 0; i < 1000; i++ {
		v := r.Intn(10)
		if v < 0 || v >= 10 {
			t.Fatalf("Intn(10) should return [0, 10), got %d", v)
		}
	}

	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}

func TestRNGRange(t *testing.T) {
	r := NewRNG(42)

	for i := 0; i < 1000; i++ {
		v := r.Range(50, 750)
		if v < 50 || v >= 750 {
			t.Fatalf("Range(50, 750) should stay in bounds, got %v", v)
		}
	}
}

func TestRNGStateRoundTrip(t *testing.T) {
	r := NewRNG(7)
	r.Next()
	r.Next()

	state := r.State()
	want := r.Next()

	r2 := NewRNG(999)
	r2.SetState(state)
	if got := r2.Next(); got != want {
		t.Errorf("Restored state should continue the sequence, got %d, want %d", got, want)
	}
}
