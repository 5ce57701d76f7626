package rng

import (
	"errors"
	"testing"
)

func TestSameSeedSameStream(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 1000; i++ {
		x := a.Float32(Float32Range{Min: 0, Max: 1})
		y := b.Float32(Float32Range{Min: 0, Max: 1})
		if x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a, b := New(1), New(2)
	same := 0
	for i := 0; i < 64; i++ {
		if a.IntN(1<<30) == b.IntN(1<<30) {
			same++
		}
	}
	if same == 64 {
		t.Fatalf("seeds 1 and 2 produced identical streams")
	}
}

func TestIntIsInclusive(t *testing.T) {
	r := New(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := r.Int(IntRange{Min: 1, Max: 4})
		if v < 1 || v > 4 {
			t.Fatalf("value %d outside 1..=4", v)
		}
		seen[v] = true
	}
	for v := 1; v <= 4; v++ {
		if !seen[v] {
			t.Errorf("value %d never drawn", v)
		}
	}
}

func TestFloat32Bounds(t *testing.T) {
	r := New(3)
	g := Float32Range{Min: 0.2, Max: 0.4}
	for i := 0; i < 5000; i++ {
		v := r.Float32(g)
		if v < g.Min || v > g.Max {
			t.Fatalf("value %v outside %v", v, g)
		}
	}
	if got := r.Float32(Float32Range{Min: 1, Max: 1}); got != 1 {
		t.Fatalf("degenerate range = %v, want 1", got)
	}
}

func TestChooseEmptyPool(t *testing.T) {
	r := New(0)
	if _, err := Choose[int](r, nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
	v, err := Choose(r, []string{"only"})
	if err != nil || v != "only" {
		t.Fatalf("choose = (%q, %v), want (only, nil)", v, err)
	}
}

func TestIntNNonPositive(t *testing.T) {
	r := New(0)
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
	if _, err := r.Index(0); !errors.Is(err, ErrEmpty) {
		t.Fatalf("Index(0) err = %v, want ErrEmpty", err)
	}
}
