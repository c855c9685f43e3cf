package bag

import (
	"math/rand"
	"testing"
)

// TestRandomBag_DrainsAllElements verifies every inserted element comes
// back exactly once.
func TestRandomBag_DrainsAllElements(t *testing.T) {
	b := NewWithSource[int](rand.New(rand.NewSource(1)))
	for i := 0; i < 10; i++ {
		b.Insert(i)
	}
	if b.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", b.Len())
	}

	seen := make(map[int]bool)
	for b.Len() > 0 {
		v, ok := b.RemoveRandom()
		if !ok {
			t.Fatal("RemoveRandom() failed on a non-empty bag")
		}
		if seen[v] {
			t.Fatalf("element %d removed twice", v)
		}
		seen[v] = true
	}
	if len(seen) != 10 {
		t.Errorf("drained %d distinct elements, want 10", len(seen))
	}
}

// TestRandomBag_Empty verifies removal from an empty bag reports false.
func TestRandomBag_Empty(t *testing.T) {
	b := New[string]()
	v, ok := b.RemoveRandom()
	if ok {
		t.Errorf("RemoveRandom() on empty bag = (%q, true), want ok=false", v)
	}
	if v != "" {
		t.Errorf("empty removal returned %q, want zero value", v)
	}
}

// TestRandomBag_SeededOrderIsReproducible verifies two bags with the same
// source drain in the same order.
func TestRandomBag_SeededOrderIsReproducible(t *testing.T) {
	fill := func(seed int64) []int {
		b := NewWithSource[int](rand.New(rand.NewSource(seed)))
		for i := 0; i < 8; i++ {
			b.Insert(i)
		}
		var order []int
		for {
			v, ok := b.RemoveRandom()
			if !ok {
				break
			}
			order = append(order, v)
		}
		return order
	}

	a, b := fill(42), fill(42)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed drained differently: %v vs %v", a, b)
		}
	}
}
