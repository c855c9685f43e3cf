// Package bag implements a random bag: a collection whose removal order is
// uniformly random. The TUI uses one to hand out worked examples without
// repeating any until the bag is refilled.
package bag

import "math/rand"

// RandomBag holds elements and removes them in uniformly random order.
// It is not safe for concurrent use.
type RandomBag[T any] struct {
	elems []T
	rng   *rand.Rand
}

// New creates an empty bag seeded from the global random source.
func New[T any]() *RandomBag[T] {
	return NewWithSource[T](rand.New(rand.NewSource(rand.Int63())))
}

// NewWithSource creates an empty bag drawing randomness from rng, which
// makes removal order reproducible in tests.
func NewWithSource[T any](rng *rand.Rand) *RandomBag[T] {
	return &RandomBag[T]{rng: rng}
}

// Insert adds item to the bag.
func (b *RandomBag[T]) Insert(item T) {
	b.elems = append(b.elems, item)
}

// Len reports the number of elements currently in the bag.
func (b *RandomBag[T]) Len() int {
	return len(b.elems)
}

// RemoveRandom extracts a uniformly random element.
//
// Returns:
//   - T: the removed element, or the zero value when the bag is empty.
//   - bool: false when the bag is empty.
func (b *RandomBag[T]) RemoveRandom() (T, bool) {
	if len(b.elems) == 0 {
		var zero T
		return zero, false
	}
	i := b.rng.Intn(len(b.elems))
	last := len(b.elems) - 1
	b.elems[i], b.elems[last] = b.elems[last], b.elems[i]
	item := b.elems[last]
	b.elems = b.elems[:last]
	return item, true
}
