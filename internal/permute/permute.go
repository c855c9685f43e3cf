// Package permute provides an iterative permutation generator based on
// Heap's algorithm. It enumerates every ordering of a slice without
// recursion, yielding one permutation per call so callers can stream
// through large orbits without materializing them all.
package permute

// Generator walks the permutations of a slice using Heap's algorithm.
// The zero value is not usable; construct one with New.
//
// Each call to Next returns an independent copy, so callers may retain
// or mutate the returned slices freely.
type Generator[T any] struct {
	orig    []T
	work    []T
	counts  []int
	index   int
	started bool
}

// New creates a generator over the elements of items. The input slice is
// copied; later changes to it do not affect the enumeration.
//
// Parameters:
//   - items: the elements to permute. An empty slice yields exactly one
//     (empty) permutation.
//
// Returns:
//   - *Generator[T]: a generator positioned before the first permutation.
func New[T any](items []T) *Generator[T] {
	g := &Generator[T]{orig: make([]T, len(items))}
	copy(g.orig, items)
	g.Reset()
	return g
}

// Next advances to the next permutation.
//
// Returns:
//   - []T: a fresh copy of the current permutation, or nil when exhausted.
//   - bool: false once all n! orderings have been produced.
func (g *Generator[T]) Next() ([]T, bool) {
	if !g.started {
		g.started = true
		return g.snapshot(), true
	}

	for g.index < len(g.work) {
		if g.counts[g.index] < g.index {
			if g.index%2 == 0 {
				g.work[0], g.work[g.index] = g.work[g.index], g.work[0]
			} else {
				g.work[g.counts[g.index]], g.work[g.index] = g.work[g.index], g.work[g.counts[g.index]]
			}
			g.counts[g.index]++
			g.index = 0
			return g.snapshot(), true
		}
		g.counts[g.index] = 0
		g.index++
	}
	return nil, false
}

// Reset rewinds the generator to the first permutation of its original
// elements.
func (g *Generator[T]) Reset() {
	g.work = make([]T, len(g.orig))
	copy(g.work, g.orig)
	g.counts = make([]int, len(g.orig))
	g.index = 0
	g.started = false
}

func (g *Generator[T]) snapshot() []T {
	out := make([]T, len(g.work))
	copy(out, g.work)
	return out
}

// All collects every permutation of items into a slice. Intended for
// small inputs; the result holds n! slices.
func All[T any](items []T) [][]T {
	g := New(items)
	var out [][]T
	for {
		p, ok := g.Next()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}
