package digit

// ─────────────────────────────────────────────────────────────────────────────
// Performance Tuning Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultParallelThreshold is the default operand length (in digits) at
	// which the three Karatsuba sub-products are computed on separate
	// goroutines. Below this length the cost of goroutine creation exceeds
	// the benefit; each halving of the operand spawns three more tasks, so
	// the threshold also bounds the total goroutine count.
	DefaultParallelThreshold = 1024

	// SchoolbookPreferredLimit is the operand length up to which schoolbook
	// multiplication typically beats Karatsuba on real hardware: the
	// recursion's extra additions, subtractions, and allocations dominate
	// for short operands. Used by the CLI to suggest a strategy, never to
	// silently switch algorithms.
	SchoolbookPreferredLimit = 32
)
