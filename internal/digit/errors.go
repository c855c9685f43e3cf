package digit

import "fmt"

// InvalidArgumentError reports a malformed input: an empty digit vector, a
// digit outside [0, base), or a base outside the supported range. It
// corresponds to a caller bug rather than a runtime condition, so it is never
// retried.
type InvalidArgumentError struct {
	// Operand identifies the rejected input ("lhs", "rhs", "base", "vector").
	Operand string
	// Message explains the specific violation.
	Message string
}

// Error returns the formatted message for an InvalidArgumentError.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Operand, e.Message)
}

// InvalidOperandError reports a Subtract call whose minuend is smaller than
// its subtrahend. The condition is detected when the borrow walk runs off the
// most-significant end of the vector, which is the observable symptom of
// lhs < rhs.
type InvalidOperandError struct {
	// Column is the 1-based column (counting from the least-significant
	// digit) whose borrow could not be satisfied.
	Column int
}

// Error returns the formatted message for an InvalidOperandError.
func (e *InvalidOperandError) Error() string {
	return fmt.Sprintf("invalid operand: borrow at column %d exceeds the vector (lhs < rhs)", e.Column)
}
