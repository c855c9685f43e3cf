// Package digit implements arbitrary-precision arithmetic on radix digit
// vectors: ordered, most-significant-first sequences of digits in a
// configurable base. The package provides linear-time addition and
// subtraction with carry/borrow propagation and sub-quadratic Karatsuba
// multiplication, plus a schoolbook multiplier used as a correctness oracle.
//
// All operations are pure: inputs are never mutated, and every call returns
// a freshly allocated result vector.
package digit

import (
	"fmt"
	"strconv"
	"strings"
)

// Vector is an arbitrary-precision non-negative integer encoded as digits in
// some base, most-significant digit first. Every digit must lie in [0, base).
// A valid vector has at least one digit; leading zero digits are accepted as
// input but never produced by the arithmetic operations (beyond the single
// digit required to represent zero itself).
type Vector []uint64

const (
	// MinBase is the smallest supported radix.
	MinBase = 2

	// MaxBase is the largest supported radix. The bound guarantees that a
	// single digit product plus carries always fits in a uint64 column
	// accumulator.
	MaxBase = 1 << 32
)

// validateBase checks that base lies in [MinBase, MaxBase].
func validateBase(base uint64) error {
	if base < MinBase || base > MaxBase {
		return &InvalidArgumentError{
			Operand: "base",
			Message: fmt.Sprintf("base %d outside supported range [%d, %d]", base, uint64(MinBase), uint64(MaxBase)),
		}
	}
	return nil
}

// validateOperand checks that v is non-empty and that every digit is a valid
// digit in the given base. The operand name is carried into the error for
// diagnostics.
func validateOperand(name string, v Vector, base uint64) error {
	if len(v) == 0 {
		return &InvalidArgumentError{
			Operand: name,
			Message: "digit vector must contain at least one digit",
		}
	}
	for i, d := range v {
		if d >= base {
			return &InvalidArgumentError{
				Operand: name,
				Message: fmt.Sprintf("digit %d at index %d is not a valid base-%d digit", d, i, base),
			}
		}
	}
	return nil
}

// padPair returns copies of lhs and rhs left-padded with zero digits to a
// common length. Both returned vectors are freshly allocated: callers are
// free to mutate them (Subtract's borrow walk relies on this).
func padPair(lhs, rhs Vector) (Vector, Vector) {
	n := len(lhs)
	if len(rhs) > n {
		n = len(rhs)
	}
	a := make(Vector, n)
	copy(a[n-len(lhs):], lhs)
	b := make(Vector, n)
	copy(b[n-len(rhs):], rhs)
	return a, b
}

// shiftLeft multiplies v by base^k by appending k zero digits at the
// low-order end.
func shiftLeft(v Vector, k int) Vector {
	out := make(Vector, len(v)+k)
	copy(out, v)
	return out
}

// reverse flips v in place. The column scans produce digits least-significant
// first; reversing restores the conventional most-significant-first order.
func reverse(v Vector) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}

// normalize strips useless leading zero digits, keeping at least one digit so
// that zero remains representable.
func normalize(v Vector) Vector {
	i := 0
	for i < len(v)-1 && v[i] == 0 {
		i++
	}
	return v[i:]
}

// Normalize returns v without useless leading zero digits. The result always
// has at least one digit; a nil or empty vector normalizes to [0].
func Normalize(v Vector) Vector {
	if len(v) == 0 {
		return Vector{0}
	}
	return normalize(v)
}

// Compare returns -1, 0, or +1 depending on whether the integer represented
// by lhs is less than, equal to, or greater than the one represented by rhs.
// Leading zero digits are ignored.
func Compare(lhs, rhs Vector) int {
	a := Normalize(lhs)
	b := Normalize(rhs)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// ParseVector parses a comma-separated list of digits ("1,3,3,7") into a
// Vector, most-significant digit first. It validates the syntax only; digit
// range checks against a base happen in the arithmetic entry points.
func ParseVector(s string) (Vector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &InvalidArgumentError{Operand: "vector", Message: "empty digit list"}
	}
	parts := strings.Split(s, ",")
	v := make(Vector, len(parts))
	for i, p := range parts {
		d, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, &InvalidArgumentError{
				Operand: "vector",
				Message: fmt.Sprintf("invalid digit %q at index %d", strings.TrimSpace(p), i),
			}
		}
		v[i] = d
	}
	return v, nil
}

// FormatVector renders v as a comma-separated digit list, the inverse of
// ParseVector.
func FormatVector(v Vector) string {
	var sb strings.Builder
	for i, d := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(d, 10))
	}
	return sb.String()
}
