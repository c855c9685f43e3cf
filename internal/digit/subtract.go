package digit

// Subtract returns the digit vector of lhs - rhs in the given base. The
// contract requires lhs >= rhs as integers; when the contract is violated the
// call fails with an InvalidOperandError.
//
// The operands are left-padded to a common length and the columns are scanned
// from least- to most-significant. A negative column triggers a borrow that
// walks leftward over a call-local copy of lhs, replacing each higher digit d
// with (d + base - 1) mod base and continuing while the replacement wraps to
// base - 1 (meaning the digit was zero and the borrow must keep moving left).
// The walk mutates the same padded buffer being scanned, so later columns see
// the borrows applied by earlier ones.
//
// Parameters:
//   - lhs: The minuend, most-significant digit first. Must satisfy lhs >= rhs.
//   - rhs: The subtrahend, most-significant digit first.
//   - base: The radix, in [MinBase, MaxBase].
//
// Returns:
//   - Vector: The difference lhs - rhs, with no useless leading zeros.
//   - error: An InvalidArgumentError for malformed inputs, or an
//     InvalidOperandError when lhs < rhs.
func Subtract(lhs, rhs Vector, base uint64) (Vector, error) {
	if err := validateBase(base); err != nil {
		return nil, err
	}
	if err := validateOperand("lhs", lhs, base); err != nil {
		return nil, err
	}
	if err := validateOperand("rhs", rhs, base); err != nil {
		return nil, err
	}
	return subtractRaw(lhs, rhs, base)
}

// subtractRaw is the unvalidated core of Subtract, shared with the Karatsuba
// cross-term computation. The borrow walk operates on the padded copy
// returned by padPair, never on caller-owned memory.
func subtractRaw(lhs, rhs Vector, base uint64) (Vector, error) {
	a, b := padPair(lhs, rhs)
	n := len(a)

	result := make(Vector, 0, n)
	for i := 1; i <= n; i++ {
		// Digits are bounded by MaxBase-1 so the signed difference fits int64.
		difference := int64(a[n-i]) - int64(b[n-i])
		if difference >= 0 {
			result = append(result, uint64(difference))
			continue
		}

		// Borrow from the more-significant columns. A digit that lands on
		// base-1 was zero before the decrement, so the borrow keeps walking.
		satisfied := false
		for j := i + 1; j <= n; j++ {
			a[n-j] = (a[n-j] + base - 1) % base
			if a[n-j] != base-1 {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return nil, &InvalidOperandError{Column: i}
		}
		result = append(result, uint64(difference+int64(base)))
	}
	reverse(result)
	return normalize(result), nil
}
