package digit

// Add returns the digit vector of lhs + rhs in the given base.
//
// Both operands are left-padded with zero digits to a common length, then the
// columns are scanned from least- to most-significant, propagating the carry.
// A final non-zero carry becomes one additional high-order digit. The result
// carries no useless leading zeros.
//
// Parameters:
//   - lhs: The first addend, most-significant digit first.
//   - rhs: The second addend, most-significant digit first.
//   - base: The radix, in [MinBase, MaxBase].
//
// Returns:
//   - Vector: The sum lhs + rhs.
//   - error: An InvalidArgumentError if either operand or the base is malformed.
func Add(lhs, rhs Vector, base uint64) (Vector, error) {
	if err := validateBase(base); err != nil {
		return nil, err
	}
	if err := validateOperand("lhs", lhs, base); err != nil {
		return nil, err
	}
	if err := validateOperand("rhs", rhs, base); err != nil {
		return nil, err
	}
	return addRaw(lhs, rhs, base), nil
}

// addRaw is the unvalidated core of Add, shared with the Karatsuba recursion.
// Operands may have unequal lengths; digits must already be valid base digits.
func addRaw(lhs, rhs Vector, base uint64) Vector {
	a, b := padPair(lhs, rhs)
	n := len(a)

	// Digits are emitted least-significant first and reversed at the end to
	// avoid quadratic prepending.
	result := make(Vector, 0, n+1)
	var carry uint64
	for i := 1; i <= n; i++ {
		column := a[n-i] + b[n-i] + carry
		result = append(result, column%base)
		carry = column / base
	}
	if carry != 0 {
		result = append(result, carry)
	}
	reverse(result)
	return normalize(result)
}
