// Package egyptian decomposes proper fractions into sums of distinct unit
// fractions using Fibonacci's greedy algorithm: at every step subtract the
// largest unit fraction not exceeding the remainder.
package egyptian

import (
	"errors"
	"math/big"
)

// ErrNotInUnitInterval reports an input outside the open interval (0, 1).
var ErrNotInUnitInterval = errors.New("egyptian: fraction must satisfy 0 < r < 1")

// Decompose expands r into distinct unit fractions whose sum is exactly r.
//
// The greedy choice at each step is 1/k with k = ceil(den/num), which
// strictly shrinks the remainder's numerator, so the loop terminates after
// at most num(r) steps.
//
// Parameters:
//   - r: a rational strictly between 0 and 1.
//
// Returns:
//   - []*big.Rat: the unit fractions, in decreasing order.
//   - error: ErrNotInUnitInterval when r is outside (0, 1).
func Decompose(r *big.Rat) ([]*big.Rat, error) {
	zero := new(big.Rat)
	one := big.NewRat(1, 1)
	if r.Cmp(zero) <= 0 || r.Cmp(one) >= 0 {
		return nil, ErrNotInUnitInterval
	}

	remainder := new(big.Rat).Set(r)
	var terms []*big.Rat
	for remainder.Sign() > 0 {
		// k = ceil(den/num) gives the largest 1/k <= remainder.
		k, m := new(big.Int).QuoRem(remainder.Denom(), remainder.Num(), new(big.Int))
		if m.Sign() != 0 {
			k.Add(k, big.NewInt(1))
		}

		term := new(big.Rat).SetFrac(big.NewInt(1), k)
		terms = append(terms, term)
		remainder.Sub(remainder, term)
	}
	return terms, nil
}
