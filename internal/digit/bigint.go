package digit

import "math/big"

// ToBig converts v, interpreted in the given base, to a *big.Int via Horner
// evaluation. The base is assumed valid; digits are not range-checked.
func ToBig(v Vector, base uint64) *big.Int {
	b := new(big.Int).SetUint64(base)
	z := new(big.Int)
	for _, d := range v {
		z.Mul(z, b)
		z.Add(z, new(big.Int).SetUint64(d))
	}
	return z
}

// FromBig converts a non-negative *big.Int to its digit vector in the given
// base by repeated division. Zero converts to the single-digit vector [0].
func FromBig(z *big.Int, base uint64) Vector {
	if z.Sign() == 0 {
		return Vector{0}
	}
	b := new(big.Int).SetUint64(base)
	rem := new(big.Int)
	cur := new(big.Int).Set(z)

	// Digits come out least-significant first.
	var out Vector
	for cur.Sign() > 0 {
		cur.DivMod(cur, b, rem)
		out = append(out, rem.Uint64())
	}
	reverse(out)
	return out
}
