//go:build gmp

// This file provides a GMP-backed multiplication strategy, conditionally
// compiled with the "gmp" build tag. The build tag architecture ensures that:
//   - Projects can build without GMP (the default, using the pure-Go strategies)
//   - GMP support is opt-in, requiring: go build -tags=gmp
//   - The codebase remains portable across systems without libgmp installed
//
// System Requirements for GMP:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp
//   - Windows: Requires MinGW or WSL with libgmp

package digit

import (
	"context"

	"github.com/ncw/gmp"
)

func init() {
	RegisterMultiplier("gmp", func() Multiplier { return GMPMultiplier{} })
}

// GMPMultiplier converts the operands to GMP integers, multiplies with
// libgmp's assembly-optimized routines, and converts the product back to
// digits. Like BigIntMultiplier it pays O(n²) for the radix conversion, so it
// serves as an additional independent oracle rather than a fast path.
type GMPMultiplier struct{}

// Name returns the name of the strategy.
func (GMPMultiplier) Name() string {
	return "GMP (Radix Conversion)"
}

// Product computes lhs * rhs through libgmp.
func (GMPMultiplier) Product(ctx context.Context, report ProgressFunc, lhs, rhs Vector, base uint64, opts Options) (Vector, error) {
	if err := validateBase(base); err != nil {
		return nil, err
	}
	if err := validateOperand("lhs", lhs, base); err != nil {
		return nil, err
	}
	if err := validateOperand("rhs", rhs, base); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report = nopProgress(report)
	report(0)

	b := new(gmp.Int).SetUint64(base)
	toGmp := func(v Vector) *gmp.Int {
		z := new(gmp.Int)
		tmp := new(gmp.Int)
		for _, d := range v {
			z.Mul(z, b)
			z.Add(z, tmp.SetUint64(d))
		}
		return z
	}

	x := toGmp(lhs)
	y := toGmp(rhs)
	report(0.5)
	z := x.Mul(x, y)

	if z.Sign() == 0 {
		report(1)
		return Vector{0}, nil
	}
	rem := new(gmp.Int)
	var out Vector
	for z.Sign() > 0 {
		z.DivMod(z, b, rem)
		out = append(out, rem.Uint64())
	}
	reverse(out)
	report(1)
	return out, nil
}
