package digit

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Options tunes the multiplication algorithms.
type Options struct {
	// ParallelThreshold is the operand length (in digits, after padding) at
	// which the three Karatsuba sub-products are computed concurrently.
	// Zero disables parallelism.
	ParallelThreshold int
}

// Multiply returns the digit vector of lhs * rhs in the given base using
// Karatsuba's algorithm. It is the convenience form of MultiplyWithOptions
// with a background context and default options.
func Multiply(lhs, rhs Vector, base uint64) (Vector, error) {
	return MultiplyWithOptions(context.Background(), lhs, rhs, base, Options{})
}

// MultiplyWithOptions returns the digit vector of lhs * rhs in the given
// base, most-significant digit first, with no useless leading zeros.
//
// The algorithm pads both operands to a common length n and recurses:
// operands are split into a high part of m0 = ceil(n/2) digits and a low part
// of m1 = floor(n/2) digits, three sub-products are computed recursively, and
// the result is recombined as
//
//	p0*base^(2*m1) + (p1 - p0 - p2)*base^m1 + p2
//
// where the positional shifts append zero digits at the low-order end. The
// recursion bottoms out at single digits. With opts.ParallelThreshold > 0 the
// three sub-products of sufficiently long operands run concurrently; results
// are identical to the sequential path.
//
// Parameters:
//   - ctx: Context consulted between recursion levels for cancellation.
//   - lhs: The first factor, most-significant digit first. Must be non-empty.
//   - rhs: The second factor, most-significant digit first. Must be non-empty.
//   - base: The radix, in [MinBase, MaxBase].
//   - opts: Algorithm tuning options.
//
// Returns:
//   - Vector: The product lhs * rhs.
//   - error: An InvalidArgumentError for malformed inputs, or the context
//     error if ctx is canceled mid-recursion.
func MultiplyWithOptions(ctx context.Context, lhs, rhs Vector, base uint64, opts Options) (Vector, error) {
	if err := validateBase(base); err != nil {
		return nil, err
	}
	if err := validateOperand("lhs", lhs, base); err != nil {
		return nil, err
	}
	if err := validateOperand("rhs", rhs, base); err != nil {
		return nil, err
	}
	return karatsuba(ctx, lhs, rhs, base, opts)
}

// karatsuba is the recursive core of MultiplyWithOptions. Inputs are trusted:
// non-empty, digits below base.
func karatsuba(ctx context.Context, lhs, rhs Vector, base uint64, opts Options) (Vector, error) {
	a, b := padPair(lhs, rhs)
	n := len(a)

	// Base case: a single digit pair multiplies directly into at most two
	// digits. MaxBase keeps the product within uint64.
	if n == 1 {
		p := a[0] * b[0]
		if p < base {
			return Vector{p}, nil
		}
		return Vector{p / base, p % base}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// High parts take the ceiling half so that both operands split at the
	// same position and the recombination weights base^m1 line up.
	m0 := (n + 1) / 2
	m1 := n / 2
	x0, x1 := a[:m0], a[m0:]
	y0, y1 := b[:m0], b[m0:]

	// Pre-sums for the middle product (x0+x1)(y0+y1).
	xs := addRaw(x0, x1, base)
	ys := addRaw(y0, y1, base)

	var p0, p1, p2 Vector
	if opts.ParallelThreshold > 0 && n >= opts.ParallelThreshold {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			p0, err = karatsuba(gctx, x0, y0, base, opts)
			return err
		})
		g.Go(func() error {
			var err error
			p1, err = karatsuba(gctx, xs, ys, base, opts)
			return err
		})
		g.Go(func() error {
			var err error
			p2, err = karatsuba(gctx, x1, y1, base, opts)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		var err error
		if p0, err = karatsuba(ctx, x0, y0, base, opts); err != nil {
			return nil, err
		}
		if p1, err = karatsuba(ctx, xs, ys, base, opts); err != nil {
			return nil, err
		}
		if p2, err = karatsuba(ctx, x1, y1, base, opts); err != nil {
			return nil, err
		}
	}

	return recombine(p0, p1, p2, m1, base)
}

// recombine assembles the Karatsuba sub-products into the final product:
// p0*base^(2*m1) + z1*base^m1 + p2 with z1 = p1 - p0 - p2.
func recombine(p0, p1, p2 Vector, m1 int, base uint64) (Vector, error) {
	z1, err := subtractRaw(p1, addRaw(p0, p2, base), base)
	if err != nil {
		// z1 is non-negative by the algebraic identity; reaching this path
		// means the recursion itself is broken.
		return nil, fmt.Errorf("karatsuba cross term underflow: %w", err)
	}
	sum := addRaw(addRaw(shiftLeft(p0, 2*m1), shiftLeft(z1, m1), base), p2, base)
	return normalize(sum), nil
}

// Schoolbook returns the digit vector of lhs * rhs in the given base using
// grade-school long multiplication. Its O(n*m) column scan is independent of
// the Karatsuba recursion, which makes it the correctness oracle in tests and
// a selectable strategy for short operands.
func Schoolbook(lhs, rhs Vector, base uint64) (Vector, error) {
	if err := validateBase(base); err != nil {
		return nil, err
	}
	if err := validateOperand("lhs", lhs, base); err != nil {
		return nil, err
	}
	if err := validateOperand("rhs", rhs, base); err != nil {
		return nil, err
	}
	return schoolbookRaw(lhs, rhs, base, nil), nil
}

// schoolbookRaw is the unvalidated core of Schoolbook. The optional onRow
// callback receives the fraction of processed lhs rows and feeds progress
// reporting; pass nil when no reporting is needed.
func schoolbookRaw(lhs, rhs Vector, base uint64, onRow func(float64)) Vector {
	la, lb := len(lhs), len(rhs)

	// acc holds the running product least-significant digit first; one final
	// reverse restores the conventional order.
	acc := make(Vector, la+lb)
	for i := 0; i < la; i++ {
		ai := lhs[la-1-i]
		if ai != 0 {
			var carry uint64
			for j := 0; j < lb; j++ {
				cur := acc[i+j] + ai*rhs[lb-1-j] + carry
				acc[i+j] = cur % base
				carry = cur / base
			}
			for k := i + lb; carry != 0; k++ {
				cur := acc[k] + carry
				acc[k] = cur % base
				carry = cur / base
			}
		}
		if onRow != nil {
			onRow(float64(i+1) / float64(la))
		}
	}
	reverse(acc)
	return normalize(acc)
}
