package digit

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
)

// ProgressFunc receives the completion fraction of a running multiplication,
// from 0.0 to 1.0. Implementations of Multiplier call it from the goroutine
// performing the work; a nil callback disables reporting.
type ProgressFunc func(float64)

// Multiplier is the strategy interface for computing digit-vector products.
// Implementations are pure with respect to their operands and safe for
// concurrent use.
type Multiplier interface {
	// Name returns the human-readable strategy name.
	Name() string

	// Product computes lhs * rhs in the given base, reporting coarse progress
	// through report (which may be nil).
	Product(ctx context.Context, report ProgressFunc, lhs, rhs Vector, base uint64, opts Options) (Vector, error)
}

// nopProgress replaces a nil ProgressFunc so strategies can report
// unconditionally.
func nopProgress(report ProgressFunc) ProgressFunc {
	if report == nil {
		return func(float64) {}
	}
	return report
}

// ─────────────────────────────────────────────────────────────────────────────
// Karatsuba strategy
// ─────────────────────────────────────────────────────────────────────────────

// KaratsubaMultiplier computes products with the divide-and-conquer Karatsuba
// algorithm in O(n^log2(3)) digit operations. Above opts.ParallelThreshold
// the three sub-products of each recursion level run concurrently.
type KaratsubaMultiplier struct{}

// Name returns the name of the strategy.
func (KaratsubaMultiplier) Name() string {
	return "Karatsuba (O(n^1.585), Parallel)"
}

// Product computes lhs * rhs via Karatsuba multiplication. Progress is
// reported after each of the three top-level sub-products and once more after
// recombination.
func (KaratsubaMultiplier) Product(ctx context.Context, report ProgressFunc, lhs, rhs Vector, base uint64, opts Options) (Vector, error) {
	if err := validateBase(base); err != nil {
		return nil, err
	}
	if err := validateOperand("lhs", lhs, base); err != nil {
		return nil, err
	}
	if err := validateOperand("rhs", rhs, base); err != nil {
		return nil, err
	}
	report = nopProgress(report)
	report(0)

	a, b := padPair(lhs, rhs)
	n := len(a)
	if n == 1 {
		res, err := karatsuba(ctx, a, b, base, opts)
		if err != nil {
			return nil, err
		}
		report(1)
		return res, nil
	}

	// The top recursion level is unrolled here so the three sub-products can
	// drive progress; deeper levels run inside karatsuba unchanged.
	m0 := (n + 1) / 2
	m1 := n / 2
	x0, x1 := a[:m0], a[m0:]
	y0, y1 := b[:m0], b[m0:]
	xs := addRaw(x0, x1, base)
	ys := addRaw(y0, y1, base)

	var p0, p1, p2 Vector
	if opts.ParallelThreshold > 0 && n >= opts.ParallelThreshold {
		var done atomic.Int32
		step := func(dst *Vector, la, lb Vector) func() error {
			return func() error {
				res, err := karatsuba(ctx, la, lb, base, opts)
				if err != nil {
					return err
				}
				*dst = res
				report(float64(done.Add(1)) * 0.25)
				return nil
			}
		}
		if err := runParallel3(ctx, step(&p0, x0, y0), step(&p1, xs, ys), step(&p2, x1, y1)); err != nil {
			return nil, err
		}
	} else {
		var err error
		if p0, err = karatsuba(ctx, x0, y0, base, opts); err != nil {
			return nil, err
		}
		report(0.25)
		if p1, err = karatsuba(ctx, xs, ys, base, opts); err != nil {
			return nil, err
		}
		report(0.5)
		if p2, err = karatsuba(ctx, x1, y1, base, opts); err != nil {
			return nil, err
		}
		report(0.75)
	}

	res, err := recombine(p0, p1, p2, m1, base)
	if err != nil {
		return nil, err
	}
	report(1)
	return res, nil
}

// runParallel3 executes three tasks concurrently and returns the first error.
// All three tasks run to completion even on error so the result slots are
// never written after return.
func runParallel3(ctx context.Context, tasks ...func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var wg sync.WaitGroup
	errs := make([]error, len(tasks))
	for i, task := range tasks {
		i, task := i, task
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = task()
		}()
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Schoolbook strategy
// ─────────────────────────────────────────────────────────────────────────────

// SchoolbookMultiplier computes products with grade-school long
// multiplication in O(n*m) digit operations. It is the reference oracle for
// the sub-quadratic strategies and wins on short operands.
type SchoolbookMultiplier struct{}

// Name returns the name of the strategy.
func (SchoolbookMultiplier) Name() string {
	return "Schoolbook (O(n²), Reference)"
}

// Product computes lhs * rhs via long multiplication, reporting progress per
// processed row of the multiplicand.
func (SchoolbookMultiplier) Product(ctx context.Context, report ProgressFunc, lhs, rhs Vector, base uint64, opts Options) (Vector, error) {
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
	res := schoolbookRaw(lhs, rhs, base, report)
	report(1)
	return res, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// math/big strategy
// ─────────────────────────────────────────────────────────────────────────────

// BigIntMultiplier converts the operands to math/big integers, multiplies
// with the standard library (which selects Karatsuba or Toom-Cook
// internally), and converts the product back to digits. The radix conversion
// costs O(n²), so this strategy serves as an independent cross-check rather
// than a performance contender.
type BigIntMultiplier struct{}

// Name returns the name of the strategy.
func (BigIntMultiplier) Name() string {
	return "math/big (Radix Conversion)"
}

// Product computes lhs * rhs through math/big.
func (BigIntMultiplier) Product(ctx context.Context, report ProgressFunc, lhs, rhs Vector, base uint64, opts Options) (Vector, error) {
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
	x := ToBig(lhs, base)
	y := ToBig(rhs, base)
	report(0.5)
	z := x.Mul(x, y)
	res := FromBig(z, base)
	report(1)
	return res, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Factory
// ─────────────────────────────────────────────────────────────────────────────

// MultiplierFactory resolves strategy keys to Multiplier instances.
type MultiplierFactory interface {
	// Get returns the multiplier registered under the given key.
	Get(name string) (Multiplier, error)
	// List returns the registered keys in sorted order.
	List() []string
	// GetAll returns every registered multiplier, ordered by key.
	GetAll() []Multiplier
}

// registry maps strategy keys to constructors. Build-tagged strategies (such
// as the GMP backend) add themselves from an init function.
var registry = map[string]func() Multiplier{
	"karatsuba":  func() Multiplier { return KaratsubaMultiplier{} },
	"schoolbook": func() Multiplier { return SchoolbookMultiplier{} },
	"bigint":     func() Multiplier { return BigIntMultiplier{} },
}

// RegisterMultiplier adds a strategy constructor under the given key,
// replacing any previous registration. It is intended for init functions of
// optional backends.
func RegisterMultiplier(key string, constructor func() Multiplier) {
	registry[key] = constructor
}

// DefaultFactory is the standard MultiplierFactory backed by the package
// registry.
type DefaultFactory struct{}

// NewDefaultFactory creates a factory over the registered strategies.
func NewDefaultFactory() MultiplierFactory {
	return DefaultFactory{}
}

// Get returns the multiplier registered under the given key.
func (DefaultFactory) Get(name string) (Multiplier, error) {
	constructor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown multiplier %q (available: %v)", name, DefaultFactory{}.List())
	}
	return constructor(), nil
}

// List returns the registered keys in sorted order.
func (DefaultFactory) List() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetAll returns every registered multiplier, ordered by key.
func (f DefaultFactory) GetAll() []Multiplier {
	keys := f.List()
	all := make([]Multiplier, 0, len(keys))
	for _, k := range keys {
		all = append(all, registry[k]())
	}
	return all
}
