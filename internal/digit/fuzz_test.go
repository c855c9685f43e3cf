package digit

import (
	"context"
	"math/big"
	"testing"
)

// FuzzKaratsubaConsistency verifies that Karatsuba, schoolbook, and math/big
// agree on arbitrary base-256 operands. The fuzzer's byte slices map directly
// onto digit vectors, so every mutation is a valid operand pair.
func FuzzKaratsubaConsistency(f *testing.F) {
	// Seed corpus with carry-heavy and parity-edge shapes.
	f.Add([]byte{7}, []byte{8})
	f.Add([]byte{1, 3, 3, 7}, []byte{1, 0, 0, 0})
	f.Add([]byte{255, 255, 255}, []byte{255})
	f.Add([]byte{0, 0, 1}, []byte{1, 0})
	f.Add([]byte{1, 2, 3, 4, 5}, []byte{6, 7, 8})
	f.Add([]byte{0}, []byte{0})

	f.Fuzz(func(t *testing.T, lb, rb []byte) {
		if len(lb) == 0 || len(rb) == 0 {
			return
		}
		// Bound operand length to keep iterations fast.
		if len(lb) > 64 {
			lb = lb[:64]
		}
		if len(rb) > 64 {
			rb = rb[:64]
		}

		const base = 256
		lhs := bytesToVector(lb)
		rhs := bytesToVector(rb)

		fast, err := Multiply(lhs, rhs, base)
		if err != nil {
			t.Fatalf("Multiply(%v, %v) failed: %v", lhs, rhs, err)
		}
		slow, err := Schoolbook(lhs, rhs, base)
		if err != nil {
			t.Fatalf("Schoolbook(%v, %v) failed: %v", lhs, rhs, err)
		}
		if Compare(fast, slow) != 0 {
			t.Errorf("karatsuba %v != schoolbook %v for %v * %v", fast, slow, lhs, rhs)
		}

		// Independent oracle through math/big.
		want := new(big.Int).Mul(ToBig(lhs, base), ToBig(rhs, base))
		if got := ToBig(fast, base); got.Cmp(want) != 0 {
			t.Errorf("karatsuba value %s != big.Int value %s for %v * %v", got, want, lhs, rhs)
		}
	})
}

// FuzzSubtractAddRoundTrip verifies the subtract/add inverse on arbitrary
// base-256 operands, ordering them so the contract lhs >= rhs holds.
func FuzzSubtractAddRoundTrip(f *testing.F) {
	f.Add([]byte{1, 0, 0, 0}, []byte{1})
	f.Add([]byte{255}, []byte{255})
	f.Add([]byte{1, 0}, []byte{255})

	f.Fuzz(func(t *testing.T, lb, rb []byte) {
		if len(lb) == 0 || len(rb) == 0 {
			return
		}
		if len(lb) > 128 {
			lb = lb[:128]
		}
		if len(rb) > 128 {
			rb = rb[:128]
		}

		const base = 256
		x := bytesToVector(lb)
		y := bytesToVector(rb)
		if Compare(x, y) < 0 {
			x, y = y, x
		}

		diff, err := Subtract(x, y, base)
		if err != nil {
			t.Fatalf("Subtract(%v, %v) failed: %v", x, y, err)
		}
		back, err := Add(diff, y, base)
		if err != nil {
			t.Fatalf("Add(%v, %v) failed: %v", diff, y, err)
		}
		if Compare(back, x) != 0 {
			t.Errorf("(%v - %v) + %v = %v, want %v", x, y, y, back, x)
		}
	})
}

// FuzzParallelDeterminism verifies that the concurrent recursion produces
// byte-identical results to the sequential one.
func FuzzParallelDeterminism(f *testing.F) {
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 8}, []byte{8, 7, 6, 5, 4, 3, 2, 1})

	f.Fuzz(func(t *testing.T, lb, rb []byte) {
		if len(lb) == 0 || len(rb) == 0 {
			return
		}
		if len(lb) > 32 {
			lb = lb[:32]
		}
		if len(rb) > 32 {
			rb = rb[:32]
		}

		const base = 256
		lhs := bytesToVector(lb)
		rhs := bytesToVector(rb)
		ctx := context.Background()

		seq, err := MultiplyWithOptions(ctx, lhs, rhs, base, Options{})
		if err != nil {
			t.Fatalf("sequential Multiply failed: %v", err)
		}
		par, err := MultiplyWithOptions(ctx, lhs, rhs, base, Options{ParallelThreshold: 2})
		if err != nil {
			t.Fatalf("parallel Multiply failed: %v", err)
		}
		if Compare(seq, par) != 0 {
			t.Errorf("parallel %v != sequential %v", par, seq)
		}
	})
}

// bytesToVector reinterprets raw fuzz bytes as base-256 digits.
func bytesToVector(bs []byte) Vector {
	v := make(Vector, len(bs))
	for i, b := range bs {
		v[i] = uint64(b)
	}
	return v
}
