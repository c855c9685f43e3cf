package digit

import (
	"errors"
	"testing"
)

// TestAdd verifies column addition with carry propagation across bases and
// operand shapes.
func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		lhs  Vector
		rhs  Vector
		base uint64
		want Vector
	}{
		{"single digits no carry", Vector{2}, Vector{3}, 10, Vector{5}},
		{"single digits with carry", Vector{7}, Vector{8}, 10, Vector{1, 5}},
		{"carry chain", Vector{9, 9, 9}, Vector{1}, 10, Vector{1, 0, 0, 0}},
		{"unequal lengths", Vector{1, 2, 3}, Vector{4}, 10, Vector{1, 2, 7}},
		{"zero plus zero", Vector{0}, Vector{0}, 10, Vector{0}},
		{"identity", Vector{4, 2}, Vector{0}, 10, Vector{4, 2}},
		{"leading zeros trimmed", Vector{0, 1}, Vector{1}, 10, Vector{2}},
		{"base 2 overflow", Vector{1}, Vector{1}, 2, Vector{1, 0}},
		{"base 2 carry chain", Vector{1, 1, 1}, Vector{1}, 2, Vector{1, 0, 0, 0}},
		{"base 16", Vector{15, 15}, Vector{0, 1}, 16, Vector{1, 0, 0}},
		{"base 256", Vector{255, 255}, Vector{1}, 256, Vector{1, 0, 0}},
		{"max base", Vector{MaxBase - 1}, Vector{MaxBase - 1}, MaxBase, Vector{1, MaxBase - 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Add(tt.lhs, tt.rhs, tt.base)
			if err != nil {
				t.Fatalf("Add(%v, %v, %d) failed: %v", tt.lhs, tt.rhs, tt.base, err)
			}
			if Compare(got, tt.want) != 0 || len(got) != len(tt.want) {
				t.Errorf("Add(%v, %v, %d) = %v, want %v", tt.lhs, tt.rhs, tt.base, got, tt.want)
			}
		})
	}
}

// TestAdd_Commutative spot-checks lhs + rhs == rhs + lhs; the exhaustive
// version lives in the property tests.
func TestAdd_Commutative(t *testing.T) {
	lhs := Vector{9, 8, 7, 6}
	rhs := Vector{5, 4, 3}

	ab, err := Add(lhs, rhs, 10)
	if err != nil {
		t.Fatalf("Add(lhs, rhs) failed: %v", err)
	}
	ba, err := Add(rhs, lhs, 10)
	if err != nil {
		t.Fatalf("Add(rhs, lhs) failed: %v", err)
	}
	if Compare(ab, ba) != 0 {
		t.Errorf("addition not commutative: %v vs %v", ab, ba)
	}
}

// TestAdd_InvalidInputs verifies the InvalidArgumentError paths.
func TestAdd_InvalidInputs(t *testing.T) {
	tests := []struct {
		name string
		lhs  Vector
		rhs  Vector
		base uint64
	}{
		{"base below minimum", Vector{1}, Vector{1}, 1},
		{"base above maximum", Vector{1}, Vector{1}, MaxBase + 1},
		{"empty lhs", Vector{}, Vector{1}, 10},
		{"empty rhs", Vector{1}, nil, 10},
		{"lhs digit out of range", Vector{10}, Vector{1}, 10},
		{"rhs digit out of range", Vector{1}, Vector{1, 16}, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Add(tt.lhs, tt.rhs, tt.base)
			var argErr *InvalidArgumentError
			if !errors.As(err, &argErr) {
				t.Errorf("Add(%v, %v, %d) error = %v, want InvalidArgumentError", tt.lhs, tt.rhs, tt.base, err)
			}
		})
	}
}

// TestAdd_DoesNotMutateOperands verifies the pure-function contract.
func TestAdd_DoesNotMutateOperands(t *testing.T) {
	lhs := Vector{9, 9}
	rhs := Vector{1}

	if _, err := Add(lhs, rhs, 10); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if lhs[0] != 9 || lhs[1] != 9 || rhs[0] != 1 {
		t.Errorf("operands mutated: lhs=%v rhs=%v", lhs, rhs)
	}
}
