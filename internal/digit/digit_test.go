package digit

import (
	"errors"
	"testing"
)

// TestParseVector tests digit-list parsing.
func TestParseVector(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Vector
		wantErr bool
	}{
		{"single digit", "7", Vector{7}, false},
		{"multiple digits", "1,3,3,7", Vector{1, 3, 3, 7}, false},
		{"spaces tolerated", " 1, 0 ,0,0 ", Vector{1, 0, 0, 0}, false},
		{"large digits", "4294967295,0", Vector{4294967295, 0}, false},
		{"empty string", "", nil, true},
		{"trailing comma", "1,2,", nil, true},
		{"non-numeric", "1,x,3", nil, true},
		{"negative digit", "-1", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVector(tt.input)
			if tt.wantErr {
				var argErr *InvalidArgumentError
				if !errors.As(err, &argErr) {
					t.Errorf("ParseVector(%q) error = %v, want InvalidArgumentError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVector(%q) failed: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseVector(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseVector(%q) = %v, want %v", tt.input, got, tt.want)
					break
				}
			}
		})
	}
}

// TestFormatVector tests the inverse of ParseVector.
func TestFormatVector(t *testing.T) {
	v := Vector{1, 3, 3, 7}
	if got := FormatVector(v); got != "1,3,3,7" {
		t.Errorf("FormatVector(%v) = %q, want %q", v, got, "1,3,3,7")
	}
	if got := FormatVector(Vector{0}); got != "0" {
		t.Errorf("FormatVector([0]) = %q, want %q", got, "0")
	}

	parsed, err := ParseVector(FormatVector(v))
	if err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if Compare(parsed, v) != 0 {
		t.Errorf("round trip = %v, want %v", parsed, v)
	}
}

// TestCompare tests three-way comparison with leading-zero tolerance.
func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		lhs, rhs Vector
		want     int
	}{
		{"equal", Vector{1, 2}, Vector{1, 2}, 0},
		{"equal modulo leading zeros", Vector{0, 0, 1, 2}, Vector{1, 2}, 0},
		{"less by length", Vector{9}, Vector{1, 0}, -1},
		{"greater by length", Vector{1, 0, 0}, Vector{9, 9}, 1},
		{"less by digit", Vector{1, 2, 3}, Vector{1, 2, 4}, -1},
		{"greater by digit", Vector{2, 0}, Vector{1, 9}, 1},
		{"zero forms", Vector{0}, Vector{0, 0, 0}, 0},
		{"nil is zero", nil, Vector{0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.lhs, tt.rhs); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.lhs, tt.rhs, got, tt.want)
			}
		})
	}
}

// TestNormalize tests leading-zero trimming.
func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vector
		want Vector
	}{
		{"no leading zeros", Vector{1, 2}, Vector{1, 2}},
		{"leading zeros", Vector{0, 0, 1, 2}, Vector{1, 2}},
		{"all zeros", Vector{0, 0, 0}, Vector{0}},
		{"nil", nil, Vector{0}},
		{"empty", Vector{}, Vector{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
					break
				}
			}
		})
	}
}

// TestToBigFromBig tests the math/big radix conversion round trip.
func TestToBigFromBig(t *testing.T) {
	tests := []struct {
		v    Vector
		base uint64
		dec  string
	}{
		{Vector{1, 3, 3, 7}, 10, "1337"},
		{Vector{0}, 10, "0"},
		{Vector{1, 0, 0, 1}, 2, "9"},
		{Vector{255, 255}, 256, "65535"},
	}

	for _, tt := range tests {
		z := ToBig(tt.v, tt.base)
		if z.String() != tt.dec {
			t.Errorf("ToBig(%v, %d) = %s, want %s", tt.v, tt.base, z.String(), tt.dec)
		}
		back := FromBig(z, tt.base)
		if Compare(back, tt.v) != 0 {
			t.Errorf("FromBig(ToBig(%v)) = %v", tt.v, back)
		}
	}
}
