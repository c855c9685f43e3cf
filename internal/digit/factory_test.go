package digit

import (
	"context"
	"strings"
	"testing"
)

// TestDefaultFactory_List verifies the registered strategy keys.
func TestDefaultFactory_List(t *testing.T) {
	factory := NewDefaultFactory()
	list := factory.List()

	for _, key := range []string{"bigint", "karatsuba", "schoolbook"} {
		found := false
		for _, k := range list {
			if k == key {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("List() = %v, missing %q", list, key)
		}
	}

	// Keys come back sorted.
	for i := 1; i < len(list); i++ {
		if list[i-1] >= list[i] {
			t.Errorf("List() = %v is not sorted", list)
		}
	}
}

// TestDefaultFactory_Get verifies key resolution and the unknown-key error.
func TestDefaultFactory_Get(t *testing.T) {
	factory := NewDefaultFactory()

	for _, key := range factory.List() {
		m, err := factory.Get(key)
		if err != nil {
			t.Errorf("Get(%q) failed: %v", key, err)
			continue
		}
		if m.Name() == "" {
			t.Errorf("Get(%q) returned a multiplier with an empty name", key)
		}
	}

	_, err := factory.Get("quantum")
	if err == nil {
		t.Fatal("Get(\"quantum\") should fail")
	}
	if !strings.Contains(err.Error(), "quantum") {
		t.Errorf("unknown-key error %q should name the key", err)
	}
}

// TestAllMultipliers_Agree runs every registered strategy on the same
// operands and checks they produce the same product.
func TestAllMultipliers_Agree(t *testing.T) {
	factory := NewDefaultFactory()
	lhs := Vector{9, 8, 7, 6, 5, 4, 3}
	rhs := Vector{1, 2, 3, 4, 5}
	const base = 10

	var reference Vector
	for _, m := range factory.GetAll() {
		got, err := m.Product(context.Background(), nil, lhs, rhs, base, Options{})
		if err != nil {
			t.Fatalf("%s failed: %v", m.Name(), err)
		}
		if reference == nil {
			reference = got
			continue
		}
		if Compare(got, reference) != 0 {
			t.Errorf("%s = %v, other strategies = %v", m.Name(), got, reference)
		}
	}
}

// TestMultiplier_ProgressReachesOne verifies that every strategy reports a
// final progress of 1.0.
func TestMultiplier_ProgressReachesOne(t *testing.T) {
	factory := NewDefaultFactory()
	lhs := Vector{1, 2, 3, 4, 5, 6}
	rhs := Vector{6, 5, 4, 3, 2, 1}

	for _, m := range factory.GetAll() {
		var last float64
		_, err := m.Product(context.Background(), func(v float64) { last = v }, lhs, rhs, 10, Options{})
		if err != nil {
			t.Fatalf("%s failed: %v", m.Name(), err)
		}
		if last != 1.0 {
			t.Errorf("%s final progress = %v, want 1.0", m.Name(), last)
		}
	}
}
