package orchestration

import (
	"testing"

	"github.com/agbru/karatcalc/internal/digit"
)

// TestGetMultipliersToRun tests the GetMultipliersToRun function.
func TestGetMultipliersToRun(t *testing.T) {
	t.Parallel()
	factory := digit.NewDefaultFactory()

	t.Run("Single algorithm returns one multiplier", func(t *testing.T) {
		t.Parallel()
		multipliers := GetMultipliersToRun("karatsuba", factory)

		if len(multipliers) != 1 {
			t.Errorf("Expected 1 multiplier, got %d", len(multipliers))
		}
		if multipliers[0].Name() == "" {
			t.Error("Multiplier name should not be empty")
		}
	})

	t.Run("All algorithms returns multiple multipliers", func(t *testing.T) {
		t.Parallel()
		multipliers := GetMultipliersToRun("all", factory)

		if len(multipliers) < 2 {
			t.Errorf("Expected at least 2 multipliers for 'all', got %d", len(multipliers))
		}
	})

	t.Run("Schoolbook algorithm", func(t *testing.T) {
		t.Parallel()
		multipliers := GetMultipliersToRun("schoolbook", factory)

		if len(multipliers) != 1 {
			t.Errorf("Expected 1 multiplier, got %d", len(multipliers))
		}
	})

	t.Run("Unknown algorithm returns nil", func(t *testing.T) {
		t.Parallel()
		multipliers := GetMultipliersToRun("toomcook", factory)

		if multipliers != nil {
			t.Errorf("Expected nil for an unknown key, got %d multipliers", len(multipliers))
		}
	})
}
