package orchestration

import "github.com/agbru/karatcalc/internal/digit"

// GetMultipliersToRun determines which strategies should be executed based
// on the algorithm selection. Returns multipliers in alphabetically sorted
// key order for consistent, reproducible behavior.
//
// Parameters:
//   - algo: The selected strategy key, or "all" for a comparison run.
//   - factory: The multiplier factory to retrieve implementations from.
//
// Returns:
//   - []digit.Multiplier: The strategies to execute; nil for an unknown key.
func GetMultipliersToRun(algo string, factory digit.MultiplierFactory) []digit.Multiplier {
	if algo == "all" {
		keys := factory.List() // List() returns sorted keys
		multipliers := make([]digit.Multiplier, 0, len(keys))
		for _, k := range keys {
			if m, err := factory.Get(k); err == nil {
				multipliers = append(multipliers, m)
			}
		}
		return multipliers
	}
	if m, err := factory.Get(algo); err == nil {
		return []digit.Multiplier{m}
	}
	return nil
}
