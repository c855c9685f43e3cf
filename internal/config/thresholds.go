package config

import (
	"runtime"

	"github.com/agbru/karatcalc/internal/digit"
)

// Threshold resolution chain (highest priority first):
//   1. CLI flag (--threshold)
//   2. Environment variable (KARATCALC_THRESHOLD)
//   3. Adaptive hardware estimation (this file)
//   4. Static default in digit/constants.go

// ApplyAdaptiveThresholds adjusts the parallelism threshold based on
// hardware characteristics when the default value is detected. This
// provides automatic performance tuning without explicit configuration.
//
// The function only modifies a threshold that is set to its zero default,
// preserving any user-specified overrides via command-line flags.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.Threshold == 0 {
		cfg.Threshold = EstimateOptimalParallelThreshold()
	}
	return cfg
}

// EstimateOptimalParallelThreshold provides a heuristic estimate of the
// operand length above which forking the Karatsuba branches pays off.
// Fewer cores mean the goroutine overhead needs longer operands to
// amortize.
func EstimateOptimalParallelThreshold() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return 0 // No parallelism
	case numCPU <= 2:
		return digit.DefaultParallelThreshold * 4
	case numCPU <= 4:
		return digit.DefaultParallelThreshold * 2
	case numCPU <= 8:
		return digit.DefaultParallelThreshold
	default:
		return digit.DefaultParallelThreshold / 2
	}
}
