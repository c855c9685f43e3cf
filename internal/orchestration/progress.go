package orchestration

import (
	"time"

	"github.com/agbru/karatcalc/internal/format"
	"github.com/agbru/karatcalc/internal/progress"
)

// ProgressAggregator manages multi-strategy progress aggregation.
// It wraps format.ProgressWithETA and provides a higher-level API
// for consuming progress updates from a channel. Both CLI and TUI
// use this to avoid duplicating the aggregation setup and update logic.
type ProgressAggregator struct {
	state          *format.ProgressWithETA
	numMultipliers int
}

// NewProgressAggregator creates a new aggregator for the given number
// of multipliers. Returns nil if numMultipliers <= 0.
func NewProgressAggregator(numMultipliers int) *ProgressAggregator {
	if numMultipliers <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:          format.NewProgressWithETA(numMultipliers),
		numMultipliers: numMultipliers,
	}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	// MultiplierIndex is the index of the strategy that sent the update.
	MultiplierIndex int
	// Value is the raw progress value from the update (0.0 to 1.0).
	Value float64
	// AverageProgress is the aggregated average across all strategies.
	AverageProgress float64
	// ETA is the estimated time remaining based on smoothed progress rate.
	ETA time.Duration
}

// Update processes a single progress update and returns the aggregated result.
func (a *ProgressAggregator) Update(update progress.ProgressUpdate) AggregatedProgress {
	avgProgress, eta := a.state.UpdateWithETA(update.MultiplierIndex, update.Value)
	return AggregatedProgress{
		MultiplierIndex: update.MultiplierIndex,
		Value:           update.Value,
		AverageProgress: avgProgress,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average progress without updating.
// Useful for periodic refresh between updates (e.g., CLI ticker).
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA estimate without updating.
// Useful for periodic refresh between updates (e.g., CLI ticker).
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumMultipliers returns the number of strategies being tracked.
func (a *ProgressAggregator) NumMultipliers() int {
	return a.numMultipliers
}

// IsMultiStrategy returns true if tracking more than one strategy.
func (a *ProgressAggregator) IsMultiStrategy() bool {
	return a.numMultipliers > 1
}

// DrainChannel reads all updates from the channel without processing.
// Use this when numMultipliers <= 0 and updates should be discarded.
func DrainChannel(progressChan <-chan progress.ProgressUpdate) {
	for range progressChan {
	}
}
