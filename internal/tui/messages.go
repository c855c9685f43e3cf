package tui

import (
	"time"

	"github.com/agbru/karatcalc/internal/orchestration"
)

// ProgressMsg carries an aggregated progress update from the bridge.
type ProgressMsg struct {
	MultiplierIndex int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// ProgressDoneMsg signals that the progress channel has been drained.
type ProgressDoneMsg struct{}

// ComparisonResultsMsg carries the per-strategy results of a run.
type ComparisonResultsMsg struct {
	Results []orchestration.MultiplicationResult
}

// FinalResultMsg carries the winning result of a successful run.
type FinalResultMsg struct {
	Result orchestration.MultiplicationResult
	Opts   orchestration.PresentationOptions
}

// ErrorMsg carries a run failure.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// TickMsg drives the periodic UI refresh.
type TickMsg time.Time

// SysStatsMsg carries a system-wide CPU/memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// MultiplicationCompleteMsg signals that an orchestration run has finished.
// Generation guards against stale messages from a superseded run.
type MultiplicationCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg signals that the session context was canceled.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
