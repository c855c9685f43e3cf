//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/karatcalc/internal/digit"
	"github.com/agbru/karatcalc/internal/progress"
)

// MultiplicationResult encapsulates the outcome of a single multiplication.
// It serves as the shared domain type between orchestration and presentation
// layers.
type MultiplicationResult struct {
	// Name is the identifier of the strategy used (e.g., "Karatsuba").
	Name string
	// Product is the computed digit vector. It is nil if an error occurred.
	Product digit.Vector
	// Duration is the time taken to complete the multiplication.
	Duration time.Duration
	// Err contains any error that occurred during the multiplication.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Base      uint64
	Verbose   bool
	ShowValue bool
}

// ProgressReporter defines the interface for displaying calculation progress.
// This interface decouples the orchestration layer from the presentation
// layer; implementations handle the visual representation (spinners,
// progress bars, TUI messages) while orchestration focuses on coordinating
// the strategies.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until the
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from multipliers.
	//   - numMultipliers: The number of concurrent multipliers being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numMultipliers int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numMultipliers int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numMultipliers int, out io.Writer) {
	f(wg, progressChan, numMultipliers, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
	}
}

// ResultPresenter defines the interface for presenting calculation results.
// This decouples orchestration from output formats (CLI table, TUI panel).
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []MultiplicationResult, out io.Writer)

	// PresentResult displays the final product.
	PresentResult(result MultiplicationResult, opts PresentationOptions, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler handles calculation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
