//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/karatcalc/internal/format"
	"github.com/agbru/karatcalc/internal/orchestration"
	"github.com/agbru/karatcalc/internal/progress"
)

const (
	// TruncationLimit is the digit count from which a product is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated product.
	DisplayEdges = 25
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	// Optimized to 200ms to reduce updates and improve performance.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the `DisplayProgress` function from a
// specific spinner implementation, facilitating easier testing and maintenance.
// It defines the essential controls for a spinner: starting, stopping, and
// updating its status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface. This adapter allows the `spinner` library to be used
// within the application's CLI framework.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
//
// Parameters:
//   - suffix: The string to display.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress consumes progress updates from the channel and renders a
// spinner with an aggregated progress bar and ETA. It runs until progressChan
// is closed and signals completion through wg.
//
// Parameters:
//   - wg: A WaitGroup to signal when the display loop has finished.
//   - progressChan: Channel receiving updates from the running strategies.
//   - numMultipliers: The number of concurrent strategies being tracked.
//   - out: The writer for spinner output.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numMultipliers int, out io.Writer) {
	defer wg.Done()

	aggregator := orchestration.NewProgressAggregator(numMultipliers)
	if aggregator == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.UpdateSuffix(fmt.Sprintf(" %s", format.FormatProgressBarWithETA(1.0, 0, ProgressBarWidth)))
				return
			}
			ap := aggregator.Update(update)
			s.UpdateSuffix(fmt.Sprintf(" %s", format.FormatProgressBarWithETA(ap.AverageProgress, ap.ETA, ProgressBarWidth)))
		case <-ticker.C:
			// Refresh the ETA between updates so it keeps counting down even
			// when the strategies are quiet.
			s.UpdateSuffix(fmt.Sprintf(" %s", format.FormatProgressBarWithETA(aggregator.CalculateAverage(), aggregator.GetETA(), ProgressBarWidth)))
		}
	}
}
