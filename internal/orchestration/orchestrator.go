package orchestration

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/karatcalc/internal/digit"
	apperrors "github.com/agbru/karatcalc/internal/errors"
	"github.com/agbru/karatcalc/internal/progress"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking calculation
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// tracer is the package tracer. It resolves to a no-op implementation unless
// the process installs a tracer provider.
var tracer = otel.Tracer("karatcalc/orchestration")

// ExecuteMultiplications orchestrates the concurrent execution of one or more
// multiplication strategies over the same operands.
//
// It manages the lifecycle of the per-strategy goroutines, collects their
// results, and coordinates the display of progress updates. This function is
// the core of the application's concurrency model.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - multipliers: The strategies to execute.
//   - lhs, rhs: The operands, most significant digit first.
//   - base: The radix of the operands.
//   - opts: Strategy tuning options (parallel threshold).
//   - progressReporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []MultiplicationResult: One result per strategy, in input order.
func ExecuteMultiplications(ctx context.Context, multipliers []digit.Multiplier, lhs, rhs digit.Vector, base uint64, opts digit.Options, progressReporter ProgressReporter, out io.Writer) []MultiplicationResult {
	ctx, span := tracer.Start(ctx, "ExecuteMultiplications")
	span.SetAttributes(
		attribute.Int("operand.lhs_digits", len(lhs)),
		attribute.Int("operand.rhs_digits", len(rhs)),
		attribute.Int64("operand.base", int64(base)),
		attribute.Int("strategies", len(multipliers)),
	)
	defer span.End()

	g, ctx := errgroup.WithContext(ctx)
	results := make([]MultiplicationResult, len(multipliers))
	progressChan := make(chan progress.ProgressUpdate, len(multipliers)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(multipliers), out)

	for i, m := range multipliers {
		idx, multiplier := i, m
		g.Go(func() error {
			_, mSpan := tracer.Start(ctx, "Multiply")
			mSpan.SetAttributes(attribute.String("strategy", multiplier.Name()))
			defer mSpan.End()

			report := func(value float64) {
				select {
				case progressChan <- progress.ProgressUpdate{MultiplierIndex: idx, Value: value}:
				default:
					// Dropping an intermediate update is harmless; progress
					// is monotone.
				}
			}

			startTime := time.Now()
			product, err := multiplier.Product(ctx, report, lhs, rhs, base, opts)
			results[idx] = MultiplicationResult{
				Name: multiplier.Name(), Product: product, Duration: time.Since(startTime), Err: err,
			}
			// Failures are recorded per strategy; a comparison run should
			// not cancel its siblings.
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults processes the results from multiple strategies and
// generates a summary report.
//
// It sorts the results by execution time, validates consistency across
// successful runs, and displays a comparative table. It handles the logic
// for determining global success or failure based on the individual
// outcomes.
//
// Parameters:
//   - results: The slice of results to analyze; sorted in place.
//   - opts: Presentation options (base, verbosity).
//   - presenter: The result presenter for display formatting.
//   - errorHandler: Classifies the first error when every strategy failed.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []MultiplicationResult, opts PresentationOptions, presenter ResultPresenter, errorHandler ErrorHandler, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *MultiplicationResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy could complete the multiplication.\n")
		return errorHandler.HandleError(firstError, 0, out)
	}

	mismatch := false
	for _, res := range results {
		if res.Err == nil && digit.Compare(res.Product, firstValidResult.Product) != 0 {
			mismatch = true
			break
		}
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the products of the strategies.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid products are consistent.\n")
	presenter.PresentResult(*firstValidResult, opts, out)
	return apperrors.ExitSuccess
}
