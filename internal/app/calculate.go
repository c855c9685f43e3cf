package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/karatcalc/internal/cli"
	"github.com/agbru/karatcalc/internal/digit"
	apperrors "github.com/agbru/karatcalc/internal/errors"
	"github.com/agbru/karatcalc/internal/metrics"
	"github.com/agbru/karatcalc/internal/orchestration"
	"github.com/agbru/karatcalc/internal/ui"
)

// runCalculate orchestrates the execution of the CLI multiplication command.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	// Get multipliers to run
	multipliersToRun := orchestration.GetMultipliersToRun(a.Config.Algo, a.Factory)

	// Skip verbose output in quiet mode
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(multipliersToRun, out)
	}

	// Choose progress reporter based on quiet mode
	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	// Execute multiplications
	opts := digit.Options{ParallelThreshold: a.Config.Threshold}
	results := orchestration.ExecuteMultiplications(ctx, multipliersToRun, a.Config.Lhs, a.Config.Rhs, a.Config.Base, opts, progressReporter, progressOut)

	// Build output config for the CLI options
	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		ShowValue:  a.Config.ShowValue,
	}

	exitCode := a.analyzeResultsWithOutput(results, outputCfg, out)

	if a.Config.Verbose && !a.Config.Quiet {
		after := collector.Snapshot()
		cli.DisplayMemoryStats(metrics.Delta(before, after), out)
	}

	return exitCode
}

func (a *Application) analyzeResultsWithOutput(results []orchestration.MultiplicationResult, outputCfg cli.OutputConfig, out io.Writer) int {
	bestResult := findBestResult(results)

	// Handle quiet mode for single result
	if outputCfg.Quiet && bestResult != nil {
		cli.DisplayQuietResult(out, bestResult.Product)

		// Save to file if requested
		if err := a.saveResultIfNeeded(bestResult, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}

		return apperrors.ExitSuccess
	}

	// Use standard analysis for non-quiet mode
	presOpts := orchestration.PresentationOptions{
		Base:      a.Config.Base,
		Verbose:   a.Config.Verbose,
		ShowValue: a.Config.ShowValue,
	}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, cli.CLIResultPresenter{}, cli.CLIResultPresenter{}, out)

	// Handle file output for non-quiet mode
	if bestResult != nil && exitCode == apperrors.ExitSuccess {
		// Save to file if requested
		if err := a.saveResultIfNeeded(bestResult, outputCfg); err != nil {
			return apperrors.ExitErrorGeneric
		}
		if outputCfg.OutputFile != "" {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), outputCfg.OutputFile, ui.ColorReset())
		}
	}

	return exitCode
}

func findBestResult(results []orchestration.MultiplicationResult) *orchestration.MultiplicationResult {
	var bestResult *orchestration.MultiplicationResult
	for i := range results {
		if results[i].Err == nil {
			if bestResult == nil || results[i].Duration < bestResult.Duration {
				bestResult = &results[i]
			}
		}
	}
	return bestResult
}

func (a *Application) saveResultIfNeeded(res *orchestration.MultiplicationResult, cfg cli.OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}
	if err := cli.WriteResultToFile(res.Product, a.Config.Base, res.Duration, res.Name, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving result: %v\n", err)
		return err
	}
	return nil
}
