package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/karatcalc/internal/config"
	"github.com/agbru/karatcalc/internal/digit"
	"github.com/agbru/karatcalc/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the user.
// It shows the operand sizes, base, timeout, environment details, and
// optimization thresholds.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Multiplying %s%d-digit%s by %s%d-digit%s operands in base %s%d%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), len(cfg.Lhs), ui.ColorReset(),
		ui.ColorMagenta(), len(cfg.Rhs), ui.ColorReset(),
		ui.ColorCyan(), cfg.Base, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Optimization thresholds: Parallelism=%s%d%s digits.\n",
		ui.ColorCyan(), cfg.Threshold, ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single strategy vs comparison).
//
// Parameters:
//   - multipliers: The slice of strategies that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(multipliers []digit.Multiplier, out io.Writer) {
	var modeDesc string
	if len(multipliers) > 1 {
		modeDesc = "Parallel comparison of all strategies"
	} else {
		modeDesc = fmt.Sprintf("Single multiplication with the %s%s%s strategy",
			ui.ColorGreen(), multipliers[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
