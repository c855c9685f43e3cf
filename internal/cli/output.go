// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult], [FormatTruncatedVector].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/karatcalc/internal/digit"
	"github.com/agbru/karatcalc/internal/format"
	"github.com/agbru/karatcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the product (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the full product without truncation.
	Verbose bool
	// ShowValue enables the product display when true (disabled by default).
	ShowValue bool
}

// FormatTruncatedVector renders a digit vector, eliding the middle when it
// exceeds TruncationLimit digits. The first and last DisplayEdges digits are
// kept around the elision marker.
//
// Parameters:
//   - v: The digit vector to render, most significant digit first.
//
// Returns:
//   - string: The comma-separated digit list, possibly truncated.
func FormatTruncatedVector(v digit.Vector) string {
	if len(v) <= TruncationLimit {
		return digit.FormatVector(v)
	}
	var sb strings.Builder
	sb.WriteString(digit.FormatVector(v[:DisplayEdges]))
	sb.WriteString(fmt.Sprintf(",...(%d digits total, truncated)...,", len(v)))
	sb.WriteString(digit.FormatVector(v[len(v)-DisplayEdges:]))
	return sb.String()
}

// DisplayResult presents a multiplication product on the terminal.
//
// Parameters:
//   - product: The computed digit vector, most significant digit first.
//   - base: The radix the product is expressed in.
//   - duration: The multiplication duration.
//   - verbose: When true, the full product is shown without truncation.
//   - details: When true, a detailed analysis block is included.
//   - showValue: When true, the product digits (and decimal value for small
//     products) are displayed.
//   - out: The writer for standard output.
func DisplayResult(product digit.Vector, base uint64, duration time.Duration, verbose, details, showValue bool, out io.Writer) {
	fmt.Fprintf(out, "\nProduct size: %s%d%s base-%d digits.\n",
		ui.ColorCyan(), len(product), ui.ColorReset(), base)

	if details {
		value := digit.ToBig(product, base)
		fmt.Fprintf(out, "\n--- Detailed result analysis ---\n")
		fmt.Fprintf(out, "Calculation time:  %s\n", format.FormatExecutionDuration(duration))
		fmt.Fprintf(out, "Number of digits:  %d (base %d)\n", len(product), base)
		fmt.Fprintf(out, "Decimal digits:    %d\n", len(value.String()))
		fmt.Fprintf(out, "Binary size:       %d bits\n", value.BitLen())
	}

	if !showValue {
		return
	}

	fmt.Fprintf(out, "\n%sCalculated value:%s\n", ui.ColorBold(), ui.ColorReset())
	if verbose {
		fmt.Fprintf(out, "product = %s\n", digit.FormatVector(product))
	} else {
		fmt.Fprintf(out, "product = %s\n", FormatTruncatedVector(product))
		if len(product) > TruncationLimit {
			fmt.Fprintf(out, "Tip: use %s-v%s to display all digits.\n", ui.ColorCyan(), ui.ColorReset())
		}
	}
	// The decimal rendering costs a quadratic radix conversion, so it is
	// reserved for products a human would actually read.
	if len(product) <= TruncationLimit {
		value := digit.ToBig(product, base)
		fmt.Fprintf(out, "value   = %s\n", format.FormatNumberString(value.String()))
	}
}

// FormatQuietResult formats a product for quiet mode output.
// Returns a single-line digit list suitable for scripting.
func FormatQuietResult(product digit.Vector) string {
	return digit.FormatVector(product)
}

// DisplayQuietResult outputs a product in quiet mode (minimal output).
//
// Parameters:
//   - out: The output writer.
//   - product: The computed digit vector.
func DisplayQuietResult(out io.Writer, product digit.Vector) {
	fmt.Fprintln(out, FormatQuietResult(product))
}

// WriteResultToFile writes a multiplication product to a file.
//
// Parameters:
//   - product: The computed digit vector.
//   - base: The radix the product is expressed in.
//   - duration: The multiplication duration.
//   - algo: The strategy name used.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(product digit.Vector, base uint64, duration time.Duration, algo string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	// Write header
	fmt.Fprintf(file, "# Multiplication Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Algorithm: %s\n", algo)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Base: %d\n", base)
	fmt.Fprintf(file, "# Digits: %d\n", len(product))
	fmt.Fprintf(file, "\n")

	// Write product
	fmt.Fprintf(file, "product =\n%s\n", digit.FormatVector(product))

	return nil
}

// DisplayResultWithConfig displays a product with the given output
// configuration. This is a unified function that handles all output modes.
//
// Parameters:
//   - out: The output writer.
//   - product: The computed digit vector.
//   - base: The radix the product is expressed in.
//   - duration: The multiplication duration.
//   - algo: The strategy name.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, product digit.Vector, base uint64, duration time.Duration, algo string, config OutputConfig) error {
	// Handle quiet mode
	if config.Quiet {
		DisplayQuietResult(out, product)
	} else {
		// Use standard display
		DisplayResult(product, base, duration, config.Verbose, true, config.ShowValue, out)
	}

	// Save to file if requested
	if config.OutputFile != "" {
		if err := WriteResultToFile(product, base, duration, algo, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}
