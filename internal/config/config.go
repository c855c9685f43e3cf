// Package config handles command-line flag parsing and environment variable
// overrides for the application. Priority order: CLI flags > environment
// variables > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/agbru/karatcalc/internal/digit"
	apperrors "github.com/agbru/karatcalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable the application
// reads (e.g. KARATCALC_BASE).
const EnvPrefix = "KARATCALC_"

// Default values applied before flags and environment overrides.
const (
	DefaultBase    = 10
	DefaultTimeout = 5 * time.Minute
	DefaultAlgo    = "karatsuba"
)

// AppConfig holds the complete runtime configuration of the application.
type AppConfig struct {
	// Lhs and Rhs are the operands, most significant digit first.
	Lhs digit.Vector
	Rhs digit.Vector
	// Base is the radix the digit vectors are expressed in.
	Base uint64
	// Algo selects the multiplication strategy ("all" runs every one).
	Algo string
	// Timeout bounds the total calculation time.
	Timeout time.Duration
	// Threshold is the operand length above which the Karatsuba recursion
	// forks goroutines. Zero selects the adaptive default.
	Threshold int
	// Verbose prints the full product regardless of its length.
	Verbose bool
	// Quiet suppresses everything except the result line.
	Quiet bool
	// ShowValue prints the product digits (off by default for large runs).
	ShowValue bool
	// NoColor disables ANSI colors.
	NoColor bool
	// TUI launches the interactive dashboard.
	TUI bool
	// OutputFile, when set, receives the product with a metadata header.
	OutputFile string
	// Serve, when set, starts the HTTP API on this listen address.
	Serve string
	// Egyptian, when set, decomposes this fraction ("num/den") into unit
	// fractions instead of multiplying.
	Egyptian string
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment variable overrides for flags not set explicitly.
//
// Parameters:
//   - progName: The program name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errW: Destination for usage and error output.
//   - availableAlgos: The strategy keys accepted by --algo.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when --help was requested, or a ConfigError.
func ParseConfig(progName string, args []string, errW io.Writer, availableAlgos []string) (AppConfig, error) {
	cfg := AppConfig{
		Base:    DefaultBase,
		Algo:    DefaultAlgo,
		Timeout: DefaultTimeout,
	}

	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(errW)

	var lhsStr, rhsStr string
	fs.StringVar(&lhsStr, "lhs", "", "left operand as comma-separated digits, most significant first (e.g. 1,3,3,7)")
	fs.StringVar(&rhsStr, "rhs", "", "right operand as comma-separated digits, most significant first")
	fs.Uint64Var(&cfg.Base, "base", cfg.Base, "radix of the digit vectors (2 to 4294967296)")
	algoUsage := fmt.Sprintf("multiplication strategy: %s, or 'all' for a comparison run", strings.Join(availableAlgos, ", "))
	fs.StringVar(&cfg.Algo, "algo", cfg.Algo, algoUsage)
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "maximum calculation time (e.g. 30s, 5m)")
	fs.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "operand length above which Karatsuba runs its branches in parallel (0 = adaptive)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "print the full product without truncation (shorthand)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "print the full product without truncation")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "print only the product digits (shorthand)")
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "print only the product digits")
	fs.BoolVar(&cfg.ShowValue, "c", cfg.ShowValue, "display the calculated product (shorthand)")
	fs.BoolVar(&cfg.ShowValue, "calculate", cfg.ShowValue, "display the calculated product")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "launch the interactive dashboard")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "write the product to this file (shorthand)")
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "write the product to this file")
	fs.StringVar(&cfg.Serve, "serve", cfg.Serve, "run the HTTP API on this address (e.g. :8080) instead of a one-shot calculation")
	fs.StringVar(&cfg.Egyptian, "egyptian", cfg.Egyptian, "decompose a fraction num/den into unit fractions and exit")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	applyEnvOverrides(&cfg, fs, &lhsStr, &rhsStr)

	if err := finishConfig(&cfg, lhsStr, rhsStr, availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// finishConfig parses the operand strings and validates the combined
// configuration.
func finishConfig(cfg *AppConfig, lhsStr, rhsStr string, availableAlgos []string) error {
	// Server, TUI, and egyptian modes supply operands interactively or
	// per request.
	operandsRequired := cfg.Serve == "" && !cfg.TUI && cfg.Egyptian == ""

	if operandsRequired {
		if lhsStr == "" || rhsStr == "" {
			return apperrors.NewConfigError("both --lhs and --rhs are required (comma-separated digits, e.g. --lhs 1,3,3,7)")
		}
	}

	if lhsStr != "" {
		v, err := digit.ParseVector(lhsStr)
		if err != nil {
			return apperrors.WrapError(err, "invalid --lhs")
		}
		cfg.Lhs = v
	}
	if rhsStr != "" {
		v, err := digit.ParseVector(rhsStr)
		if err != nil {
			return apperrors.WrapError(err, "invalid --rhs")
		}
		cfg.Rhs = v
	}

	if cfg.Base < digit.MinBase || cfg.Base > digit.MaxBase {
		return apperrors.NewConfigError("invalid --base %d: must be between %d and %d", cfg.Base, digit.MinBase, digit.MaxBase)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("invalid --timeout %s: must be positive", cfg.Timeout)
	}
	if cfg.Threshold < 0 {
		return apperrors.NewConfigError("invalid --threshold %d: must not be negative", cfg.Threshold)
	}
	if cfg.Quiet && cfg.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}

	if cfg.Algo != "all" && !containsString(availableAlgos, cfg.Algo) {
		sorted := append([]string(nil), availableAlgos...)
		sort.Strings(sorted)
		return apperrors.NewConfigError("unknown algorithm %q: available: %s, all", cfg.Algo, strings.Join(sorted, ", "))
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
