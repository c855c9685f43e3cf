package app

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/agbru/karatcalc/internal/egyptian"
	apperrors "github.com/agbru/karatcalc/internal/errors"
)

// runEgyptian decomposes the configured fraction into distinct unit
// fractions and prints the expansion.
func (a *Application) runEgyptian(out io.Writer) int {
	r, ok := new(big.Rat).SetString(a.Config.Egyptian)
	if !ok {
		fmt.Fprintf(a.ErrWriter, "Invalid --egyptian fraction %q: expected num/den, e.g. 3/7\n", a.Config.Egyptian)
		return apperrors.ExitErrorConfig
	}

	terms, err := egyptian.Decompose(r)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	if a.Config.Quiet {
		fmt.Fprintln(out, formatUnitFractions(terms))
		return apperrors.ExitSuccess
	}

	fmt.Fprintf(out, "%s = %s\n", r.RatString(), formatUnitFractions(terms))
	fmt.Fprintf(out, "(%d unit fractions)\n", len(terms))
	return apperrors.ExitSuccess
}

// formatUnitFractions renders terms as "1/2 + 1/3 + 1/42".
func formatUnitFractions(terms []*big.Rat) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.RatString()
	}
	return strings.Join(parts, " + ")
}
