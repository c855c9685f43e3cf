package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version string. It is overridden at build time
// via -ldflags "-X github.com/agbru/karatcalc/internal/app.Version=vX.Y.Z".
var Version = "dev"

// HasVersionFlag reports whether the argument list requests the version.
// It is checked before flag parsing so --version works even when other
// required flags are missing.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--version" || arg == "-version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version line to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "karatcalc %s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
