package ui

// Accessor functions returning escape codes from the active theme. CLI
// output code uses these instead of touching the theme directly so a theme
// switch takes effect everywhere at once.

// ColorGreen returns the success color of the active theme.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorRed returns the error color of the active theme.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorYellow returns the warning color of the active theme.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorCyan returns the primary color of the active theme.
func ColorCyan() string { return GetCurrentTheme().Primary }

// ColorMagenta returns the info color of the active theme.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorBlue returns the secondary color of the active theme.
func ColorBlue() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code of the active theme.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code of the active theme.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the reset escape code of the active theme.
func ColorReset() string { return GetCurrentTheme().Reset }
