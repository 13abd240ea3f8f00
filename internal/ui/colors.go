package ui

// Color accessors map the classic color names used by the CLI onto the
// active theme's roles.

// ColorRed returns the error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the secondary color.
func ColorBlue() string { return GetCurrentTheme().Secondary }

// ColorMagenta returns the info color.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorCyan returns the primary color.
func ColorCyan() string { return GetCurrentTheme().Primary }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the escape code that clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }
