// Package output provides utilities for formatted terminal output,
// including colored text and styled messages.
package output

import "github.com/fatih/color"

// Color printers used for terminal text styling. fatih/color disables
// them automatically when stdout is not a terminal or NO_COLOR is set.
var (
	red    = color.New(color.FgRed)    // Errors, failures
	green  = color.New(color.FgGreen)  // Success
	yellow = color.New(color.FgYellow) // Warnings, skipped steps
	blue   = color.New(color.FgBlue)   // Informational
	cyan   = color.New(color.FgCyan)   // Headings
)

// Green wraps the given text in green.
func Green(text string) string {
	return green.Sprint(text)
}

// Red wraps the given text in red.
func Red(text string) string {
	return red.Sprint(text)
}

// Yellow wraps the given text in yellow.
func Yellow(text string) string {
	return yellow.Sprint(text)
}

// Blue wraps the given text in blue.
func Blue(text string) string {
	return blue.Sprint(text)
}

// Cyan wraps the given text in cyan.
func Cyan(text string) string {
	return cyan.Sprint(text)
}
