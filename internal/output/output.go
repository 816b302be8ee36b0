// Package output provides styled terminal output for the CLI commands.
// Styling details stay behind these helpers so callers never touch lipgloss
// directly.
package output

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
)

// SetVerbose enables or disables verbose output. The CLI calls this when the
// --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Success prints a completed-operation message in green.
func Success(msg string) {
	fmt.Println(successStyle.Render("ok: " + msg))
}

// Error prints a failure message in red.
func Error(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("error: " + msg))
}

// Warn prints a non-fatal diagnostic to stderr in yellow.
func Warn(msg string) {
	fmt.Fprintln(os.Stderr, warnStyle.Render("warning: " + msg))
}

// Info prints a status update in cyan.
func Info(msg string) {
	fmt.Println(infoStyle.Render(msg))
}

// Step prints an indented sub-item in gray.
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}

// Verbose prints a message only when verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(os.Stderr, stepStyle.Render(msg))
	}
}
