// Package style holds the palette and status icons shared by log lines and command output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette. Each status has one color wherever it is printed.
var (
	// Iris marks debug output, such as the dispatcher's per-request trace lines.
	Iris = lipgloss.Color("#8B5CF6")
	// Slate marks informational and skipped lines.
	Slate = lipgloss.Color("#667085")
	// Green marks completed work.
	Green = lipgloss.Color("#22A06B")
	// Red marks errors and failed files.
	Red = lipgloss.Color("#D93025")
	// Yellow marks warnings.
	Yellow = lipgloss.Color("#F59E0B")
)

// Status icons prefixed to a line.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Circle  = "○"
)
