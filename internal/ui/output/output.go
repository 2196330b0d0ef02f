// Package output provides utilities for creating termenv.Output with consistent
// color profile and TTY handling across the CLI.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/sourcehook/internal/ui/style"
)

// ColorProfile returns the color profile to use for interactive terminals.
// It checks if NO_COLOR is set, returning Ascii if so.
// Otherwise, it detects the terminal's capabilities automatically.
// For CI environments, consider using ColorProfileANSI() instead.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI returns the color profile for CI/non-interactive environments.
// It checks if NO_COLOR is set, returning Ascii if so.
// Otherwise, it returns ANSI for broad compatibility with CI systems.
func ColorProfileANSI() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New creates a new termenv.Output with the specific profile logic.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// NewWithProfile creates a new termenv.Output with a custom profile selector.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Printer writes one status line per command result.
type Printer struct {
	out *termenv.Output
}

// NewPrinter creates a Printer writing to w with the non-interactive color profile.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{out: NewWithProfile(w, ColorProfileANSI)}
}

// Success prints msg marked as done.
func (p *Printer) Success(msg string) {
	p.line(style.Check, style.Green, msg)
}

// Skipped prints msg marked as not applicable.
func (p *Printer) Skipped(msg string) {
	p.line(style.Circle, style.Slate, msg)
}

// Failure prints msg marked as failed.
func (p *Printer) Failure(msg string) {
	p.line(style.Cross, style.Red, msg)
}

func (p *Printer) line(icon string, color lipgloss.Color, msg string) {
	styled := p.out.String(icon + " " + msg).Foreground(termenv.RGBColor(string(color)))
	_, _ = p.out.WriteString(styled.String() + "\n")
}
