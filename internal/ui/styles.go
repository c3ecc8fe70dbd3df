// Package ui formats CLI output with optional terminal colors.
package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color modes accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Styles holds the renderers used by CLI output.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Dim      lipgloss.Style
	Category lipgloss.Style
	Featured lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style
}

// NewStyles returns colored styles, or plain ones when color is off.
func NewStyles(color bool) *Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return &Styles{
			Header:   plain,
			Title:    plain,
			Dim:      plain,
			Category: plain,
			Featured: plain,
			Success:  plain,
			Failure:  plain,
		}
	}
	return &Styles{
		Header:   lipgloss.NewStyle().Bold(true).Underline(true),
		Title:    lipgloss.NewStyle().Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Category: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Featured: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// IsColorEnabled resolves a color mode for w. In auto mode color is on
// only for terminals and only when NO_COLOR is unset.
func IsColorEnabled(mode string, w io.Writer, getenv func(string) string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	if getenv("NO_COLOR") != "" {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// ValidColorMode reports whether mode is accepted by IsColorEnabled.
func ValidColorMode(mode string) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}
