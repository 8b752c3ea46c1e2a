// Package ui provides terminal styling for recipelang CLI output.
// Uses the Ayu color theme with adaptive light/dark mode support:
// semantic colors that communicate meaning at a glance, minimal visual
// noise, consistent rendering across all commands.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	if !ShouldUseColor() {
		// disable colors when not appropriate (non-TTY, NO_COLOR, etc.)
		lipgloss.SetColorProfile(termenv.Ascii)
	} else {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// ApplyThemeMode applies the theme mode settings to lipgloss.
// Call after InitTheme().
func ApplyThemeMode() {
	if !ShouldUseColor() {
		return
	}
	lipgloss.SetHasDarkBackground(HasDarkBackground())
}

// Ayu theme color palette
// Source: https://github.com/ayu-theme/ayu-colors
var (
	ColorPass = lipgloss.AdaptiveColor{
		Light: "#86b300", // ayu light bright green
		Dark:  "#c2d94c", // ayu dark bright green
	}
	ColorWarn = lipgloss.AdaptiveColor{
		Light: "#f2ae49", // ayu light bright yellow
		Dark:  "#ffb454", // ayu dark bright yellow
	}
	ColorFail = lipgloss.AdaptiveColor{
		Light: "#f07171", // ayu light bright red
		Dark:  "#f07178", // ayu dark bright red
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99", // ayu light muted
		Dark:  "#6c7680", // ayu dark muted
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#399ee6", // ayu light bright blue
		Dark:  "#59c2ff", // ayu dark bright blue
	}
)

// Icons for statement echo and diagnostics.
const (
	IconPass = "✓"
	IconWarn = "⚠"
	IconFail = "✗"
)

var (
	passStyle   = lipgloss.NewStyle().Foreground(ColorPass)
	warnStyle   = lipgloss.NewStyle().Foreground(ColorWarn)
	failStyle   = lipgloss.NewStyle().Foreground(ColorFail)
	mutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	accentStyle = lipgloss.NewStyle().Foreground(ColorAccent)
)

// RenderPass renders text with pass (green) styling.
func RenderPass(s string) string { return passStyle.Render(s) }

// RenderWarn renders text with warning (yellow) styling.
func RenderWarn(s string) string { return warnStyle.Render(s) }

// RenderFail renders text with failure (red) styling.
func RenderFail(s string) string { return failStyle.Render(s) }

// RenderMuted renders text with muted (gray) styling.
func RenderMuted(s string) string { return mutedStyle.Render(s) }

// RenderAccent renders text with accent (blue) styling.
func RenderAccent(s string) string { return accentStyle.Render(s) }
