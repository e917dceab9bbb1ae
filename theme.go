package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sdewitt/walletsel/internal/config"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

// ---------------------------------------------------------------------------
// Theme tokens
// ---------------------------------------------------------------------------

// Theme is the effective set of color tokens the renderer draws with.
type Theme struct {
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	Accent        lipgloss.Color
	Border        lipgloss.Color
	Surface       lipgloss.Color
	Installed     lipgloss.Color
	Recent        lipgloss.Color
}

func defaultTheme() Theme {
	return Theme{
		TextPrimary:   colorText,
		TextSecondary: colorSubtext0,
		TextMuted:     colorOverlay1,
		Accent:        colorPink,
		Border:        colorSurface1,
		Surface:       colorSurface0,
		Installed:     colorGreen,
		Recent:        colorTeal,
	}
}

// mergeTheme applies non-empty override tokens over defaults. Neither input
// is mutated; unset tokens keep their default value.
func mergeTheme(defaults Theme, overrides config.ThemeConfig) Theme {
	out := defaults
	if overrides.TextPrimary != "" {
		out.TextPrimary = lipgloss.Color(overrides.TextPrimary)
	}
	if overrides.TextSecondary != "" {
		out.TextSecondary = lipgloss.Color(overrides.TextSecondary)
	}
	if overrides.TextMuted != "" {
		out.TextMuted = lipgloss.Color(overrides.TextMuted)
	}
	if overrides.AccentColor != "" {
		out.Accent = lipgloss.Color(overrides.AccentColor)
	}
	if overrides.Border != "" {
		out.Border = lipgloss.Color(overrides.Border)
	}
	return out
}
