package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Styles — derived from the effective theme at startup
// ---------------------------------------------------------------------------

type styles struct {
	modal       lipgloss.Style
	title       lipgloss.Style
	subtitle    lipgloss.Style
	filterLabel lipgloss.Style
	filterValue lipgloss.Style
	filterHint  lipgloss.Style
	cursor      lipgloss.Style
	name        lipgloss.Style
	tagline     lipgloss.Style
	installed   lipgloss.Style
	recent      lipgloss.Style
	muted       lipgloss.Style
	status      lipgloss.Style
	helpKey     lipgloss.Style
	helpDesc    lipgloss.Style
	link        lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2),
		title:       lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		subtitle:    lipgloss.NewStyle().Foreground(t.TextSecondary),
		filterLabel: lipgloss.NewStyle().Foreground(t.TextSecondary),
		filterValue: lipgloss.NewStyle().Foreground(t.TextPrimary),
		filterHint:  lipgloss.NewStyle().Foreground(t.TextMuted),
		cursor:      lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		name:        lipgloss.NewStyle().Foreground(t.TextPrimary),
		tagline:     lipgloss.NewStyle().Foreground(t.TextMuted),
		installed:   lipgloss.NewStyle().Foreground(t.Installed),
		recent:      lipgloss.NewStyle().Foreground(t.Recent),
		muted:       lipgloss.NewStyle().Foreground(t.TextMuted),
		status:      lipgloss.NewStyle().Foreground(t.TextSecondary),
		helpKey:     lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		helpDesc:    lipgloss.NewStyle().Foreground(t.TextSecondary),
		link:        lipgloss.NewStyle().Foreground(t.Accent).Underline(true),
	}
}

// listContentWidth is the inner width of the modal body.
const listContentWidth = 56

// ---------------------------------------------------------------------------
// Wallet list rendering
// ---------------------------------------------------------------------------

func renderWalletList(l *walletListState, st styles, width int) string {
	var lines []string

	query := strings.TrimSpace(l.Query())
	searchValue := st.filterHint.Render("(type to filter)")
	if query != "" {
		searchValue = st.filterValue.Render(query)
	}
	lines = append(lines, st.filterLabel.Render("Filter: ")+searchValue, "")

	visible := l.Visible()
	if len(visible) == 0 {
		lines = append(lines, renderEmptyList(l, st)...)
		return strings.Join(lines, "\n")
	}

	nameWidth := 0
	for _, row := range visible {
		if w := lipgloss.Width(row.Name); w > nameWidth {
			nameWidth = w
		}
	}

	for i, row := range visible {
		prefix := "  "
		if i == l.cursor {
			prefix = st.cursor.Render("> ")
		}
		name := st.name.Render(padRight(row.Name, nameWidth))

		badges := ""
		if row.Installed {
			badges += "  " + st.installed.Render("installed")
		}
		if row.Recent {
			badges += "  " + st.recent.Render("recent")
		}

		line := prefix + name + badges
		if row.Tagline != "" {
			remaining := width - lipgloss.Width(line) - 3
			if remaining > 8 {
				line += "  " + st.tagline.Render(truncate(row.Tagline, remaining))
			}
		}
		lines = append(lines, padRight(line, width))
	}

	return strings.Join(lines, "\n")
}

func renderEmptyList(l *walletListState, st styles) []string {
	query := strings.TrimSpace(l.Query())
	if query == "" {
		return []string{st.muted.Render("No wallets to show.")}
	}
	lines := []string{st.muted.Render(fmt.Sprintf("No wallets match %q.", query))}
	if hint := l.suggestion(); hint != "" {
		lines = append(lines, st.muted.Render("Did you mean ")+st.name.Render(hint)+st.muted.Render("?"))
	}
	return lines
}

// ---------------------------------------------------------------------------
// Modal chrome
// ---------------------------------------------------------------------------

func renderHelpLink(url string, st styles) string {
	return st.muted.Render("New to wallets? Learn more: ") + st.link.Render(url)
}

func renderFooterHints(bindings []key.Binding, st styles) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, st.helpKey.Render(help.Key)+" "+st.helpDesc.Render(help.Desc))
	}
	return strings.Join(parts, "  ")
}
