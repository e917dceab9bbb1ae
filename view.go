package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections,
		m.st.title.Render(m.cfg.UI.Title),
		m.st.subtitle.Render(m.cfg.UI.Subtitle),
		"",
	)

	if !m.snapshot.Ready() {
		sections = append(sections, m.st.status.Render(m.spin.View()+" detecting installed wallets…"), "")
	}

	sections = append(sections, renderWalletList(m.list, m.st, listContentWidth), "")

	if m.cfg.UI.HelpURL != "" {
		sections = append(sections, renderHelpLink(m.cfg.UI.HelpURL, m.st))
	}
	if m.status != "" {
		sections = append(sections, m.st.status.Render(m.status))
	}
	sections = append(sections, "", renderFooterHints(m.keys.ShortHelp(), m.st))

	modal := m.st.modal.Render(strings.Join(sections, "\n"))
	if m.width == 0 || m.height == 0 {
		return modal
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
