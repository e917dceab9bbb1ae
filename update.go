package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sdewitt/walletsel/internal/detect"
)

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		scanCmd(m.scanner),
		loadHistoryCmd(m.selections, m.detections),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.snapshot.Ready() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case scanDoneMsg:
		m.snapshot = msg.snap
		m.refreshRows()
		return m, saveDetectionsCmd(m.detections, msg.snap)

	case historyLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("history unavailable: %v", msg.err)
			return m, nil
		}
		m.recentID = msg.recentID
		// The persisted snapshot only seeds the list while the fresh scan is
		// still running.
		if !m.snapshot.Ready() && len(msg.seed) > 0 {
			m.snapshot = detect.SnapshotFrom(msg.seed, msg.seedAt)
		}
		m.refreshRows()
		return m, nil

	case selectionSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("could not record selection: %v", msg.err)
		}
		return m, nil

	case detectionsSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("could not persist detections: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	res := m.list.HandleKey(msg.String())
	switch res.Action {
	case listActionSelected:
		m.chosen = res.WalletID
		if m.onSelect != nil {
			m.onSelect(res.WalletID)
		}
		m.quitting = true
		if cmd := saveSelectionCmd(m.selections, res.WalletID); cmd != nil {
			return m, tea.Sequence(cmd, tea.Quit)
		}
		return m, tea.Quit

	case listActionBack:
		if m.onBack != nil {
			m.onBack()
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}
