package main

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/sdewitt/walletsel/internal/config"
	"github.com/sdewitt/walletsel/internal/database/repository"
	"github.com/sdewitt/walletsel/internal/detect"
	"github.com/sdewitt/walletsel/internal/wallets"
)

const appName = "walletsel"

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type scanDoneMsg struct {
	snap detect.Snapshot
}

type historyLoadedMsg struct {
	recentID string
	seed     map[string]bool
	seedAt   time.Time
	err      error
}

type selectionSavedMsg struct {
	err error
}

type detectionsSavedMsg struct {
	err error
}

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type model struct {
	cfg   config.Config
	theme Theme
	st    styles
	keys  keyMap
	list  *walletListState
	spin  spinner.Model

	scanner    *detect.Scanner
	snapshot   detect.Snapshot
	selections *repository.SelectionRepo
	detections *repository.DetectionRepo

	recentID string
	chosen   string
	status   string
	width    int
	height   int
	quitting bool

	// onSelect fires exactly once when a wallet entry is chosen; onBack fires
	// exactly once when the back action triggers. Either may be nil.
	onSelect func(id string)
	onBack   func()
}

func newModel(cfg config.Config, scanner *detect.Scanner, selections *repository.SelectionRepo, detections *repository.DetectionRepo) model {
	theme := mergeTheme(defaultTheme(), cfg.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	m := model{
		cfg:        cfg,
		theme:      theme,
		st:         newStyles(theme),
		keys:       newKeyMap(),
		list:       newWalletList(nil),
		spin:       sp,
		scanner:    scanner,
		selections: selections,
		detections: detections,
	}
	m.refreshRows()
	return m
}

// refreshRows recomputes the displayed entries from the catalog, the
// requested id list, and the current detection snapshot.
func (m *model) refreshRows() {
	resolved := wallets.Resolve(m.cfg.Wallets, wallets.Catalog(), m.snapshot.IsInstalled)
	rows := make([]walletRow, 0, len(resolved))
	for _, e := range resolved {
		row := walletRow{
			ID:        e.ID,
			Name:      e.Name,
			Installed: e.Installed,
			Recent:    e.ID == m.recentID,
		}
		if w, ok := wallets.Lookup(e.ID); ok {
			row.Tagline = w.Tagline
		}
		rows = append(rows, row)
	}
	m.list.SetRows(rows)
}
