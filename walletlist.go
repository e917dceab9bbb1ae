package main

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// walletRow is one displayable wallet entry, derived fresh from the resolver
// on every refresh.
type walletRow struct {
	ID        string
	Name      string
	Tagline   string
	Installed bool
	Recent    bool
}

type listAction int

const (
	listActionNone listAction = iota
	listActionMoved
	listActionSelected
	listActionBack
)

// listResult reports what a key event did. Selected and Back are emitted at
// most once per key event.
type listResult struct {
	Action   listAction
	WalletID string
}

type walletListState struct {
	rows     []walletRow
	filtered []walletRow
	query    string
	cursor   int
}

func newWalletList(rows []walletRow) *walletListState {
	l := &walletListState{}
	l.SetRows(rows)
	return l
}

// SetRows replaces the entries. The incoming order is authoritative (the
// resolver already sorted installed wallets first) and is preserved through
// filtering.
func (l *walletListState) SetRows(rows []walletRow) {
	if l == nil {
		return
	}
	l.rows = append([]walletRow(nil), rows...)
	l.rebuildFiltered()
}

func (l *walletListState) SetQuery(q string) {
	if l == nil {
		return
	}
	l.query = q
	l.rebuildFiltered()
}

func (l *walletListState) Query() string {
	if l == nil {
		return ""
	}
	return l.query
}

// Visible returns the rows currently shown, in display order.
func (l *walletListState) Visible() []walletRow {
	if l == nil {
		return nil
	}
	return append([]walletRow(nil), l.filtered...)
}

func (l *walletListState) CursorUp() {
	if l == nil {
		return
	}
	if l.cursor > 0 {
		l.cursor--
	}
}

func (l *walletListState) CursorDown() {
	if l == nil {
		return
	}
	if l.cursor < len(l.filtered)-1 {
		l.cursor++
	}
}

// Current returns the row under the cursor.
func (l *walletListState) Current() (walletRow, bool) {
	if l == nil || len(l.filtered) == 0 {
		return walletRow{}, false
	}
	idx := l.cursor
	if idx < 0 {
		idx = 0
	}
	if idx >= len(l.filtered) {
		idx = len(l.filtered) - 1
	}
	return l.filtered[idx], true
}

// HandleKey advances the list state for one key event.
func (l *walletListState) HandleKey(keyName string) listResult {
	if l == nil {
		return listResult{Action: listActionNone}
	}

	switch keyName {
	case "up", "k":
		before := l.cursor
		l.CursorUp()
		if l.cursor != before {
			return listResult{Action: listActionMoved}
		}
		return listResult{Action: listActionNone}
	case "down", "j":
		before := l.cursor
		l.CursorDown()
		if l.cursor != before {
			return listResult{Action: listActionMoved}
		}
		return listResult{Action: listActionNone}
	case "enter":
		if row, ok := l.Current(); ok {
			return listResult{Action: listActionSelected, WalletID: row.ID}
		}
		return listResult{Action: listActionNone}
	case "esc":
		// First esc clears an active filter, second one goes back.
		if l.query != "" {
			l.SetQuery("")
			return listResult{Action: listActionNone}
		}
		return listResult{Action: listActionBack}
	case "backspace":
		if len(l.query) > 0 {
			l.SetQuery(l.query[:len(l.query)-1])
		}
		return listResult{Action: listActionNone}
	default:
		if isPrintableASCIIKey(keyName) {
			l.SetQuery(l.query + keyName)
		}
		return listResult{Action: listActionNone}
	}
}

func (l *walletListState) rebuildFiltered() {
	if l == nil {
		return
	}
	q := strings.TrimSpace(l.query)
	out := make([]walletRow, 0, len(l.rows))
	for _, row := range l.rows {
		if subsequenceMatch(row.Name, q) {
			out = append(out, row)
		}
	}
	l.filtered = out

	if l.cursor > len(l.filtered)-1 {
		l.cursor = len(l.filtered) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// suggestionDistanceCap bounds how far a "did you mean" hint may stray from
// the query.
const suggestionDistanceCap = 3

// suggestion returns the wallet name closest to the current query by edit
// distance, used as a hint when the filter matches nothing.
func (l *walletListState) suggestion() string {
	if l == nil || len(l.filtered) > 0 {
		return ""
	}
	q := strings.ToLower(strings.TrimSpace(l.query))
	if q == "" {
		return ""
	}
	best := ""
	bestDist := suggestionDistanceCap + 1
	for _, row := range l.rows {
		d := levenshtein.ComputeDistance(q, strings.ToLower(row.Name))
		if d < bestDist {
			best = row.Name
			bestDist = d
		}
	}
	return best
}

// subsequenceMatch reports whether every query character appears in label in
// order (case-insensitive).
func subsequenceMatch(label, query string) bool {
	if query == "" {
		return true
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(labelLower); j++ {
			if labelLower[j] == ch {
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func isPrintableASCIIKey(keyName string) bool {
	return len(keyName) == 1 && keyName[0] >= 32 && keyName[0] < 127
}
