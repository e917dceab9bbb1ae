package wallets

// Resolved is a catalog entry annotated with detection state. Entries are
// recomputed on every call and carry no identity beyond the current render.
type Resolved struct {
	ID        string
	Name      string
	Installed bool
}

// Resolve produces the ordered list of wallets to display. requested filters
// the catalog; nil or empty means the full catalog in default order. Unknown
// ids are dropped silently and duplicates collapse to their first occurrence.
// Entries the installed predicate reports true for are placed ahead of the
// rest as a stable partition: within each group the incoming relative order
// is preserved. A nil predicate means nothing is installed.
func Resolve(requested []string, catalog []Wallet, installed func(id string) bool) []Resolved {
	byID := make(map[string]Wallet, len(catalog))
	for _, w := range catalog {
		byID[w.ID] = w
	}

	ids := requested
	if len(ids) == 0 {
		ids = make([]string, 0, len(catalog))
		for _, w := range catalog {
			ids = append(ids, w.ID)
		}
	}

	seen := make(map[string]bool, len(ids))
	head := make([]Resolved, 0, len(ids))
	tail := make([]Resolved, 0, len(ids))
	for _, id := range ids {
		w, ok := byID[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		entry := Resolved{ID: w.ID, Name: w.Name, Installed: installed != nil && installed(w.ID)}
		if entry.Installed {
			head = append(head, entry)
		} else {
			tail = append(tail, entry)
		}
	}
	return append(head, tail...)
}
