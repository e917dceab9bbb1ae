// Package detect discovers which wallet providers are present on the host.
// Detection is a best-effort filesystem and PATH scan: browser extension
// directories are checked for the wallets' published extension ids, and
// native installs are checked by executable lookup and well-known paths.
package detect

import (
	"context"
	"os/exec"
	"path/filepath"
	"sort"
	"time"
)

// Probe describes the ways one wallet can show up on the host. A wallet is
// considered installed when any probe hits.
type Probe struct {
	// Executables looked up on PATH.
	Executables []string
	// Extension ids looked for under each browser profile root.
	ExtensionIDs []string
	// Absolute paths checked for existence (native app installs).
	Paths []string
}

// Snapshot is the outcome of one scan. The zero value reports nothing
// installed and not ready.
type Snapshot struct {
	installed map[string]bool
	scannedAt time.Time
	ready     bool
}

// IsInstalled reports whether the given wallet id was detected. Absent ids
// report false, never an error.
func (s Snapshot) IsInstalled(id string) bool {
	return s.installed[id]
}

// Ready reports whether a scan has completed at least once.
func (s Snapshot) Ready() bool {
	return s.ready
}

// ScannedAt returns when the snapshot was taken.
func (s Snapshot) ScannedAt() time.Time {
	return s.scannedAt
}

// Detected returns the detected wallet ids in sorted order.
func (s Snapshot) Detected() []string {
	if len(s.installed) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.installed))
	for id, ok := range s.installed {
		if ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Installed returns the full id -> detected map, for persistence.
func (s Snapshot) Installed() map[string]bool {
	out := make(map[string]bool, len(s.installed))
	for id, ok := range s.installed {
		out[id] = ok
	}
	return out
}

// SnapshotFrom rebuilds a snapshot from persisted detection results. The
// result is marked not ready: it seeds the UI until a fresh scan lands.
func SnapshotFrom(installed map[string]bool, at time.Time) Snapshot {
	copied := make(map[string]bool, len(installed))
	for id, ok := range installed {
		copied[id] = ok
	}
	return Snapshot{installed: copied, scannedAt: at}
}

// Scanner probes the host for installed wallet providers.
type Scanner struct {
	probes         map[string]Probe
	extensionRoots []string
	lookPath       func(name string) (string, error)
	statPath       func(path string) bool
}

// NewScanner returns a scanner with the built-in probe table for the wallet
// catalog and the browser profile roots for the current platform.
func NewScanner() *Scanner {
	return &Scanner{
		probes:         defaultProbes(),
		extensionRoots: defaultExtensionRoots(),
		lookPath:       exec.LookPath,
		statPath:       pathExists,
	}
}

// Scan probes every wallet and returns a ready snapshot. A cancelled context
// yields a not-ready snapshot with whatever was gathered so far.
func (s *Scanner) Scan(ctx context.Context) Snapshot {
	installed := make(map[string]bool, len(s.probes))
	for id, probe := range s.probes {
		if ctx.Err() != nil {
			return Snapshot{installed: installed, scannedAt: time.Now()}
		}
		installed[id] = s.hit(probe)
	}
	return Snapshot{installed: installed, scannedAt: time.Now(), ready: true}
}

func (s *Scanner) hit(probe Probe) bool {
	for _, name := range probe.Executables {
		if _, err := s.lookPath(name); err == nil {
			return true
		}
	}
	for _, extID := range probe.ExtensionIDs {
		for _, root := range s.extensionRoots {
			// <root>/<profile>/Extensions/<extension id>
			matches, err := filepath.Glob(filepath.Join(root, "*", "Extensions", extID))
			if err == nil && len(matches) > 0 {
				return true
			}
		}
	}
	for _, path := range probe.Paths {
		if s.statPath(path) {
			return true
		}
	}
	return false
}
