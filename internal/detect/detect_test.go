package detect

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/sdewitt/walletsel/internal/wallets"
)

func neverOnPath(string) (string, error) { return "", errors.New("not found") }

func testScanner(probes map[string]Probe, roots []string) *Scanner {
	return &Scanner{
		probes:         probes,
		extensionRoots: roots,
		lookPath:       neverOnPath,
		statPath:       func(string) bool { return false },
	}
}

func TestScanFindsExtensionInstall(t *testing.T) {
	root := t.TempDir()
	extDir := filepath.Join(root, "Default", "Extensions", extMetaMask)
	if err := os.MkdirAll(extDir, 0o755); err != nil {
		t.Fatalf("mkdir extension dir: %v", err)
	}

	s := testScanner(map[string]Probe{
		"metamask": {ExtensionIDs: []string{extMetaMask}},
		"rabby":    {ExtensionIDs: []string{extRabby}},
	}, []string{root})

	snap := s.Scan(context.Background())
	if !snap.Ready() {
		t.Fatal("snapshot should be ready after a full scan")
	}
	if !snap.IsInstalled("metamask") {
		t.Error("metamask should be detected via extension dir")
	}
	if snap.IsInstalled("rabby") {
		t.Error("rabby should not be detected")
	}
}

func TestScanFindsExtensionInNonDefaultProfile(t *testing.T) {
	root := t.TempDir()
	extDir := filepath.Join(root, "Profile 2", "Extensions", extZerion)
	if err := os.MkdirAll(extDir, 0o755); err != nil {
		t.Fatalf("mkdir extension dir: %v", err)
	}

	s := testScanner(map[string]Probe{
		"zerion": {ExtensionIDs: []string{extZerion}},
	}, []string{root})

	if !s.Scan(context.Background()).IsInstalled("zerion") {
		t.Error("zerion should be detected in a secondary profile")
	}
}

func TestScanFindsExecutable(t *testing.T) {
	s := testScanner(map[string]Probe{
		"brave": {Executables: []string{"brave", "brave-browser"}},
	}, nil)
	s.lookPath = func(name string) (string, error) {
		if name == "brave-browser" {
			return "/usr/bin/brave-browser", nil
		}
		return "", errors.New("not found")
	}

	if !s.Scan(context.Background()).IsInstalled("brave") {
		t.Error("brave should be detected via PATH lookup")
	}
}

func TestScanFindsNativePath(t *testing.T) {
	s := testScanner(map[string]Probe{
		"brave": {Paths: []string{"/Applications/Brave Browser.app"}},
	}, nil)
	s.statPath = func(path string) bool {
		return path == "/Applications/Brave Browser.app"
	}

	if !s.Scan(context.Background()).IsInstalled("brave") {
		t.Error("brave should be detected via native path")
	}
}

func TestScanCancelledContextNotReady(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := testScanner(map[string]Probe{
		"metamask": {ExtensionIDs: []string{extMetaMask}},
	}, nil)

	snap := s.Scan(ctx)
	if snap.Ready() {
		t.Error("cancelled scan should not report ready")
	}
}

func TestZeroSnapshot(t *testing.T) {
	var snap Snapshot
	if snap.Ready() {
		t.Error("zero snapshot should not be ready")
	}
	if snap.IsInstalled("metamask") {
		t.Error("zero snapshot should report nothing installed")
	}
	if got := snap.Detected(); got != nil {
		t.Errorf("Detected = %v, want nil", got)
	}
}

func TestSnapshotDetectedSorted(t *testing.T) {
	snap := SnapshotFrom(map[string]bool{
		"zerion":   true,
		"brave":    true,
		"metamask": true,
		"rabby":    false,
	}, time.Now())

	want := []string{"brave", "metamask", "zerion"}
	if got := snap.Detected(); !reflect.DeepEqual(got, want) {
		t.Errorf("Detected = %v, want %v", got, want)
	}
}

func TestSnapshotFromIsNotReadyAndCopies(t *testing.T) {
	src := map[string]bool{"metamask": true}
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	snap := SnapshotFrom(src, at)

	if snap.Ready() {
		t.Error("persisted snapshot should seed as not ready")
	}
	if !snap.ScannedAt().Equal(at) {
		t.Errorf("ScannedAt = %v, want %v", snap.ScannedAt(), at)
	}

	src["metamask"] = false
	if !snap.IsInstalled("metamask") {
		t.Error("snapshot should not share the caller's map")
	}
}

func TestSnapshotInstalledReturnsCopy(t *testing.T) {
	snap := SnapshotFrom(map[string]bool{"rabby": true}, time.Now())
	m := snap.Installed()
	m["rabby"] = false
	if !snap.IsInstalled("rabby") {
		t.Error("Installed should return a copy")
	}
}

func TestDefaultProbesCoverCatalog(t *testing.T) {
	probes := defaultProbes()
	for _, w := range wallets.Catalog() {
		probe, ok := probes[w.ID]
		if !ok {
			t.Errorf("no probe for catalog wallet %q", w.ID)
			continue
		}
		if len(probe.Executables) == 0 && len(probe.ExtensionIDs) == 0 && len(probe.Paths) == 0 {
			t.Errorf("probe for %q is empty", w.ID)
		}
	}
}
