package detect

import (
	"os"
	"path/filepath"
	"runtime"
)

// Published Chrome Web Store extension ids for the catalog wallets.
const (
	extMetaMask = "nkbihfbeogaeaoehlefnkodbefgpgknn"
	extRabby    = "acmacodkjbdgmoleebolmdjonilkdbch"
	extPhantom  = "bfnaelmomeimhlpmgjnjophhpkkoljpa"
	extZerion   = "klghhnkeealcohjjanjjdaeeggmfmlpl"
	extCoinbase = "hnfanknocfeofbddgcijnmhnfnkdnaad"
)

func defaultProbes() map[string]Probe {
	return map[string]Probe{
		"metamask": {ExtensionIDs: []string{extMetaMask}},
		"rabby":    {ExtensionIDs: []string{extRabby}},
		"phantom":  {ExtensionIDs: []string{extPhantom}},
		"zerion":   {ExtensionIDs: []string{extZerion}},
		"coinbase": {ExtensionIDs: []string{extCoinbase}},
		// Brave Wallet ships with the browser itself.
		"brave": {
			Executables: []string{"brave", "brave-browser"},
			Paths:       []string{"/Applications/Brave Browser.app"},
		},
	}
}

// defaultExtensionRoots returns the chromium-family profile roots scanned for
// extension installs on the current platform.
func defaultExtensionRoots() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	switch runtime.GOOS {
	case "darwin":
		base := filepath.Join(home, "Library", "Application Support")
		return []string{
			filepath.Join(base, "Google", "Chrome"),
			filepath.Join(base, "Chromium"),
			filepath.Join(base, "BraveSoftware", "Brave-Browser"),
		}
	default:
		base := filepath.Join(home, ".config")
		return []string{
			filepath.Join(base, "google-chrome"),
			filepath.Join(base, "chromium"),
			filepath.Join(base, "BraveSoftware", "Brave-Browser"),
		}
	}
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
