// Package wallets holds the built-in wallet provider catalog and the
// resolution logic that turns a requested id list plus detection state into
// the ordered entries a wallet picker displays.
package wallets

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Wallet is one catalog entry. The catalog is static: entries are defined in
// catalog.toml, embedded at build time, and never mutated at runtime.
type Wallet struct {
	ID       string `toml:"id"`
	Name     string `toml:"name"`
	Homepage string `toml:"homepage"`
	Tagline  string `toml:"tagline"`
}

//go:embed catalog.toml
var catalogTOML []byte

var catalog []Wallet

func init() {
	parsed, err := parseCatalog(catalogTOML)
	if err != nil {
		// A broken embedded catalog is a programmer error, not a runtime
		// condition.
		panic("wallets: " + err.Error())
	}
	catalog = parsed
}

// Catalog returns the built-in catalog in default display order. The result
// is a copy; callers may reorder it freely.
func Catalog() []Wallet {
	return append([]Wallet(nil), catalog...)
}

// Lookup finds a catalog entry by id.
func Lookup(id string) (Wallet, bool) {
	for _, w := range catalog {
		if w.ID == id {
			return w, true
		}
	}
	return Wallet{}, false
}

// parseCatalog parses TOML bytes into catalog entries and enforces the
// unique-id invariant.
func parseCatalog(data []byte) ([]Wallet, error) {
	var file struct {
		Wallet []Wallet `toml:"wallet"`
	}
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog.toml: %w", err)
	}
	if len(file.Wallet) == 0 {
		return nil, fmt.Errorf("no wallets defined in catalog")
	}
	seen := make(map[string]bool, len(file.Wallet))
	for i, w := range file.Wallet {
		if w.ID == "" {
			return nil, fmt.Errorf("wallet[%d]: id is required", i)
		}
		if w.Name == "" {
			return nil, fmt.Errorf("wallet[%d] %q: name is required", i, w.ID)
		}
		if seen[w.ID] {
			return nil, fmt.Errorf("wallet[%d]: duplicate id %q", i, w.ID)
		}
		seen[w.ID] = true
	}
	return file.Wallet, nil
}
