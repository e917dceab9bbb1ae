package wallets

import (
	"testing"
)

func TestParseCatalogValid(t *testing.T) {
	data := []byte(`
[[wallet]]
id = "metamask"
name = "MetaMask"
homepage = "https://metamask.io"
tagline = "Browser extension wallet"

[[wallet]]
id = "rabby"
name = "Rabby"
`)
	entries, err := parseCatalog(data)
	if err != nil {
		t.Fatalf("parseCatalog: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "metamask" {
		t.Errorf("id = %q, want %q", entries[0].ID, "metamask")
	}
	if entries[0].Homepage != "https://metamask.io" {
		t.Errorf("homepage = %q, want %q", entries[0].Homepage, "https://metamask.io")
	}
	if entries[1].Name != "Rabby" {
		t.Errorf("name = %q, want %q", entries[1].Name, "Rabby")
	}
}

func TestParseCatalogMissingID(t *testing.T) {
	data := []byte(`
[[wallet]]
name = "Nameless"
`)
	if _, err := parseCatalog(data); err == nil {
		t.Error("expected error for missing id")
	}
}

func TestParseCatalogMissingName(t *testing.T) {
	data := []byte(`
[[wallet]]
id = "ghost"
`)
	if _, err := parseCatalog(data); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestParseCatalogDuplicateID(t *testing.T) {
	data := []byte(`
[[wallet]]
id = "metamask"
name = "MetaMask"

[[wallet]]
id = "metamask"
name = "MetaMask Again"
`)
	if _, err := parseCatalog(data); err == nil {
		t.Error("expected error for duplicate id")
	}
}

func TestParseCatalogEmpty(t *testing.T) {
	if _, err := parseCatalog([]byte(``)); err == nil {
		t.Error("expected error for empty catalog")
	}
}

func TestParseCatalogMalformedTOML(t *testing.T) {
	if _, err := parseCatalog([]byte(`not toml [[[`)); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestEmbeddedCatalogHasSixEntriesInOrder(t *testing.T) {
	entries := Catalog()
	want := []string{"metamask", "rabby", "phantom", "zerion", "coinbase", "brave"}
	if len(entries) != len(want) {
		t.Fatalf("catalog size = %d, want %d", len(entries), len(want))
	}
	for i, id := range want {
		if entries[i].ID != id {
			t.Errorf("catalog[%d] = %q, want %q", i, entries[i].ID, id)
		}
		if entries[i].Name == "" {
			t.Errorf("catalog[%d] %q has empty name", i, id)
		}
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	first := Catalog()
	first[0].ID = "tampered"
	if Catalog()[0].ID != "metamask" {
		t.Error("Catalog should return a copy, not the shared slice")
	}
}

func TestLookup(t *testing.T) {
	w, ok := Lookup("coinbase")
	if !ok {
		t.Fatal("expected to find coinbase")
	}
	if w.Name != "Coinbase Wallet" {
		t.Errorf("name = %q, want %q", w.Name, "Coinbase Wallet")
	}

	if _, ok := Lookup("doesnotexist"); ok {
		t.Error("expected miss for unknown id")
	}
}
