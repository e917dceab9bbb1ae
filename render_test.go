package main

import (
	"strings"
	"testing"
)

func testStyles() styles {
	return newStyles(defaultTheme())
}

func TestRenderWalletListShowsNamesAndBadges(t *testing.T) {
	l := newWalletList(testWalletRows())
	view := renderWalletList(l, testStyles(), listContentWidth)

	for _, name := range []string{"Rabby", "MetaMask", "Phantom", "Zerion", "Coinbase Wallet", "Brave Wallet"} {
		if !strings.Contains(view, name) {
			t.Errorf("expected %q in view:\n%s", name, view)
		}
	}
	if !strings.Contains(view, "installed") {
		t.Errorf("expected installed badge in view:\n%s", view)
	}
	if !strings.Contains(view, "recent") {
		t.Errorf("expected recent badge in view:\n%s", view)
	}
}

func TestRenderWalletListInstalledBadgeOnlyOnInstalledRows(t *testing.T) {
	l := newWalletList([]walletRow{
		{ID: "metamask", Name: "MetaMask", Installed: true},
		{ID: "rabby", Name: "Rabby"},
	})
	view := renderWalletList(l, testStyles(), listContentWidth)

	var metamaskLine, rabbyLine string
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "MetaMask") {
			metamaskLine = line
		}
		if strings.Contains(line, "Rabby") {
			rabbyLine = line
		}
	}
	if !strings.Contains(metamaskLine, "installed") {
		t.Errorf("MetaMask row should carry installed badge: %q", metamaskLine)
	}
	if strings.Contains(rabbyLine, "installed") {
		t.Errorf("Rabby row should not carry installed badge: %q", rabbyLine)
	}
}

func TestRenderWalletListFilterLine(t *testing.T) {
	l := newWalletList(testWalletRows())
	view := renderWalletList(l, testStyles(), listContentWidth)
	if !strings.Contains(view, "(type to filter)") {
		t.Errorf("expected filter hint in view:\n%s", view)
	}

	l.SetQuery("rab")
	view = renderWalletList(l, testStyles(), listContentWidth)
	if !strings.Contains(view, "rab") {
		t.Errorf("expected query in view:\n%s", view)
	}
}

func TestRenderWalletListEmptyStates(t *testing.T) {
	l := newWalletList(nil)
	view := renderWalletList(l, testStyles(), listContentWidth)
	if !strings.Contains(view, "No wallets to show.") {
		t.Errorf("expected empty-catalog message:\n%s", view)
	}

	l = newWalletList(testWalletRows())
	l.SetQuery("metamusk")
	view = renderWalletList(l, testStyles(), listContentWidth)
	if !strings.Contains(view, `No wallets match "metamusk".`) {
		t.Errorf("expected no-match message:\n%s", view)
	}
	if !strings.Contains(view, "Did you mean") || !strings.Contains(view, "MetaMask") {
		t.Errorf("expected suggestion in view:\n%s", view)
	}
}

func TestRenderHelpLinkContainsURL(t *testing.T) {
	out := renderHelpLink("https://ethereum.org/en/wallets/", testStyles())
	if !strings.Contains(out, "https://ethereum.org/en/wallets/") {
		t.Errorf("expected URL in help link: %q", out)
	}
	if !strings.Contains(out, "New to wallets?") {
		t.Errorf("expected lead-in text in help link: %q", out)
	}
}

func TestRenderFooterHints(t *testing.T) {
	out := renderFooterHints(newKeyMap().ShortHelp(), testStyles())
	for _, want := range []string{"navigate", "select", "back"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in footer hints: %q", want, out)
		}
	}
}
