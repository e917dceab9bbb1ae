// Package config loads walletsel settings from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	// Wallets is the requested wallet id list. Empty means the full catalog.
	Wallets []string
	Theme   ThemeConfig
	UI      UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// ThemeConfig holds color token overrides. Empty tokens fall back to the
// built-in defaults.
type ThemeConfig struct {
	TextPrimary   string `mapstructure:"text_primary"`
	TextSecondary string `mapstructure:"text_secondary"`
	TextMuted     string `mapstructure:"text_muted"`
	AccentColor   string `mapstructure:"accent_color"`
	Border        string `mapstructure:"border"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title    string `mapstructure:"title"`
	Subtitle string `mapstructure:"subtitle"`
	HelpURL  string `mapstructure:"help_url"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// WALLETSEL_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "walletsel", "walletsel.db"))
	v.SetDefault("wallets", []string{})
	v.SetDefault("theme.text_primary", "")
	v.SetDefault("theme.text_secondary", "")
	v.SetDefault("theme.text_muted", "")
	v.SetDefault("theme.accent_color", "")
	v.SetDefault("theme.border", "")
	v.SetDefault("ui.title", "Connect a wallet")
	v.SetDefault("ui.subtitle", "Choose a wallet provider to continue")
	v.SetDefault("ui.help_url", "https://ethereum.org/en/wallets/")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("WALLETSEL_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "walletsel"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WALLETSEL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the TUI for preferences written back at runtime.
func Save(cfg Config) error {
	path := os.Getenv("WALLETSEL_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "walletsel", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("wallets", cfg.Wallets)
	v.Set("theme.text_primary", cfg.Theme.TextPrimary)
	v.Set("theme.text_secondary", cfg.Theme.TextSecondary)
	v.Set("theme.text_muted", cfg.Theme.TextMuted)
	v.Set("theme.accent_color", cfg.Theme.AccentColor)
	v.Set("theme.border", cfg.Theme.Border)
	v.Set("ui.title", cfg.UI.Title)
	v.Set("ui.subtitle", cfg.UI.Subtitle)
	v.Set("ui.help_url", cfg.UI.HelpURL)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
