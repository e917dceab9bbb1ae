package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sdewitt/walletsel/internal/config"
	"github.com/sdewitt/walletsel/internal/database"
	"github.com/sdewitt/walletsel/internal/database/repository"
	"github.com/sdewitt/walletsel/internal/detect"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	migrationsPath := os.Getenv("WALLETSEL_MIGRATIONS")
	if migrationsPath == "" {
		migrationsPath = "internal/database/migrations"
	}
	if err := database.RunMigrations(cfg.Database.Path, migrationsPath); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	m := newModel(cfg,
		detect.NewScanner(),
		repository.NewSelectionRepo(db),
		repository.NewDetectionRepo(db),
	)

	out, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		log.Fatalf("%s: %v", appName, err)
	}

	// Report the selected wallet id to the caller; back/quit reports nothing.
	if final, ok := out.(model); ok && final.chosen != "" {
		fmt.Println(final.chosen)
	}
}
