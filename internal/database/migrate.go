package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations opens the store at dbPath just long enough to bring its
// schema up to date, then closes it again.
func RunMigrations(dbPath, migrationsPath string) error {
	db, err := Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	return RunMigrationsWithDB(db, migrationsPath)
}

// RunMigrationsWithDB applies all up migrations found at migrationsPath to an
// already open handle. The handle stays open and usable afterwards.
func RunMigrationsWithDB(db *sql.DB, migrationsPath string) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("migrate driver: %w", err)
	}
	src, err := (&file.File{}).Open(fmt.Sprintf("file://%s", migrationsPath))
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}
	defer src.Close()

	m, err := migrate.NewWithInstance("file", src, "sqlite3", driver)
	if err != nil {
		return err
	}
	// Closing m would close the instance-backed driver and with it the
	// caller's *sql.DB, so only the source is cleaned up here.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
