package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies all up migrations to the sqlite file at dbPath.
// An empty migrationsPath uses the migrations built into the binary;
// otherwise they are read from that directory.
func RunMigrations(dbPath, migrationsPath string) error {
	dsn := fmt.Sprintf("sqlite3://%s?_foreign_keys=on", dbPath)

	var (
		m   *migrate.Migrate
		err error
	)
	if migrationsPath == "" {
		src, serr := iofs.New(migrationsFS, "migrations")
		if serr != nil {
			return fmt.Errorf("open embedded migrations: %w", serr)
		}
		m, err = migrate.NewWithSourceInstance("iofs", src, dsn)
	} else {
		m, err = migrate.New(fmt.Sprintf("file://%s", migrationsPath), dsn)
	}
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
