package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"sniptaste-popups/db/migrations"
)

// ErrDirtyDatabase is returned when a previous migration failed halfway.
var ErrDirtyDatabase = errors.New("database is in dirty state")

// Migrate brings the popup_records schema at addr to migrations.Version and
// returns the resulting version. A dirty database is reported, never forced.
func Migrate(addr string) (uint, error) {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, fmt.Errorf("open embedded migrations: %w", err)
	}
	defer source.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", source, addr)
	if err != nil {
		return 0, fmt.Errorf("init migrate: %w", err)
	}
	defer mg.Close()

	if _, dirty, err := mg.Version(); err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return 0, err
	} else if dirty {
		return 0, ErrDirtyDatabase
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}

	version, _, err := mg.Version()
	if err != nil {
		return 0, err
	}
	return version, nil
}
