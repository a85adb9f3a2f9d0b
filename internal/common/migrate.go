package common

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies every pending migration found at source (for example
// "file://migrations") to the database at dsn. It reports whether anything
// was applied.
func RunMigrations(source, dsn string) (bool, error) {
	m, err := dbMigrate(source, dsn)
	if err != nil {
		return false, err
	}
	defer m.Close()

	return m.applied, nil
}

type migration struct {
	*migrate.Migrate
	applied bool
}

// Close releases the source and database handles held by the migrator.
func (m *migration) Close() error {
	srcErr, dbErr := m.Migrate.Close()
	return errors.Join(srcErr, dbErr)
}

// source changes according to the caller file location relative to the migrations directory, e.g. "file://../../migrations"
func dbMigrate(source, dsn string) (*migration, error) {
	m, err := migrate.New(source, dsn)
	if err != nil {
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		return &migration{Migrate: m}, nil
	case err != nil:
		m.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	return &migration{Migrate: m, applied: true}, nil
}
