package sqlite3

import (
	"database/sql"
	"errors"

	embedded "github.com/goserg/pairingserver"

	"github.com/golang-migrate/migrate/v4/database/sqlite3"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	sourceDriver, err := iofs.New(embedded.ServerMigrations, "migrations")
	if err != nil {
		return nil, err
	}
	databaseDriver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return nil, err
	}
	return migrate.NewWithInstance("iofs",
		sourceDriver,
		"pairing", databaseDriver)
}

// UpServerDB applies every pending migration.
func UpServerDB(db *sql.DB) error {
	m, err := newMigrator(db)
	if err != nil {
		return err
	}
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Version reports the applied schema version and whether the last migration
// left the database dirty.
func Version(db *sql.DB) (uint, bool, error) {
	m, err := newMigrator(db)
	if err != nil {
		return 0, false, err
	}
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}
