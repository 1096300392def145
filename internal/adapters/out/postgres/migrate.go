package postgres

import (
	"database/sql"
	"embed"

	"github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationStatus is the schema version after a migration run.
type MigrationStatus struct {
	Version uint
	Dirty   bool
	Changed bool
}

// RunMigrations applies every pending embedded migration.
func RunMigrations(db *sql.DB, logger *zap.Logger) (MigrationStatus, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return MigrationStatus{}, errors.Wrap(err, "load migrations")
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return MigrationStatus{}, errors.Wrap(err, "create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return MigrationStatus{}, errors.Wrap(err, "init migrations")
	}

	status := MigrationStatus{Changed: true}
	if err = m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return MigrationStatus{}, errors.Wrap(err, "apply migrations")
		}
		status.Changed = false
	}

	status.Version, status.Dirty, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return MigrationStatus{}, errors.Wrap(err, "read schema version")
	}

	if status.Dirty {
		logger.Warn("schema is dirty", zap.Uint("version", status.Version))
	} else {
		logger.Info("schema migrated", zap.Uint("version", status.Version), zap.Bool("changed", status.Changed))
	}

	return status, nil
}
