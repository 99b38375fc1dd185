/*
migrations.go - database migration runner for the auth core.

Migration files are embedded in the binary (see embedded_fs.go) so the
schema travels with the executable rather than a separate deploy artifact.
*/
package main

import (
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/madome/auth-core/config"
)

// MigrateDB applies every pending migration, bringing the schema up to
// DatabaseURL's current head. migrate.ErrNoChange means the schema was
// already current and is not treated as a failure.
func MigrateDB(cfg *config.Config) error {
	m_fs, err := MigrationsFS()
	if err != nil {
		return fmt.Errorf("failed to get migrations filesystem: %w", err)
	}

	source_driver, err := iofs.New(m_fs, "internal/db/migrations")
	if err != nil {
		return fmt.Errorf("failed to create source driver for migrations: %w", err)
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to the database: %w", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create database driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source_driver, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
