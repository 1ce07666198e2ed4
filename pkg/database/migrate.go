package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrator applies versioned SQL migrations read from an fs.FS.
// Files follow the NNNN_name.up.sql / NNNN_name.down.sql convention.
type Migrator struct {
	m      *migrate.Migrate
	logger *slog.Logger
}

// NewMigrator binds migrations in fsys to the database behind db. It runs
// on a single connection taken from the pool; closing the Migrator returns
// that connection and leaves the pool open.
func NewMigrator(ctx context.Context, db *sql.DB, dbName string, fsys fs.FS, logger *slog.Logger) (*Migrator, error) {
	source, err := iofs.New(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		source.Close()
		return nil, fmt.Errorf("migration connection: %w", err)
	}

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{DatabaseName: dbName})
	if err != nil {
		conn.Close()
		source.Close()
		return nil, fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, dbName, driver)
	if err != nil {
		driver.Close()
		source.Close()
		return nil, fmt.Errorf("migration init: %w", err)
	}

	return &Migrator{m: m, logger: logger}, nil
}

// Up applies all pending migrations. Being current is not an error.
func (m *Migrator) Up() error {
	return m.run("up", m.m.Up)
}

// Down reverts every applied migration.
func (m *Migrator) Down() error {
	return m.run("down", m.m.Down)
}

// Steps applies n migrations forward, or -n backward when n is negative.
func (m *Migrator) Steps(n int) error {
	return m.run("steps", func() error { return m.m.Steps(n) })
}

// Version returns the applied version and whether the schema is dirty.
// A database with no migrations applied reports version 0.
func (m *Migrator) Version() (uint, bool, error) {
	v, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

// Close releases the source and the migration connection.
func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	return errors.Join(srcErr, dbErr)
}

func (m *Migrator) run(op string, fn func() error) error {
	err := fn()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("migrations current", "op", op)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", op, err)
	}

	v, dirty, _ := m.Version()
	m.logger.Info("migrations applied", "op", op, "version", v, "dirty", dirty)
	return nil
}
