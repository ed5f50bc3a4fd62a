// Package migration applies the versioned SQL files under migrations/ with golang-migrate.
package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// Status reports the schema version of a database
type Status struct {
	Version uint
	Dirty   bool
	// Applied is false on a database no migration has touched
	Applied bool
}

// Migrator runs schema migrations against a Postgres database
type Migrator struct {
	m   *migrate.Migrate
	log *zap.Logger
}

// New builds a Migrator on an open Postgres connection.
// dir is the directory holding the NNNNNN_name.up.sql / .down.sql pairs.
func New(db *sql.DB, dir string, log *zap.Logger) (*Migrator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("open migration driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance(sourceURL(dir), "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("load migrations from %s: %w", dir, err)
	}
	m.Log = &zapMigrateLogger{log: log.Named("migrate")}
	return &Migrator{m: m, log: log}, nil
}

func sourceURL(dir string) string {
	if strings.HasPrefix(dir, "file://") {
		return dir
	}
	return "file://" + dir
}

// Up applies every pending migration
func (r *Migrator) Up() error {
	return r.run("up", r.m.Up)
}

// Down reverts every applied migration
func (r *Migrator) Down() error {
	return r.run("down", r.m.Down)
}

// Steps applies n migrations forward, or reverts -n when n is negative
func (r *Migrator) Steps(n int) error {
	if n == 0 {
		return errors.New("step count must not be zero")
	}
	return r.run(fmt.Sprintf("step %d", n), func() error { return r.m.Steps(n) })
}

// Status returns the current schema version
func (r *Migrator) Status() (Status, error) {
	v, dirty, err := r.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return Status{}, nil
	}
	if err != nil {
		return Status{}, fmt.Errorf("read schema version: %w", err)
	}
	return Status{Version: v, Dirty: dirty, Applied: true}, nil
}

// Force marks version v as applied and clean without running it.
// Used to recover from a migration that failed halfway.
func (r *Migrator) Force(v int) error {
	if err := r.m.Force(v); err != nil {
		return fmt.Errorf("force version %d: %w", v, err)
	}
	r.log.Warn("Schema version forced", zap.Int("version", v))
	return nil
}

// Close releases the source and database handles
func (r *Migrator) Close() error {
	srcErr, dbErr := r.m.Close()
	return errors.Join(srcErr, dbErr)
}

func (r *Migrator) run(op string, fn func() error) error {
	r.log.Info("Running migrations", zap.String("op", op))
	err := fn()
	if errors.Is(err, migrate.ErrNoChange) {
		r.log.Info("Schema already up to date")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", op, err)
	}
	st, err := r.Status()
	if err != nil {
		return err
	}
	r.log.Info("Migrations applied",
		zap.String("op", op),
		zap.Uint("version", st.Version),
		zap.Bool("dirty", st.Dirty),
	)
	return nil
}

type zapMigrateLogger struct {
	log *zap.Logger
}

func (l *zapMigrateLogger) Printf(format string, v ...any) {
	l.log.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *zapMigrateLogger) Verbose() bool {
	return l.log.Core().Enabled(zap.DebugLevel)
}
