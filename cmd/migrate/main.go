// Command migrate manages the database schema.
//
//	migrate [-path migrations] up | down | step <n> | version | force <v> | auto
//
// up, down, step, version and force run the versioned SQL files and require Postgres.
// auto creates the tables straight from the gorm models and works on either driver.
package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "github.com/lib/pq"
	"github.com/precast-erp/backend/internal/infrastructure/config"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"github.com/precast-erp/backend/internal/infrastructure/migration"
	"github.com/precast-erp/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

const defaultMigrationsPath = "migrations"

var errUsage = errors.New("usage")

func main() {
	var (
		migrationsPath string
		logLevel       string
	)
	flag.StringVar(&migrationsPath, "path", defaultMigrationsPath, "Path to the migrations directory")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Usage = func() { printUsage(os.Stderr) }
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync(log) }()

	cmd, err := parseCommand(flag.Args())
	if err != nil {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	if err := run(cfg, cmd, migrationsPath, log); err != nil {
		log.Error("Migration failed", zap.String("command", cmd.name), zap.Error(err))
		os.Exit(1)
	}
}

type command struct {
	name string
	n    int
}

func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, errUsage
	}
	cmd := command{name: args[0]}
	switch cmd.name {
	case "up", "down", "version", "auto":
		if len(args) != 1 {
			return command{}, errUsage
		}
	case "step", "force":
		if len(args) != 2 {
			return command{}, errUsage
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return command{}, fmt.Errorf("%s: %q is not a number: %w", cmd.name, args[1], errUsage)
		}
		cmd.n = n
	default:
		return command{}, errUsage
	}
	return cmd, nil
}

func run(cfg *config.Config, cmd command, migrationsPath string, log *zap.Logger) error {
	if cmd.name == "auto" {
		return autoMigrate(cfg, log)
	}
	if cfg.Database.Driver != "postgres" {
		return fmt.Errorf("%s needs a postgres database, configured driver is %s (use auto instead)", cmd.name, cfg.Database.Driver)
	}

	dir, err := filepath.Abs(migrationsPath)
	if err != nil {
		return err
	}
	log.Info("Migration started", zap.String("command", cmd.name), zap.String("path", dir))

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	m, err := migration.New(db, dir, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("Failed to close migrator", zap.Error(err))
		}
	}()

	switch cmd.name {
	case "up":
		return m.Up()
	case "down":
		return m.Down()
	case "step":
		return m.Steps(cmd.n)
	case "force":
		return m.Force(cmd.n)
	case "version":
		st, err := m.Status()
		if err != nil {
			return err
		}
		if !st.Applied {
			log.Info("No migrations applied")
			return nil
		}
		log.Info("Current schema version", zap.Uint("version", st.Version), zap.Bool("dirty", st.Dirty))
		if st.Dirty {
			log.Warn("Schema is dirty, fix the failed migration and run: migrate force <version>")
		}
	}
	return nil
}

func autoMigrate(cfg *config.Config, log *zap.Logger) error {
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level), time.Second)
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info("Tables created from models",
		zap.String("driver", cfg.Database.Driver),
		zap.Int("models", len(persistence.Models())),
	)
	return nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: migrate [flags] <command>

Commands:
  up           Apply all pending migrations
  down         Revert all migrations
  step <n>     Apply n migrations, or revert n when negative
  version      Print the current schema version
  force <v>    Mark version v as applied without running it
  auto         Create tables from the gorm models (postgres or sqlite)

Flags:
  -path        Migrations directory (default: migrations)
  -log-level   Log level (default: info)
`)
}
