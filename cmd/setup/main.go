// Command setup creates the working directories the server writes into.
// It takes no flags; the root comes from setup.root_dir (PRECAST_SETUP_ROOT_DIR).
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/precast-erp/backend/internal/infrastructure/config"
	"github.com/precast-erp/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Directories created under the root, in order
var Directories = []string{
	"uploads/drawings",
	"uploads/documents",
	"uploads/photos",
	"exports",
	"logs",
	"tmp",
	"config",
	"migrations",
}

func main() {
	log, err := logger.New(logger.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync(log) }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	if err := createDirectories(cfg.Setup.RootDir, log); err != nil {
		log.Error("Setup failed", zap.Error(err))
		os.Exit(1)
	}
	log.Info("Setup complete", zap.String("root", cfg.Setup.RootDir))
}

// createDirectories makes every entry of Directories under root.
// It keeps going past a failure so all problems are reported at once.
func createDirectories(root string, log *zap.Logger) error {
	var errs []error
	for _, dir := range Directories {
		path := filepath.Join(root, filepath.FromSlash(dir))
		existed := isDir(path)
		if err := os.MkdirAll(path, 0o755); err != nil {
			log.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
			errs = append(errs, fmt.Errorf("create %s: %w", path, err))
			continue
		}
		if existed {
			log.Info("Directory exists", zap.String("path", path))
		} else {
			log.Info("Directory created", zap.String("path", path))
		}
	}
	return errors.Join(errs...)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
