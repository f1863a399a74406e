package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/vcrini/lazynechronica/internal/catalog"
	"github.com/vcrini/lazynechronica/internal/diag"
	"github.com/vcrini/lazynechronica/internal/enemy"
	"github.com/vcrini/lazynechronica/internal/settings"
	"github.com/vcrini/lazynechronica/internal/ui"
)

const (
	logFile     = "lazynechronica.log"
	catalogFile = "catalog.yaml"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lazynechronica: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", logFile, err)
	}
	defer f.Close()
	log := diag.NewLogger(f, "app")

	cat, err := loadCatalog(catalogFile, log)
	if err != nil {
		return err
	}

	defaults := enemy.Default()
	err = ui.Run(ui.Deps{
		Catalog:  cat,
		Settings: settings.NewStore(settings.DefaultFile, log.With("settings")),
		Enemies:  enemy.NewStore(enemy.DefaultFile, defaults, log.With("enemy")),
		EnemyID:  defaults.ID,
		Log:      log.With("ui"),
	})
	if err != nil {
		log.Errorf(err, "ui stopped")
		return err
	}
	log.Infof("bye")
	return nil
}

// loadCatalog prefers a catalog.yaml next to the data files over the bundled
// one.
func loadCatalog(path string, log diag.Sink) (catalog.Catalog, error) {
	cat, err := catalog.Load(path)
	if err == nil {
		log.Infof("catalog loaded from %s", path)
		return cat, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		log.Errorf(err, "error loading %s, using the bundled catalog", path)
	}
	cat, err = catalog.Default()
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("bundled catalog: %w", err)
	}
	return cat, nil
}
