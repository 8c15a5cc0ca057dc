package app

import (
	"fmt"
	"time"

	"github.com/lakay-labs/tiraj/internal/analysis"
	"github.com/lakay-labs/tiraj/internal/catalog"
	"github.com/lakay-labs/tiraj/internal/config"
	"github.com/lakay-labs/tiraj/internal/draw"
	"github.com/lakay-labs/tiraj/internal/store"
)

// loadConfig reads the environment config and applies the global flag
// overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagTable != "" {
		cfg.Table = flagTable
	}
	if _, err := draw.TableFamily(cfg.Table); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openStore opens the configured backend: Postgres when a database URL is
// set, the local SQLite file otherwise. The caller owns Close.
func openStore(cfg config.Config) (store.DrawStore, error) {
	if cfg.DatabaseURL != "" {
		return store.NewPostgres(cfg.DatabaseURL)
	}
	return store.New(cfg.DBPath)
}

// newEngine builds the analysis engine over the production catalog. The
// catalog is validated here so a bad catalog edit fails on the first
// command instead of producing quiet nonsense.
func newEngine(src analysis.RecordSource) (*analysis.Engine, error) {
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return analysis.New(cat, src), nil
}

// parseDateFlag parses a --date value; empty means today.
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(draw.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}
