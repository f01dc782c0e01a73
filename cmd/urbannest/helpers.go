package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/dulina20231254-glitch/urbannest/internal/catalog"
	"github.com/dulina20231254-glitch/urbannest/internal/common"
	"github.com/dulina20231254-glitch/urbannest/internal/config"
	"github.com/dulina20231254-glitch/urbannest/internal/storage"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, common.NewUserError("Configuration is invalid", err)
	}
	return cfg, nil
}

// initStorage opens the catalog database and brings its schema up to date.
func initStorage(ctx context.Context, cfg *config.Config) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadCatalog builds the in-memory store from --catalog when given, and from
// the database otherwise.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Store, error) {
	if cfg.Catalog.Path != "" {
		store, err := catalog.LoadFile(ctx, cfg.Catalog.Path)
		if err != nil {
			return nil, common.NewUserError("Could not load catalog "+cfg.Catalog.Path, err)
		}
		slog.Debug("Loaded catalog file", "path", cfg.Catalog.Path, "listings", store.Len())
		return store, nil
	}

	db, err := initStorage(ctx, cfg)
	if err != nil {
		return nil, common.NewUserError("Could not open the catalog database", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Warn("Failed to close database", "error", closeErr)
		}
	}()

	store, err := catalog.Open(ctx, db)
	if errors.Is(err, common.ErrEmptyCatalog) {
		return nil, common.NewUserError(
			"The catalog is empty. Run 'urbannest import FILE' or pass --catalog FILE",
			err,
		)
	}
	if err != nil {
		return nil, common.NewUserError("Could not read listings from "+db.Path(), err)
	}

	slog.Debug("Loaded catalog database", "path", db.Path(), "listings", store.Len())
	return store, nil
}
