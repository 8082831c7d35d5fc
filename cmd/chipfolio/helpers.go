package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"chipfolio/internal/catalog"
	"chipfolio/internal/common"
	"chipfolio/internal/config"
	"chipfolio/internal/model"
	"chipfolio/internal/service"
	"chipfolio/internal/storage"

	"github.com/spf13/viper"
)

// initStorage initializes the ledger storage with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/chipfolio/chipfolio.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newCatalogLoader builds the catalog source from configuration.
func newCatalogLoader() (*catalog.Loader, error) {
	url := viper.GetString("catalog.url")
	if url == "" {
		return nil, common.NewUserError(
			"no catalog URL configured; set catalog.url in your config file",
			common.ErrMissingConfig)
	}

	opts := []catalog.Option{catalog.WithProgress(os.Stderr)}
	if ttl := viper.GetDuration("catalog.cache_ttl"); ttl > 0 {
		opts = append(opts, catalog.WithTTL(ttl))
	}

	return catalog.NewLoader(url, opts...), nil
}

// resolveTrip picks the trip a command operates on: an explicit --trip flag,
// or the most recently started trip.
func resolveTrip(ctx context.Context, store service.Storage, tripID int64) (*model.Trip, error) {
	if tripID > 0 {
		return store.GetTrip(ctx, tripID)
	}

	trip, err := store.LatestTrip(ctx)
	if errors.Is(err, common.ErrNoTrips) {
		return nil, common.NewUserError(
			"no trips yet; start one with 'chipfolio trip start'", err)
	}
	return trip, err
}
