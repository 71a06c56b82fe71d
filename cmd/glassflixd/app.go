package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/afero"

	"github.com/rescoffi45/glassflix2/config"
	"github.com/rescoffi45/glassflix2/internal/database"
	"github.com/rescoffi45/glassflix2/internal/logging"
	"github.com/rescoffi45/glassflix2/services/catalog"
	"github.com/rescoffi45/glassflix2/services/collection"
	"github.com/rescoffi45/glassflix2/services/recommend"
	"github.com/rescoffi45/glassflix2/services/transfer"
	"github.com/rescoffi45/glassflix2/services/users"
)

// app bundles the wired application components.
type app struct {
	settings *config.Settings
	manager  *config.Manager
	logger   *slog.Logger
	location *time.Location

	db       *database.DB
	store    *collection.Store
	resolver *collection.Resolver
	bridge   *collection.Bridge
	users    *users.Service
	catalog  *catalog.Client
	searcher *catalog.Searcher
	ai       *recommend.Client
	transfer *transfer.Service
}

// newApp builds the full component graph from the config file and loads the
// active collection scope.
func newApp(configPath string) (*app, error) {
	manager := config.NewManager(configPath)
	settings, err := manager.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewFromConfig(settings)
	slog.SetDefault(logger)

	location := time.Local
	if settings.Timezone != "" {
		loc, err := time.LoadLocation(settings.Timezone)
		if err != nil {
			return nil, fmt.Errorf("load timezone %q: %w", settings.Timezone, err)
		}
		location = loc
	}

	db, err := database.NewDB(database.Config{DatabasePath: settings.Storage.DatabasePath})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	catalogClient := catalog.NewClient(settings.Catalog.APIKey, settings.Catalog.BaseURL, logger)
	store := collection.NewStore()
	resolver := collection.NewResolver(catalogClient, store, location, logger)
	usersService := users.NewService(db.Blobs, logger)
	bridge := collection.NewBridge(store, db.Blobs, usersService, logger)
	bridge.Start()

	return &app{
		settings: settings,
		manager:  manager,
		logger:   logger,
		location: location,
		db:       db,
		store:    store,
		resolver: resolver,
		bridge:   bridge,
		users:    usersService,
		catalog:  catalogClient,
		searcher: catalog.NewSearcher(catalogClient),
		ai:       recommend.NewClient(settings.Gemini.APIKey, settings.Gemini.Model, settings.Gemini.BaseURL, logger),
		transfer: transfer.NewService(afero.NewOsFs()),
	}, nil
}

// close waits for in-flight enrichment and releases resources.
func (a *app) close() {
	a.resolver.Wait()
	if err := a.db.Close(); err != nil {
		a.logger.Warn("app.close_database_failed", "error", err)
	}
}
