package app

import (
	"fmt"
	"log"

	"meal-planner/internal/catalog"
	"meal-planner/internal/config"
	"meal-planner/internal/database"
	"meal-planner/internal/metrics"
	"meal-planner/internal/planner"
	"meal-planner/internal/storage"
)

// Runtime bundles an App with the resources it was built from.
type Runtime struct {
	Config  *config.Config
	App     *App
	Catalog *catalog.Catalog
	Metrics *metrics.Store
	DB      *database.DB
}

// Open builds the App described by cfg: catalog, history backend, database
// and metrics store.
func Open(cfg *config.Config) (*Runtime, error) {
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		cat = loaded
		log.Printf("Loaded catalog from %s", cfg.CatalogPath)
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	var store planner.HistoryStore
	switch cfg.HistoryBackend {
	case config.BackendSQLite:
		store = storage.NewSQLiteHistoryStore(db.SQL)
	default:
		fileStore, err := storage.NewFileHistoryStore(cfg.HistoryFile)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize history store: %w", err)
		}
		store = fileStore
	}
	log.Printf("Using %s history backend", cfg.HistoryBackend)

	metricsStore := metrics.NewStore(db.SQL)
	manager := planner.NewManager(store, planner.NewGenerator(cat))

	return &Runtime{
		Config:  cfg,
		App:     NewApp(manager, cat, metricsStore),
		Catalog: cat,
		Metrics: metricsStore,
		DB:      db,
	}, nil
}

// Close releases the database connection.
func (r *Runtime) Close() error {
	return r.DB.Close()
}
