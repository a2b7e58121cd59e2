package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/workoutlabs/workout-api/internal/config"
	"github.com/workoutlabs/workout-api/internal/platform/postgres"
	"github.com/workoutlabs/workout-api/internal/service"
	"github.com/workoutlabs/workout-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	athleteStore        store.AthleteStore
	categoryStore       store.CategoryStore
	trainingCenterStore store.TrainingCenterStore

	// Service interfaces
	athleteService        service.AthleteService
	categoryService       service.CategoryService
	trainingCenterService service.TrainingCenterService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize stores
	app.athleteStore = postgres.NewPostgresAthleteStore(db, logger)
	app.categoryStore = postgres.NewPostgresCategoryStore(db, logger)
	app.trainingCenterStore = postgres.NewPostgresTrainingCenterStore(db, logger)

	// Initialize services
	var err error
	app.athleteService, err = service.NewAthleteService(
		db,
		app.athleteStore,
		app.categoryStore,
		app.trainingCenterStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create athlete service: %w", err)
	}

	app.categoryService, err = service.NewCategoryService(app.categoryStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}

	app.trainingCenterService, err = service.NewTrainingCenterService(app.trainingCenterStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create training center service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
