package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/workoutlabs/workout-api/internal/api"
	apiMiddleware "github.com/workoutlabs/workout-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	// Create API handlers using the application's services
	athleteHandler := api.NewAthleteHandler(app.athleteService)
	categoryHandler := api.NewCategoryHandler(app.categoryService)
	trainingCenterHandler := api.NewTrainingCenterHandler(app.trainingCenterService)

	// Register routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/athletes", func(r chi.Router) {
			r.Post("/", athleteHandler.CreateAthlete)
			r.Get("/", athleteHandler.ListAthletes)
			r.Get("/{id}", athleteHandler.GetAthlete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", categoryHandler.CreateCategory)
			r.Get("/", categoryHandler.ListCategories)
			r.Get("/{id}", categoryHandler.GetCategory)
		})

		r.Route("/training-centers", func(r chi.Router) {
			r.Post("/", trainingCenterHandler.CreateTrainingCenter)
			r.Get("/", trainingCenterHandler.ListTrainingCenters)
			r.Get("/{id}", trainingCenterHandler.GetTrainingCenter)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
