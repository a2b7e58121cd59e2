package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workoutlabs/workout-api/internal/config"
)

func TestRunMigrationsRejectsUnknownCommand(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	err := runMigrations(cfg, "sideways")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")
}

func TestRunMigrationsRequiresDatabaseURL(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	err := runMigrations(cfg, "up")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database URL is empty")
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	app := &application{
		config: &config.Config{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
