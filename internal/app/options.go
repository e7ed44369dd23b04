package app

import (
	"log/slog"
	"net/http"

	"github.com/thenoetrevino/taskflow/internal/session"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	storage    session.Storage
	httpClient *http.Client
	logger     *slog.Logger
}

// WithStorage sets where the session credential is persisted.
// Without it the App opens the SQLite store under ~/.taskflow.
func WithStorage(storage session.Storage) Option {
	return func(cfg *appConfig) {
		cfg.storage = storage
	}
}

// WithHTTPClient replaces the HTTP client used for backend requests
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = client
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
