package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/taskflow/internal/api"
	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/dashboard"
	"github.com/thenoetrevino/taskflow/internal/session"
)

// App holds the session, the API client and the domain facades.
// Both the TUI and the CLI are built on one App.
type App struct {
	Config  *config.Config
	Session *session.Session
	Client  *api.Client

	Auth     *api.AuthAPI
	Projects *api.ProjectAPI
	Tasks    *api.TaskAPI
	Comments *api.CommentAPI

	logger  *slog.Logger
	closers []io.Closer
}

// New creates a new App with all facades initialized.
// This is the single entry point for creating the application container.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	options := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&options)
	}

	a := &App{Config: cfg, logger: options.logger}

	storage := options.storage
	if storage == nil {
		path, err := session.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve session path: %w", err)
		}
		sqlite, err := session.OpenSQLite(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to open session store: %w", err)
		}
		storage = sqlite
		a.closers = append(a.closers, sqlite)
	}

	a.Session = session.New(storage)

	clientOpts := []api.Option{api.WithLogger(options.logger)}
	if options.httpClient != nil {
		clientOpts = append(clientOpts, api.WithHTTPClient(options.httpClient))
	}
	clientOpts = append(clientOpts, api.WithTimeout(cfg.RequestTimeout))
	a.Client = api.NewClient(cfg.APIURL, a.Session, clientOpts...)

	a.Auth = api.NewAuthAPI(a.Client, a.Session)
	a.Projects = api.NewProjectAPI(a.Client)
	a.Tasks = api.NewTaskAPI(a.Client)
	a.Comments = api.NewCommentAPI(a.Client)

	return a, nil
}

// Dashboard loads every project with its tasks
func (a *App) Dashboard(ctx context.Context) ([]dashboard.ProjectTasks, error) {
	return dashboard.Load(ctx, a.Projects, a.Tasks)
}

// Close releases the session store
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
