package testutil

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/fakeapi"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/session"
)

// Backend is a fake TaskFlow API served over a real HTTP listener
type Backend struct {
	*fakeapi.Server
	URL string
}

// NewBackend starts a fake backend that is shut down when the test ends
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := fakeapi.New()
	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	return &Backend{Server: server, URL: ts.URL}
}

// NewApp builds an App pointed at the backend with an in-memory session
// holding token.
func (b *Backend) NewApp(t *testing.T, token string) *app.App {
	t.Helper()

	cfg := config.Default()
	cfg.APIURL = b.URL

	application, err := app.New(context.Background(), cfg,
		app.WithStorage(session.NewMemoryStorage(token)),
		app.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })

	return application
}

// SeededApp seeds the demo account and returns an App signed in as it
func (b *Backend) SeededApp(t *testing.T) (*app.App, models.User) {
	t.Helper()

	user, err := b.Seed()
	require.NoError(t, err)

	token, err := b.Token(user.ID)
	require.NoError(t, err)

	return b.NewApp(t, token), user
}

// FirstProject returns the first project visible to application
func FirstProject(t *testing.T, application *app.App) models.Project {
	t.Helper()

	projects, err := application.Projects.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, projects)
	return projects[0]
}

// TaskByTitle finds a task in projectID by its title
func TaskByTitle(t *testing.T, application *app.App, projectID int, title string) models.Task {
	t.Helper()

	tasks, err := application.Tasks.List(context.Background(), projectID, models.TaskListParams{})
	require.NoError(t, err)
	for _, task := range tasks {
		if task.Title == title {
			return task
		}
	}
	t.Fatalf("task %q not found in project %d", title, projectID)
	return models.Task{}
}
