package core

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskflow/internal/testutil"
	"github.com/thenoetrevino/taskflow/internal/tui"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// TestAppImplementsTeaModel verifies App implements tea.Model interface
func TestAppImplementsTeaModel(t *testing.T) {
	application, _ := testutil.NewBackend(t).SeededApp(t)
	app := New(t.Context(), application, nil)

	var _ tea.Model = app
	require.NotNil(t, app.GetModel())
	assert.NotNil(t, app.Init(), "Init checks the stored session")
}

// TestAppStartsAtDashboardWithSession runs Init and feeds its message back
func TestAppStartsAtDashboardWithSession(t *testing.T) {
	application, _ := testutil.NewBackend(t).SeededApp(t)
	app := New(t.Context(), application, nil)

	msg := app.Init()()
	_, cmd := app.Update(msg)
	require.NotNil(t, cmd, "a valid session loads the dashboard")

	model := app.GetModel()
	assert.Equal(t, state.DashboardView, model.UiState.View())
	require.NotNil(t, model.User)
	assert.Equal(t, "demo@taskflow.dev", model.User.Email)

	loaded, ok := cmd().(tui.DashboardLoadedMsg)
	require.True(t, ok)
	app.Update(loaded)
	assert.Len(t, model.DashboardState.Projects, 1)
}

// TestAppView tests the View method before and after a resize
func TestAppView(t *testing.T) {
	application, _ := testutil.NewBackend(t).SeededApp(t)
	app := New(t.Context(), application, nil)

	assert.Equal(t, "Loading...", app.View().Content)

	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.NotEmpty(t, app.View().Content)
}
