package tui

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskflow/internal/app"
	"github.com/thenoetrevino/taskflow/internal/config"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// Model represents the application state for the TUI.
// All fields are mutated on the bubbletea update loop only; remote calls run
// inside commands and report back with messages.
type Model struct {
	Ctx    context.Context
	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	NotificationState *state.NotificationState
	FormState         *state.FormState
	ProjectList       *state.ProjectListState
	DashboardState    *state.DashboardState

	// Board and Detail are nil unless their view is mounted
	Board  *state.BoardState
	Detail *state.DetailState

	User *models.User

	// projectID is the project of the board or task being shown
	projectID int
	// follow is the task the board selects once it has loaded
	follow int

	// mount increments on every navigation so late responses can be dropped
	mount int
	// now is replaced in tests
	now func() time.Time
}

// InitialModel creates the TUI model. Nothing is fetched until Init.
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = a.Config
	}
	return &Model{
		Ctx:               ctx,
		App:               a,
		Config:            cfg,
		UiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		FormState:         state.NewFormState(),
		ProjectList:       state.NewProjectListState(),
		DashboardState:    state.NewDashboardState(),
		now:               time.Now,
	}
}

// Init checks the stored session; the dashboard or the login form follows.
func (m *Model) Init() tea.Cmd {
	m.UiState.SetLoading(true)
	return m.checkSession()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.update(msg)
}

// View implements tea.Model
func (m *Model) View() tea.View {
	return m.view()
}

// userNames maps user ids to display names. Only the signed-in user's name is
// known to the client.
func (m *Model) userNames() map[int]string {
	names := map[int]string{}
	if m.User != nil {
		names[m.User.ID] = m.User.Name
	}
	return names
}

// authorNames is userNames with the signed-in user shown as "you"
func (m *Model) authorNames() map[int]string {
	names := map[int]string{}
	if m.User != nil {
		names[m.User.ID] = "you"
	}
	return names
}

func (m *Model) assigneeName(task models.Task) string {
	if task.AssigneeID == nil {
		return ""
	}
	if name, ok := m.userNames()[*task.AssigneeID]; ok {
		return name
	}
	return fmt.Sprintf("user #%d", *task.AssigneeID)
}

// unmount discards the controllers of the board and detail views
func (m *Model) unmount() {
	if m.Board != nil {
		m.Board.Unmount()
		m.Board = nil
	}
	if m.Detail != nil {
		m.Detail.Unmount()
		m.Detail = nil
	}
}

// navigate switches view and starts a fresh mount
func (m *Model) navigate(view state.View) {
	m.mount++
	m.UiState.SetView(view)
	m.UiState.SetLoading(true)
}

func (m *Model) openLogin() tea.Cmd {
	m.unmount()
	m.navigate(state.LoginView)
	m.UiState.SetLoading(false)
	return m.openLoginForm()
}

func (m *Model) openDashboard() tea.Cmd {
	m.unmount()
	m.navigate(state.DashboardView)
	return m.loadDashboard()
}

func (m *Model) openProjects() tea.Cmd {
	m.unmount()
	m.navigate(state.ProjectsView)
	return m.loadProjects()
}

func (m *Model) openBoard(projectID int) tea.Cmd {
	m.unmount()
	m.projectID = projectID
	m.navigate(state.BoardView)
	return m.loadBoard(projectID)
}

// openTask shows one task. Going back remounts the board with the task selected.
func (m *Model) openTask(task models.Task) tea.Cmd {
	m.unmount()
	m.projectID = task.ProjectID
	m.follow = task.ID
	m.navigate(state.TaskView)
	return m.loadTask(task.ProjectID, task.ID)
}
