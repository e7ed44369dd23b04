package tui

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskflow/internal/fakeapi"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/testutil"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// key builds a key press the way bubbletea reports it
func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "ctrl+s":
		return tea.KeyPressMsg(tea.Key{Code: 's', Mod: tea.ModCtrl})
	}
	return tea.KeyPressMsg(tea.Key{Text: s, Code: []rune(s)[0]})
}

// exec runs a remote command and feeds its message back into the model.
// Only commands known to talk to the backend are run; form commands are not.
func exec(t *testing.T, m *Model, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	_, next := m.Update(cmd())
	return next
}

func setupModel(t *testing.T) (*Model, *testutil.Backend) {
	t.Helper()
	backend := testutil.NewBackend(t)
	application, user := backend.SeededApp(t)

	m := InitialModel(context.Background(), application, nil)
	m.User = &user
	m.now = func() time.Time { return time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC) }
	m.Update(tea.WindowSizeMsg{Width: 160, Height: 48})
	return m, backend
}

// setupBoard mounts the board of the seeded project
func setupBoard(t *testing.T) (*Model, *testutil.Backend, models.Project) {
	t.Helper()
	m, backend := setupModel(t)
	project := testutil.FirstProject(t, m.App)

	exec(t, m, m.openBoard(project.ID))
	require.NotNil(t, m.Board)
	return m, backend, project
}

func latest(t *testing.T, m *Model) string {
	t.Helper()
	n, ok := m.NotificationState.Latest()
	require.True(t, ok, "expected a notification")
	return n.Message
}

func TestInit_WithoutSessionShowsLogin(t *testing.T) {
	backend := testutil.NewBackend(t)
	_, err := backend.Seed()
	require.NoError(t, err)
	m := InitialModel(context.Background(), backend.NewApp(t, ""), nil)

	exec(t, m, m.Init())

	assert.Equal(t, state.LoginView, m.UiState.View())
	assert.Equal(t, state.FormMode, m.UiState.Mode())
	assert.Equal(t, state.LoginForm, m.FormState.Kind)
}

func TestLoginFlow(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantView state.View
		wantMsg  string
	}{
		{"valid credentials", fakeapi.DemoPassword, state.DashboardView, "Welcome, Demo User"},
		{"wrong password", "wrong-password", state.LoginView, "Invalid email or password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := testutil.NewBackend(t)
			_, err := backend.Seed()
			require.NoError(t, err)
			m := InitialModel(context.Background(), backend.NewApp(t, ""), nil)
			exec(t, m, m.Init())

			m.FormState.FormEmail = "demo@taskflow.dev"
			m.FormState.FormPassword = tt.password
			_, cmd := m.Update(key("ctrl+s"))
			assert.True(t, m.UiState.Loading())

			next := exec(t, m, cmd)
			assert.Equal(t, tt.wantView, m.UiState.View())
			assert.Equal(t, tt.wantMsg, latest(t, m))

			if tt.wantView == state.DashboardView {
				require.NotNil(t, m.User)
				assert.Equal(t, "demo@taskflow.dev", m.User.Email)
				exec(t, m, next)
				assert.False(t, m.UiState.Loading())
				assert.Len(t, m.DashboardState.Projects, 1)
			}
		})
	}
}

func TestDashboard_RendersStats(t *testing.T) {
	m, _ := setupModel(t)
	exec(t, m, m.openDashboard())

	stats := m.DashboardState.Stats()
	assert.Equal(t, 4, stats.Total)

	view := m.View().Content
	assert.Contains(t, view, "Website Relaunch")
	assert.Contains(t, view, "Assigned to me")
}

func TestBoard_Navigation(t *testing.T) {
	m, _, _ := setupBoard(t)

	assert.Equal(t, models.StatusTodo, m.Board.SelectedStatus())

	m.Update(key("h"))
	assert.Equal(t, "Already at the first column", latest(t, m))

	m.Update(key("l"))
	assert.Equal(t, models.StatusInProgress, m.Board.SelectedStatus())
	m.Update(key("l"))
	assert.Equal(t, models.StatusDone, m.Board.SelectedStatus())
	m.Update(key("l"))
	assert.Equal(t, "Already at the last column", latest(t, m))

	m.Update(key("h"))
	m.Update(key("h"))
	m.Update(key("j"))
	assert.Equal(t, 1, m.Board.SelectedTaskIndex())
	m.Update(key("j"))
	assert.Equal(t, 1, m.Board.SelectedTaskIndex(), "selection stops at the last task")
	m.Update(key("k"))
	assert.Equal(t, 0, m.Board.SelectedTaskIndex())
}

func TestBoard_MoveTask(t *testing.T) {
	m, backend, _ := setupBoard(t)
	task, ok := m.Board.SelectedTask()
	require.True(t, ok)

	_, cmd := m.Update(key("L"))

	// applied before the backend answers
	moved, ok := m.Board.SelectedTask()
	require.True(t, ok)
	assert.Equal(t, task.ID, moved.ID, "selection follows the moved task")
	assert.Equal(t, models.StatusInProgress, moved.Status)

	exec(t, m, cmd)
	remote, ok := backend.Task(task.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusInProgress, remote.Status)
	assert.False(t, m.NotificationState.HasAny())
}

func TestBoard_MoveTaskRollsBackOnFailure(t *testing.T) {
	m, backend, project := setupBoard(t)
	task, ok := m.Board.SelectedTask()
	require.True(t, ok)

	backend.FailNext(http.MethodPatch,
		"/api/v1/projects/"+strconv.Itoa(project.ID)+"/tasks/"+strconv.Itoa(task.ID)+"/status",
		http.StatusForbidden, "Not enough permissions")

	_, cmd := m.Update(key("L"))
	assert.Len(t, m.Board.Column(models.StatusInProgress), 2)

	exec(t, m, cmd)
	assert.Len(t, m.Board.Column(models.StatusInProgress), 1)
	for _, tk := range m.Board.AllTasks() {
		if tk.ID == task.ID {
			assert.Equal(t, models.StatusTodo, tk.Status)
		}
	}
	assert.Equal(t, "Failed to move task", latest(t, m))
}

func TestBoard_MoveAtEdge(t *testing.T) {
	m, _, _ := setupBoard(t)

	cmd := m.update(key("H"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Task is already in the Todo column", latest(t, m))
}

func TestBoard_LateSettlementAfterLeavingIsDiscarded(t *testing.T) {
	m, backend, _ := setupBoard(t)
	task, _ := m.Board.SelectedTask()

	_, cmd := m.Update(key("L"))
	m.Update(key("esc"))
	assert.Nil(t, m.Board)
	assert.Equal(t, state.ProjectsView, m.UiState.View())

	exec(t, m, cmd)
	assert.False(t, m.NotificationState.HasAny())

	remote, _ := backend.Task(task.ID)
	assert.Equal(t, models.StatusInProgress, remote.Status)
}

func TestStaleLoadIsDropped(t *testing.T) {
	m, _ := setupModel(t)
	project := testutil.FirstProject(t, m.App)

	boardCmd := m.openBoard(project.ID)
	projectsCmd := m.openProjects()

	m.Update(boardCmd())
	assert.Nil(t, m.Board)
	assert.True(t, m.UiState.Loading())

	exec(t, m, projectsCmd)
	assert.False(t, m.UiState.Loading())
	assert.Equal(t, state.ProjectsView, m.UiState.View())
}

func TestBoard_CreateTask(t *testing.T) {
	m, _, _ := setupBoard(t)

	m.Update(key("n"))
	require.Equal(t, state.TaskForm, m.FormState.Kind)
	m.FormState.FormTaskTitle = "Write release notes"

	_, cmd := m.Update(key("ctrl+s"))
	exec(t, m, cmd)

	titles := []string{}
	for _, task := range m.Board.Column(models.StatusTodo) {
		titles = append(titles, task.Title)
	}
	assert.Contains(t, titles, "Write release notes")
	assert.Equal(t, "Created task Write release notes", latest(t, m))
}

func TestBoard_CreateTaskInSelectedColumn(t *testing.T) {
	tests := []struct {
		name   string
		keys   []string
		status models.Status
	}{
		{"todo column", nil, models.StatusTodo},
		{"in progress column", []string{"l"}, models.StatusInProgress},
		{"done column", []string{"l", "l"}, models.StatusDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, backend, _ := setupBoard(t)
			for _, k := range tt.keys {
				m.Update(key(k))
			}

			m.Update(key("n"))
			require.Equal(t, state.TaskForm, m.FormState.Kind)
			assert.Equal(t, tt.status, m.FormState.FormTaskStatus)
			m.FormState.FormTaskTitle = "Review copy"

			_, cmd := m.Update(key("ctrl+s"))
			exec(t, m, cmd)

			created, ok := m.Board.SelectedTask()
			require.True(t, ok, "the new task is selected")
			assert.Equal(t, "Review copy", created.Title)
			assert.Equal(t, tt.status, created.Status)
			assert.Equal(t, tt.status, m.Board.SelectedStatus())

			remote, ok := backend.Task(created.ID)
			require.True(t, ok)
			assert.Equal(t, tt.status, remote.Status)
		})
	}
}

func TestBoard_CreateTaskStatusFailure(t *testing.T) {
	m, backend, project := setupBoard(t)
	m.Update(key("l"))

	m.Update(key("n"))
	m.FormState.FormTaskTitle = "Review copy"

	// the created task gets the next id; fail its status update
	next := 0
	for _, task := range m.Board.AllTasks() {
		next = max(next, task.ID)
	}
	backend.FailNext(http.MethodPatch,
		"/api/v1/projects/"+strconv.Itoa(project.ID)+"/tasks/"+strconv.Itoa(next+1)+"/status",
		http.StatusInternalServerError, "boom")

	_, cmd := m.Update(key("ctrl+s"))
	exec(t, m, cmd)

	created, ok := m.Board.SelectedTask()
	require.True(t, ok)
	assert.Equal(t, "Review copy", created.Title)
	assert.Equal(t, models.StatusTodo, created.Status, "the task stays where the backend put it")
	assert.Contains(t, latest(t, m), "could not move it")
}

// setupDetail opens the selected board task
func setupDetail(t *testing.T) (*Model, *testutil.Backend) {
	t.Helper()
	m, backend, _ := setupBoard(t)

	_, cmd := m.Update(key("enter"))
	exec(t, m, cmd)
	require.NotNil(t, m.Detail)
	assert.Equal(t, state.TaskView, m.UiState.View())
	return m, backend
}

func TestDetail_EditTask(t *testing.T) {
	m, backend := setupDetail(t)
	task := m.Detail.Task()

	m.Update(key("e"))
	require.Equal(t, state.EditTaskForm, m.FormState.Kind)
	m.FormState.FormTaskTitle = "Set up product analytics"

	_, cmd := m.Update(key("ctrl+s"))
	assert.Equal(t, "Set up product analytics", m.Detail.Task().Title)

	exec(t, m, cmd)
	remote, _ := backend.Task(task.ID)
	assert.Equal(t, "Set up product analytics", remote.Title)
}

func TestDetail_EmptyTitleShowsUntitled(t *testing.T) {
	m, _ := setupDetail(t)

	m.Update(key("e"))
	m.FormState.FormTaskTitle = ""
	m.Update(key("ctrl+s"))

	assert.Equal(t, models.UntitledTask, m.Detail.Task().Title)
}

func TestDetail_UnchangedEdit(t *testing.T) {
	m, _ := setupDetail(t)

	m.Update(key("e"))
	_, cmd := m.Update(key("ctrl+s"))

	assert.Nil(t, cmd)
	assert.Equal(t, "No changes", latest(t, m))
}

func TestDetail_CycleStatusAndPriority(t *testing.T) {
	m, backend := setupDetail(t)
	task := m.Detail.Task()

	_, cmd := m.Update(key("s"))
	assert.Equal(t, models.StatusInProgress, m.Detail.Task().Status)
	exec(t, m, cmd)

	_, cmd = m.Update(key("p"))
	exec(t, m, cmd)

	remote, _ := backend.Task(task.ID)
	assert.Equal(t, models.StatusInProgress, remote.Status)
	assert.NotEqual(t, task.Priority, remote.Priority)
}

func TestDetail_AddComment(t *testing.T) {
	m, _ := setupDetail(t)

	m.Update(key("c"))
	require.Equal(t, state.CommentForm, m.FormState.Kind)
	m.FormState.FormCommentMessage = "Looks good"

	_, cmd := m.Update(key("ctrl+s"))
	exec(t, m, cmd)

	require.Len(t, m.Detail.Comments, 1)
	assert.Equal(t, "Looks good", m.Detail.Comments[0].Content)
	assert.Contains(t, m.View().Content, "Comments (1)")
}

func TestDetail_EmptyComment(t *testing.T) {
	m, _ := setupDetail(t)

	m.Update(key("c"))
	m.FormState.FormCommentMessage = "   "
	_, cmd := m.Update(key("ctrl+s"))

	assert.Nil(t, cmd)
	assert.Equal(t, "Comment is empty", latest(t, m))
}

func TestDetail_BackFollowsTask(t *testing.T) {
	m, _ := setupDetail(t)
	task := m.Detail.Task()

	_, cmd := m.Update(key("esc"))
	assert.Nil(t, m.Detail)
	exec(t, m, cmd)

	require.NotNil(t, m.Board)
	selected, ok := m.Board.SelectedTask()
	require.True(t, ok)
	assert.Equal(t, task.ID, selected.ID)
}

func TestDetail_DeleteTask(t *testing.T) {
	m, backend := setupDetail(t)
	task := m.Detail.Task()

	m.Update(key("d"))
	assert.Equal(t, state.DeleteConfirmMode, m.UiState.Mode())
	assert.Contains(t, m.View().Content, "Delete task '"+task.Title+"'?")

	m.Update(key("n"))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	_, ok := backend.Task(task.ID)
	assert.True(t, ok, "cancelling keeps the task")

	m.Update(key("d"))
	_, cmd := m.Update(key("y"))
	next := exec(t, m, cmd)

	_, ok = backend.Task(task.ID)
	assert.False(t, ok)
	assert.Equal(t, "Task deleted", latest(t, m))
	assert.Equal(t, state.BoardView, m.UiState.View())

	exec(t, m, next)
	require.NotNil(t, m.Board)
	for _, tk := range m.Board.AllTasks() {
		assert.NotEqual(t, task.ID, tk.ID)
	}
}

func TestDetail_DeleteTaskFailure(t *testing.T) {
	m, backend := setupDetail(t)
	task := m.Detail.Task()
	backend.FailNext(http.MethodDelete,
		"/api/v1/projects/"+strconv.Itoa(task.ProjectID)+"/tasks/"+strconv.Itoa(task.ID),
		http.StatusForbidden, "Not enough permissions")

	m.Update(key("d"))
	_, cmd := m.Update(key("y"))
	exec(t, m, cmd)

	assert.Equal(t, state.TaskView, m.UiState.View())
	assert.Equal(t, "Failed to delete task: not authorized", latest(t, m))
}

func TestProjects_DeleteConfirm(t *testing.T) {
	m, _ := setupModel(t)
	exec(t, m, m.openProjects())
	require.Len(t, m.ProjectList.Projects, 1)

	m.Update(key("X"))
	assert.Equal(t, state.DeleteConfirmMode, m.UiState.Mode())
	assert.Contains(t, m.View().Content, "Delete project 'Website Relaunch'?")

	m.Update(key("n"))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())

	m.Update(key("X"))
	_, cmd := m.Update(key("y"))
	exec(t, m, cmd)
	assert.Empty(t, m.ProjectList.Projects)
	assert.Equal(t, "Project deleted", latest(t, m))
}

func TestExpiredSessionReturnsToLogin(t *testing.T) {
	m, backend := setupModel(t)
	backend.FailNext(http.MethodGet, "/api/v1/projects/", http.StatusUnauthorized, "Could not validate credentials")

	exec(t, m, m.openProjects())

	assert.Equal(t, state.LoginView, m.UiState.View())
	assert.Equal(t, "Session expired, please log in again", latest(t, m))
}

func TestHelpMode(t *testing.T) {
	m, _ := setupModel(t)
	exec(t, m, m.openDashboard())

	m.Update(key("?"))
	assert.Equal(t, state.HelpMode, m.UiState.Mode())
	m.Update(key("x"))
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
}
