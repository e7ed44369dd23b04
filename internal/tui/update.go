package tui

import (
	"errors"
	"log/slog"
	"net/http"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskflow/internal/api"
	"github.com/thenoetrevino/taskflow/internal/optimistic"
	"github.com/thenoetrevino/taskflow/internal/tui/state"
)

// update is the main dispatcher. It implements the "Update" part of the
// Model-View-Update pattern.
func (m *Model) update(msg tea.Msg) tea.Cmd {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.Ctx.Done():
		return tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		if m.UiState.Mode() == state.FormMode {
			return m.updateForm(msg)
		}
		return nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
		if m.UiState.Mode() == state.FormMode {
			return m.updateForm(msg)
		}
		return m.handleKey(msg)

	case SessionCheckedMsg:
		return m.handleSessionChecked(msg)
	case LoggedInMsg:
		return m.handleLoggedIn(msg)
	case LoggedOutMsg:
		return m.handleLoggedOut(msg)
	case DashboardLoadedMsg:
		return m.handleDashboardLoaded(msg)
	case ProjectsLoadedMsg:
		return m.handleProjectsLoaded(msg)
	case ProjectCreatedMsg:
		return m.handleProjectCreated(msg)
	case ProjectDeletedMsg:
		return m.handleProjectDeleted(msg)
	case BoardLoadedMsg:
		return m.handleBoardLoaded(msg)
	case TaskCreatedMsg:
		return m.handleTaskCreated(msg)
	case TaskDeletedMsg:
		return m.handleTaskDeleted(msg)
	case TaskLoadedMsg:
		return m.handleTaskLoaded(msg)
	case CommentCreatedMsg:
		return m.handleCommentCreated(msg)
	case MutationSettledMsg:
		return m.handleMutationSettled(msg)
	}

	// Forms need ALL messages (cursor blink, focus, ...)
	if m.UiState.Mode() == state.FormMode {
		return m.updateForm(msg)
	}
	return nil
}

// stale reports whether a response belongs to a view that has been left
func (m *Model) stale(mount int) bool {
	return mount != m.mount
}

// reportError logs a failed remote call and surfaces it as a notification.
// A 401 means the credential is no longer accepted; the login form is shown.
func (m *Model) reportError(action string, err error) tea.Cmd {
	slog.Error(action, "error", err)

	if api.StatusOf(err) == http.StatusUnauthorized && m.UiState.View() != state.LoginView {
		m.NotificationState.Add(state.LevelError, "Session expired, please log in again")
		return m.openLogin()
	}

	m.NotificationState.Add(state.LevelError, action+": "+userMessage(err))
	return nil
}

// userMessage is the short form of err shown to the user
func userMessage(err error) string {
	switch api.Classify(err) {
	case api.KindNetwork:
		return "backend unreachable"
	case api.KindAuthorization:
		return "not authorized"
	case api.KindNotFound:
		return "not found"
	}
	return err.Error()
}

func (m *Model) handleSessionChecked(msg SessionCheckedMsg) tea.Cmd {
	m.UiState.SetLoading(false)
	if msg.Err != nil {
		if !errors.Is(msg.Err, errNoSession) {
			slog.Info("stored session rejected", "error", msg.Err)
		}
		return m.openLogin()
	}
	m.User = msg.User
	return m.openDashboard()
}

func (m *Model) handleLoggedIn(msg LoggedInMsg) tea.Cmd {
	m.UiState.SetLoading(false)
	if msg.Err != nil {
		slog.Error("login failed", "error", msg.Err)
		message := "Login failed: " + userMessage(msg.Err)
		if api.Classify(msg.Err) == api.KindAuthorization {
			message = "Invalid email or password"
		}
		m.NotificationState.ClearLevel(state.LevelError)
		m.NotificationState.Add(state.LevelError, message)
		return m.openLoginForm()
	}

	user := msg.User
	m.User = &user
	m.FormState.Reset()
	m.NotificationState.Clear()
	m.NotificationState.Add(state.LevelInfo, "Welcome, "+user.Name)
	return m.openDashboard()
}

func (m *Model) handleLoggedOut(msg LoggedOutMsg) tea.Cmd {
	if msg.Err != nil {
		slog.Error("logout failed", "error", msg.Err)
	}
	m.User = nil
	m.NotificationState.Clear()
	m.NotificationState.Add(state.LevelInfo, "Logged out")
	return m.openLogin()
}

func (m *Model) handleDashboardLoaded(msg DashboardLoadedMsg) tea.Cmd {
	if m.stale(msg.Mount) {
		return nil
	}
	m.UiState.SetLoading(false)
	if msg.Err != nil {
		return m.reportError("Failed to load dashboard", msg.Err)
	}
	m.DashboardState.Projects = msg.Projects
	return nil
}

func (m *Model) handleProjectsLoaded(msg ProjectsLoadedMsg) tea.Cmd {
	if m.stale(msg.Mount) {
		return nil
	}
	m.UiState.SetLoading(false)
	if msg.Err != nil {
		return m.reportError("Failed to load projects", msg.Err)
	}
	m.ProjectList.SetProjects(msg.Projects)
	return nil
}

func (m *Model) handleProjectCreated(msg ProjectCreatedMsg) tea.Cmd {
	if msg.Err != nil {
		return m.reportError("Failed to create project", msg.Err)
	}
	m.NotificationState.Add(state.LevelInfo, "Created project "+msg.Project.Name)
	if m.UiState.View() == state.ProjectsView {
		return m.openProjects()
	}
	return nil
}

func (m *Model) handleProjectDeleted(msg ProjectDeletedMsg) tea.Cmd {
	if msg.Err != nil {
		return m.reportError("Failed to delete project", msg.Err)
	}
	m.ProjectList.Remove(msg.ProjectID)
	m.NotificationState.Add(state.LevelInfo, "Project deleted")
	return nil
}

func (m *Model) handleBoardLoaded(msg BoardLoadedMsg) tea.Cmd {
	if m.stale(msg.Mount) {
		return nil
	}
	m.UiState.SetLoading(false)
	if msg.Err != nil {
		return m.reportError("Failed to load board", msg.Err)
	}

	m.Board = state.NewBoardState(msg.Project.Project, msg.Tasks, m.App.Tasks, m.NotificationState)
	if m.follow != 0 {
		m.Board.Follow(m.follow)
		m.follow = 0
	}
	return nil
}

func (m *Model) handleTaskCreated(msg TaskCreatedMsg) tea.Cmd {
	if msg.Err != nil {
		return m.reportError("Failed to create task", msg.Err)
	}
	if m.stale(msg.Mount) || m.Board == nil {
		return nil
	}
	m.Board.Add(msg.Task)
	if msg.StatusErr != nil {
		m.NotificationState.Add(state.LevelError,
			"Created task "+msg.Task.Title+" in "+msg.Task.Status.Title()+", but could not move it: "+userMessage(msg.StatusErr))
		return nil
	}
	m.NotificationState.Add(state.LevelInfo, "Created task "+msg.Task.Title)
	return nil
}

// handleTaskDeleted leaves the detail view of a deleted task for its board
func (m *Model) handleTaskDeleted(msg TaskDeletedMsg) tea.Cmd {
	if msg.Err != nil {
		return m.reportError("Failed to delete task", msg.Err)
	}
	m.NotificationState.Add(state.LevelInfo, "Task deleted")
	if m.stale(msg.Mount) || m.UiState.View() != state.TaskView {
		return nil
	}
	m.follow = 0
	return m.openBoard(m.projectID)
}

func (m *Model) handleTaskLoaded(msg TaskLoadedMsg) tea.Cmd {
	if m.stale(msg.Mount) {
		return nil
	}
	m.UiState.SetLoading(false)
	if msg.Err != nil {
		return m.reportError("Failed to load task", msg.Err)
	}

	m.Detail = state.NewDetailState(msg.Task, m.App.Tasks, m.NotificationState)
	m.Detail.SetComments(msg.Comments)
	return nil
}

func (m *Model) handleCommentCreated(msg CommentCreatedMsg) tea.Cmd {
	if msg.Err != nil {
		return m.reportError("Failed to add comment", msg.Err)
	}
	if m.stale(msg.Mount) || m.Detail == nil {
		return nil
	}
	m.Detail.AppendComment(msg.Comment)
	return nil
}

// handleMutationSettled hands the remote result to the controller that began
// the mutation. Rollback and the failure notice happen inside Settle.
func (m *Model) handleMutationSettled(msg MutationSettledMsg) tea.Cmd {
	outcome := msg.Tasks.Settle(msg.Mutation, msg.Remote, msg.Err)
	if outcome.Result == optimistic.Discarded {
		slog.Debug("mutation settled after view was left", "task_id", msg.Mutation.Key)
	}
	return nil
}
