package tui

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/optimistic"
	"golang.org/x/sync/errgroup"
)

// errNoSession means no credential is stored; the login form is shown
var errNoSession = errors.New("not logged in")

// checkSession asks the backend who the stored credential belongs to
func (m *Model) checkSession() tea.Cmd {
	ctx, a := m.Ctx, m.App
	return func() tea.Msg {
		if !a.Session.LoggedIn(ctx) {
			return SessionCheckedMsg{Err: errNoSession}
		}
		user, err := a.Auth.Me(ctx)
		return SessionCheckedMsg{User: user, Err: err}
	}
}

func (m *Model) login(req models.LoginRequest) tea.Cmd {
	ctx, a := m.Ctx, m.App
	return func() tea.Msg {
		resp, err := a.Auth.Login(ctx, req)
		if err != nil {
			return LoggedInMsg{Err: err}
		}
		return LoggedInMsg{User: resp.User}
	}
}

func (m *Model) register(req models.RegisterRequest) tea.Cmd {
	ctx, a := m.Ctx, m.App
	return func() tea.Msg {
		resp, err := a.Auth.SignUp(ctx, req)
		if err != nil {
			return LoggedInMsg{Err: err}
		}
		return LoggedInMsg{User: resp.User}
	}
}

func (m *Model) logout() tea.Cmd {
	ctx, a := m.Ctx, m.App
	return func() tea.Msg {
		return LoggedOutMsg{Err: a.Auth.Logout(ctx)}
	}
}

func (m *Model) loadDashboard() tea.Cmd {
	ctx, a, mount := m.Ctx, m.App, m.mount
	return func() tea.Msg {
		projects, err := a.Dashboard(ctx)
		return DashboardLoadedMsg{Mount: mount, Projects: projects, Err: err}
	}
}

func (m *Model) loadProjects() tea.Cmd {
	ctx, a, mount := m.Ctx, m.App, m.mount
	return func() tea.Msg {
		projects, err := a.Projects.List(ctx)
		return ProjectsLoadedMsg{Mount: mount, Projects: projects, Err: err}
	}
}

func (m *Model) createProject(req models.ProjectCreate) tea.Cmd {
	ctx, a := m.Ctx, m.App
	return func() tea.Msg {
		project, err := a.Projects.Create(ctx, req)
		if err != nil {
			return ProjectCreatedMsg{Err: err}
		}
		return ProjectCreatedMsg{Project: *project}
	}
}

func (m *Model) deleteProject(projectID int) tea.Cmd {
	ctx, a := m.Ctx, m.App
	return func() tea.Msg {
		return ProjectDeletedMsg{ProjectID: projectID, Err: a.Projects.Delete(ctx, projectID)}
	}
}

// loadBoard fetches the project and its tasks concurrently
func (m *Model) loadBoard(projectID int) tea.Cmd {
	ctx, a, mount := m.Ctx, m.App, m.mount
	return func() tea.Msg {
		var (
			detail *models.ProjectDetail
			tasks  []models.Task
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			detail, err = a.Projects.Get(gctx, projectID)
			return err
		})
		g.Go(func() error {
			var err error
			tasks, err = a.Tasks.List(gctx, projectID, models.TaskListParams{})
			return err
		})
		if err := g.Wait(); err != nil {
			return BoardLoadedMsg{Mount: mount, Err: err}
		}
		return BoardLoadedMsg{Mount: mount, Project: *detail, Tasks: tasks}
	}
}

// createTask creates a task and moves it to status. The backend always
// creates tasks in todo, so other columns need a follow-up status update.
func (m *Model) createTask(projectID int, status models.Status, req models.TaskCreate) tea.Cmd {
	ctx, a, mount := m.Ctx, m.App, m.mount
	return func() tea.Msg {
		task, err := a.Tasks.Create(ctx, projectID, req)
		if err != nil {
			return TaskCreatedMsg{Mount: mount, Err: err}
		}
		if !status.Valid() || status == task.Status {
			return TaskCreatedMsg{Mount: mount, Task: *task}
		}

		moved, err := a.Tasks.UpdateStatus(ctx, projectID, task.ID, status)
		if err != nil {
			slog.Error("failed to move new task", "task_id", task.ID, "status", status, "error", err)
			return TaskCreatedMsg{Mount: mount, Task: *task, StatusErr: err}
		}
		return TaskCreatedMsg{Mount: mount, Task: *moved}
	}
}

func (m *Model) deleteTask(projectID, taskID int) tea.Cmd {
	ctx, a, mount := m.Ctx, m.App, m.mount
	return func() tea.Msg {
		return TaskDeletedMsg{Mount: mount, TaskID: taskID, Err: a.Tasks.Delete(ctx, projectID, taskID)}
	}
}

// loadTask fetches a task and its comments concurrently
func (m *Model) loadTask(projectID, taskID int) tea.Cmd {
	ctx, a, mount := m.Ctx, m.App, m.mount
	return func() tea.Msg {
		var (
			task     *models.Task
			comments []models.Comment
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			task, err = a.Tasks.Get(gctx, projectID, taskID)
			return err
		})
		g.Go(func() error {
			var err error
			comments, err = a.Comments.List(gctx, projectID, taskID)
			return err
		})
		if err := g.Wait(); err != nil {
			return TaskLoadedMsg{Mount: mount, Err: err}
		}
		return TaskLoadedMsg{Mount: mount, Task: *task, Comments: comments}
	}
}

func (m *Model) createComment(projectID, taskID int, content string) tea.Cmd {
	ctx, a, mount := m.Ctx, m.App, m.mount
	return func() tea.Msg {
		comment, err := a.Comments.Create(ctx, projectID, taskID, models.CommentCreate{Content: content})
		if err != nil {
			return CommentCreatedMsg{Mount: mount, Err: err}
		}
		return CommentCreatedMsg{Mount: mount, Comment: *comment}
	}
}

// runMutation issues the remote half of an optimistic mutation. The local
// half already ran in Begin; Settle runs when the message comes back.
func (m *Model) runMutation(tasks *optimistic.Tasks, mutation *optimistic.TaskMutation) tea.Cmd {
	ctx := m.Ctx
	return func() tea.Msg {
		remote, err := mutation.Run(ctx)
		if err != nil {
			slog.Debug("task mutation failed remotely", "task_id", mutation.Key, "error", err)
		}
		return MutationSettledMsg{Tasks: tasks, Mutation: mutation, Remote: remote, Err: err}
	}
}
