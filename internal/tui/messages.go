package tui

import (
	"github.com/thenoetrevino/taskflow/internal/dashboard"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/optimistic"
)

// Messages returned by the remote commands in commands.go. Each carries the
// mount it was issued for; messages for a view that has since been left are
// dropped by Update.

// SessionCheckedMsg reports who the stored credential belongs to
type SessionCheckedMsg struct {
	User *models.User
	Err  error
}

// LoggedInMsg is returned after a login or sign-up attempt
type LoggedInMsg struct {
	User models.User
	Err  error
}

// LoggedOutMsg is returned once the credential is forgotten
type LoggedOutMsg struct {
	Err error
}

// DashboardLoadedMsg carries every project with its tasks
type DashboardLoadedMsg struct {
	Mount    int
	Projects []dashboard.ProjectTasks
	Err      error
}

// ProjectsLoadedMsg carries the project list
type ProjectsLoadedMsg struct {
	Mount    int
	Projects []models.Project
	Err      error
}

// ProjectCreatedMsg is returned after creating a project
type ProjectCreatedMsg struct {
	Project models.Project
	Err     error
}

// ProjectDeletedMsg is returned after deleting a project
type ProjectDeletedMsg struct {
	ProjectID int
	Err       error
}

// BoardLoadedMsg carries a project and its tasks
type BoardLoadedMsg struct {
	Mount   int
	Project models.ProjectDetail
	Tasks   []models.Task
	Err     error
}

// TaskCreatedMsg is returned after creating a task on the board. StatusErr is
// set when the task was created but could not be moved to its column.
type TaskCreatedMsg struct {
	Mount     int
	Task      models.Task
	Err       error
	StatusErr error
}

// TaskDeletedMsg is returned after deleting a task
type TaskDeletedMsg struct {
	Mount  int
	TaskID int
	Err    error
}

// TaskLoadedMsg carries a task and its comments for the detail view
type TaskLoadedMsg struct {
	Mount    int
	Task     models.Task
	Comments []models.Comment
	Err      error
}

// CommentCreatedMsg is returned after adding a comment
type CommentCreatedMsg struct {
	Mount   int
	Comment models.Comment
	Err     error
}

// MutationSettledMsg carries the remote result of an optimistic mutation back
// to the controller that began it.
type MutationSettledMsg struct {
	Tasks    *optimistic.Tasks
	Mutation *optimistic.TaskMutation
	Remote   models.Task
	Err      error
}
