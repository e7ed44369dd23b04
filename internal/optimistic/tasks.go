package optimistic

import (
	"context"
	"strings"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// TaskRemote is the slice of the task API the board and detail views mutate through
type TaskRemote interface {
	UpdateStatus(ctx context.Context, projectID, taskID int, status models.Status) (*models.Task, error)
	Update(ctx context.Context, projectID, taskID int, req models.TaskUpdate) (*models.Task, error)
}

// TaskMutation is a pending mutation on a task
type TaskMutation = Mutation[int, models.Task]

// TaskOutcome is the settled result of a task mutation
type TaskOutcome = Outcome[models.Task]

// Tasks is a Controller over one project's tasks
type Tasks struct {
	*Controller[int, models.Task]
	remote TaskRemote
}

func taskID(t models.Task) int {
	return t.ID
}

// ReconcileTask prefers the backend's copy when it returned one
func ReconcileTask(applied, remote models.Task) models.Task {
	if remote.ID == 0 {
		return applied
	}
	return remote
}

// NewTasks creates a task controller
func NewTasks(tasks []models.Task, remote TaskRemote, cfg Config[models.Task]) *Tasks {
	return &Tasks{
		Controller: New(tasks, taskID, cfg),
		remote:     remote,
	}
}

// MoveOp moves a task to status via PATCH .../status. Moving to the
// current status is no change.
func (t *Tasks) MoveOp(status models.Status) Op[models.Task] {
	return Op[models.Task]{
		Name: "move task",
		Apply: func(task models.Task) (models.Task, bool) {
			if task.Status == status {
				return task, false
			}
			task.Status = status
			return task, true
		},
		Remote: func(ctx context.Context, applied models.Task) (models.Task, error) {
			return deref(t.remote.UpdateStatus(ctx, applied.ProjectID, applied.ID, status))
		},
	}
}

// EditOp merges the set fields of update into a task via PUT. An empty title
// becomes "Untitled".
func (t *Tasks) EditOp(update models.TaskUpdate) Op[models.Task] {
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		untitled := models.UntitledTask
		update.Title = &untitled
	}
	return Op[models.Task]{
		Name:  "update task",
		Apply: update.ApplyTo,
		Remote: func(ctx context.Context, applied models.Task) (models.Task, error) {
			return deref(t.remote.Update(ctx, applied.ProjectID, applied.ID, update))
		},
	}
}

// BeginMove applies a status move locally. A nil mutation means no change.
func (t *Tasks) BeginMove(taskID int, status models.Status) (*TaskMutation, error) {
	return t.Begin(taskID, t.MoveOp(status))
}

// BeginEdit applies a field edit locally. A nil mutation means no change.
func (t *Tasks) BeginEdit(taskID int, update models.TaskUpdate) (*TaskMutation, error) {
	return t.Begin(taskID, t.EditOp(update))
}

// MoveStatus moves a task between board columns and waits for the backend
func (t *Tasks) MoveStatus(ctx context.Context, taskID int, status models.Status) (TaskOutcome, error) {
	return t.Mutate(ctx, taskID, t.MoveOp(status))
}

// EditFields edits task fields and waits for the backend
func (t *Tasks) EditFields(ctx context.Context, taskID int, update models.TaskUpdate) (TaskOutcome, error) {
	return t.Mutate(ctx, taskID, t.EditOp(update))
}

// ByStatus groups the current tasks into board columns, preserving order
func (t *Tasks) ByStatus() map[models.Status][]models.Task {
	columns := make(map[models.Status][]models.Task, len(models.Statuses))
	for _, s := range models.Statuses {
		columns[s] = []models.Task{}
	}
	for _, task := range t.Items() {
		columns[task.Status] = append(columns[task.Status], task)
	}
	return columns
}

func deref(task *models.Task, err error) (models.Task, error) {
	if err != nil {
		return models.Task{}, err
	}
	if task == nil {
		return models.Task{}, nil
	}
	return *task, nil
}
