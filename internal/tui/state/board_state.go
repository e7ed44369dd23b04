package state

import (
	"log/slog"

	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/optimistic"
)

// BoardState is the kanban board of one project. It owns the optimistic
// controller for the board's tasks; the controller publishes into tasks.
type BoardState struct {
	Project models.Project
	Tasks   *optimistic.Tasks

	tasks []models.Task
	// created are tasks added since mount. A rollback restores a snapshot
	// that may predate them, so they are put back.
	created        []models.Task
	selectedColumn int
	selectedTask   int
}

// NewBoardState mounts a board over tasks. Failed moves are reported to notifier.
func NewBoardState(project models.Project, tasks []models.Task, remote optimistic.TaskRemote, notifier optimistic.Notifier) *BoardState {
	b := &BoardState{Project: project, tasks: tasks}
	b.Tasks = optimistic.NewTasks(tasks, remote, optimistic.Config[models.Task]{
		Publish:   b.publish,
		Notifier:  notifier,
		Reconcile: optimistic.ReconcileTask,
		Logger:    slog.Default(),
	})
	return b
}

func (b *BoardState) publish(tasks []models.Task) {
	missing := false
	for _, task := range b.created {
		if !containsTask(tasks, task.ID) {
			tasks = append(tasks, task)
			missing = true
		}
	}
	if missing {
		b.Tasks.Replace(tasks)
	}
	b.tasks = tasks
	b.clampTask()
}

func containsTask(tasks []models.Task, id int) bool {
	for _, task := range tasks {
		if task.ID == id {
			return true
		}
	}
	return false
}

// Unmount detaches the controller; late settlements are discarded.
func (b *BoardState) Unmount() {
	b.Tasks.Unmount()
}

// AllTasks returns the last published collection.
func (b *BoardState) AllTasks() []models.Task {
	return b.tasks
}

// Column returns the tasks with the given status, in collection order.
func (b *BoardState) Column(status models.Status) []models.Task {
	column := []models.Task{}
	for _, task := range b.tasks {
		if task.Status == status {
			column = append(column, task)
		}
	}
	return column
}

// SelectedColumn returns the index of the selected column.
func (b *BoardState) SelectedColumn() int {
	return b.selectedColumn
}

// SelectedStatus returns the status of the selected column.
func (b *BoardState) SelectedStatus() models.Status {
	return models.Statuses[b.selectedColumn]
}

// SelectedTaskIndex returns the index of the selected task within its column.
func (b *BoardState) SelectedTaskIndex() int {
	return b.selectedTask
}

// SelectedTask returns the selected task, if the column has any.
func (b *BoardState) SelectedTask() (models.Task, bool) {
	column := b.Column(b.SelectedStatus())
	if b.selectedTask < 0 || b.selectedTask >= len(column) {
		return models.Task{}, false
	}
	return column[b.selectedTask], true
}

// PrevColumn selects the column to the left. It returns false at the first column.
func (b *BoardState) PrevColumn() bool {
	if b.selectedColumn == 0 {
		return false
	}
	b.selectedColumn--
	b.selectedTask = 0
	return true
}

// NextColumn selects the column to the right. It returns false at the last column.
func (b *BoardState) NextColumn() bool {
	if b.selectedColumn >= len(models.Statuses)-1 {
		return false
	}
	b.selectedColumn++
	b.selectedTask = 0
	return true
}

// PrevTask selects the task above.
func (b *BoardState) PrevTask() bool {
	if b.selectedTask == 0 {
		return false
	}
	b.selectedTask--
	return true
}

// NextTask selects the task below.
func (b *BoardState) NextTask() bool {
	if b.selectedTask >= len(b.Column(b.SelectedStatus()))-1 {
		return false
	}
	b.selectedTask++
	return true
}

// Follow moves the selection onto the task with the given id, wherever it is.
func (b *BoardState) Follow(taskID int) {
	for col, status := range models.Statuses {
		for i, task := range b.Column(status) {
			if task.ID == taskID {
				b.selectedColumn = col
				b.selectedTask = i
				return
			}
		}
	}
}

func (b *BoardState) clampTask() {
	count := len(b.Column(b.SelectedStatus()))
	if b.selectedTask >= count {
		b.selectedTask = max(count-1, 0)
	}
}

// Add appends a newly created task and selects it.
func (b *BoardState) Add(task models.Task) {
	b.created = append(b.created, task)
	b.Tasks.Replace(append(b.Tasks.Items(), task))
	b.tasks = b.Tasks.Items()
	b.Follow(task.ID)
}
