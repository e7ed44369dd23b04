package state

import (
	"log/slog"

	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/optimistic"
)

// DetailState is the detail view of one task. Like the board it owns its own
// optimistic controller, holding just this task.
type DetailState struct {
	Tasks    *optimistic.Tasks
	Comments []models.Comment

	task            models.Task
	selectedComment int
	scroll          int
}

// NewDetailState mounts the detail view over task.
func NewDetailState(task models.Task, remote optimistic.TaskRemote, notifier optimistic.Notifier) *DetailState {
	d := &DetailState{task: task, Comments: []models.Comment{}}
	d.Tasks = optimistic.NewTasks([]models.Task{task}, remote, optimistic.Config[models.Task]{
		Publish:   d.publish,
		Notifier:  notifier,
		Reconcile: optimistic.ReconcileTask,
		Logger:    slog.Default(),
	})
	return d
}

func (d *DetailState) publish(tasks []models.Task) {
	for _, t := range tasks {
		if t.ID == d.task.ID {
			d.task = t
		}
	}
}

// Task returns the task as currently shown.
func (d *DetailState) Task() models.Task {
	return d.task
}

// Unmount detaches the controller; late settlements are discarded.
func (d *DetailState) Unmount() {
	d.Tasks.Unmount()
}

// SetComments replaces the comment list, keeping the selection in range.
func (d *DetailState) SetComments(comments []models.Comment) {
	d.Comments = comments
	if d.selectedComment >= len(comments) {
		d.selectedComment = max(len(comments)-1, 0)
	}
}

// AppendComment adds a newly created comment and selects it.
func (d *DetailState) AppendComment(comment models.Comment) {
	d.Comments = append(d.Comments, comment)
	d.selectedComment = len(d.Comments) - 1
}

// SelectedComment returns the index of the selected comment.
func (d *DetailState) SelectedComment() int {
	return d.selectedComment
}

// NextComment selects the next comment.
func (d *DetailState) NextComment() {
	if d.selectedComment < len(d.Comments)-1 {
		d.selectedComment++
	}
}

// PrevComment selects the previous comment.
func (d *DetailState) PrevComment() {
	if d.selectedComment > 0 {
		d.selectedComment--
	}
}

// Scroll returns the vertical offset of the detail body.
func (d *DetailState) Scroll() int {
	return d.scroll
}

// ScrollBy moves the detail body by delta lines, never above the top.
func (d *DetailState) ScrollBy(delta int) {
	d.scroll = max(d.scroll+delta, 0)
}
