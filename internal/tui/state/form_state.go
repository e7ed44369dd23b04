package state

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// FormKind identifies which huh form is open
type FormKind int

const (
	NoForm FormKind = iota
	LoginForm
	RegisterForm
	ProjectForm
	TaskForm
	EditTaskForm
	CommentForm
)

// FormState manages all form-related state for the application.
// Field values are bound to the open huh form by pointer, so a FormState
// must not be copied while a form is open.
type FormState struct {
	Kind FormKind
	Form *huh.Form

	// Login and registration fields
	FormEmail    string
	FormName     string
	FormPassword string

	// Project form fields
	FormProjectName        string
	FormProjectDescription string

	// Task form fields (for creating and editing tasks)
	FormTaskTitle       string
	FormTaskDescription string
	FormTaskPriority    models.Priority
	// FormTaskStatus is the board column a new task is created in
	FormTaskStatus models.Status

	// Comment form field
	FormCommentMessage string

	// FormConfirm is the trailing confirmation of create forms
	FormConfirm bool
}

// NewFormState creates a new FormState with no open form.
func NewFormState() *FormState {
	return &FormState{FormConfirm: true, FormTaskPriority: models.PriorityMedium}
}

// Open installs form as the active form of the given kind.
func (s *FormState) Open(kind FormKind, form *huh.Form) {
	s.Kind = kind
	s.Form = form
}

// IsOpen reports whether a form is active.
func (s *FormState) IsOpen() bool {
	return s.Form != nil
}

// Close drops the active form. Field values are kept until Reset.
func (s *FormState) Close() {
	s.Kind = NoForm
	s.Form = nil
}

// Reset clears every field value.
func (s *FormState) Reset() {
	s.FormEmail = ""
	s.FormName = ""
	s.FormPassword = ""
	s.FormProjectName = ""
	s.FormProjectDescription = ""
	s.FormTaskTitle = ""
	s.FormTaskDescription = ""
	s.FormTaskPriority = models.PriorityMedium
	s.FormCommentMessage = ""
	s.FormConfirm = true
}

// LoadTask fills the task fields from an existing task for editing.
func (s *FormState) LoadTask(task models.Task) {
	s.FormTaskTitle = task.Title
	s.FormTaskDescription = task.Description
	s.FormTaskPriority = task.Priority
}

// TaskUpdate returns the fields of the edit form that differ from task.
func (s *FormState) TaskUpdate(task models.Task) models.TaskUpdate {
	var update models.TaskUpdate
	if s.FormTaskTitle != task.Title {
		title := s.FormTaskTitle
		update.Title = &title
	}
	if s.FormTaskDescription != task.Description {
		description := s.FormTaskDescription
		update.Description = &description
	}
	if s.FormTaskPriority != "" && s.FormTaskPriority != task.Priority {
		priority := s.FormTaskPriority
		update.Priority = &priority
	}
	return update
}
