package models

import "time"

// Task represents a single card on a project's kanban board
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	ProjectID   int       `json:"project_id"`
	AssigneeID  *int      `json:"assignee_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetID returns the task ID (used by quiet CLI output)
func (t *Task) GetID() int {
	return t.ID
}

// IsAssignedTo reports whether the task's assignee is the given user
func (t *Task) IsAssignedTo(userID int) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// TaskCreate is the body of POST /projects/{id}/tasks
type TaskCreate struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description string    `json:"description"`
	Priority    *Priority `json:"priority,omitempty" validate:"omitempty,priority"`
	AssigneeID  *int      `json:"assignee_id,omitempty" validate:"omitempty,gt=0"`
}

// TaskUpdate is the body of PUT /projects/{id}/tasks/{tid}
// Fields with pointers are optional - nil means don't update
type TaskUpdate struct {
	Title       *string   `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string   `json:"description,omitempty"`
	Status      *Status   `json:"status,omitempty" validate:"omitempty,status"`
	Priority    *Priority `json:"priority,omitempty" validate:"omitempty,priority"`
	AssigneeID  *int      `json:"assignee_id,omitempty" validate:"omitempty,gt=0"`
}

// IsEmpty reports whether the update carries no field changes
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil &&
		u.Priority == nil && u.AssigneeID == nil
}

// ApplyTo merges the non-nil fields of the update into a copy of the task.
// The second return value is false when no field actually changes.
func (u TaskUpdate) ApplyTo(t Task) (Task, bool) {
	changed := false
	if u.Title != nil && *u.Title != t.Title {
		t.Title = *u.Title
		changed = true
	}
	if u.Description != nil && *u.Description != t.Description {
		t.Description = *u.Description
		changed = true
	}
	if u.Status != nil && *u.Status != t.Status {
		t.Status = *u.Status
		changed = true
	}
	if u.Priority != nil && *u.Priority != t.Priority {
		t.Priority = *u.Priority
		changed = true
	}
	if u.AssigneeID != nil && !t.IsAssignedTo(*u.AssigneeID) {
		id := *u.AssigneeID
		t.AssigneeID = &id
		changed = true
	}
	return t, changed
}

// StatusUpdate is the body of PATCH /projects/{id}/tasks/{tid}/status
type StatusUpdate struct {
	Status Status `json:"status" validate:"required,status"`
}

// TaskListParams holds the optional filter and sort query parameters for listing tasks
type TaskListParams struct {
	Status     *Status   `json:"status,omitempty" validate:"omitempty,status"`
	Priority   *Priority `json:"priority,omitempty" validate:"omitempty,priority"`
	AssigneeID *int      `json:"assignee_id,omitempty" validate:"omitempty,gt=0"`
	SortBy     string    `json:"sort_by,omitempty" validate:"omitempty,oneof=created_at updated_at title priority status"`
	SortOrder  string    `json:"sort_order,omitempty" validate:"omitempty,oneof=asc desc"`
}

// Query converts the params to a query map. Unset values are nil and get dropped by the client.
func (p TaskListParams) Query() map[string]any {
	q := map[string]any{
		"status":      nil,
		"priority":    nil,
		"assignee_id": nil,
		"sort_by":     nil,
		"sort_order":  nil,
	}
	if p.Status != nil {
		q["status"] = string(*p.Status)
	}
	if p.Priority != nil {
		q["priority"] = string(*p.Priority)
	}
	if p.AssigneeID != nil {
		q["assignee_id"] = *p.AssigneeID
	}
	if p.SortBy != "" {
		q["sort_by"] = p.SortBy
	}
	if p.SortOrder != "" {
		q["sort_order"] = p.SortOrder
	}
	return q
}
