package models

import (
	"fmt"
	"strings"
)

// ============================================================================
// TASK STATUS
// ============================================================================

// Status is the kanban column a task sits in
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Statuses lists every status in board order
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// Valid reports whether s is one of the three fixed statuses
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Title returns the column heading for the status
func (s Status) Title() string {
	switch s {
	case StatusTodo:
		return "Todo"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// Index returns the board position of the status, or -1 if invalid
func (s Status) Index() int {
	for i, st := range Statuses {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the status to the right of s on the board
func (s Status) Next() (Status, error) {
	i := s.Index()
	if i < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	if i == len(Statuses)-1 {
		return "", ErrAlreadyLastColumn
	}
	return Statuses[i+1], nil
}

// Prev returns the status to the left of s on the board
func (s Status) Prev() (Status, error) {
	i := s.Index()
	if i < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	if i == 0 {
		return "", ErrAlreadyFirstColumn
	}
	return Statuses[i-1], nil
}

// ParseStatus maps user input ("todo", "in-progress", "In Progress", "done") to a Status
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	st := Status(normalized)
	if !st.Valid() {
		return "", fmt.Errorf("%w '%s' (must be: todo, in_progress, done)", ErrInvalidStatus, s)
	}
	return st, nil
}

// ============================================================================
// PROJECT ROLES
// ============================================================================

// Role is a member's role within a project
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// ParseRole maps a role string to a Role
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("%w '%s' (must be: owner, admin, member)", ErrInvalidRole, s)
	}
	return r, nil
}

// UntitledTask replaces an empty title when a task is edited
const UntitledTask = "Untitled"
