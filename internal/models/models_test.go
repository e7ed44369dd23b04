package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Unique(t *testing.T) {
	assert.False(t, errors.Is(ErrAlreadyFirstColumn, ErrAlreadyLastColumn))
	assert.False(t, errors.Is(ErrInvalidStatus, ErrInvalidPriority))
}

// ============================================================================
// Status Tests
// ============================================================================

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"todo", StatusTodo, false},
		{"in_progress", StatusInProgress, false},
		{"In Progress", StatusInProgress, false},
		{"in-progress", StatusInProgress, false},
		{"DONE", StatusDone, false},
		{"blocked", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_NextPrev(t *testing.T) {
	next, err := StatusTodo.Next()
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, next)

	_, err = StatusDone.Next()
	assert.ErrorIs(t, err, ErrAlreadyLastColumn)

	prev, err := StatusDone.Prev()
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, prev)

	_, err = StatusTodo.Prev()
	assert.ErrorIs(t, err, ErrAlreadyFirstColumn)

	_, err = Status("bogus").Next()
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("High")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	_, err = ParsePriority("trivial")
	assert.ErrorIs(t, err, ErrInvalidPriority)
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, r)

	_, err = ParseRole("viewer")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

// ============================================================================
// TaskUpdate Tests
// ============================================================================

func TestTaskUpdate_ApplyTo(t *testing.T) {
	assignee := 7
	base := Task{ID: 1, Title: "Write docs", Status: StatusTodo, Priority: PriorityLow}

	title := "Write better docs"
	high := PriorityHigh
	got, changed := TaskUpdate{Title: &title, Priority: &high, AssigneeID: &assignee}.ApplyTo(base)

	assert.True(t, changed)
	assert.Equal(t, "Write better docs", got.Title)
	assert.Equal(t, PriorityHigh, got.Priority)
	assert.True(t, got.IsAssignedTo(7))
	assert.Equal(t, "Write docs", base.Title, "original must not be modified")

	same := "Write docs"
	_, changed = TaskUpdate{Title: &same}.ApplyTo(base)
	assert.False(t, changed)
}

func TestTaskListParams_Query(t *testing.T) {
	done := StatusDone
	q := TaskListParams{Status: &done, SortBy: "title"}.Query()

	assert.Equal(t, "done", q["status"])
	assert.Equal(t, "title", q["sort_by"])
	assert.Nil(t, q["priority"])
	assert.Nil(t, q["assignee_id"])
}
