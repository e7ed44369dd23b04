package state

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/optimistic"
)

type stubRemote struct {
	err error
}

func (r stubRemote) UpdateStatus(ctx context.Context, projectID, taskID int, status models.Status) (*models.Task, error) {
	if r.err != nil {
		return nil, r.err
	}
	return nil, nil
}

func (r stubRemote) Update(ctx context.Context, projectID, taskID int, req models.TaskUpdate) (*models.Task, error) {
	if r.err != nil {
		return nil, r.err
	}
	return nil, nil
}

func boardTasks() []models.Task {
	return []models.Task{
		{ID: 1, Title: "a", Status: models.StatusTodo, ProjectID: 7},
		{ID: 2, Title: "b", Status: models.StatusTodo, ProjectID: 7},
		{ID: 3, Title: "c", Status: models.StatusInProgress, ProjectID: 7},
	}
}

func TestBoardState_Navigation(t *testing.T) {
	b := NewBoardState(models.Project{ID: 7}, boardTasks(), stubRemote{}, nil)

	assert.Equal(t, models.StatusTodo, b.SelectedStatus())
	assert.False(t, b.PrevColumn(), "already at the first column")
	assert.False(t, b.PrevTask())

	assert.True(t, b.NextTask())
	task, ok := b.SelectedTask()
	require.True(t, ok)
	assert.Equal(t, 2, task.ID)
	assert.False(t, b.NextTask(), "column has two tasks")

	assert.True(t, b.NextColumn())
	assert.Equal(t, 0, b.SelectedTaskIndex(), "column change resets task selection")
	assert.True(t, b.NextColumn())
	assert.False(t, b.NextColumn(), "already at the last column")

	_, ok = b.SelectedTask()
	assert.False(t, ok, "done column is empty")
}

func TestBoardState_MovePublishesAndFollows(t *testing.T) {
	b := NewBoardState(models.Project{ID: 7}, boardTasks(), stubRemote{}, nil)

	m, err := b.Tasks.BeginMove(1, models.StatusDone)
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Len(t, b.Column(models.StatusDone), 1, "move is visible before the backend answers")
	b.Follow(1)
	assert.Equal(t, models.StatusDone, b.SelectedStatus())

	remote, runErr := m.Run(t.Context())
	outcome := b.Tasks.Settle(m, remote, runErr)
	assert.Equal(t, optimistic.ResultCommitted, outcome.Result)
	assert.Len(t, b.Column(models.StatusDone), 1)
}

func TestBoardState_RollbackNotifies(t *testing.T) {
	notes := NewNotificationState()
	b := NewBoardState(models.Project{ID: 7}, boardTasks(), stubRemote{err: errors.New("boom")}, notes)

	outcome, err := b.Tasks.MoveStatus(t.Context(), 3, models.StatusDone)
	require.NoError(t, err)

	assert.Equal(t, optimistic.ResultRolledBack, outcome.Result)
	assert.Empty(t, b.Column(models.StatusDone))
	assert.Len(t, b.Column(models.StatusInProgress), 1)

	latest, ok := notes.Latest()
	require.True(t, ok)
	assert.Equal(t, LevelError, latest.Level)
	assert.Equal(t, "Failed to move task", latest.Message)
}

func TestBoardState_RollbackKeepsCreatedTask(t *testing.T) {
	b := NewBoardState(models.Project{ID: 7}, boardTasks(), stubRemote{}, nil)

	m, err := b.Tasks.BeginMove(3, models.StatusDone)
	require.NoError(t, err)

	b.Add(models.Task{ID: 9, Title: "new", Status: models.StatusTodo, ProjectID: 7})
	require.Len(t, b.Column(models.StatusTodo), 3)

	outcome := b.Tasks.Settle(m, models.Task{}, errors.New("boom"))
	assert.Equal(t, optimistic.ResultRolledBack, outcome.Result)
	assert.Len(t, b.Column(models.StatusInProgress), 1, "move is undone")
	assert.Len(t, b.Column(models.StatusTodo), 3, "task created meanwhile survives")

	_, ok := b.Tasks.Get(9)
	assert.True(t, ok, "controller holds the created task again")
}

func TestBoardState_UnmountedDiscards(t *testing.T) {
	b := NewBoardState(models.Project{ID: 7}, boardTasks(), stubRemote{}, nil)

	m, err := b.Tasks.BeginMove(1, models.StatusDone)
	require.NoError(t, err)
	b.Unmount()

	outcome := b.Tasks.Settle(m, models.Task{}, errors.New("late"))
	assert.Equal(t, optimistic.Discarded, outcome.Result)
	assert.Len(t, b.Column(models.StatusDone), 1, "unmounted view is not rolled back")
}

func TestBoardState_SelectionClampedAfterPublish(t *testing.T) {
	b := NewBoardState(models.Project{ID: 7}, boardTasks(), stubRemote{}, nil)
	b.NextTask()

	_, err := b.Tasks.BeginMove(2, models.StatusInProgress)
	require.NoError(t, err)

	assert.Equal(t, 0, b.SelectedTaskIndex())
}

func TestDetailState_EditPublishes(t *testing.T) {
	task := models.Task{ID: 4, Title: "old", ProjectID: 7, Priority: models.PriorityLow}
	d := NewDetailState(task, stubRemote{}, nil)

	title := "  "
	m, err := d.Tasks.BeginEdit(4, models.TaskUpdate{Title: &title})
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, models.UntitledTask, d.Task().Title)
}

func TestDetailState_Comments(t *testing.T) {
	d := NewDetailState(models.Task{ID: 4}, stubRemote{}, nil)
	d.SetComments([]models.Comment{{ID: 1}, {ID: 2}})

	d.PrevComment()
	assert.Equal(t, 0, d.SelectedComment())
	d.NextComment()
	d.NextComment()
	assert.Equal(t, 1, d.SelectedComment())

	d.AppendComment(models.Comment{ID: 3})
	assert.Equal(t, 2, d.SelectedComment())

	d.SetComments(nil)
	assert.Equal(t, 0, d.SelectedComment())
}

func TestFormState_TaskUpdate(t *testing.T) {
	task := models.Task{Title: "t", Description: "d", Priority: models.PriorityLow}

	tests := []struct {
		name   string
		mutate func(*FormState)
		check  func(*testing.T, models.TaskUpdate)
	}{
		{
			name:   "unchanged form is empty update",
			mutate: func(*FormState) {},
			check: func(t *testing.T, u models.TaskUpdate) {
				assert.True(t, u.IsEmpty())
			},
		},
		{
			name:   "title only",
			mutate: func(s *FormState) { s.FormTaskTitle = "new" },
			check: func(t *testing.T, u models.TaskUpdate) {
				require.NotNil(t, u.Title)
				assert.Equal(t, "new", *u.Title)
				assert.Nil(t, u.Description)
				assert.Nil(t, u.Priority)
			},
		},
		{
			name:   "priority only",
			mutate: func(s *FormState) { s.FormTaskPriority = models.PriorityHigh },
			check: func(t *testing.T, u models.TaskUpdate) {
				require.NotNil(t, u.Priority)
				assert.Equal(t, models.PriorityHigh, *u.Priority)
				assert.Nil(t, u.Title)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewFormState()
			s.LoadTask(task)
			tt.mutate(s)
			tt.check(t, s.TaskUpdate(task))
		})
	}
}

func TestProjectListState(t *testing.T) {
	s := NewProjectListState()
	_, ok := s.Selected()
	assert.False(t, ok)

	s.SetProjects([]models.Project{{ID: 1}, {ID: 2}, {ID: 3}})
	s.Down()
	s.Down()
	s.Down()
	assert.Equal(t, 2, s.Cursor())

	s.Remove(3)
	p, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, p.ID)
	s.Up()
	s.Up()
	assert.Equal(t, 0, s.Cursor())
}

func TestNotificationState(t *testing.T) {
	s := NewNotificationState()
	assert.False(t, s.HasAny())

	s.Add(LevelInfo, "hello")
	s.Notify("Failed to update task")
	assert.Len(t, s.All(), 2)

	s.ClearLevel(LevelError)
	latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, "hello", latest.Message)

	s.Clear()
	_, ok = s.Latest()
	assert.False(t, ok)
}
