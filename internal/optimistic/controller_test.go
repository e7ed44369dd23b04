package optimistic

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskflow/internal/api"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// stubRemote records calls and returns the configured error
type stubRemote struct {
	mu          sync.Mutex
	statusCalls []models.Status
	updateCalls []models.TaskUpdate
	err         error
}

func (s *stubRemote) UpdateStatus(_ context.Context, projectID, taskID int, status models.Status) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusCalls = append(s.statusCalls, status)
	if s.err != nil {
		return nil, s.err
	}
	return &models.Task{ID: taskID, ProjectID: projectID, Title: "from server", Status: status}, nil
}

func (s *stubRemote) Update(_ context.Context, projectID, taskID int, req models.TaskUpdate) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateCalls = append(s.updateCalls, req)
	if s.err != nil {
		return nil, s.err
	}
	return nil, nil
}

type recorder struct {
	published [][]models.Task
	notices   []string
}

func (r *recorder) config() Config[models.Task] {
	return Config[models.Task]{
		Publish:  func(items []models.Task) { r.published = append(r.published, items) },
		Notifier: NotifierFunc(func(msg string) { r.notices = append(r.notices, msg) }),
	}
}

func boardTasks() []models.Task {
	return []models.Task{
		{ID: 1, ProjectID: 10, Title: "Write docs", Status: models.StatusTodo, Priority: models.PriorityLow},
		{ID: 2, ProjectID: 10, Title: "Ship it", Status: models.StatusInProgress, Priority: models.PriorityHigh},
	}
}

func TestMoveStatus_Commit(t *testing.T) {
	rec := &recorder{}
	remote := &stubRemote{}
	tasks := NewTasks(boardTasks(), remote, rec.config())

	out, err := tasks.MoveStatus(context.Background(), 1, models.StatusInProgress)
	require.NoError(t, err)

	assert.Equal(t, ResultCommitted, out.Result)
	assert.NoError(t, out.Err)
	assert.Equal(t, []models.Status{models.StatusInProgress}, remote.statusCalls)
	assert.Equal(t, Idle, tasks.State(1), "committed settles back to idle")
	assert.Empty(t, rec.notices)

	got, ok := tasks.Get(1)
	require.True(t, ok)
	assert.Equal(t, models.StatusInProgress, got.Status)
	assert.Equal(t, "Write docs", got.Title, "no reconcile configured")
}

func TestMoveStatus_RollbackRestoresSnapshot(t *testing.T) {
	rec := &recorder{}
	remote := &stubRemote{err: &api.Error{Status: http.StatusInternalServerError, Message: "API error: 500"}}
	tasks := NewTasks(boardTasks(), remote, rec.config())

	out, err := tasks.MoveStatus(context.Background(), 1, models.StatusInProgress)
	require.NoError(t, err)

	assert.Equal(t, ResultRolledBack, out.Result)
	assert.Equal(t, models.StatusTodo, out.Item.Status)
	assert.Equal(t, Idle, tasks.State(1), "rolled back settles back to idle")
	assert.Equal(t, boardTasks(), tasks.Items())
	assert.Equal(t, []string{"Failed to move task"}, rec.notices)

	var mutErr *MutationError
	require.True(t, errors.As(out.Err, &mutErr))
	assert.Equal(t, api.KindHTTP, mutErr.Kind)
	assert.Equal(t, 500, api.StatusOf(out.Err))

	// optimistic publish, then rollback publish
	require.Len(t, rec.published, 2)
	assert.Equal(t, models.StatusInProgress, rec.published[0][0].Status)
	assert.Equal(t, models.StatusTodo, rec.published[1][0].Status)
}

func TestMoveStatus_SameStatusIsNoOp(t *testing.T) {
	rec := &recorder{}
	remote := &stubRemote{}
	tasks := NewTasks(boardTasks(), remote, rec.config())

	out, err := tasks.MoveStatus(context.Background(), 2, models.StatusInProgress)
	require.NoError(t, err)

	assert.Equal(t, NoOp, out.Result)
	assert.Empty(t, remote.statusCalls)
	assert.Empty(t, rec.published)
	assert.Equal(t, Idle, tasks.State(2))
}

func TestMutate_UnknownKey(t *testing.T) {
	tasks := NewTasks(boardTasks(), &stubRemote{}, Config[models.Task]{})
	_, err := tasks.MoveStatus(context.Background(), 99, models.StatusDone)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBeginSettle_AppliesBeforeRemote(t *testing.T) {
	rec := &recorder{}
	tasks := NewTasks(boardTasks(), &stubRemote{}, rec.config())

	m, err := tasks.BeginMove(1, models.StatusDone)
	require.NoError(t, err)
	require.NotNil(t, m)

	got, _ := tasks.Get(1)
	assert.Equal(t, models.StatusDone, got.Status, "applied before the remote call runs")
	assert.Equal(t, Pending, tasks.State(1))

	remote, remoteErr := m.Run(context.Background())
	out := tasks.Settle(m, remote, remoteErr)
	assert.Equal(t, ResultCommitted, out.Result)
}

func TestSettle_AfterUnmountIsDiscarded(t *testing.T) {
	rec := &recorder{}
	tasks := NewTasks(boardTasks(), &stubRemote{}, rec.config())

	m, err := tasks.BeginMove(1, models.StatusDone)
	require.NoError(t, err)
	tasks.Unmount()

	out := tasks.Settle(m, models.Task{}, errors.New("connection reset"))
	assert.Equal(t, Discarded, out.Result)
	assert.Len(t, rec.published, 1, "only the optimistic publish happened")
	assert.Empty(t, rec.notices)
	assert.Equal(t, Pending, tasks.State(1))

	_, err = tasks.BeginMove(2, models.StatusDone)
	assert.ErrorIs(t, err, ErrUnmounted)
}

func TestSettle_OverlappingMutationsKeepNewerPending(t *testing.T) {
	tests := []struct {
		name     string
		firstErr error
	}{
		{"older commits", nil},
		{"older fails", &api.Error{Status: http.StatusForbidden, Message: "Not enough permissions"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := NewTasks(boardTasks(), &stubRemote{}, Config[models.Task]{})

			first, err := tasks.BeginMove(1, models.StatusInProgress)
			require.NoError(t, err)
			second, err := tasks.BeginMove(1, models.StatusDone)
			require.NoError(t, err)
			assert.Equal(t, Pending, tasks.State(1))

			tasks.Settle(first, models.Task{}, tt.firstErr)
			assert.Equal(t, Pending, tasks.State(1), "newer mutation is still in flight")

			out := tasks.Settle(second, models.Task{}, nil)
			assert.Equal(t, ResultCommitted, out.Result)
			assert.Equal(t, Idle, tasks.State(1))
		})
	}
}

func TestSettle_ReconcileOnlyForLatestMutation(t *testing.T) {
	tasks := NewTasks(boardTasks(), &stubRemote{}, Config[models.Task]{Reconcile: ReconcileTask})

	first, err := tasks.BeginMove(1, models.StatusInProgress)
	require.NoError(t, err)
	second, err := tasks.BeginMove(1, models.StatusDone)
	require.NoError(t, err)

	tasks.Settle(first, models.Task{ID: 1, ProjectID: 10, Status: models.StatusInProgress}, nil)
	got, _ := tasks.Get(1)
	assert.Equal(t, models.StatusDone, got.Status, "stale settlement must not overwrite a newer local change")

	tasks.Settle(second, models.Task{ID: 1, ProjectID: 10, Title: "server copy", Status: models.StatusDone}, nil)
	got, _ = tasks.Get(1)
	assert.Equal(t, "server copy", got.Title)
}

func TestEditFields(t *testing.T) {
	t.Run("merges partial fields", func(t *testing.T) {
		remote := &stubRemote{}
		tasks := NewTasks(boardTasks(), remote, Config[models.Task]{})

		high := models.PriorityCritical
		out, err := tasks.EditFields(context.Background(), 1, models.TaskUpdate{Priority: &high})
		require.NoError(t, err)

		assert.Equal(t, ResultCommitted, out.Result)
		assert.Equal(t, models.PriorityCritical, out.Item.Priority)
		assert.Equal(t, "Write docs", out.Item.Title)
		require.Len(t, remote.updateCalls, 1)
		assert.Nil(t, remote.updateCalls[0].Title)
	})

	t.Run("empty title becomes Untitled", func(t *testing.T) {
		remote := &stubRemote{}
		tasks := NewTasks(boardTasks(), remote, Config[models.Task]{})

		blank := "  "
		out, err := tasks.EditFields(context.Background(), 1, models.TaskUpdate{Title: &blank})
		require.NoError(t, err)

		assert.Equal(t, models.UntitledTask, out.Item.Title)
		require.Len(t, remote.updateCalls, 1)
		assert.Equal(t, models.UntitledTask, *remote.updateCalls[0].Title)
	})

	t.Run("failure rolls back and notifies", func(t *testing.T) {
		rec := &recorder{}
		remote := &stubRemote{err: &api.Error{Status: http.StatusForbidden, Message: "Not a member of this project"}}
		tasks := NewTasks(boardTasks(), remote, rec.config())

		title := "Renamed"
		out, err := tasks.EditFields(context.Background(), 1, models.TaskUpdate{Title: &title})
		require.NoError(t, err)

		assert.Equal(t, ResultRolledBack, out.Result)
		assert.Equal(t, "Write docs", out.Item.Title)
		assert.Equal(t, []string{"Failed to update task"}, rec.notices)

		var mutErr *MutationError
		require.ErrorAs(t, out.Err, &mutErr)
		assert.Equal(t, api.KindAuthorization, mutErr.Kind)
	})
}

func TestByStatus(t *testing.T) {
	tasks := NewTasks(boardTasks(), &stubRemote{}, Config[models.Task]{})
	cols := tasks.ByStatus()

	assert.Len(t, cols[models.StatusTodo], 1)
	assert.Len(t, cols[models.StatusInProgress], 1)
	assert.Empty(t, cols[models.StatusDone])
}
