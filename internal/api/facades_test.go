package api_test

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskflow/internal/api"
	"github.com/thenoetrevino/taskflow/internal/fakeapi"
	"github.com/thenoetrevino/taskflow/internal/models"
	"github.com/thenoetrevino/taskflow/internal/session"
)

type harness struct {
	backend  *fakeapi.Server
	session  *session.Session
	storage  *session.MemoryStorage
	auth     *api.AuthAPI
	projects *api.ProjectAPI
	tasks    *api.TaskAPI
	comments *api.CommentAPI
}

func newHarness(t *testing.T, opts ...fakeapi.Option) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := fakeapi.New(opts...)
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	storage := session.NewMemoryStorage("")
	sess := session.New(storage)
	client := api.NewClient(srv.URL, sess)

	return &harness{
		backend:  backend,
		session:  sess,
		storage:  storage,
		auth:     api.NewAuthAPI(client, sess),
		projects: api.NewProjectAPI(client),
		tasks:    api.NewTaskAPI(client),
		comments: api.NewCommentAPI(client),
	}
}

func (h *harness) signUp(t *testing.T, email string) models.User {
	t.Helper()
	resp, err := h.auth.SignUp(context.Background(), models.RegisterRequest{Email: email, Name: "Tester", Password: "pw"})
	require.NoError(t, err)
	return resp.User
}

func TestAuth_SignUpStoresTokenAndMe(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	user := h.signUp(t, "lee@example.com")
	assert.True(t, h.session.LoggedIn(ctx))

	persisted, err := h.storage.Load(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, persisted)

	me, err := h.auth.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, me.ID)
	assert.Equal(t, "lee@example.com", me.Email)

	require.NoError(t, h.auth.Logout(ctx))
	_, err = h.auth.Me(ctx)
	assert.Equal(t, api.KindAuthorization, api.Classify(err))
	assert.Equal(t, 401, api.StatusOf(err))
}

func TestAuth_BadLogin(t *testing.T) {
	h := newHarness(t)
	h.signUp(t, "lee@example.com")
	require.NoError(t, h.auth.Logout(context.Background()))

	_, err := h.auth.Login(context.Background(), models.LoginRequest{Email: "lee@example.com", Password: "nope"})
	require.Error(t, err)
	assert.Equal(t, 401, api.StatusOf(err))
	assert.False(t, h.session.LoggedIn(context.Background()))
}

func TestAuth_DuplicateRegister(t *testing.T) {
	h := newHarness(t)
	h.signUp(t, "lee@example.com")

	_, err := h.auth.Register(context.Background(), models.RegisterRequest{Email: "lee@example.com", Name: "Again", Password: "pw"})
	assert.Equal(t, 400, api.StatusOf(err))
	assert.Equal(t, api.KindValidation, api.Classify(err))
}

func TestValidation_RejectsBeforeRemoteCall(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		call  func() error
		field string
	}{
		{"empty task title", func() error {
			_, err := h.tasks.Create(ctx, 1, models.TaskCreate{Title: ""})
			return err
		}, "title"},
		{"bad priority", func() error {
			p := models.Priority("urgent")
			_, err := h.tasks.Create(ctx, 1, models.TaskCreate{Title: "x", Priority: &p})
			return err
		}, "priority"},
		{"bad status", func() error {
			_, err := h.tasks.UpdateStatus(ctx, 1, 2, models.Status("blocked"))
			return err
		}, "status"},
		{"bad email", func() error {
			_, err := h.auth.Register(ctx, models.RegisterRequest{Email: "nope", Name: "n", Password: "p"})
			return err
		}, "email"},
		{"empty comment", func() error {
			_, err := h.comments.Create(ctx, 1, 2, models.CommentCreate{})
			return err
		}, "content"},
		{"bad role", func() error {
			r := models.Role("viewer")
			_, err := h.projects.AddMember(ctx, 1, models.MemberAdd{UserID: 2, Role: &r})
			return err
		}, "role"},
		{"bad project id", func() error {
			_, err := h.projects.Get(ctx, 0)
			return err
		}, "project_id"},
		{"bad sort order", func() error {
			_, err := h.tasks.List(ctx, 1, models.TaskListParams{SortOrder: "sideways"})
			return err
		}, "sort_order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var vErr *api.ValidationError
			require.ErrorAs(t, err, &vErr)
			require.NotEmpty(t, vErr.Fields)
			assert.Equal(t, tt.field, vErr.Fields[0].Field)
			assert.Equal(t, api.KindValidation, api.Classify(err))
		})
	}
}

func TestProjects_Lifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	owner := h.signUp(t, "owner@example.com")

	other, err := h.backend.CreateUser("mate@example.com", "Mate", "pw")
	require.NoError(t, err)

	project, err := h.projects.Create(ctx, models.ProjectCreate{Name: "Alpha"})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, project.OwnerID)
	assert.Equal(t, "", project.Description)

	admin := models.RoleAdmin
	member, err := h.projects.AddMember(ctx, project.ID, models.MemberAdd{UserID: other.ID, Role: &admin})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, member.Role)

	detail, err := h.projects.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", detail.Name)
	assert.Len(t, detail.Members, 2)

	name := "Alpha v2"
	updated, err := h.projects.Update(ctx, project.ID, models.ProjectUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alpha v2", updated.Name)

	list, err := h.projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Alpha v2", list[0].Name)

	require.NoError(t, h.projects.Delete(ctx, project.ID), "204 resolves to an empty result")

	_, err = h.projects.Get(ctx, project.ID)
	assert.Equal(t, api.KindNotFound, api.Classify(err))
}

func TestProjects_ListFreshProject(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.signUp(t, "owner@example.com")

	created, err := h.projects.Create(ctx, models.ProjectCreate{Name: "Alpha"})
	require.NoError(t, err)

	list, err := h.projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "Alpha", list[0].Name)
	assert.Equal(t, "", list[0].Description)
}

func TestProjects_NonMemberForbidden(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.signUp(t, "owner@example.com")
	project, err := h.projects.Create(ctx, models.ProjectCreate{Name: "Private"})
	require.NoError(t, err)

	require.NoError(t, h.auth.Logout(ctx))
	h.signUp(t, "stranger@example.com")

	_, err = h.projects.Get(ctx, project.ID)
	assert.Equal(t, 403, api.StatusOf(err))
	assert.Equal(t, api.KindAuthorization, api.Classify(err))
}

func TestTasks_FilterSortAndComments(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	user := h.signUp(t, "dev@example.com")

	project, err := h.projects.Create(ctx, models.ProjectCreate{Name: "Board"})
	require.NoError(t, err)

	high := models.PriorityHigh
	a, err := h.tasks.Create(ctx, project.ID, models.TaskCreate{Title: "alpha", Priority: &high, AssigneeID: &user.ID})
	require.NoError(t, err)
	_, err = h.tasks.Create(ctx, project.ID, models.TaskCreate{Title: "beta"})
	require.NoError(t, err)

	moved, err := h.tasks.UpdateStatus(ctx, project.ID, a.ID, models.StatusDone)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, moved.Status)

	done := models.StatusDone
	filtered, err := h.tasks.List(ctx, project.ID, models.TaskListParams{Status: &done})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "alpha", filtered[0].Title)

	mine, err := h.tasks.List(ctx, project.ID, models.TaskListParams{AssigneeID: &user.ID})
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	sorted, err := h.tasks.List(ctx, project.ID, models.TaskListParams{SortBy: "title", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, sorted, 2)
	assert.Equal(t, "alpha", sorted[0].Title)

	desc := "now with **markdown**"
	edited, err := h.tasks.Update(ctx, project.ID, a.ID, models.TaskUpdate{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, desc, edited.Description)
	assert.Equal(t, "alpha", edited.Title)

	_, err = h.comments.Create(ctx, project.ID, a.ID, models.CommentCreate{Content: "first"})
	require.NoError(t, err)
	_, err = h.comments.Create(ctx, project.ID, a.ID, models.CommentCreate{Content: "second"})
	require.NoError(t, err)

	comments, err := h.comments.List(ctx, project.ID, a.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, user.ID, comments[0].AuthorID)

	require.NoError(t, h.tasks.Delete(ctx, project.ID, a.ID))
	_, err = h.tasks.Get(ctx, project.ID, a.ID)
	assert.Equal(t, api.KindNotFound, api.Classify(err))
}

func TestTasks_PriorityRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		priority *models.Priority
		want     models.Priority
	}{
		{name: "high", priority: ptr(models.PriorityHigh), want: models.PriorityHigh},
		{name: "low", priority: ptr(models.PriorityLow), want: models.PriorityLow},
		{name: "default", priority: nil, want: models.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			ctx := context.Background()
			h.signUp(t, "dev@example.com")
			project, err := h.projects.Create(ctx, models.ProjectCreate{Name: "Board"})
			require.NoError(t, err)

			created, err := h.tasks.Create(ctx, project.ID, models.TaskCreate{Title: "ship it", Priority: tt.priority})
			require.NoError(t, err)

			fetched, err := h.tasks.Get(ctx, project.ID, created.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, fetched.Priority)
			assert.Equal(t, models.StatusTodo, fetched.Status)
		})
	}
}

func ptr[T any](v T) *T { return &v }

// stepClock is a fake clock the test advances by hand
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestTasks_StatusUpdateAdvancesUpdatedAt(t *testing.T) {
	clock := &stepClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	h := newHarness(t, fakeapi.WithClock(clock.Now))
	ctx := context.Background()
	h.signUp(t, "dev@example.com")

	project, err := h.projects.Create(ctx, models.ProjectCreate{Name: "Board"})
	require.NoError(t, err)
	created, err := h.tasks.Create(ctx, project.ID, models.TaskCreate{Title: "release"})
	require.NoError(t, err)
	assert.True(t, created.UpdatedAt.Equal(created.CreatedAt))

	clock.Advance(5 * time.Minute)

	moved, err := h.tasks.UpdateStatus(ctx, project.ID, created.ID, models.StatusDone)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, moved.Status)
	assert.True(t, moved.UpdatedAt.After(created.UpdatedAt), "updated_at %s should be after %s", moved.UpdatedAt, created.UpdatedAt)
	assert.True(t, moved.CreatedAt.Equal(created.CreatedAt))

	fetched, err := h.tasks.Get(ctx, project.ID, created.ID)
	require.NoError(t, err)
	assert.True(t, fetched.UpdatedAt.Equal(moved.UpdatedAt))
}

func TestHealth(t *testing.T) {
	h := newHarness(t)
	health, err := h.auth.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
}
