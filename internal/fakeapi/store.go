package fakeapi

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/thenoetrevino/taskflow/internal/models"
)

type userRecord struct {
	models.User
	passwordHash []byte
}

// store is the in-memory state behind the fake backend
type store struct {
	mu    sync.Mutex
	clock func() time.Time
	seq   int

	users    map[int]*userRecord
	byEmail  map[string]int
	projects map[int]*models.Project
	members  map[int][]models.ProjectMember
	tasks    map[int]*models.Task
	comments map[int][]models.Comment
}

func newStore(clock func() time.Time) *store {
	return &store{
		clock:    clock,
		users:    map[int]*userRecord{},
		byEmail:  map[string]int{},
		projects: map[int]*models.Project{},
		members:  map[int][]models.ProjectMember{},
		tasks:    map[int]*models.Task{},
		comments: map[int][]models.Comment{},
	}
}

// nextID hands out ids from one sequence shared by every table, which keeps
// ids unique across resources and ordered by creation.
func (s *store) nextID() int {
	s.seq++
	return s.seq
}

func (s *store) memberOf(projectID, userID int) (models.ProjectMember, bool) {
	for _, m := range s.members[projectID] {
		if m.UserID == userID {
			return m, true
		}
	}
	return models.ProjectMember{}, false
}

func (s *store) projectsFor(userID int) []models.Project {
	out := []models.Project{}
	for id, p := range s.projects {
		if _, ok := s.memberOf(id, userID); ok {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *store) taskIn(projectID, taskID int) (*models.Task, bool) {
	t, ok := s.tasks[taskID]
	if !ok || t.ProjectID != projectID {
		return nil, false
	}
	return t, true
}

func (s *store) deleteProject(projectID int) {
	for id, t := range s.tasks {
		if t.ProjectID == projectID {
			delete(s.comments, id)
			delete(s.tasks, id)
		}
	}
	delete(s.members, projectID)
	delete(s.projects, projectID)
}

type taskFilter struct {
	status     *models.Status
	priority   *models.Priority
	assigneeID *int
	sortBy     string
	desc       bool
}

var sortableFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"title":      true,
	"priority":   true,
	"status":     true,
}

func (s *store) listTasks(projectID int, f taskFilter) []models.Task {
	out := []models.Task{}
	for _, t := range s.tasks {
		if t.ProjectID != projectID {
			continue
		}
		if f.status != nil && t.Status != *f.status {
			continue
		}
		if f.priority != nil && t.Priority != *f.priority {
			continue
		}
		if f.assigneeID != nil && !t.IsAssignedTo(*f.assigneeID) {
			continue
		}
		out = append(out, *t)
	}

	if !sortableFields[f.sortBy] {
		f.sortBy = "created_at"
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := compareTasks(out[i], out[j], f.sortBy)
		if c == 0 {
			c = out[i].ID - out[j].ID
		}
		if f.desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compareTasks(a, b models.Task, field string) int {
	switch field {
	case "updated_at":
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case "title":
		return strings.Compare(a.Title, b.Title)
	case "priority":
		return priorityRank(a.Priority) - priorityRank(b.Priority)
	case "status":
		return a.Status.Index() - b.Status.Index()
	}
	return a.CreatedAt.Compare(b.CreatedAt)
}

func priorityRank(p models.Priority) int {
	for i, candidate := range models.Priorities {
		if candidate == p {
			return i
		}
	}
	return -1
}
