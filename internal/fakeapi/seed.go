package fakeapi

import (
	"fmt"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// DemoPassword is the password of the account created by Seed
const DemoPassword = "taskflow"

// Seed creates a demo account with one project and a few tasks spread over
// the board. It returns the demo user.
func (s *Server) Seed() (models.User, error) {
	user, err := s.CreateUser("demo@taskflow.dev", "Demo User", DemoPassword)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to create demo user: %w", err)
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	now := s.store.clock()
	project := &models.Project{
		ID:          s.store.nextID(),
		Name:        "Website Relaunch",
		Description: "Redesign and ship the marketing site",
		OwnerID:     user.ID,
		CreatedAt:   now,
	}
	s.store.projects[project.ID] = project
	s.store.members[project.ID] = []models.ProjectMember{{
		ID:        s.store.nextID(),
		UserID:    user.ID,
		ProjectID: project.ID,
		Role:      models.RoleOwner,
	}}

	seeds := []struct {
		title    string
		status   models.Status
		priority models.Priority
		assigned bool
	}{
		{"Draft content outline", models.StatusDone, models.PriorityMedium, true},
		{"Build landing page", models.StatusInProgress, models.PriorityHigh, true},
		{"Set up analytics", models.StatusTodo, models.PriorityLow, false},
		{"Fix checkout bug", models.StatusTodo, models.PriorityCritical, true},
	}
	for _, seed := range seeds {
		task := &models.Task{
			ID:          s.store.nextID(),
			Title:       seed.title,
			Description: "",
			Status:      seed.status,
			Priority:    seed.priority,
			ProjectID:   project.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if seed.assigned {
			id := user.ID
			task.AssigneeID = &id
		}
		s.store.tasks[task.ID] = task
	}

	return user, nil
}
