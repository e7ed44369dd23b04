package state

import (
	"github.com/thenoetrevino/taskflow/internal/dashboard"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// ProjectListState is the project list view.
type ProjectListState struct {
	Projects []models.Project

	cursor int
	// pendingDelete is the project awaiting delete confirmation
	pendingDelete *models.Project
}

// NewProjectListState creates an empty project list.
func NewProjectListState() *ProjectListState {
	return &ProjectListState{Projects: []models.Project{}}
}

// SetProjects replaces the list, keeping the cursor in range.
func (s *ProjectListState) SetProjects(projects []models.Project) {
	s.Projects = projects
	if s.cursor >= len(projects) {
		s.cursor = max(len(projects)-1, 0)
	}
}

// Cursor returns the index of the highlighted project.
func (s *ProjectListState) Cursor() int {
	return s.cursor
}

// Up moves the cursor up.
func (s *ProjectListState) Up() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// Down moves the cursor down.
func (s *ProjectListState) Down() {
	if s.cursor < len(s.Projects)-1 {
		s.cursor++
	}
}

// Selected returns the highlighted project.
func (s *ProjectListState) Selected() (models.Project, bool) {
	if s.cursor < 0 || s.cursor >= len(s.Projects) {
		return models.Project{}, false
	}
	return s.Projects[s.cursor], true
}

// Remove drops a project from the list after it was deleted.
func (s *ProjectListState) Remove(projectID int) {
	kept := s.Projects[:0:0]
	for _, p := range s.Projects {
		if p.ID != projectID {
			kept = append(kept, p)
		}
	}
	s.SetProjects(kept)
}

// PendingDelete returns the project awaiting confirmation.
func (s *ProjectListState) PendingDelete() *models.Project {
	return s.pendingDelete
}

// SetPendingDelete marks a project for deletion; nil cancels.
func (s *ProjectListState) SetPendingDelete(p *models.Project) {
	s.pendingDelete = p
}

// DashboardState holds every project with its tasks. Totals, assignments and
// progress are derived on each render.
type DashboardState struct {
	Projects []dashboard.ProjectTasks
}

// NewDashboardState creates an empty dashboard.
func NewDashboardState() *DashboardState {
	return &DashboardState{Projects: []dashboard.ProjectTasks{}}
}

// Stats returns the totals across all projects.
func (s *DashboardState) Stats() dashboard.Stats {
	return dashboard.Summarize(s.Projects)
}

// Assigned returns the tasks assigned to userID across all projects.
func (s *DashboardState) Assigned(userID int) []dashboard.AssignedTask {
	return dashboard.AssignedTo(s.Projects, userID)
}
