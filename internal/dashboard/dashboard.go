// Package dashboard derives summary views from projects and their tasks.
// Nothing here is cached; callers recompute on every render.
package dashboard

import (
	"math"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// ProjectTasks pairs a project with its full task list
type ProjectTasks struct {
	Project models.Project `json:"project"`
	Tasks   []models.Task  `json:"tasks"`
}

// Stats are totals across every project
type Stats struct {
	Projects   int `json:"projects"`
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"in_progress"`
	Done       int `json:"done"`
}

// AssignedTask is a task plus the project it belongs to
type AssignedTask struct {
	models.Task
	ProjectName string `json:"project_name"`
}

// Progress is one project's completion breakdown
type Progress struct {
	Todo       int `json:"todo"`
	InProgress int `json:"in_progress"`
	Done       int `json:"done"`
	Total      int `json:"total"`
	// Percent is round(done/total*100), 0 for an empty project
	Percent int `json:"percent"`
}

// Summarize counts tasks by status across all projects
func Summarize(projects []ProjectTasks) Stats {
	stats := Stats{Projects: len(projects)}
	for _, pt := range projects {
		p := ProjectProgress(pt.Tasks)
		stats.Total += p.Total
		stats.Todo += p.Todo
		stats.InProgress += p.InProgress
		stats.Done += p.Done
	}
	return stats
}

// AssignedTo returns every task assigned to userID, in project order
func AssignedTo(projects []ProjectTasks, userID int) []AssignedTask {
	out := []AssignedTask{}
	for _, pt := range projects {
		for _, t := range pt.Tasks {
			if t.IsAssignedTo(userID) {
				out = append(out, AssignedTask{Task: t, ProjectName: pt.Project.Name})
			}
		}
	}
	return out
}

// ProjectProgress counts one project's tasks by status
func ProjectProgress(tasks []models.Task) Progress {
	var p Progress
	for _, t := range tasks {
		switch t.Status {
		case models.StatusTodo:
			p.Todo++
		case models.StatusInProgress:
			p.InProgress++
		case models.StatusDone:
			p.Done++
		}
	}
	p.Total = p.Todo + p.InProgress + p.Done
	if p.Total > 0 {
		p.Percent = int(math.Round(float64(p.Done) / float64(p.Total) * 100))
	}
	return p
}
