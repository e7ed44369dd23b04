package dashboard

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/taskflow/internal/models"
	"golang.org/x/sync/errgroup"
)

// ProjectLister lists the caller's projects
type ProjectLister interface {
	List(ctx context.Context) ([]models.Project, error)
}

// TaskLister lists one project's tasks
type TaskLister interface {
	List(ctx context.Context, projectID int, params models.TaskListParams) ([]models.Task, error)
}

// Load fetches every project and then all their tasks concurrently. The
// result keeps the backend's project order. Any failure fails the whole load.
func Load(ctx context.Context, projects ProjectLister, tasks TaskLister) ([]ProjectTasks, error) {
	list, err := projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	out := make([]ProjectTasks, len(list))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, p := range list {
		g.Go(func() error {
			projectTasks, err := tasks.List(gctx, p.ID, models.TaskListParams{})
			if err != nil {
				return fmt.Errorf("failed to list tasks for project %d: %w", p.ID, err)
			}
			out[i] = ProjectTasks{Project: p, Tasks: projectTasks}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
