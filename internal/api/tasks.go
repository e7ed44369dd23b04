package api

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// TaskAPI maps the /projects/{id}/tasks endpoints
type TaskAPI struct {
	client *Client
}

func NewTaskAPI(client *Client) *TaskAPI {
	return &TaskAPI{client: client}
}

func tasksPath(projectID int) string {
	return fmt.Sprintf("/api/v1/projects/%d/tasks", projectID)
}

func taskPath(projectID, taskID int) string {
	return fmt.Sprintf("/api/v1/projects/%d/tasks/%d", projectID, taskID)
}

func validateTaskIDs(projectID, taskID int) error {
	if err := validateID("project_id", projectID); err != nil {
		return err
	}
	return validateID("task_id", taskID)
}

func (t *TaskAPI) Create(ctx context.Context, projectID int, req models.TaskCreate) (*models.Task, error) {
	if err := validateID("project_id", projectID); err != nil {
		return nil, err
	}
	if err := Validate(req); err != nil {
		return nil, err
	}
	var task models.Task
	if err := t.client.Post(ctx, tasksPath(projectID), req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns the project's tasks, filtered and sorted by params
func (t *TaskAPI) List(ctx context.Context, projectID int, params models.TaskListParams) ([]models.Task, error) {
	if err := validateID("project_id", projectID); err != nil {
		return nil, err
	}
	if err := Validate(params); err != nil {
		return nil, err
	}
	tasks := []models.Task{}
	if err := t.client.Get(ctx, tasksPath(projectID), params.Query(), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (t *TaskAPI) Get(ctx context.Context, projectID, taskID int) (*models.Task, error) {
	if err := validateTaskIDs(projectID, taskID); err != nil {
		return nil, err
	}
	var task models.Task
	if err := t.client.Get(ctx, taskPath(projectID, taskID), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (t *TaskAPI) Update(ctx context.Context, projectID, taskID int, req models.TaskUpdate) (*models.Task, error) {
	if err := validateTaskIDs(projectID, taskID); err != nil {
		return nil, err
	}
	if err := Validate(req); err != nil {
		return nil, err
	}
	var task models.Task
	if err := t.client.Put(ctx, taskPath(projectID, taskID), req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateStatus moves a task between board columns
func (t *TaskAPI) UpdateStatus(ctx context.Context, projectID, taskID int, status models.Status) (*models.Task, error) {
	if err := validateTaskIDs(projectID, taskID); err != nil {
		return nil, err
	}
	req := models.StatusUpdate{Status: status}
	if err := Validate(req); err != nil {
		return nil, err
	}
	var task models.Task
	if err := t.client.Patch(ctx, taskPath(projectID, taskID)+"/status", req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (t *TaskAPI) Delete(ctx context.Context, projectID, taskID int) error {
	if err := validateTaskIDs(projectID, taskID); err != nil {
		return err
	}
	return t.client.Delete(ctx, taskPath(projectID, taskID))
}
