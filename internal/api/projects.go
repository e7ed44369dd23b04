package api

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// ProjectAPI maps the /projects endpoints
type ProjectAPI struct {
	client *Client
}

func NewProjectAPI(client *Client) *ProjectAPI {
	return &ProjectAPI{client: client}
}

func projectPath(projectID int) string {
	return fmt.Sprintf("/api/v1/projects/%d", projectID)
}

func (p *ProjectAPI) Create(ctx context.Context, req models.ProjectCreate) (*models.Project, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}
	var project models.Project
	if err := p.client.Post(ctx, "/api/v1/projects/", req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (p *ProjectAPI) List(ctx context.Context) ([]models.Project, error) {
	projects := []models.Project{}
	if err := p.client.Get(ctx, "/api/v1/projects/", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Get returns the project with its members
func (p *ProjectAPI) Get(ctx context.Context, projectID int) (*models.ProjectDetail, error) {
	if err := validateID("project_id", projectID); err != nil {
		return nil, err
	}
	var detail models.ProjectDetail
	if err := p.client.Get(ctx, projectPath(projectID), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (p *ProjectAPI) Update(ctx context.Context, projectID int, req models.ProjectUpdate) (*models.Project, error) {
	if err := validateID("project_id", projectID); err != nil {
		return nil, err
	}
	if err := Validate(req); err != nil {
		return nil, err
	}
	var project models.Project
	if err := p.client.Put(ctx, projectPath(projectID), req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (p *ProjectAPI) Delete(ctx context.Context, projectID int) error {
	if err := validateID("project_id", projectID); err != nil {
		return err
	}
	return p.client.Delete(ctx, projectPath(projectID))
}

func (p *ProjectAPI) AddMember(ctx context.Context, projectID int, req models.MemberAdd) (*models.ProjectMember, error) {
	if err := validateID("project_id", projectID); err != nil {
		return nil, err
	}
	if err := Validate(req); err != nil {
		return nil, err
	}
	var member models.ProjectMember
	if err := p.client.Post(ctx, projectPath(projectID)+"/members", req, &member); err != nil {
		return nil, err
	}
	return &member, nil
}
