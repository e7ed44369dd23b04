package api

import (
	"context"
	"sort"

	"github.com/thenoetrevino/taskflow/internal/models"
)

// CommentAPI maps the task comment endpoints
type CommentAPI struct {
	client *Client
}

func NewCommentAPI(client *Client) *CommentAPI {
	return &CommentAPI{client: client}
}

func commentsPath(projectID, taskID int) string {
	return taskPath(projectID, taskID) + "/comments"
}

func (c *CommentAPI) Create(ctx context.Context, projectID, taskID int, req models.CommentCreate) (*models.Comment, error) {
	if err := validateTaskIDs(projectID, taskID); err != nil {
		return nil, err
	}
	if err := Validate(req); err != nil {
		return nil, err
	}
	var comment models.Comment
	if err := c.client.Post(ctx, commentsPath(projectID, taskID), req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// List returns the task's comments oldest first
func (c *CommentAPI) List(ctx context.Context, projectID, taskID int) ([]models.Comment, error) {
	if err := validateTaskIDs(projectID, taskID); err != nil {
		return nil, err
	}
	comments := []models.Comment{}
	if err := c.client.Get(ctx, commentsPath(projectID, taskID), nil, &comments); err != nil {
		return nil, err
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}
