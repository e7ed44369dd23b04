package models

import "time"

// Comment represents a note left on a task
type Comment struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	TaskID    int       `json:"task_id"`
	AuthorID  int       `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID returns the comment ID
func (c *Comment) GetID() int {
	return c.ID
}

// CommentCreate is the body of POST .../tasks/{tid}/comments
type CommentCreate struct {
	Content string `json:"content" validate:"required,max=1000"`
}
