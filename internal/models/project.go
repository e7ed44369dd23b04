package models

import "time"

// Project represents a container for a team's tasks
// Projects are the top-level organizational unit in TaskFlow
type Project struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     int       `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetID returns the project ID
func (p *Project) GetID() int {
	return p.ID
}

// ProjectMember links a user to a project with a role
type ProjectMember struct {
	ID        int  `json:"id"`
	UserID    int  `json:"user_id"`
	ProjectID int  `json:"project_id"`
	Role      Role `json:"role"`
}

// ProjectDetail is a project together with its members
type ProjectDetail struct {
	Project
	Members []ProjectMember `json:"members"`
}

// ProjectCreate is the body of POST /projects/
type ProjectCreate struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description"`
}

// ProjectUpdate is the body of PUT /projects/{id}
type ProjectUpdate struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
}

// MemberAdd is the body of POST /projects/{id}/members
type MemberAdd struct {
	UserID int   `json:"user_id" validate:"required,gt=0"`
	Role   *Role `json:"role,omitempty" validate:"omitempty,role"`
}
