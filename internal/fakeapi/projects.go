package fakeapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/taskflow/internal/models"
)

const (
	ctxProjectID = "projectID"
	ctxRole      = "role"
)

// requireMember resolves :project_id and rejects callers who are not members
func (s *Server) requireMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.Atoi(c.Param("project_id"))
		if err != nil {
			abortInvalid(c, fieldIssue{Loc: []string{"path", "project_id"}, Msg: "must be an integer", Type: "int_parsing"})
			return
		}

		s.store.mu.Lock()
		_, exists := s.store.projects[projectID]
		member, isMember := s.store.memberOf(projectID, currentUser(c))
		s.store.mu.Unlock()

		if !exists {
			abort(c, http.StatusNotFound, detailProjectNotFound)
			return
		}
		if !isMember {
			abort(c, http.StatusForbidden, detailNotMember)
			return
		}

		c.Set(ctxProjectID, projectID)
		c.Set(ctxRole, string(member.Role))
		c.Next()
	}
}

func currentProject(c *gin.Context) int {
	return c.GetInt(ctxProjectID)
}

func currentRole(c *gin.Context) models.Role {
	return models.Role(c.GetString(ctxRole))
}

func canManage(role models.Role) bool {
	return role == models.RoleOwner || role == models.RoleAdmin
}

func (s *Server) createProject(c *gin.Context) {
	var req models.ProjectCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalid(c, issue("body", err.Error()))
		return
	}
	if strings.TrimSpace(req.Name) == "" || len(req.Name) > 255 {
		abortInvalid(c, issue("name", "name must be 1-255 characters"))
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	userID := currentUser(c)
	project := &models.Project{
		ID:          s.store.nextID(),
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     userID,
		CreatedAt:   s.store.clock(),
	}
	s.store.projects[project.ID] = project
	s.store.members[project.ID] = []models.ProjectMember{{
		ID:        s.store.nextID(),
		UserID:    userID,
		ProjectID: project.ID,
		Role:      models.RoleOwner,
	}}

	c.JSON(http.StatusCreated, project)
}

func (s *Server) listProjects(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	c.JSON(http.StatusOK, s.store.projectsFor(currentUser(c)))
}

func (s *Server) getProject(c *gin.Context) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	projectID := currentProject(c)
	detail := models.ProjectDetail{
		Project: *s.store.projects[projectID],
		Members: append([]models.ProjectMember{}, s.store.members[projectID]...),
	}
	c.JSON(http.StatusOK, detail)
}

func (s *Server) updateProject(c *gin.Context) {
	if !canManage(currentRole(c)) {
		abort(c, http.StatusForbidden, detailCannotUpdate)
		return
	}

	var req models.ProjectUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalid(c, issue("body", err.Error()))
		return
	}
	if req.Name != nil && (strings.TrimSpace(*req.Name) == "" || len(*req.Name) > 255) {
		abortInvalid(c, issue("name", "name must be 1-255 characters"))
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	project := s.store.projects[currentProject(c)]
	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	c.JSON(http.StatusOK, project)
}

func (s *Server) deleteProject(c *gin.Context) {
	if currentRole(c) != models.RoleOwner {
		abort(c, http.StatusForbidden, detailCannotDelete)
		return
	}

	s.store.mu.Lock()
	s.store.deleteProject(currentProject(c))
	s.store.mu.Unlock()

	c.Status(http.StatusNoContent)
}

func (s *Server) addMember(c *gin.Context) {
	if !canManage(currentRole(c)) {
		abort(c, http.StatusForbidden, detailCannotAddMember)
		return
	}

	var req models.MemberAdd
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalid(c, issue("body", err.Error()))
		return
	}
	role := models.RoleMember
	if req.Role != nil {
		if !req.Role.Valid() {
			abortInvalid(c, issue("role", "role must be owner, admin or member"))
			return
		}
		role = *req.Role
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	projectID := currentProject(c)
	if _, ok := s.store.users[req.UserID]; !ok {
		abort(c, http.StatusNotFound, detailUserNotFound)
		return
	}
	if _, ok := s.store.memberOf(projectID, req.UserID); ok {
		abort(c, http.StatusBadRequest, detailAlreadyMember)
		return
	}

	member := models.ProjectMember{
		ID:        s.store.nextID(),
		UserID:    req.UserID,
		ProjectID: projectID,
		Role:      role,
	}
	s.store.members[projectID] = append(s.store.members[projectID], member)
	c.JSON(http.StatusCreated, member)
}
