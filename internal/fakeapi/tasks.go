package fakeapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/taskflow/internal/models"
)

// withTask resolves :task_id inside the current project, answering 404 when
// the task does not exist there. The handler runs with the store locked.
func (s *Server) withTask(handler func(*gin.Context, *models.Task)) gin.HandlerFunc {
	return func(c *gin.Context) {
		taskID, err := strconv.Atoi(c.Param("task_id"))
		if err != nil {
			abortInvalid(c, fieldIssue{Loc: []string{"path", "task_id"}, Msg: "must be an integer", Type: "int_parsing"})
			return
		}

		s.store.mu.Lock()
		defer s.store.mu.Unlock()

		task, ok := s.store.taskIn(currentProject(c), taskID)
		if !ok {
			abort(c, http.StatusNotFound, detailTaskNotFound)
			return
		}
		handler(c, task)
	}
}

func validTitle(title string) bool {
	return strings.TrimSpace(title) != "" && len(title) <= 255
}

func (s *Server) createTask(c *gin.Context) {
	var req models.TaskCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalid(c, issue("body", err.Error()))
		return
	}
	if !validTitle(req.Title) {
		abortInvalid(c, issue("title", "title must be 1-255 characters"))
		return
	}
	priority := models.DefaultPriority
	if req.Priority != nil {
		if !req.Priority.Valid() {
			abortInvalid(c, issue("priority", "invalid priority"))
			return
		}
		priority = *req.Priority
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	now := s.store.clock()
	task := &models.Task{
		ID:          s.store.nextID(),
		Title:       req.Title,
		Description: req.Description,
		Status:      models.StatusTodo,
		Priority:    priority,
		ProjectID:   currentProject(c),
		AssigneeID:  req.AssigneeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.store.tasks[task.ID] = task
	c.JSON(http.StatusCreated, task)
}

func (s *Server) listTasks(c *gin.Context) {
	filter := taskFilter{
		sortBy: c.DefaultQuery("sort_by", "created_at"),
		desc:   c.DefaultQuery("sort_order", "desc") != "asc",
	}

	if raw, ok := c.GetQuery("status"); ok {
		st := models.Status(raw)
		if !st.Valid() {
			abortInvalid(c, fieldIssue{Loc: []string{"query", "status"}, Msg: "invalid status", Type: "enum"})
			return
		}
		filter.status = &st
	}
	if raw, ok := c.GetQuery("priority"); ok {
		p := models.Priority(raw)
		if !p.Valid() {
			abortInvalid(c, fieldIssue{Loc: []string{"query", "priority"}, Msg: "invalid priority", Type: "enum"})
			return
		}
		filter.priority = &p
	}
	if raw, ok := c.GetQuery("assignee_id"); ok {
		id, err := strconv.Atoi(raw)
		if err != nil {
			abortInvalid(c, fieldIssue{Loc: []string{"query", "assignee_id"}, Msg: "must be an integer", Type: "int_parsing"})
			return
		}
		filter.assigneeID = &id
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	c.JSON(http.StatusOK, s.store.listTasks(currentProject(c), filter))
}

func (s *Server) getTask(c *gin.Context, task *models.Task) {
	c.JSON(http.StatusOK, task)
}

func (s *Server) updateTask(c *gin.Context, task *models.Task) {
	var req models.TaskUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalid(c, issue("body", err.Error()))
		return
	}

	var issues []fieldIssue
	if req.Title != nil && !validTitle(*req.Title) {
		issues = append(issues, issue("title", "title must be 1-255 characters"))
	}
	if req.Status != nil && !req.Status.Valid() {
		issues = append(issues, issue("status", "invalid status"))
	}
	if req.Priority != nil && !req.Priority.Valid() {
		issues = append(issues, issue("priority", "invalid priority"))
	}
	if len(issues) > 0 {
		abortInvalid(c, issues...)
		return
	}

	updated, _ := req.ApplyTo(*task)
	updated.UpdatedAt = s.store.clock()
	*task = updated
	c.JSON(http.StatusOK, task)
}

func (s *Server) updateTaskStatus(c *gin.Context, task *models.Task) {
	var req models.StatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalid(c, issue("body", err.Error()))
		return
	}
	if !req.Status.Valid() {
		abortInvalid(c, issue("status", "invalid status"))
		return
	}

	task.Status = req.Status
	task.UpdatedAt = s.store.clock()
	c.JSON(http.StatusOK, task)
}

func (s *Server) deleteTask(c *gin.Context, task *models.Task) {
	delete(s.store.comments, task.ID)
	delete(s.store.tasks, task.ID)
	c.Status(http.StatusNoContent)
}

func (s *Server) createComment(c *gin.Context, task *models.Task) {
	var req models.CommentCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalid(c, issue("body", err.Error()))
		return
	}
	if strings.TrimSpace(req.Content) == "" || len(req.Content) > 1000 {
		abortInvalid(c, issue("content", "content must be 1-1000 characters"))
		return
	}

	comment := models.Comment{
		ID:        s.store.nextID(),
		Content:   req.Content,
		TaskID:    task.ID,
		AuthorID:  currentUser(c),
		CreatedAt: s.store.clock(),
	}
	s.store.comments[task.ID] = append(s.store.comments[task.ID], comment)
	c.JSON(http.StatusCreated, comment)
}

func (s *Server) listComments(c *gin.Context, task *models.Task) {
	c.JSON(http.StatusOK, append([]models.Comment{}, s.store.comments[task.ID]...))
}
