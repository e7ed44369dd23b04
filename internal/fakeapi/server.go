// Package fakeapi is an in-memory implementation of the TaskFlow REST backend.
// It serves the client's tests through httptest and local development
// through cmd/devserver.
package fakeapi

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/thenoetrevino/taskflow/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var errEmailTaken = errors.New("email already registered")

// Server is the fake backend. The zero value is not usable; call New.
type Server struct {
	engine *gin.Engine
	store  *store
	secret []byte
	cost   int

	failMu   sync.Mutex
	failures map[string][]injected
}

type injected struct {
	status int
	detail string
}

// Option configures a Server
type Option func(*Server)

// WithSecret sets the HMAC key used to sign tokens
func WithSecret(secret string) Option {
	return func(s *Server) {
		s.secret = []byte(secret)
	}
}

// WithClock replaces time.Now for timestamps and token validation
func WithClock(clock func() time.Time) Option {
	return func(s *Server) {
		s.store.clock = clock
	}
}

// WithBcryptCost sets the password hashing cost
func WithBcryptCost(cost int) Option {
	return func(s *Server) {
		s.cost = cost
	}
}

// New creates a fake backend with its routes registered
func New(opts ...Option) *Server {
	s := &Server{
		store:    newStore(time.Now),
		secret:   []byte("taskflow-dev-secret"),
		cost:     bcrypt.MinCost,
		failures: map[string][]injected{},
	}
	for _, opt := range opts {
		opt(s)
	}

	r := gin.New()
	r.Use(gin.Recovery(), countRequests(), s.injectFailures())
	s.registerRoutes(r)
	s.engine = r
	return s
}

// Handler returns the server as an http.Handler
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "TaskFlow API is running"})
	})

	auth := v1.Group("/auth")
	auth.POST("/register", s.register)
	auth.POST("/login", s.login)
	auth.GET("/me", s.requireUser(), s.me)

	projects := v1.Group("/projects", s.requireUser())
	projects.POST("/", s.createProject)
	projects.GET("/", s.listProjects)

	project := projects.Group("/:project_id", s.requireMember())
	project.GET("", s.getProject)
	project.PUT("", s.updateProject)
	project.DELETE("", s.deleteProject)
	project.POST("/members", s.addMember)

	project.POST("/tasks", s.createTask)
	project.GET("/tasks", s.listTasks)
	project.GET("/tasks/:task_id", s.withTask(s.getTask))
	project.PUT("/tasks/:task_id", s.withTask(s.updateTask))
	project.PATCH("/tasks/:task_id/status", s.withTask(s.updateTaskStatus))
	project.DELETE("/tasks/:task_id", s.withTask(s.deleteTask))
	project.POST("/tasks/:task_id/comments", s.withTask(s.createComment))
	project.GET("/tasks/:task_id/comments", s.withTask(s.listComments))
}

// FailNext makes the next request matching method and path answer with
// status and detail instead of reaching its handler.
func (s *Server) FailNext(method, path string, status int, detail string) {
	s.failMu.Lock()
	defer s.failMu.Unlock()
	key := method + " " + path
	s.failures[key] = append(s.failures[key], injected{status: status, detail: detail})
}

func (s *Server) injectFailures() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Request.Method + " " + c.Request.URL.Path

		s.failMu.Lock()
		queue := s.failures[key]
		var fail *injected
		if len(queue) > 0 {
			fail = &queue[0]
			s.failures[key] = queue[1:]
		}
		s.failMu.Unlock()

		if fail == nil {
			c.Next()
			return
		}
		injectedFailures.WithLabelValues(c.Request.Method, c.Request.URL.Path).Inc()
		abort(c, fail.status, fail.detail)
	}
}

// CreateUser adds an account directly, bypassing HTTP. Used for seeding.
func (s *Server) CreateUser(email, name, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return models.User{}, err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	key := strings.ToLower(email)
	if _, exists := s.store.byEmail[key]; exists {
		return models.User{}, errEmailTaken
	}

	record := &userRecord{
		User: models.User{
			ID:        s.store.nextID(),
			Email:     email,
			Name:      name,
			CreatedAt: s.store.clock(),
		},
		passwordHash: hash,
	}
	s.store.users[record.ID] = record
	s.store.byEmail[key] = record.ID
	return record.User, nil
}

// Token signs a bearer token for userID, as a successful login would
func (s *Server) Token(userID int) (string, error) {
	return s.issueToken(userID)
}

// Task returns the server-side copy of a task
func (s *Server) Task(taskID int) (models.Task, bool) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	t, ok := s.store.tasks[taskID]
	if !ok {
		return models.Task{}, false
	}
	return *t, true
}
