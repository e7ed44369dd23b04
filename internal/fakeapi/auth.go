package fakeapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/thenoetrevino/taskflow/internal/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	ctxUserID   = "userID"
	tokenTTL    = 24 * time.Hour
	bearerToken = "bearer"
)

func (s *Server) issueToken(userID int) (string, error) {
	now := s.store.clock()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Server) parseToken(tokenString string) (int, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.store.clock))
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid claims")
	}
	return strconv.Atoi(claims.Subject)
}

// requireUser authenticates the bearer token and stores the user id in the context
func (s *Server) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			c.Header("WWW-Authenticate", "Bearer")
			abort(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		userID, err := s.parseToken(tokenString)
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			abort(c, http.StatusUnauthorized, detailInvalidToken)
			return
		}

		s.store.mu.Lock()
		_, exists := s.store.users[userID]
		s.store.mu.Unlock()
		if !exists {
			abort(c, http.StatusUnauthorized, detailUserNotFound)
			return
		}

		c.Set(ctxUserID, userID)
		c.Next()
	}
}

func currentUser(c *gin.Context) int {
	return c.GetInt(ctxUserID)
}

func (s *Server) register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalid(c, issue("body", err.Error()))
		return
	}

	var issues []fieldIssue
	if !strings.Contains(req.Email, "@") {
		issues = append(issues, issue("email", "value is not a valid email address"))
	}
	if strings.TrimSpace(req.Name) == "" || len(req.Name) > 100 {
		issues = append(issues, issue("name", "name must be 1-100 characters"))
	}
	if req.Password == "" {
		issues = append(issues, issue("password", "password is required"))
	}
	if len(issues) > 0 {
		abortInvalid(c, issues...)
		return
	}

	user, err := s.CreateUser(req.Email, req.Name, req.Password)
	if errors.Is(err, errEmailTaken) {
		abort(c, http.StatusBadRequest, detailEmailTaken)
		return
	}
	if err != nil {
		abort(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (s *Server) login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalid(c, issue("body", err.Error()))
		return
	}

	s.store.mu.Lock()
	var record *userRecord
	if id, ok := s.store.byEmail[strings.ToLower(req.Email)]; ok {
		record = s.store.users[id]
	}
	s.store.mu.Unlock()

	if record == nil || bcrypt.CompareHashAndPassword(record.passwordHash, []byte(req.Password)) != nil {
		c.Header("WWW-Authenticate", "Bearer")
		abort(c, http.StatusUnauthorized, detailBadCredentials)
		return
	}

	token, err := s.issueToken(record.ID)
	if err != nil {
		abort(c, http.StatusInternalServerError, "token generation failed")
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		User:  record.User,
		Token: models.Token{AccessToken: token, TokenType: bearerToken},
	})
}

func (s *Server) me(c *gin.Context) {
	s.store.mu.Lock()
	record := s.store.users[currentUser(c)]
	s.store.mu.Unlock()
	c.JSON(http.StatusOK, record.User)
}
