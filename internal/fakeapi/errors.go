package fakeapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response details, kept close to the messages the real backend sends
const (
	detailBadCredentials  = "Invalid email or password"
	detailInvalidToken    = "Could not validate credentials"
	detailUserNotFound    = "User not found"
	detailEmailTaken      = "Email already registered"
	detailProjectNotFound = "Project not found"
	detailTaskNotFound    = "Task not found"
	detailNotMember       = "Not a member of this project"
	detailAlreadyMember   = "User is already a project member"
	detailCannotUpdate    = "Only owners and admins can update the project"
	detailCannotDelete    = "Only the owner can delete the project"
	detailCannotAddMember = "Only owners and admins can add members"
)

// fieldIssue mirrors one entry of a 422 validation detail list
type fieldIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func abort(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

func abortInvalid(c *gin.Context, issues ...fieldIssue) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": issues})
}

func issue(field, msg string) fieldIssue {
	return fieldIssue{Loc: []string{"body", field}, Msg: msg, Type: "value_error"}
}
