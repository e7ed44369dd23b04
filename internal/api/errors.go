package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-success HTTP response from the backend
type Error struct {
	Status  int
	Message string
	Body    map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// NetworkError means the request never produced an HTTP response
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// FieldError describes one rejected request field
type FieldError struct {
	Field string
	Rule  string
	Param string
}

// ValidationError is raised before any remote call when a request is malformed
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		switch {
		case f.Rule == "required":
			parts = append(parts, f.Field+" is required")
		case f.Param != "":
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", f.Field, f.Rule, f.Param))
		default:
			parts = append(parts, fmt.Sprintf("%s is not a valid %s", f.Field, f.Rule))
		}
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// ErrorKind buckets failures for callers that react differently per class
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindNetwork
	KindValidation
	KindAuthorization
	KindNotFound
	KindHTTP
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindHTTP:
		return "http"
	}
	return "unknown"
}

// Classify maps an error returned by this package to its kind
func Classify(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return KindValidation
	}

	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return KindNetwork
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return KindAuthorization
		case http.StatusNotFound:
			return KindNotFound
		case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
			return KindValidation
		}
		return KindHTTP
	}

	return KindUnknown
}

// StatusOf returns the HTTP status carried by err, or 0
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
