package models

import "errors"

// Validation errors for enum parsing
var (
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidRole     = errors.New("invalid role")
)

// Domain-specific errors for task movement operations
var (
	// ErrAlreadyFirstColumn indicates an attempt to move left from the Todo column
	ErrAlreadyFirstColumn = errors.New("task is already in the first column")

	// ErrAlreadyLastColumn indicates an attempt to move right from the Done column
	ErrAlreadyLastColumn = errors.New("task is already in the last column")
)
