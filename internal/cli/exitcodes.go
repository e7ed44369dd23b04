package cli

import (
	"errors"
	"strconv"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Network errors, unexpected backend failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Task not found, project not found, or any HTTP 404 from the backend.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unparsable backend responses or local config that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid priority or status values, empty titles, moving a task
	// to the status it already has, or a request the backend rejected as invalid.
	ExitValidation = 5

	// ExitAuthorization indicates the backend refused the credential.
	// Use for: HTTP 401 (not logged in, expired token) and HTTP 403 (not a member,
	// insufficient role).
	ExitAuthorization = 6
)

// ExitCodeError carries the process exit code for a failed command. The
// message has already been printed by the OutputFormatter.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return "exit status " + strconv.Itoa(e.Code)
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// ExitCodeFor returns the exit code a command error should terminate with.
// Errors that did not go through the formatter are cobra usage errors.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}
