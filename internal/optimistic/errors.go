package optimistic

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/taskflow/internal/api"
)

var (
	// ErrNotFound means the key is not in the controller's collection
	ErrNotFound = errors.New("item not found")

	// ErrUnmounted means the owning view has been discarded
	ErrUnmounted = errors.New("controller is unmounted")
)

// MutationError is returned when the remote call of a mutation fails and
// local state has been rolled back.
type MutationError struct {
	Op   string
	Key  any
	Kind api.ErrorKind
	Err  error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}
