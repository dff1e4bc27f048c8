package immutable

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrImmutable is the cause of every ViolationError.
var ErrImmutable = errors.New("immutable container")

// ViolationError is raised when something tries to change a container
// through a view that only exposes mutators for interface compatibility.
type ViolationError struct {
	Container string
	Op        string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("%s: %s does not support %s", ErrImmutable, e.Container, e.Op)
}

func (e *ViolationError) Unwrap() error {
	return ErrImmutable
}

func violation(container, op string) *ViolationError {
	return &ViolationError{Container: container, Op: op}
}
