package commands

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateCommand is matched by every DuplicateCommandError.
	ErrDuplicateCommand = errors.New("duplicated command")

	// ErrInvalidCommand is returned when registering a nil command or one
	// without a name.
	ErrInvalidCommand = errors.New("invalid command")
)

// DuplicateCommandError is returned by Register when a command with the same
// name is already registered.
type DuplicateCommandError struct {
	Name string
}

func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf("duplicated command %s", e.Name)
}

// Is lets errors.Is match ErrDuplicateCommand.
func (e *DuplicateCommandError) Is(target error) bool {
	return target == ErrDuplicateCommand
}
