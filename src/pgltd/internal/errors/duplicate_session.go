package errors

import "fmt"

// DuplicateSessionError indicates that a live session is already registered for a project.
type DuplicateSessionError struct {
	Root string
}

// Error is an implementation of the error interface.
func (d *DuplicateSessionError) Error() string {
	return fmt.Sprintf("a session is already registered for project %q", d.Root)
}
