package errors

import (
	stderrors "errors"
	"fmt"
)

// Is reports whether any error in err's chain matches target.
// Re-exported so callers don't need a second errors import.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Sentinel errors of the coordination layer. Handlers match on these with
// errors.Is and translate them into the outbound error events; none of them
// is ever allowed to terminate the process.
var (
	// Validation
	ErrEmptyName    = fmt.Errorf("name must not be empty")
	ErrEmptyMessage = fmt.Errorf("message text must not be empty")

	// Conflicts
	ErrNameTaken     = fmt.Errorf("username already held by an active session")
	ErrDuplicateRoom = fmt.Errorf("room already exists")

	// Not found
	ErrUnknownRoom       = fmt.Errorf("room does not exist")
	ErrRecipientNotFound = fmt.Errorf("recipient is not present in the room")
	ErrNoUsername        = fmt.Errorf("session has no username")
	ErrNoSession         = fmt.Errorf("no session for connection")

	// Guards
	ErrDefaultRoom = fmt.Errorf("the default room cannot be deleted")
)
