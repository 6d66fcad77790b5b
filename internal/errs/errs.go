package errs

import (
	"errors"
	"fmt"
)

// Domain sentinel errors, mapped to HTTP codes in handlers.
var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidTransition  = errors.New("invalid view-state transition")
	ErrNoActiveSession    = errors.New("no active session")
	ErrUnknownTheme       = errors.New("unknown group theme")
	ErrUnknownEnvironment = errors.New("unknown vr environment")
)

// ValidationError reports a malformed session descriptor. The registry is
// never touched when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid session: %s %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
