package game

import "errors"

var (
	ErrBodyExists = errors.New("body already exists")
	ErrNoExit     = errors.New("no exit")
)

// A LockedError reports an exit that refused the actor. Message is the
// lock's user-facing text.
type LockedError struct {
	Message string
}

func (e *LockedError) Error() string {
	return e.Message
}
