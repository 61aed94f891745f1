package message

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is matched by every *InvalidStateError using errors.Is.
	ErrInvalidState = errors.New("invalid message state")
	// ErrUnknownAction is returned for click or hover actions
	// the builder cannot map to a component event.
	ErrUnknownAction = errors.New("unknown action")
	// ErrNoSender is returned by Builder.Send if the builder was created without a Sender.
	ErrNoSender = errors.New("message has no sender")
)

// InvalidStateError is recorded when an operation needs an open segment
// but Next or NextLine was not called before.
type InvalidStateError struct {
	// Op is the attempted operation, e.g. "set color".
	Op string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("can't %s on empty component: use the Next or NextLine method before", e.Op)
}

// Is reports whether target is ErrInvalidState.
func (e *InvalidStateError) Is(target error) bool { return target == ErrInvalidState }

var _ error = (*InvalidStateError)(nil)
