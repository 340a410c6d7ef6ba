package booking

import (
	"errors"

	"hotel-reservation/internal/pkg/errs"
)

var ErrInvalidStatus = errors.New("invalid booking status")

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ActiveStatuses is the conflict set: only these statuses hold a room.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled
}

// TransitionTo reports whether moving to target changes anything.
// Re-issuing the current confirmed or cancelled status is a no-op success;
// leaving cancelled, or going back to pending, is ErrInvalidTransition.
func (s Status) TransitionTo(target Status) (bool, error) {
	if !target.IsValid() {
		return false, ErrInvalidStatus
	}
	if target == StatusPending {
		return false, errs.ErrInvalidTransition
	}

	switch s {
	case StatusPending:
		return true, nil
	case StatusConfirmed:
		return target != StatusConfirmed, nil
	case StatusCancelled:
		if target == StatusCancelled {
			return false, nil
		}
		return false, errs.ErrInvalidTransition
	default:
		return false, ErrInvalidStatus
	}
}
