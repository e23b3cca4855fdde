package appointment

import "errors"

var (
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrInvalidDuration     = errors.New("service duration must be positive")
	ErrInvalidWorkingHours = errors.New("invalid working hours")
	ErrNotScheduled        = errors.New("appointment is not scheduled")
	ErrNotOwner            = errors.New("appointment belongs to another client")
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed from s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
