package reservation

import "strings"

// Status is the reservation lifecycle state. Values outside the known set
// are rejected at the boundary by ParseStatus.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusCanceled Status = "canceled"
)

// ParseStatus maps a wire string to a Status, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	case StatusCanceled:
		return StatusCanceled, nil
	default:
		return "", ErrInvalidStatus
	}
}

// IsTerminal reports whether no transition out of s is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCanceled
}

// IsActive reports whether the reservation holds its time slot against
// other requesters.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusApproved
}

// CanTransitionTo reports whether the transition s -> next is allowed by
// the lifecycle. Who may trigger it is enforced by the service layer.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected || next == StatusCanceled
	case StatusApproved:
		return next == StatusCanceled
	default:
		return false
	}
}

// activeStatuses is the set used in conflict and availability queries.
var activeStatuses = []string{string(StatusPending), string(StatusApproved)}
