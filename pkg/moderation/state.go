package moderation

import (
	"errors"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var (
	ErrUnknownStatus      = errors.New("unknown moderation status")
	ErrResubmitNotAllowed = errors.New("rejected entity cannot be resubmitted by its owner")
)

// State is the moderation snapshot carried by every moderatable entity.
// ApproverID is set exactly when Status is approved or rejected, i.e. after
// a moderator decision.
type State struct {
	Status     string
	ApproverID *uuid.UUID
}

// Submit is the state every moderatable entity is created in.
func Submit() State {
	return State{Status: StatusPending}
}

// Approve records a fresh moderator decision. Approving an already approved
// entity is allowed and restamps the approver, so a retried approve never
// fails.
func Approve(moderator uuid.UUID) State {
	return State{Status: StatusApproved, ApproverID: &moderator}
}

// Reject records a fresh moderator decision, also valid on an approved
// entity (a later reversal).
func Reject(moderator uuid.UUID) State {
	return State{Status: StatusRejected, ApproverID: &moderator}
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Policy controls owner resubmission of rejected entities. When
// AllowOwnerResubmit is off, only a moderator decision can move a rejected
// entity out of its state.
type Policy struct {
	AllowOwnerResubmit bool
}

var DefaultPolicy = Policy{AllowOwnerResubmit: true}

// ApplyEdit returns the state after a content edit. A substantive edit of an
// approved entity voids the approval: back to pending, approver cleared,
// because an approval is a claim about one content version. Editing while
// pending keeps pending. A substantive edit of a rejected entity is a
// resubmission, gated by the policy.
func (p Policy) ApplyEdit(s State, substantive bool) (State, error) {
	if !substantive {
		return s, nil
	}
	switch s.Status {
	case StatusPending:
		return s, nil
	case StatusApproved:
		return Submit(), nil
	case StatusRejected:
		if !p.AllowOwnerResubmit {
			return s, ErrResubmitNotAllowed
		}
		return Submit(), nil
	default:
		return s, ErrUnknownStatus
	}
}
