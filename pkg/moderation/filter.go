package moderation

import (
	"cookbook-backend/domain"
)

// ListFilter resolves the status filter of a listing against the caller's
// capability: the public always gets approved content; pending, rejected and
// unfiltered ("all") listings are for moderators. The returned status is the
// effective filter, empty meaning unfiltered.
func ListFilter(requested string, moderator bool) (string, error) {
	switch requested {
	case "", StatusApproved:
		return StatusApproved, nil
	case "all":
		if !moderator {
			return "", domain.ErrForbidden
		}
		return "", nil
	case StatusPending, StatusRejected:
		if !moderator {
			return "", domain.ErrForbidden
		}
		return requested, nil
	default:
		return "", domain.ValidationFailed("status")
	}
}

// ApplyEditBy is ApplyEdit with the actor's role folded in: moderator edits
// bypass the resubmission policy, everyone else is bound by it. A blocked
// resubmission surfaces as forbidden.
func (p Policy) ApplyEditBy(s State, substantive, moderator bool) (State, error) {
	if moderator {
		p.AllowOwnerResubmit = true
	}
	next, err := p.ApplyEdit(s, substantive)
	if err != nil {
		if err == ErrResubmitNotAllowed {
			return s, domain.ErrForbidden
		}
		return s, err
	}
	return next, nil
}
