package auth

import (
	"cookbook-backend/domain"
	"cookbook-backend/pkg/moderation"

	"github.com/google/uuid"
)

// Identity is the resolved caller of a request: anonymous, a regular user or
// a moderator. The zero value is anonymous.
type Identity struct {
	UserID uuid.UUID
	Role   string
}

func Anonymous() Identity {
	return Identity{}
}

func Regular(userID uuid.UUID) Identity {
	return Identity{UserID: userID, Role: domain.RoleRegular}
}

func Moderator(userID uuid.UUID) Identity {
	return Identity{UserID: userID, Role: domain.RoleModerator}
}

func (i Identity) IsAnonymous() bool {
	return i.Role == ""
}

func (i Identity) IsModerator() bool {
	return i.Role == domain.RoleModerator
}

// Owns reports whether the identity is the authenticated owner of the
// resource.
func (i Identity) Owns(ownerID uuid.UUID) bool {
	return !i.IsAnonymous() && i.UserID == ownerID
}

// CanModify reports whether the identity may update or delete a resource
// owned by ownerID: the owner itself or any moderator.
func (i Identity) CanModify(ownerID uuid.UUID) bool {
	return i.Owns(ownerID) || i.IsModerator()
}

// CanSee reports whether the identity may read a resource in the given
// moderation status. Approved content is public; pending and rejected
// content is visible only to its owner and to moderators.
func (i Identity) CanSee(status string, ownerID uuid.UUID) bool {
	if status == moderation.StatusApproved {
		return true
	}
	return i.CanModify(ownerID)
}

// RequireAuthenticated rejects anonymous callers with ErrUnauthorized so
// handlers can tell a missing credential apart from a denied one.
func (i Identity) RequireAuthenticated() error {
	if i.IsAnonymous() {
		return domain.ErrUnauthorized
	}
	return nil
}

// RequireModify gates update/delete of an owned resource.
func (i Identity) RequireModify(ownerID uuid.UUID) error {
	if err := i.RequireAuthenticated(); err != nil {
		return err
	}
	if !i.CanModify(ownerID) {
		return domain.ErrForbidden
	}
	return nil
}

// RequireModerator gates approve/reject transitions.
func (i Identity) RequireModerator() error {
	if err := i.RequireAuthenticated(); err != nil {
		return err
	}
	if !i.IsModerator() {
		return domain.ErrForbidden
	}
	return nil
}
