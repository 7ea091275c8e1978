package auth

import (
	"cookbook-backend/domain"
	"cookbook-backend/pkg/jwt"

	"github.com/google/uuid"
)

type (
	// Resolver turns the opaque credential presented with a request into an
	// Identity. Unknown or malformed credentials resolve to Anonymous, never
	// to an error; whether Anonymous is acceptable is the operation's call.
	Resolver interface {
		Resolve(credential string) Identity
	}

	jwtResolver struct {
		jwtService jwt.JWTService
	}
)

func NewResolver(jwtService jwt.JWTService) Resolver {
	return &jwtResolver{jwtService: jwtService}
}

func (r *jwtResolver) Resolve(credential string) Identity {
	if credential == "" {
		return Anonymous()
	}

	id, role, err := r.jwtService.GetUserIDByToken(credential)
	if err != nil {
		return Anonymous()
	}

	userID, err := uuid.Parse(id)
	if err != nil {
		return Anonymous()
	}

	switch role {
	case domain.RoleModerator:
		return Moderator(userID)
	case domain.RoleRegular:
		return Regular(userID)
	}
	return Anonymous()
}
