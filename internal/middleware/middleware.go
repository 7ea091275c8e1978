package middleware

import (
	"strings"

	"cookbook-backend/domain"
	"cookbook-backend/internal/api/presenters"
	"cookbook-backend/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const identityKey = "identity"

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		IdentityMiddleware(resolver auth.Resolver) fiber.Handler
		AuthMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE",
	})
}

// IdentityMiddleware resolves the bearer token into an identity for every
// request. It never rejects: a missing or bad credential simply resolves to
// anonymous, and each operation decides whether anonymous is enough.
func (m *middleware) IdentityMiddleware(resolver auth.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		credential := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
		c.Locals(identityKey, resolver.Resolve(credential))
		return c.Next()
	}
}

// AuthMiddleware rejects anonymous callers up front on routes that make no
// sense without an account.
func (m *middleware) AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if IdentityFromCtx(c).IsAnonymous() {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedProcessRequest, domain.ErrUnauthorized)
		}
		return c.Next()
	}
}

// IdentityFromCtx returns the identity stored by IdentityMiddleware, or
// anonymous when the middleware did not run.
func IdentityFromCtx(c *fiber.Ctx) auth.Identity {
	if id, ok := c.Locals(identityKey).(auth.Identity); ok {
		return id
	}
	return auth.Anonymous()
}
