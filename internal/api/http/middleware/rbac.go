package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bookwise/bookwise_backend/pkg/authorize"
)

// RequirePermission checks if the authenticated user is allowed to act
// on the resource. Must run after AuthRequired.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		// The token's role claim is authoritative. Enforcing against the
		// role subject means policies keep working across restarts even
		// though per-user groupings live only in memory.
		subject := authorize.SubjectForRole(authorize.Role(claims.Role))
		if err := auth.MustEnforce(c.Context(), subject, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
