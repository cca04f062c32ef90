package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/bookwise/bookwise_backend/pkg/reqctx"
	"github.com/bookwise/bookwise_backend/pkg/token"
)

const LocalsClaims = "auth_claims"

// AuthRequired validates a Bearer JWT access token.
// On success, stores *token.Claims in c.Locals(LocalsClaims) and in the
// request context, so code below the handler layer can read identity
// through reqctx without depending on Fiber.
func AuthRequired(mgr *token.Manager) fiber.Handler {
	return func(c fiber.Ctx) error {
		h := c.Get("Authorization")
		if h == "" {
			return fiber.ErrUnauthorized
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.ErrUnauthorized
		}

		claims, err := mgr.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals(LocalsClaims, claims)
		c.SetContext(reqctx.WithClaims(c.Context(), claims))
		return c.Next()
	}
}

// ClaimsFromFiber retrieves the verified claims set by AuthRequired.
func ClaimsFromFiber(c fiber.Ctx) (*token.Claims, bool) {
	v := c.Locals(LocalsClaims)
	claims, ok := v.(*token.Claims)
	return claims, ok && claims != nil
}
