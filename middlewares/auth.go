package middlewares

import (
	"strings"

	"bolao/auth"
	"bolao/config"
	"bolao/helpers"
	"bolao/models"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth verifies the Bearer token and stores the caller's claims in the
// request locals. Every mutating route runs behind it.
func RequireAuth(c *fiber.Ctx) error {
	header := strings.TrimSpace(c.Get("Authorization"))
	if header == "" {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "MISSING_TOKEN")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_TOKEN_FORMAT")
	}

	claims, err := auth.ParseToken(config.Get().JWTSecret, parts[1])
	if err != nil {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_TOKEN")
	}

	c.Locals("claims", claims)
	return c.Next()
}

// RequireAdmin is the single role predicate in front of every admin-gated
// service: settlement, annulment, deposit/withdrawal processing, pool admin.
func RequireAdmin(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*auth.Claims)
	if !ok {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "MISSING_TOKEN")
	}
	if claims.Role != models.RoleAdmin {
		return helpers.JSONError(c, fiber.StatusForbidden, "ADMIN_ROLE_REQUIRED")
	}
	return c.Next()
}

// CallerClaims extracts the verified claims a RequireAuth middleware stored.
func CallerClaims(c *fiber.Ctx) (*auth.Claims, bool) {
	claims, ok := c.Locals("claims").(*auth.Claims)
	return claims, ok
}
