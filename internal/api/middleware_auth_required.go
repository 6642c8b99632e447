package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired authenticates the request from its Authorization header and
// stores the decoded claims for downstream handlers. There is no server-side
// session state: a token stays valid until its embedded expiry.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	rawHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if rawHeader == "" {
		return apiError(c, fiber.StatusUnauthorized, "token ausente")
	}

	scheme, rawToken, found := strings.Cut(rawHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(rawToken) == "" {
		return apiError(c, fiber.StatusUnauthorized, "token inválido")
	}

	claims, err := handler.parseToken(strings.TrimSpace(rawToken))
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "token inválido")
	}

	c.Locals(contextClaimsKey, claims)
	return c.Next()
}
