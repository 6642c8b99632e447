package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) AdminOnly(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "token ausente")
	}
	if !claims.IsAdmin {
		return apiError(c, fiber.StatusForbidden, "acesso restrito a administradores")
	}
	return c.Next()
}
