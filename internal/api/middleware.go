package api

import "github.com/gofiber/fiber/v2"

const contextClaimsKey = "session_claims"

func currentClaims(c *fiber.Ctx) (*authClaims, bool) {
	claims, ok := c.Locals(contextClaimsKey).(*authClaims)
	return claims, ok
}
