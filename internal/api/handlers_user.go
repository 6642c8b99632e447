package api

import (
	"errors"
	"strconv"

	"github.com/dfarina/communio/internal/services"
	"github.com/gofiber/fiber/v2"
)

type profileUpdateInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type adminFlagInput struct {
	IsAdmin bool `json:"is_admin"`
}

// UpdateProfile lets the authenticated user change their own name, email or
// password. Omitted fields keep their stored values.
func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	claims, ok := currentClaims(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "token ausente")
	}

	var input profileUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	err := handler.authService.UpdateProfile(claims.UserID, services.ProfileUpdate{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			return apiError(c, fiber.StatusNotFound, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "falha ao atualizar usuário")
		}
	}
	return okResponse(c)
}

// SetUserAdmin grants or revokes the admin flag. Only reachable behind
// AdminOnly: admin status is never taken from registration input.
func (handler *Handler) SetUserAdmin(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "id inválido")
	}

	var input adminFlagInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	if err := handler.authService.SetAdmin(uint(userID), input.IsAdmin); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return apiError(c, fiber.StatusNotFound, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "falha ao atualizar usuário")
	}
	return okResponse(c)
}
