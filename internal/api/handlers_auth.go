package api

import (
	"errors"

	"github.com/dfarina/communio/internal/services"
	"github.com/gofiber/fiber/v2"
)

type registerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	user, err := handler.authService.Register(input.Name, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "falha ao criar usuário")
		}
	}

	token, err := handler.buildToken(&user, authTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "falha ao criar sessão")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token, "user": user})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "corpo da requisição inválido")
	}

	user, err := handler.authService.Login(input.Email, input.Password)
	if err != nil {
		// Same message for both failures so callers cannot probe which
		// of the two checks rejected them.
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return apiError(c, fiber.StatusNotFound, services.ErrInvalidCredentials.Error())
		case errors.Is(err, services.ErrInvalidCredentials):
			return apiError(c, fiber.StatusUnauthorized, services.ErrInvalidCredentials.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "falha ao autenticar")
		}
	}

	token, err := handler.buildToken(&user, authTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "falha ao criar sessão")
	}

	return c.JSON(fiber.Map{"token": token, "user": user})
}
