package api

import "github.com/gofiber/fiber/v2"

// Options returns the fixed etapa and carisma enumerations for form pickers.
func (handler *Handler) Options(c *fiber.Ctx) error {
	etapas, err := handler.classifications.ListEtapas()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "falha ao carregar opções")
	}
	carismas, err := handler.classifications.ListCarismas()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "falha ao carregar opções")
	}
	return c.JSON(fiber.Map{"etapas": etapas, "carismas": carismas})
}
