package api

import "github.com/gofiber/fiber/v2"

// Report serves the admin dashboard aggregations. An unrecognized tipo is not
// an error: it yields an empty list.
func (handler *Handler) Report(c *fiber.Ctx) error {
	switch c.Params("tipo") {
	case "diocese":
		totals, err := handler.reports.CountByDiocese()
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "falha ao gerar relatório")
		}
		return c.JSON(totals)
	case "etapa":
		totals, err := handler.reports.CountByEtapa()
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "falha ao gerar relatório")
		}
		return c.JSON(totals)
	case "carisma":
		totals, err := handler.reportService.CarismaTotals()
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "falha ao gerar relatório")
		}
		return c.JSON(totals)
	case "levantados":
		entries, err := handler.reportService.VocationEntries()
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "falha ao gerar relatório")
		}
		return c.JSON(entries)
	default:
		return c.JSON([]any{})
	}
}
