package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Post("/register", handler.Register)
	api.Post("/login", handler.Login)

	api.Put("/user", handler.AuthRequired, handler.UpdateProfile)
	api.Put("/users/:id/admin", handler.AuthRequired, handler.AdminOnly, handler.SetUserAdmin)
	api.Get("/options", handler.AuthRequired, handler.Options)

	comunidades := api.Group("/comunidades", handler.AuthRequired)
	comunidades.Post("", handler.CreateComunidade)
	comunidades.Get("", handler.ListComunidades)
	comunidades.Get("/:id", handler.GetComunidade)
	comunidades.Put("/:id", handler.UpdateComunidade)
	comunidades.Delete("/:id", handler.DeleteComunidade)

	relatorios := api.Group("/relatorios", handler.AuthRequired, handler.AdminOnly)
	relatorios.Get("/:tipo", handler.Report)
}
