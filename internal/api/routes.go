package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Get("/setup-status", handler.SetupStatus)

	hydration := api.Group("/hydration")
	hydration.Post("/calculate", handler.Calculate)

	api.Get("/profile", handler.GetProfile)
	api.Post("/profile", handler.SaveProfile)

	intake := api.Group("/intake")
	intake.Get("/today", handler.GetToday)
	intake.Post("", handler.LogIntake)
	intake.Delete("/:id", handler.DeleteIntake)

	reminders := api.Group("/reminders")
	reminders.Get("", handler.GetReminders)
	reminders.Post("", handler.SaveReminders)
	reminders.Post("/test", handler.TestNotification)
}
