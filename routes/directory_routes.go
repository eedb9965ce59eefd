package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kentanne/CCSPals-sub001/handlers"
)

func DirectoryRoutes(app *fiber.App, h *handlers.DirectoryHandler, protected fiber.Handler) {
	api := app.Group("/api/v1")

	directory := api.Group("/directory", protected)
	directory.Get("/mentors", h.Mentors)
	directory.Get("/learners", h.Learners)
}
