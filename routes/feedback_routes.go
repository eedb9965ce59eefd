package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kentanne/CCSPals-sub001/handlers"
	"github.com/kentanne/CCSPals-sub001/middleware"
)

func FeedbackRoutes(app *fiber.App, h *handlers.FeedbackHandler, protected fiber.Handler) {
	api := app.Group("/api/v1")

	api.Post("/schedules/:scheduleId/feedback", protected, middleware.LearnerRequired(), h.Submit)
	api.Get("/feedback", protected, h.List)
}
