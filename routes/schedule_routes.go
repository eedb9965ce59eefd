package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kentanne/CCSPals-sub001/handlers"
	"github.com/kentanne/CCSPals-sub001/middleware"
)

func ScheduleRoutes(app *fiber.App, h *handlers.ScheduleHandler, protected fiber.Handler) {
	api := app.Group("/api/v1")

	schedules := api.Group("/schedules", protected)
	schedules.Post("", h.Create)
	schedules.Get("", h.GetMine)
	schedules.Get("/all", middleware.AdminRequired(), h.GetAll)
	schedules.Get("/:scheduleId", h.GetOne)
	schedules.Patch("/:scheduleId", h.Update)
	schedules.Patch("/:scheduleId/status", h.UpdateStatus)
	schedules.Delete("/:scheduleId", h.Cancel)
}
