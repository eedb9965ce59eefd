package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kentanne/CCSPals-sub001/services"
)

type DirectoryHandler struct {
	svc *services.DirectoryService
}

func NewDirectoryHandler(svc *services.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{svc: svc}
}

func (h *DirectoryHandler) Mentors(c *fiber.Ctx) error {
	payload, err := h.svc.Mentors()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}

func (h *DirectoryHandler) Learners(c *fiber.Ctx) error {
	payload, err := h.svc.Learners()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}
