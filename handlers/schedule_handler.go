package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kentanne/CCSPals-sub001/middleware"
	"github.com/kentanne/CCSPals-sub001/services"
	"github.com/kentanne/CCSPals-sub001/store"
)

type ScheduleHandler struct {
	svc *services.ScheduleService
}

func NewScheduleHandler(svc *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

type CreateScheduleRequest struct {
	LearnerID   string `json:"learnerId" validate:"required,uuid"`
	MentorID    string `json:"mentorId" validate:"required,uuid"`
	Subject     string `json:"subject" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Duration    string `json:"duration" validate:"required"`
	Modality    string `json:"modality" validate:"required,oneof=online in-person hybrid"`
	MeetingLink string `json:"meetingLink,omitempty"`
	Location    string `json:"location,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateScheduleRequest is the partial-update allow-list. Any other field in
// the payload is dropped by the decoder without error.
type UpdateScheduleRequest struct {
	Status      *string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	MeetingLink *string `json:"meetingLink"`
	Location    *string `json:"location"`
	Notes       *string `json:"notes"`
}

type TransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFromContext(c)
	if err != nil {
		return err
	}

	var req CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	learnerID, _ := uuid.Parse(req.LearnerID)
	mentorID, _ := uuid.Parse(req.MentorID)

	schedule, err := h.svc.Create(principal, services.CreateScheduleInput{
		LearnerID:   learnerID,
		MentorID:    mentorID,
		Subject:     req.Subject,
		Date:        req.Date,
		Time:        req.Time,
		Duration:    req.Duration,
		Modality:    req.Modality,
		MeetingLink: req.MeetingLink,
		Location:    req.Location,
		Notes:       req.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(schedule)
}

func (h *ScheduleHandler) GetOne(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFromContext(c)
	if err != nil {
		return err
	}

	schedule, err := h.svc.Read(principal, c.Params("scheduleId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(schedule)
}

func (h *ScheduleHandler) GetMine(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFromContext(c)
	if err != nil {
		return err
	}

	schedules, err := h.svc.ListOwn(principal, c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(schedules)
}

func (h *ScheduleHandler) GetAll(c *fiber.Ctx) error {
	filter := store.ScheduleFilter{Status: c.Query("status")}

	if raw := c.Query("learnerId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid learnerId filter"})
		}
		filter.LearnerID = id
	}
	if raw := c.Query("mentorId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid mentorId filter"})
		}
		filter.MentorID = id
	}

	schedules, err := h.svc.ListAsAdmin(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(schedules)
}

func (h *ScheduleHandler) Update(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFromContext(c)
	if err != nil {
		return err
	}

	var req UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	schedule, err := h.svc.Update(principal, c.Params("scheduleId"), store.ScheduleUpdate{
		Status:      req.Status,
		Date:        req.Date,
		Time:        req.Time,
		MeetingLink: req.MeetingLink,
		Location:    req.Location,
		Notes:       req.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(schedule)
}

func (h *ScheduleHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFromContext(c)
	if err != nil {
		return err
	}

	var req TransitionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	schedule, err := h.svc.Transition(principal, c.Params("scheduleId"), req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(schedule)
}

func (h *ScheduleHandler) Cancel(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFromContext(c)
	if err != nil {
		return err
	}

	schedule, err := h.svc.Cancel(principal, c.Params("scheduleId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":  "Schedule cancelled successfully",
		"schedule": schedule,
	})
}
