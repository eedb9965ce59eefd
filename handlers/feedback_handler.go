package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kentanne/CCSPals-sub001/middleware"
	"github.com/kentanne/CCSPals-sub001/services"
	"github.com/kentanne/CCSPals-sub001/store"
)

type FeedbackHandler struct {
	svc *services.FeedbackService
}

func NewFeedbackHandler(svc *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{svc: svc}
}

// Rating stays a float here so a fractional value reaches the service and
// fails its whole-number check instead of being truncated by the decoder.
type SubmitFeedbackRequest struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	principal, err := middleware.PrincipalFromContext(c)
	if err != nil {
		return err
	}

	var req SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	feedback, err := h.svc.Submit(principal, services.SubmitFeedbackInput{
		ScheduleID: c.Params("scheduleId"),
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(feedback)
}

func (h *FeedbackHandler) List(c *fiber.Ctx) error {
	filter := store.FeedbackFilter{Subject: c.Query("subject")}

	if raw := c.Query("mentorId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid mentorId filter"})
		}
		filter.MentorID = id
	}
	if raw := c.Query("rating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil || rating < 1 || rating > 5 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid rating filter"})
		}
		filter.Rating = rating
	}

	feedbacks, err := h.svc.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(feedbacks)
}
