package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/kentanne/CCSPals-sub001/services"
)

var validate = validator.New()

func statusForKind(kind services.Kind) int {
	switch kind {
	case services.KindValidationFailed, services.KindInvalidState:
		return fiber.StatusBadRequest
	case services.KindAuthRequired, services.KindInvalidToken:
		return fiber.StatusUnauthorized
	case services.KindForbidden:
		return fiber.StatusForbidden
	case services.KindNotFound:
		return fiber.StatusNotFound
	case services.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError maps a service error onto the HTTP surface. Unexpected
// failures are logged in full but surfaced with a generic message.
func respondError(c *fiber.Ctx, err error) error {
	kind := services.KindOf(err)
	message := err.Error()
	if kind == services.KindUnexpected {
		log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
		message = "Something went wrong, please try again later"
	}
	return c.Status(statusForKind(kind)).JSON(fiber.Map{"error": message})
}
