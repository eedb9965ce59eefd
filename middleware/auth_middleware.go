package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/kentanne/CCSPals-sub001/services"
)

// Cookie names accepted for the bearer credential, checked before the
// Authorization header.
var tokenCookies = []string{"token", "access_token"}

// Protected verifies the bearer credential against the injected secret and
// stores the parsed token in the context for PrincipalFromContext.
func Protected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := extractToken(c)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"error": "Authentication required"})
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("user", token)
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	for _, name := range tokenCookies {
		if cookie := c.Cookies(name); cookie != "" {
			return cookie
		}
	}

	auth := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// PrincipalFromContext extracts the verified user id and role placed in the
// context by Protected.
func PrincipalFromContext(c *fiber.Ctx) (services.Principal, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return services.Principal{}, fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return services.Principal{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return services.Principal{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	role, _ := claims["role"].(string)
	if role == "" {
		role = "user"
	}

	return services.Principal{UserID: userID, Role: role}, nil
}

func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := PrincipalFromContext(c)
		if err != nil {
			return err
		}
		if principal.Role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Admin access required",
			})
		}
		return c.Next()
	}
}

func LearnerRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := PrincipalFromContext(c)
		if err != nil {
			return err
		}
		if principal.Role != "learner" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Learner access required",
			})
		}
		return c.Next()
	}
}
