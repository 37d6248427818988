package middleware

import (
	"github.com/gofiber/fiber/v2"

	"vidyabandhan/backend/config"
	"vidyabandhan/backend/repo"
	"vidyabandhan/backend/utils"
)

func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":    "Unauthorized",
				"redirect": "/",
			})
		}
		c.Locals("userID", userID)
		return c.Next()
	}
}

// TeacherMiddleware guards teacher-only routes by checking the stored role
// of the authenticated user.
func TeacherMiddleware(users *repo.Users, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":    "Unauthorized",
				"redirect": "/",
			})
		}

		user, err := users.ByID(userID)
		if err != nil || user.Role != "teacher" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden - Teacher access required",
			})
		}

		return c.Next()
	}
}
