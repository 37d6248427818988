package controllers

import (
	"github.com/gofiber/fiber/v2"

	"vidyabandhan/backend/config"
	"vidyabandhan/backend/models"
	"vidyabandhan/backend/repo"
	"vidyabandhan/backend/utils"
)

// currentUser resolves the authenticated user from the request token.
func currentUser(c *fiber.Ctx, users *repo.Users, cfg *config.Config) (models.User, error) {
	userID, err := utils.ExtractUserIDFromToken(c, cfg)
	if err != nil {
		return models.User{}, err
	}
	return users.ByID(userID)
}
