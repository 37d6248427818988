package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"vidyabandhan/backend/services/tutor"
	"vidyabandhan/backend/utils"
)

// TutorController forwards one question to the completion service and
// renders the answer verbatim. Like the original page it needs no login;
// the credential comes with the request.
type TutorController struct {
	Client *tutor.Client
}

func NewTutorController(client *tutor.Client) *TutorController {
	return &TutorController{Client: client}
}

func (tc *TutorController) Ask(c *fiber.Ctx) error {
	var input struct {
		APIKey   string `json:"api_key"`
		Question string `json:"question"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	answer, err := tc.Client.Ask(c.Context(), input.APIKey, input.Question)
	if err != nil {
		switch {
		case errors.Is(err, tutor.ErrMissingKey):
			return utils.BadRequest(c, "Paste your API key (demo only)")
		case errors.Is(err, tutor.ErrEmptyQuestion):
			return utils.BadRequest(c, "Write a question")
		default:
			// Failure text is shown in place of the answer, no retry.
			return utils.BadGateway(c, "Error: "+err.Error())
		}
	}

	return c.JSON(fiber.Map{"answer": answer})
}
