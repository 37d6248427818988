package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"vidyabandhan/backend/config"
	"vidyabandhan/backend/repo"
	"vidyabandhan/backend/utils"
)

// ResourcesController backs the standalone resource viewer page. A resource
// is handed to the viewer through the open-resource pointer; the viewer
// treats a missing pointer as a fatal precondition.
type ResourcesController struct {
	Resources *repo.Resources
	Sessions  *repo.Sessions
	Cfg       *config.Config
}

func NewResourcesController(resources *repo.Resources, sessions *repo.Sessions, cfg *config.Config) *ResourcesController {
	return &ResourcesController{Resources: resources, Sessions: sessions, Cfg: cfg}
}

func (rc *ResourcesController) OpenResource(c *fiber.Ctx) error {
	res, err := rc.Resources.ByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return utils.NotFound(c, "Resource not found")
		}
		return utils.InternalServerError(c, "Could not query resources")
	}
	if err := rc.Sessions.SetOpenResource(res); err != nil {
		return utils.InternalServerError(c, "Could not store session")
	}
	return c.JSON(fiber.Map{
		"message":  "Resource opened",
		"redirect": "/resource-view",
	})
}

func (rc *ResourcesController) CurrentResource(c *fiber.Ctx) error {
	res, err := rc.Sessions.OpenResource()
	if err != nil {
		if errors.Is(err, repo.ErrNoOpenResource) {
			return utils.PreconditionFailed(c, "No resource selected", "/student")
		}
		return utils.InternalServerError(c, "Could not read session")
	}
	return c.JSON(fiber.Map{
		"resource": res,
		"mode":     repo.PlaybackMode(res.Type),
	})
}
