package controllers

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"vidyabandhan/backend/config"
	"vidyabandhan/backend/repo"
	"vidyabandhan/backend/utils"
)

// CoursesController backs the teacher page: listing own courses, creating a
// course and uploading resources into one.
type CoursesController struct {
	Courses   *repo.Courses
	Resources *repo.Resources
	Users     *repo.Users
	Cfg       *config.Config
}

func NewCoursesController(courses *repo.Courses, resources *repo.Resources, users *repo.Users, cfg *config.Config) *CoursesController {
	return &CoursesController{Courses: courses, Resources: resources, Users: users, Cfg: cfg}
}

func (cc *CoursesController) MyCourses(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courses, err := cc.Courses.ByTeacher(userID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query courses")
	}
	return c.JSON(courses)
}

// CreateCourse godoc
// @Summary Create a course
// @Description Creates a course owned by the authenticated teacher
// @Tags courses
// @Accept json
// @Produce json
// @Param input body map[string]interface{} true "Course data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /teacher/courses [post]
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	teacher, err := cc.Users.ByID(userID)
	if err != nil {
		return utils.NotFound(c, "User not found")
	}

	course, err := cc.Courses.Create(teacher, input.Title, input.Description)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrEmptyField):
			return utils.BadRequest(c, "Enter title")
		case errors.Is(err, repo.ErrNotTeacher):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Only teachers can create courses",
			})
		default:
			return utils.InternalServerError(c, "Could not create course")
		}
	}

	return c.JSON(fiber.Map{
		"message": "Course created",
		"course":  course,
	})
}

// UploadResource stores a multipart file as a course resource. The payload
// goes to the blob store first; the course record is only updated after that
// write succeeds.
func (cc *CoursesController) UploadResource(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	course, err := cc.Courses.ByID(c.Params("id"))
	if err != nil {
		return utils.NotFound(c, "Course not found")
	}
	if course.TeacherID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to upload to this course",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequest(c, "No file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.InternalServerError(c, "Could not open uploaded file")
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		return utils.InternalServerError(c, "Could not read uploaded file")
	}

	res, err := cc.Resources.Upload(c.Context(), course, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), payload)
	if err != nil {
		return utils.InternalServerError(c, "Could not save resource")
	}

	return c.JSON(fiber.Map{
		"message":  "Resource saved locally for course: " + course.Title,
		"resource": res,
	})
}
