package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"vidyabandhan/backend/config"
	"vidyabandhan/backend/models"
	"vidyabandhan/backend/repo"
	"vidyabandhan/backend/utils"
)

// StudentController backs the student page: joined/available course lists,
// joining, and the saved-resource listing.
type StudentController struct {
	Users     *repo.Users
	Courses   *repo.Courses
	Resources *repo.Resources
	Sessions  *repo.Sessions
	Cfg       *config.Config
}

func NewStudentController(users *repo.Users, courses *repo.Courses, resources *repo.Resources, sessions *repo.Sessions, cfg *config.Config) *StudentController {
	return &StudentController{Users: users, Courses: courses, Resources: resources, Sessions: sessions, Cfg: cfg}
}

func (sc *StudentController) JoinedCourses(c *fiber.Ctx) error {
	user, err := sc.currentUser(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}
	courses, err := sc.Courses.Joined(user)
	if err != nil {
		return utils.InternalServerError(c, "Could not query courses")
	}
	return c.JSON(courses)
}

func (sc *StudentController) AvailableCourses(c *fiber.Ctx) error {
	user, err := sc.currentUser(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}
	courses, err := sc.Courses.Available(user)
	if err != nil {
		return utils.InternalServerError(c, "Could not query courses")
	}
	return c.JSON(courses)
}

func (sc *StudentController) JoinCourse(c *fiber.Ctx) error {
	user, err := sc.currentUser(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	updated, err := sc.Courses.Join(user.ID, c.Params("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return utils.NotFound(c, "Course not found")
		}
		return utils.InternalServerError(c, "Could not join course")
	}

	return c.JSON(fiber.Map{
		"message":   "Joined course",
		"courseIds": updated.CourseIDs,
	})
}

// OpenCourse writes the current-course pointer; the classroom page refuses
// to load until this hand-off happened.
func (sc *StudentController) OpenCourse(c *fiber.Ctx) error {
	course, err := sc.Courses.ByID(c.Params("id"))
	if err != nil {
		return utils.NotFound(c, "Course not found")
	}
	if err := sc.Sessions.SetCurrentCourse(course); err != nil {
		return utils.InternalServerError(c, "Could not store session")
	}
	return c.JSON(fiber.Map{
		"message":  "Course opened",
		"redirect": "/classroom",
	})
}

// SavedResources lists every locally stored resource, annotated with the
// owning course title when the course still exists.
func (sc *StudentController) SavedResources(c *fiber.Ctx) error {
	if _, err := sc.currentUser(c); err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	resources, err := sc.Resources.All(c.Context())
	if err != nil {
		return utils.InternalServerError(c, "Could not query resources")
	}
	courses, err := sc.Courses.All()
	if err != nil {
		return utils.InternalServerError(c, "Could not query courses")
	}

	titles := make(map[string]string, len(courses))
	for _, course := range courses {
		titles[course.ID] = course.Title
	}

	result := make([]fiber.Map, 0, len(resources))
	for _, res := range resources {
		courseTitle := titles[res.CourseID]
		if courseTitle == "" {
			courseTitle = "N/A"
		}
		result = append(result, fiber.Map{
			"id":          res.ID,
			"title":       res.Title,
			"type":        res.Type,
			"courseId":    res.CourseID,
			"courseTitle": courseTitle,
			"createdAt":   res.CreatedAt,
		})
	}
	return c.JSON(result)
}

func (sc *StudentController) currentUser(c *fiber.Ctx) (models.User, error) {
	return currentUser(c, sc.Users, sc.Cfg)
}
