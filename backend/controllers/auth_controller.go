package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"vidyabandhan/backend/config"
	"vidyabandhan/backend/models"
	"vidyabandhan/backend/repo"
	"vidyabandhan/backend/utils"
)

type AuthController struct {
	Users    *repo.Users
	Sessions *repo.Sessions
	Cfg      *config.Config
}

func NewAuthController(users *repo.Users, sessions *repo.Sessions, cfg *config.Config) *AuthController {
	return &AuthController{Users: users, Sessions: sessions, Cfg: cfg}
}

// Login godoc
// @Summary User login
// @Description Authenticate by email and password, establish the session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Users.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "Invalid credentials (demo: student@test.com / teacher@test.com)")
		}
		return utils.InternalServerError(c, "Could not query users")
	}

	return ac.establish(c, user)
}

// Guest logs in as the first stored student, like the original guest button.
func (ac *AuthController) Guest(c *fiber.Ctx) error {
	user, err := ac.Users.FirstStudent()
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return utils.NotFound(c, "No student account available")
		}
		return utils.InternalServerError(c, "Could not query users")
	}
	return ac.establish(c, user)
}

// Register godoc
// @Summary Sign up
// @Description Creates a new account and establishes the session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Signup data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.Users.SignUp(input.Name, input.Email, input.Password, input.Role)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrEmptyField):
			return utils.BadRequest(c, "Fill all fields")
		case errors.Is(err, repo.ErrEmailInUse):
			return utils.Conflict(c, "Email in use")
		default:
			return utils.InternalServerError(c, "Could not create user")
		}
	}

	return ac.establish(c, user)
}

// Session returns the current session context: the logged-in user and, if
// one was opened, the current course.
func (ac *AuthController) Session(c *fiber.Ctx) error {
	user, err := ac.Sessions.CurrentUser()
	if err != nil {
		if errors.Is(err, repo.ErrNotLoggedIn) {
			return utils.PreconditionFailed(c, "Not logged in", "/")
		}
		return utils.InternalServerError(c, "Could not read session")
	}

	result := fiber.Map{"user": publicUser(user)}
	if course, err := ac.Sessions.CurrentCourse(); err == nil {
		result["course"] = course
	}
	return utils.Success(c, fiber.StatusOK, result)
}

// establish writes the current-user pointer and hands back a token plus the
// role-dependent landing page.
func (ac *AuthController) establish(c *fiber.Ctx, user models.User) error {
	if err := ac.Sessions.SetCurrentUser(user); err != nil {
		return utils.InternalServerError(c, "Could not store session")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	redirect := "/student"
	if user.Role == models.RoleTeacher {
		redirect = "/teacher"
	}

	return c.JSON(fiber.Map{
		"token":    token,
		"redirect": redirect,
		"user":     publicUser(user),
	})
}

// publicUser strips the password hash from API responses.
func publicUser(u models.User) fiber.Map {
	return fiber.Map{
		"id":        u.ID,
		"name":      u.Name,
		"email":     u.Email,
		"role":      u.Role,
		"courseIds": u.CourseIDs,
	}
}
