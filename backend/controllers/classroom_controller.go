package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"vidyabandhan/backend/config"
	"vidyabandhan/backend/models"
	"vidyabandhan/backend/repo"
	"vidyabandhan/backend/speech"
	"vidyabandhan/backend/utils"
)

// ClassroomController backs the classroom page: resources and playback,
// per-course chat, attendance marking and the two speech toggles. Every
// handler requires the current-course hand-off record.
type ClassroomController struct {
	Users       *repo.Users
	Resources   *repo.Resources
	Chat        *repo.Chat
	Attendance  *repo.Attendance
	Sessions    *repo.Sessions
	Synthesizer speech.Synthesizer
	Recognizer  speech.Recognizer
	Cfg         *config.Config
}

func NewClassroomController(users *repo.Users, resources *repo.Resources, chat *repo.Chat, attendance *repo.Attendance, sessions *repo.Sessions, synth speech.Synthesizer, recog speech.Recognizer, cfg *config.Config) *ClassroomController {
	return &ClassroomController{
		Users:       users,
		Resources:   resources,
		Chat:        chat,
		Attendance:  attendance,
		Sessions:    sessions,
		Synthesizer: synth,
		Recognizer:  recog,
		Cfg:         cfg,
	}
}

// Show renders the classroom header: the course, its teacher's display name
// and the course resources.
func (kc *ClassroomController) Show(c *fiber.Ctx) error {
	course, err := kc.course(c)
	if err != nil {
		return kc.fail(c, err)
	}

	teacherName := "Teacher"
	if teacher, err := kc.Users.ByID(course.TeacherID); err == nil {
		teacherName = teacher.Name
	}

	resources, err := kc.Resources.ByCourse(c.Context(), course.ID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query resources")
	}

	return c.JSON(fiber.Map{
		"course":    course,
		"teacher":   teacherName,
		"resources": resources,
	})
}

// Play returns the playback descriptor for one course resource: which
// player branch to use and the self-contained data to feed it.
func (kc *ClassroomController) Play(c *fiber.Ctx) error {
	course, err := kc.course(c)
	if err != nil {
		return kc.fail(c, err)
	}

	res, err := kc.Resources.ByID(c.Context(), c.Params("id"))
	if err != nil || res.CourseID != course.ID {
		return utils.NotFound(c, "Resource not found")
	}

	return c.JSON(fiber.Map{
		"resource": res,
		"mode":     repo.PlaybackMode(res.Type),
	})
}

func (kc *ClassroomController) ChatHistory(c *fiber.Ctx) error {
	course, err := kc.course(c)
	if err != nil {
		return kc.fail(c, err)
	}
	msgs, err := kc.Chat.Messages(course.ID)
	if err != nil {
		return utils.InternalServerError(c, "Could not query chat")
	}
	return c.JSON(msgs)
}

func (kc *ClassroomController) SendChat(c *fiber.Ctx) error {
	user, course, err := kc.session(c)
	if err != nil {
		return kc.fail(c, err)
	}

	var input struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	msg, err := kc.Chat.Append(course.ID, user.Name, input.Text)
	if err != nil {
		if errors.Is(err, repo.ErrEmptyField) {
			return utils.BadRequest(c, "Message is empty")
		}
		return utils.InternalServerError(c, "Could not store message")
	}
	return c.JSON(msg)
}

func (kc *ClassroomController) MarkPresent(c *fiber.Ctx) error {
	user, course, err := kc.session(c)
	if err != nil {
		return kc.fail(c, err)
	}

	record, err := kc.Attendance.Mark(course.ID, user)
	if err != nil {
		return utils.InternalServerError(c, "Could not store attendance")
	}
	return c.JSON(fiber.Map{
		"message": "Marked present",
		"record":  record,
	})
}

// Speak reads the course description aloud, if the device can.
func (kc *ClassroomController) Speak(c *fiber.Ctx) error {
	course, err := kc.course(c)
	if err != nil {
		return kc.fail(c, err)
	}
	if !kc.Synthesizer.Available() {
		return utils.NotImplemented(c, "TTS not supported")
	}

	text := course.Description
	if text == "" {
		text = "No description available"
	}
	if err := kc.Synthesizer.Speak(text); err != nil {
		return utils.NotImplemented(c, "TTS not supported")
	}
	return c.JSON(fiber.Map{"message": "Speaking"})
}

func (kc *ClassroomController) StartCaptions(c *fiber.Ctx) error {
	if _, err := kc.course(c); err != nil {
		return kc.fail(c, err)
	}
	if !kc.Recognizer.Available() {
		return utils.NotImplemented(c, "Speech recognition not supported in this environment")
	}
	if err := kc.Recognizer.Start(); err != nil {
		return utils.NotImplemented(c, "Speech recognition not supported in this environment")
	}
	return c.JSON(fiber.Map{"message": "Captions started"})
}

func (kc *ClassroomController) StopCaptions(c *fiber.Ctx) error {
	if _, err := kc.course(c); err != nil {
		return kc.fail(c, err)
	}
	kc.Recognizer.Stop()
	return c.JSON(fiber.Map{"caption": ""})
}

func (kc *ClassroomController) Captions(c *fiber.Ctx) error {
	if _, err := kc.course(c); err != nil {
		return kc.fail(c, err)
	}
	return c.JSON(fiber.Map{"caption": kc.Recognizer.Transcript()})
}

// course enforces the page preconditions: an authenticated user and the
// current-course hand-off record.
func (kc *ClassroomController) course(c *fiber.Ctx) (models.Course, error) {
	if _, err := utils.ExtractUserIDFromToken(c, kc.Cfg); err != nil {
		return models.Course{}, repo.ErrNotLoggedIn
	}
	return kc.Sessions.CurrentCourse()
}

func (kc *ClassroomController) session(c *fiber.Ctx) (models.User, models.Course, error) {
	course, err := kc.course(c)
	if err != nil {
		return models.User{}, models.Course{}, err
	}
	user, err := currentUser(c, kc.Users, kc.Cfg)
	if err != nil {
		return models.User{}, models.Course{}, repo.ErrNotLoggedIn
	}
	return user, course, nil
}

// fail maps precondition errors to their responses. Missing preconditions
// are fatal for the page and carry a redirect to a safe view.
func (kc *ClassroomController) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repo.ErrNotLoggedIn):
		return utils.Unauthorized(c, "Not logged in")
	case errors.Is(err, repo.ErrNoCourseSelected):
		return utils.PreconditionFailed(c, "No course selected", "/student")
	default:
		return utils.InternalServerError(c, "Could not read session")
	}
}
