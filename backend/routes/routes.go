package routes

import (
	"github.com/gofiber/fiber/v2"

	"vidyabandhan/backend/config"
	"vidyabandhan/backend/controllers"
	"vidyabandhan/backend/middleware"
	"vidyabandhan/backend/repo"
	"vidyabandhan/backend/services/tutor"
	"vidyabandhan/backend/speech"
	"vidyabandhan/backend/store"
)

func SetupRoutes(app *fiber.App, rs store.RecordStore, bs store.BlobStore, synth speech.Synthesizer, recog speech.Recognizer, cfg *config.Config) {
	users := repo.NewUsers(rs)
	sessions := repo.NewSessions(rs)
	courses := repo.NewCourses(rs, users, sessions)
	resources := repo.NewResources(bs, courses)
	chat := repo.NewChat(rs)
	attendance := repo.NewAttendance(rs)

	// Auth routes
	authController := controllers.NewAuthController(users, sessions, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/guest", authController.Guest)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	teacherMiddleware := middleware.TeacherMiddleware(users, cfg)

	app.Get("/api/session", authMiddleware, authController.Session)

	// Teacher routes
	coursesController := controllers.NewCoursesController(courses, resources, users, cfg)
	teacher := app.Group("/api/teacher", authMiddleware, teacherMiddleware)
	teacher.Get("/courses", coursesController.MyCourses)
	teacher.Post("/courses", coursesController.CreateCourse)
	teacher.Post("/courses/:id/resources", coursesController.UploadResource)

	// Student routes
	studentController := controllers.NewStudentController(users, courses, resources, sessions, cfg)
	courseGroup := app.Group("/api/courses", authMiddleware)
	courseGroup.Get("/joined", studentController.JoinedCourses)
	courseGroup.Get("/available", studentController.AvailableCourses)
	courseGroup.Post("/:id/join", studentController.JoinCourse)
	courseGroup.Post("/:id/open", studentController.OpenCourse)

	// Resource viewer routes
	resourcesController := controllers.NewResourcesController(resources, sessions, cfg)
	resourceGroup := app.Group("/api/resources", authMiddleware)
	resourceGroup.Get("/", studentController.SavedResources)
	resourceGroup.Get("/open", resourcesController.CurrentResource)
	resourceGroup.Post("/:id/open", resourcesController.OpenResource)

	// Classroom routes
	classroomController := controllers.NewClassroomController(users, resources, chat, attendance, sessions, synth, recog, cfg)
	classroom := app.Group("/api/classroom", authMiddleware)
	classroom.Get("/", classroomController.Show)
	classroom.Get("/resources/:id/play", classroomController.Play)
	classroom.Get("/chat", classroomController.ChatHistory)
	classroom.Post("/chat", classroomController.SendChat)
	classroom.Post("/attendance", classroomController.MarkPresent)
	classroom.Post("/speak", classroomController.Speak)
	classroom.Post("/captions/start", classroomController.StartCaptions)
	classroom.Post("/captions/stop", classroomController.StopCaptions)
	classroom.Get("/captions", classroomController.Captions)

	// AI tutor: no auth, the credential travels with the request
	tutorController := controllers.NewTutorController(tutor.NewClient(cfg))
	app.Post("/api/tutor/ask", tutorController.Ask)
}
