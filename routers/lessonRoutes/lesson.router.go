package lessonRoutes

import (
	controllers "eduplay/controllers/lesson"
	validators "eduplay/validators/lesson"

	"github.com/gofiber/fiber/v2"
)

// SetupLessonRoutes sets up all lesson CRUD routes
func SetupLessonRoutes(app *fiber.App) {
	group := app.Group("/api/lessons")

	group.Post("/", validators.CreateLesson(), controllers.CreateLesson)
	group.Get("/", validators.LessonList(), controllers.ListLessons)
	group.Get("/:id", validators.LessonID(), controllers.GetLesson)
	group.Put("/:id", validators.LessonID(), validators.UpdateLesson(), controllers.UpdateLesson)
	group.Delete("/:id", validators.LessonID(), controllers.DeleteLesson)
}
