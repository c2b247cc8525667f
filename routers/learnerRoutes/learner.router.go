package learnerRoutes

import (
	controllers "eduplay/controllers/learner"
	"eduplay/middleware"
	validators "eduplay/validators/learner"

	"github.com/gofiber/fiber/v2"
)

// SetupLearnerRoutes sets up authenticated learner routes
func SetupLearnerRoutes(app *fiber.App) {
	group := app.Group("/learner")

	group.Post("/push-token", middleware.JWTMiddleware, validators.RegisterPushToken(), controllers.RegisterPushToken)
}
