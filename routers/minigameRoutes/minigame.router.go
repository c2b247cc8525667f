package minigameRoutes

import (
	controllers "eduplay/controllers/minigame"
	validators "eduplay/validators/minigame"

	"github.com/gofiber/fiber/v2"
)

// SetupMinigameRoutes sets up all minigame CRUD routes
func SetupMinigameRoutes(app *fiber.App) {
	group := app.Group("/api/minigames")

	group.Post("/", validators.CreateMinigame(), controllers.CreateMinigame)
	group.Get("/", controllers.ListMinigames)
	group.Get("/:id", validators.MinigameID(), controllers.GetMinigame)
	group.Put("/:id", validators.MinigameID(), validators.UpdateMinigame(), controllers.UpdateMinigame)
	group.Delete("/:id", validators.MinigameID(), controllers.DeleteMinigame)
}
