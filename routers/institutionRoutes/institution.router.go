package institutionRoutes

import (
	controllers "eduplay/controllers/institution"
	validators "eduplay/validators/institution"

	"github.com/gofiber/fiber/v2"
)

// SetupInstitutionRoutes sets up all institution CRUD routes
func SetupInstitutionRoutes(app *fiber.App) {
	group := app.Group("/api/institutions")

	group.Post("/", validators.CreateInstitution(), controllers.CreateInstitution)
	group.Get("/", controllers.ListInstitutions)
	group.Get("/:id", validators.InstitutionID(), controllers.GetInstitution)
	group.Put("/:id", validators.InstitutionID(), validators.UpdateInstitution(), controllers.UpdateInstitution)
	group.Delete("/:id", validators.InstitutionID(), controllers.DeleteInstitution)
}
