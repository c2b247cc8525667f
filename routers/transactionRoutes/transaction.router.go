package transactionRoutes

import (
	controllers "eduplay/controllers/transaction"
	validators "eduplay/validators/transaction"

	"github.com/gofiber/fiber/v2"
)

// SetupTransactionRoutes sets up all transaction CRUD routes
func SetupTransactionRoutes(app *fiber.App) {
	group := app.Group("/api/transactions")

	group.Post("/", validators.CreateTransaction(), controllers.CreateTransaction)
	group.Get("/", validators.TransactionList(), controllers.ListTransactions)
	group.Get("/:id", validators.TransactionID(), controllers.GetTransaction)
	group.Put("/:id", validators.TransactionID(), validators.UpdateTransaction(), controllers.UpdateTransaction)
	group.Delete("/:id", validators.TransactionID(), controllers.DeleteTransaction)
}
