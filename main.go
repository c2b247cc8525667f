package main

import (
	"log"

	"eduplay/config"
	"eduplay/database"
	institutionRoutes "eduplay/routers/institutionRoutes"
	learnerRoutes "eduplay/routers/learnerRoutes"
	lessonRoutes "eduplay/routers/lessonRoutes"
	minigameRoutes "eduplay/routers/minigameRoutes"
	transactionRoutes "eduplay/routers/transactionRoutes"
	"eduplay/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	institutionRoutes.SetupInstitutionRoutes(app)
	lessonRoutes.SetupLessonRoutes(app)
	minigameRoutes.SetupMinigameRoutes(app)
	transactionRoutes.SetupTransactionRoutes(app)
	learnerRoutes.SetupLearnerRoutes(app)

	utils.StartLessonReminderScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
