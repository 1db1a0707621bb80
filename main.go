package main

import (
	"log"
	"spa_manager/config"
	"spa_manager/database"
	"spa_manager/handler"
	"spa_manager/helper"
	"spa_manager/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartTokenCleanupScheduler()
	defer helper.StopTokenCleanupScheduler()
	helper.StartDailySummaryScheduler()
	defer helper.StopDailySummaryScheduler()

	stopSweeper := handler.StartExpireSelectionWorker()
	defer stopSweeper()

	router.SetupRoutes(app)

	port := config.ConfigDefault("PORT", "8002")
	log.Fatal(app.Listen(":" + port))
}
