package router

import (
	"spa_manager/handler"
	"spa_manager/middleware"
	"spa_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	auth := api.Group("/auth")
	auth.Post("/therapist/login", validate.Login(), handler.LoginTherapist)
	auth.Post("/cashier/login", validate.Login(), handler.LoginCashier)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)

	service := api.Group("/services", logger.New())
	service.Get("/", handler.GetServices)
	service.Get("/categories", handler.GetCategories)
	service.Get("/:serviceId/classifications", validate.GetById("serviceId"), handler.GetServiceClassifications)
	service.Post("/", middleware.Protected(), validate.CreateService(), handler.CreateService)
	service.Post("/:serviceId/image", middleware.Protected(), validate.GetById("serviceId"), validate.UploadServiceImage(), handler.UploadServiceImage)

	therapist := app.Group("/therapist", logger.New())
	therapist.Get("/finished-transactions", middleware.Protected(), handler.GetFinishedTransactions)
	therapist.Post("/toggle-room-status", middleware.Protected(), handler.ToggleRoomStatus)

	cashier := app.Group("/cashier", logger.New())
	cashier.Get("/payment-history", middleware.Protected(), handler.GetPaymentHistory)

	// Poll endpoints for views recovering state after a reload
	app.Get("/monitor_snapshot", handler.MonitorSnapshot)
	app.Get("/room_status", handler.RoomStatus)
	app.Get("/cashier_status", handler.CashierStatus)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", middleware.OptionalJWT(), websocket.New(handler.ServiceSocket))
}
