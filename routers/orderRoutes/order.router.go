package orderRoutes

import (
	orderController "shopfit/controllers/order"
	"shopfit/middleware"
	reviewValidator "shopfit/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupOrderRoutes(app *fiber.App) {
	orderGroup := app.Group("/order")

	orderGroup.Post("/checkout", middleware.JWTMiddleware, orderController.CreateCheckout)
	orderGroup.Get("/", middleware.JWTMiddleware, orderController.ListOrders)
	orderGroup.Patch("/:id/status", middleware.JWTMiddleware, orderController.UpdateOrderStatus)

	paymentGroup := app.Group("/payment")

	paymentGroup.Get("/", middleware.JWTMiddleware, orderController.ListPayments)

	reviewGroup := app.Group("/review")

	reviewGroup.Post("/", reviewValidator.CreateReview(), middleware.JWTMiddleware, orderController.CreateReview)
	reviewGroup.Get("/eligible", middleware.JWTMiddleware, orderController.ListEligibleOrderItems)
}
