package webhookRoutes

import (
	orderController "shopfit/controllers/order"
	planController "shopfit/controllers/plan"

	"github.com/gofiber/fiber/v2"
)

// Webhook routes are unauthenticated, the payment processor signs each
// payload and the handlers verify the signature themselves.
func SetupWebhookRoutes(app *fiber.App) {
	webhookGroup := app.Group("/webhook")

	webhookGroup.Post("/order", orderController.OrderWebhook)
	webhookGroup.Post("/subscription", planController.SubscriptionWebhook)
}
