package cartRoutes

import (
	cartController "shopfit/controllers/cart"
	"shopfit/middleware"
	cartValidator "shopfit/validators/cart"

	"github.com/gofiber/fiber/v2"
)

func SetupCartRoutes(app *fiber.App) {
	cartGroup := app.Group("/cart")

	cartGroup.Get("/", middleware.JWTMiddleware, cartController.ListCart)
	cartGroup.Post("/", cartValidator.AddToCart(), middleware.JWTMiddleware, cartController.AddToCart)
	cartGroup.Patch("/", cartValidator.UpdateCartItem(), middleware.JWTMiddleware, cartController.UpdateCartItem)
	cartGroup.Delete("/:id", middleware.JWTMiddleware, cartController.RemoveCartItem)
}
