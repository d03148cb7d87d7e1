package catalogRoutes

import (
	categoryController "shopfit/controllers/category"
	orderController "shopfit/controllers/order"
	productController "shopfit/controllers/product"
	"shopfit/middleware"
	categoryValidator "shopfit/validators/category"
	productValidator "shopfit/validators/product"

	"github.com/gofiber/fiber/v2"
)

func SetupCatalogRoutes(app *fiber.App) {
	categoryGroup := app.Group("/category")

	categoryGroup.Get("/", categoryController.ListCategories)
	categoryGroup.Get("/:id", categoryController.GetCategory)
	categoryGroup.Post("/", categoryValidator.CreateCategory(), middleware.JWTMiddleware, middleware.StaffOnly, categoryController.CreateCategory)
	categoryGroup.Patch("/:id", middleware.JWTMiddleware, middleware.StaffOnly, categoryController.UpdateCategory)
	categoryGroup.Delete("/:id", middleware.JWTMiddleware, middleware.StaffOnly, categoryController.DeleteCategory)

	productGroup := app.Group("/product")

	productGroup.Get("/", productController.ListProducts)
	productGroup.Get("/:id", productController.GetProduct)
	productGroup.Get("/:id/reviews", orderController.ListProductReviews)
	productGroup.Post("/", productValidator.CreateProduct(), middleware.JWTMiddleware, middleware.StaffOnly, productController.CreateProduct)
	productGroup.Patch("/:id", middleware.JWTMiddleware, middleware.StaffOnly, productController.UpdateProduct)
	productGroup.Delete("/:id", middleware.JWTMiddleware, middleware.StaffOnly, productController.DeleteProduct)
	productGroup.Post("/:id/image", middleware.JWTMiddleware, middleware.StaffOnly, productController.AddProductImage)
	productGroup.Patch("/:id/primary-image", middleware.JWTMiddleware, middleware.StaffOnly, productController.SetPrimaryImage)

	inventoryGroup := app.Group("/inventory")

	inventoryGroup.Get("/", middleware.JWTMiddleware, middleware.StaffOnly, productController.ListInventory)
	inventoryGroup.Post("/", productValidator.UpsertInventory(), middleware.JWTMiddleware, middleware.StaffOnly, productController.UpsertInventory)
}
