package userRoutes

import (
	userController "shopfit/controllers/user"
	"shopfit/middleware"
	userValidator "shopfit/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userController.GetProfile)
	userGroup.Patch("/profile", userValidator.UpdateProfile(), middleware.JWTMiddleware, userController.UpdateProfile)
	userGroup.Get("/list", middleware.JWTMiddleware, middleware.StaffOnly, userController.ListUsers)
	userGroup.Patch("/:id/staff", userValidator.UpdateStaffStatus(), middleware.JWTMiddleware, middleware.StaffOnly, userController.UpdateStaffStatus)
}
