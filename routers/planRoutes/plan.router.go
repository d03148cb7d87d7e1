package planRoutes

import (
	planController "shopfit/controllers/plan"
	"shopfit/middleware"
	planValidator "shopfit/validators/plan"

	"github.com/gofiber/fiber/v2"
)

func SetupPlanRoutes(app *fiber.App) {
	subscriptionPlanGroup := app.Group("/subscription-plan")

	subscriptionPlanGroup.Get("/", planController.ListSubscriptionPlans)
	subscriptionPlanGroup.Post("/", planValidator.CreateSubscriptionPlan(), middleware.JWTMiddleware, middleware.StaffOnly, planController.CreateSubscriptionPlan)
	subscriptionPlanGroup.Patch("/:id", middleware.JWTMiddleware, middleware.StaffOnly, planController.UpdateSubscriptionPlan)
	subscriptionPlanGroup.Delete("/:id", middleware.JWTMiddleware, middleware.StaffOnly, planController.DeleteSubscriptionPlan)

	subscriptionGroup := app.Group("/subscription")

	subscriptionGroup.Get("/", middleware.JWTMiddleware, planController.ListSubscriptions)
	subscriptionGroup.Post("/", planValidator.Subscribe(), middleware.JWTMiddleware, planController.Subscribe)
	subscriptionGroup.Patch("/unsubscribe", middleware.JWTMiddleware, planController.Unsubscribe)

	planGroup := app.Group("/plan")

	planGroup.Get("/", planController.ListPlans)
	planGroup.Get("/status", middleware.JWTMiddleware, planController.PlanStatus)
	planGroup.Post("/start", planValidator.StartPlan(), middleware.JWTMiddleware, planController.StartPlan)
	planGroup.Get("/:id", planController.GetPlan)
	planGroup.Get("/:id/goals", planController.ListGoalsByPlan)
	planGroup.Post("/", planValidator.CreatePlan(), middleware.JWTMiddleware, middleware.StaffOnly, planController.CreatePlan)
	planGroup.Patch("/:id", middleware.JWTMiddleware, middleware.StaffOnly, planController.UpdatePlan)
	planGroup.Delete("/:id", middleware.JWTMiddleware, middleware.StaffOnly, planController.DeletePlan)

	goalGroup := app.Group("/goal")

	goalGroup.Post("/", planValidator.CreateGoals(), middleware.JWTMiddleware, middleware.StaffOnly, planController.CreateGoals)
	goalGroup.Patch("/:id", middleware.JWTMiddleware, middleware.StaffOnly, planController.UpdateGoal)
	goalGroup.Delete("/", middleware.JWTMiddleware, middleware.StaffOnly, planController.DeleteGoals)

	goalProgressGroup := app.Group("/goal-progress")

	goalProgressGroup.Patch("/:id/complete", middleware.JWTMiddleware, planController.MarkGoalComplete)

	postGroup := app.Group("/post")

	postGroup.Get("/", middleware.JWTMiddleware, planController.ListPosts)
	postGroup.Post("/:id", middleware.JWTMiddleware, planController.CreatePost)
}
