package planValidator

import (
	"strings"

	"shopfit/middleware"
	"shopfit/models/plan"

	"github.com/gofiber/fiber/v2"
)

// CreateSubscriptionPlan validator middleware
func CreateSubscriptionPlan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string  `json:"name"`
			Price       float64 `json:"price"`
			Days        int     `json:"days"`
			Description string  `json:"description"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Plan name must be at least 2 characters long!"
		}

		if reqData.Price <= 0 {
			errors["price"] = "Price must be greater than zero!"
		}

		if reqData.Days <= 0 {
			errors["days"] = "Days must be greater than zero!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubscriptionPlan", reqData)
		return c.Next()
	}
}

// Subscribe validator middleware
func Subscribe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SubscriptionPlanID uint `json:"subscriptionPlanId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SubscriptionPlanID == 0 {
			errors["subscriptionPlanId"] = "Subscription plan id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubscribe", reqData)
		return c.Next()
	}
}

// CreatePlan validator middleware
func CreatePlan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name                 string `json:"name"`
			PlanType             string `json:"planType"`
			Description          string `json:"description"`
			DurationDays         int    `json:"durationDays"`
			SubscriptionRequired *bool  `json:"subscriptionRequired"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Plan name must be at least 2 characters long!"
		}

		if reqData.PlanType != plan.PlanTypeNutrition && reqData.PlanType != plan.PlanTypeExercise {
			errors["planType"] = "Plan type must be 'nutrition' or 'exercise'!"
		}

		if reqData.DurationDays <= 0 {
			errors["durationDays"] = "Duration days must be greater than zero!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPlan", reqData)
		return c.Next()
	}
}

// CreateGoals validator middleware
func CreateGoals() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new([]struct {
			PlanID      uint   `json:"planId"`
			Description string `json:"description"`
			DayNumber   int    `json:"dayNumber"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(*reqData) == 0 {
			errors["goals"] = "At least one goal is required!"
		}

		for _, goal := range *reqData {
			if goal.PlanID == 0 {
				errors["planId"] = "Plan id is required for every goal!"
			}
			if goal.DayNumber <= 0 {
				errors["dayNumber"] = "Day number must be greater than zero!"
			}
			if strings.TrimSpace(goal.Description) == "" {
				errors["description"] = "Description is required for every goal!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGoals", reqData)
		return c.Next()
	}
}

// StartPlan validator middleware
func StartPlan() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			PlanID uint `json:"planId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.PlanID == 0 {
			errors["planId"] = "Plan id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStartPlan", reqData)
		return c.Next()
	}
}
