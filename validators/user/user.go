package userValidator

import (
	"strings"

	"shopfit/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name  string `json:"name"`
			Phone string `json:"phone"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != "" && len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}

// UpdateStaffStatus validator middleware
func UpdateStaffStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			IsStaff *bool `json:"isStaff"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.IsStaff == nil {
			errors["isStaff"] = "isStaff is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStaffStatus", reqData)
		return c.Next()
	}
}
