package cartValidator

import (
	"shopfit/middleware"

	"github.com/gofiber/fiber/v2"
)

// AddToCart validator middleware
func AddToCart() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ProductID uint `json:"productId"`
			Quantity  int  `json:"quantity"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ProductID == 0 {
			errors["productId"] = "Product id is required!"
		}

		if reqData.Quantity <= 0 {
			errors["quantity"] = "Quantity must be greater than zero!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCartItem", reqData)
		return c.Next()
	}
}

// UpdateCartItem validator middleware
func UpdateCartItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ProductID uint `json:"productId"`
			Quantity  int  `json:"quantity"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ProductID == 0 {
			errors["productId"] = "Product id is required!"
		}

		if reqData.Quantity <= 0 {
			errors["quantity"] = "Quantity must be greater than zero!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCartItem", reqData)
		return c.Next()
	}
}
