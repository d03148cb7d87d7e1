package productValidator

import (
	"strings"

	"shopfit/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateProduct validator middleware
func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Price       int    `json:"price"`
			CategoryIDs []uint `json:"categoryIds"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Product name must be at least 2 characters long!"
		}

		if reqData.Price <= 0 {
			errors["price"] = "Price must be greater than zero!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProduct", reqData)
		return c.Next()
	}
}

// UpsertInventory validator middleware
func UpsertInventory() fiber.Handler {
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

		if reqData.Quantity == 0 {
			errors["quantity"] = "Quantity is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInventory", reqData)
		return c.Next()
	}
}
