package reviewValidator

import (
	"shopfit/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateReview validator middleware
func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			OrderItemID uint   `json:"orderItemId"`
			Rating      int    `json:"rating"`
			Comment     string `json:"comment"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.OrderItemID == 0 {
			errors["orderItemId"] = "Order item id is required!"
		}

		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
