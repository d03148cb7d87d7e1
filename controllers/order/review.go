package orderController

import (
	"shopfit/database"
	"shopfit/middleware"
	"shopfit/models"

	"github.com/gofiber/fiber/v2"
)

// CreateReview lets a user review a line item from one of their own orders.
// One review per (user, order item).
func CreateReview(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData := new(struct {
		OrderItemID uint   `json:"orderItemId"`
		Rating      int    `json:"rating"`
		Comment     string `json:"comment"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Rating < 1 || reqData.Rating > 5 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Rating must be between 1 and 5!", nil)
	}

	db := database.Database.Db

	// The order item must belong to one of the user's orders
	var orderItem models.OrderItems
	if err := db.
		Joins("JOIN order_details ON order_details.id = order_items.order_id").
		Where("order_items.id = ? AND order_details.user_id = ?", reqData.OrderItemID, userId).
		First(&orderItem).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order item not found!", nil)
	}

	// One review per (user, order item)
	var existingReview models.Review
	if err := db.Where("user_id = ? AND order_item_id = ?", userId, orderItem.ID).First(&existingReview).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this item!", nil)
	}

	review := models.Review{
		UserID:      userId,
		OrderItemID: orderItem.ID,
		Rating:      reqData.Rating,
		Comment:     reqData.Comment,
	}

	if err := db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully!", review)
}

// ListProductReviews returns reviews for a product (public)
func ListProductReviews(c *fiber.Ctx) error {
	productId := c.Params("id")

	db := database.Database.Db

	var reviews []models.Review
	if err := db.
		Joins("JOIN order_items ON order_items.id = reviews.order_item_id").
		Where("order_items.product_id = ?", productId).
		Preload("User").
		Order("reviews.created_at DESC").
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	// Mask user data; only the reviewer's name is public
	type ReviewResponse struct {
		models.Review
		UserName string `json:"userName"`
	}

	response := []ReviewResponse{}
	for _, r := range reviews {
		name := r.User.Name
		r.User = models.User{}
		response = append(response, ReviewResponse{
			Review:   r,
			UserName: name,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", response)
}

// ListEligibleOrderItems returns the user's order items for a product that
// have no review yet.
func ListEligibleOrderItems(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	productId := c.QueryInt("productId", 0)
	if productId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "productId is required!", nil)
	}

	db := database.Database.Db

	var orderItems []models.OrderItems
	if err := db.
		Joins("JOIN order_details ON order_details.id = order_items.order_id").
		Joins("LEFT JOIN reviews ON reviews.order_item_id = order_items.id AND reviews.user_id = ? AND reviews.deleted_at IS NULL", userId).
		Where("order_details.user_id = ? AND order_items.product_id = ? AND reviews.id IS NULL", userId, productId).
		Find(&orderItems).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch order items!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Eligible order items fetched!", orderItems)
}
