package orderController

import (
	"log"
	"strconv"

	"shopfit/database"
	"shopfit/middleware"
	"shopfit/models"
	"shopfit/payments"

	"github.com/gofiber/fiber/v2"
)

// CreateCheckout converts the user's cart into a hosted payment session and
// returns the redirect URL. No local order state is created here; the order
// itself is only written by the payment webhook.
func CreateCheckout(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	var session models.ShoppingSession
	if err := db.Where("user_id = ?", userId).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Shopping session not found!", nil)
	}

	var cartItems []models.CartItem
	if err := db.Preload("Product").Where("session_id = ?", session.ID).Find(&cartItems).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}

	if len(cartItems) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No items in the cart.", nil)
	}

	// Line items priced from current product prices, not the cached total
	lineItems := []payments.LineItem{}
	for _, item := range cartItems {
		lineItems = append(lineItems, payments.LineItem{
			Name:       item.Product.Name,
			UnitAmount: int64(item.Product.Price) * 100,
			Quantity:   int64(item.Quantity),
		})
	}

	customerID, err := payments.EnsureCustomer(db, &user)
	if err != nil {
		log.Printf("Error creating billing customer: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create billing customer!", nil)
	}

	checkoutURL, err := payments.Active.CreateCheckoutSession(customerID, lineItems, map[string]string{
		"type":    "order",
		"user_id": strconv.FormatUint(uint64(userId), 10),
	})
	if err != nil {
		log.Printf("Error creating checkout session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create checkout session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusSeeOther, true, "Checkout session created!", fiber.Map{
		"checkoutUrl": checkoutURL,
	})
}

// ListOrders returns the user's orders; staff see all. ?id= narrows to one order.
func ListOrders(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	orderId := c.QueryInt("id", 0)
	if orderId > 0 {
		var order models.OrderDetails
		query := db.Preload("Items").Where("id = ?", orderId)
		if !user.IsStaff {
			query = query.Where("user_id = ?", userId)
		}
		if err := query.First(&order).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Order fetched!", order)
	}

	var orders []models.OrderDetails
	query := db.Preload("Items").Order("created_at DESC")
	if !user.IsStaff {
		query = query.Where("user_id = ?", userId)
	}
	if err := query.Find(&orders).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch orders!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Orders fetched!", orders)
}

var validOrderStatuses = map[string]bool{
	models.OrderInProgress: true,
	models.OrderCanceled:   true,
	models.OrderBooked:     true,
	models.OrderDelivered:  true,
}

// UpdateOrderStatus changes an order's status. Non-staff users may only
// cancel their own orders.
func UpdateOrderStatus(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	orderId := c.Params("id")

	reqData := new(struct {
		Status string `json:"status"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if !validOrderStatuses[reqData.Status] {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid order status!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	var order models.OrderDetails
	query := db.Where("id = ?", orderId)
	if !user.IsStaff {
		query = query.Where("user_id = ?", userId)
	}
	if err := query.First(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Order not found!", nil)
	}

	if !user.IsStaff && reqData.Status != models.OrderCanceled {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Regular users can only update the status to 'canceled'.", nil)
	}

	order.Status = reqData.Status
	if err := db.Save(&order).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update order status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order status updated!", order)
}

// ListPayments returns the billing ledger for the user; staff see all.
// ?type=order|subscription filters by linkage, ?id= narrows to one row.
func ListPayments(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	paymentId := c.QueryInt("id", 0)
	if paymentId > 0 {
		var payment models.Payments
		query := db.Where("id = ?", paymentId)
		if !user.IsStaff {
			query = query.Where("user_id = ?", userId)
		}
		if err := query.First(&payment).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment fetched!", payment)
	}

	query := db.Model(&models.Payments{}).Order("created_at DESC")
	if !user.IsStaff {
		query = query.Where("user_id = ?", userId)
	}

	switch c.Query("type") {
	case "order":
		query = query.Where("order_id IS NOT NULL")
	case "subscription":
		query = query.Where("subscription_plan_id IS NOT NULL")
	}

	var paymentsList []models.Payments
	if err := query.Find(&paymentsList).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched!", paymentsList)
}
