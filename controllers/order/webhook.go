package orderController

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"shopfit/config"
	"shopfit/database"
	"shopfit/middleware"
	"shopfit/models"
	"shopfit/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
)

// OrderWebhook handles "payment succeeded" callbacks from the payment
// processor. Delivery is at-least-once, so reconciliation is keyed on the
// event id: the WebhookEvent insert shares the transaction with the order
// mutation and its unique index turns duplicate deliveries into no-ops.
func OrderWebhook(c *fiber.Ctx) error {
	payload := c.Body()
	sigHeader := c.Get("Stripe-Signature")

	event, err := webhook.ConstructEvent(payload, sigHeader, config.AppConfig.StripeWebhookSecret)
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payload or signature!", nil)
	}

	if event.Type != "payment_intent.succeeded" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Event type not handled.", nil)
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		log.Printf("Failed to unmarshal payment intent: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payload!", nil)
	}

	if intent.Metadata["type"] != "order" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Event type not handled.", nil)
	}

	userId, err := strconv.ParseUint(intent.Metadata["user_id"], 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payload!", nil)
	}

	db := database.Database.Db

	// Fast path for replayed deliveries
	if err := db.Where("event_id = ?", event.ID).First(&models.WebhookEvent{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Event already processed.", nil)
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	var session models.ShoppingSession
	if err := db.Where("user_id = ?", user.ID).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Shopping session not found!", nil)
	}

	tx := db.Begin()

	// Concurrent duplicate deliveries race on this unique insert; the loser
	// rolls back without touching the cart.
	webhookEvent := models.WebhookEvent{
		EventID:     event.ID,
		Type:        string(event.Type),
		ProcessedAt: time.Now(),
	}
	if err := tx.Create(&webhookEvent).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Event already processed.", nil)
	}

	var cartItems []models.CartItem
	if err := tx.Preload("Product").Where("session_id = ?", session.ID).Find(&cartItems).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}

	if len(cartItems) == 0 {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No items in the cart to create an order.", nil)
	}

	order := models.OrderDetails{
		UserID: user.ID,
		Status: models.OrderBooked,
	}
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order!", nil)
	}

	// Snapshot current product prices into the line items; the total is
	// fixed here and never recomputed.
	totalPrice := 0.0
	for _, item := range cartItems {
		orderItem := models.OrderItems{
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     float64(item.Product.Price),
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create order items!", nil)
		}
		totalPrice += float64(item.Product.Price) * float64(item.Quantity)
	}

	order.TotalPrice = totalPrice
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update order total!", nil)
	}

	payment := models.Payments{
		UserID:          user.ID,
		Status:          models.PaymentPaid,
		OrderID:         &order.ID,
		Amount:          float64(intent.Amount) / 100,
		StripePaymentID: intent.ID,
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	if err := tx.Unscoped().Where("session_id = ?", session.ID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to clear cart!", nil)
	}

	session.Total = 0
	if err := tx.Save(&session).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset cart total!", nil)
	}

	tx.Commit()

	go func(email, name string, orderID uint, total float64) {
		if err := utils.SendOrderConfirmationEmail(email, name, orderID, total); err != nil {
			log.Printf("Failed to send order confirmation email: %v", err)
		}
	}(user.Email, user.Name, order.ID, totalPrice)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Order created!", fiber.Map{
		"orderId": order.ID,
	})
}
