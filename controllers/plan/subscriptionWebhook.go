package planController

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"shopfit/config"
	"shopfit/database"
	"shopfit/middleware"
	"shopfit/models"
	"shopfit/models/plan"
	"shopfit/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
)

// SubscriptionWebhook handles recurring-payment confirmations. Same
// idempotency scheme as the order webhook, and the activation plus ledger
// append run in one transaction.
func SubscriptionWebhook(c *fiber.Ctx) error {
	payload := c.Body()
	sigHeader := c.Get("Stripe-Signature")

	event, err := webhook.ConstructEvent(payload, sigHeader, config.AppConfig.StripeSubscriptionWebhookSecret)
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payload or signature!", nil)
	}

	if event.Type != "invoice.payment_succeeded" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Event type not handled.", nil)
	}

	var invoice stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
		log.Printf("Failed to unmarshal invoice: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payload!", nil)
	}

	metadata := invoice.Metadata
	if metadata["type"] == "" && invoice.SubscriptionDetails != nil {
		metadata = invoice.SubscriptionDetails.Metadata
	}

	if metadata["type"] != "plan_subscription" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Event type not handled.", nil)
	}

	userId, err := strconv.ParseUint(metadata["user_id"], 10, 64)
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

	var subscription plan.UserSubscription
	if err := db.Preload("SubscriptionPlan").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		First(&subscription).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subscription not found!", nil)
	}

	stripePaymentID := invoice.ID
	if invoice.PaymentIntent != nil {
		stripePaymentID = invoice.PaymentIntent.ID
	}

	tx := db.Begin()

	webhookEvent := models.WebhookEvent{
		EventID:     event.ID,
		Type:        string(event.Type),
		ProcessedAt: time.Now(),
	}
	if err := tx.Create(&webhookEvent).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Event already processed.", nil)
	}

	subscription.Status = plan.SubscriptionActive
	subscription.PaymentStatus = true
	if err := tx.Save(&subscription).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to activate subscription!", nil)
	}

	payment := models.Payments{
		UserID:             user.ID,
		Status:             models.PaymentPaid,
		SubscriptionPlanID: &subscription.SubscriptionPlanID,
		Amount:             float64(invoice.AmountPaid) / 100,
		StripePaymentID:    stripePaymentID,
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	tx.Commit()

	go func(email, name, planName string) {
		if err := utils.SendSubscriptionActiveEmail(email, name, planName); err != nil {
			log.Printf("Failed to send subscription email: %v", err)
		}
	}(user.Email, user.Name, subscription.SubscriptionPlan.Name)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription activated!", fiber.Map{
		"subscriptionId": subscription.ID,
	})
}
