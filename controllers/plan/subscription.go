package planController

import (
	"log"
	"strconv"
	"time"

	"shopfit/database"
	"shopfit/middleware"
	"shopfit/models"
	"shopfit/models/plan"
	"shopfit/payments"

	"github.com/gofiber/fiber/v2"
)

// ListSubscriptionPlans returns all subscription plans (public)
func ListSubscriptionPlans(c *fiber.Ctx) error {
	var plans []plan.SubscriptionPlan
	if err := database.Database.Db.Order("price asc").Find(&plans).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subscription plans!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription plans fetched!", plans)
}

// CreateSubscriptionPlan adds a new subscription plan (staff only)
func CreateSubscriptionPlan(c *fiber.Ctx) error {
	reqData := new(struct {
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Days        int     `json:"days"`
		Description string  `json:"description"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	subscriptionPlan := plan.SubscriptionPlan{
		Name:        reqData.Name,
		Price:       reqData.Price,
		Days:        reqData.Days,
		Description: reqData.Description,
	}

	if err := database.Database.Db.Create(&subscriptionPlan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create subscription plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subscription plan created!", subscriptionPlan)
}

// UpdateSubscriptionPlan updates a subscription plan (staff only)
func UpdateSubscriptionPlan(c *fiber.Ctx) error {
	planId := c.Params("id")

	reqData := new(struct {
		Name        string   `json:"name"`
		Price       *float64 `json:"price"`
		Days        *int     `json:"days"`
		Description string   `json:"description"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var subscriptionPlan plan.SubscriptionPlan
	if err := db.Where("id = ?", planId).First(&subscriptionPlan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subscription plan not found!", nil)
	}

	if reqData.Name != "" {
		subscriptionPlan.Name = reqData.Name
	}
	if reqData.Price != nil {
		subscriptionPlan.Price = *reqData.Price
	}
	if reqData.Days != nil {
		subscriptionPlan.Days = *reqData.Days
	}
	if reqData.Description != "" {
		subscriptionPlan.Description = reqData.Description
	}

	if err := db.Save(&subscriptionPlan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update subscription plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription plan updated!", subscriptionPlan)
}

// DeleteSubscriptionPlan removes a subscription plan (staff only)
func DeleteSubscriptionPlan(c *fiber.Ctx) error {
	planId := c.Params("id")

	db := database.Database.Db

	var subscriptionPlan plan.SubscriptionPlan
	if err := db.Where("id = ?", planId).First(&subscriptionPlan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subscription plan not found!", nil)
	}

	if err := db.Delete(&subscriptionPlan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete subscription plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription plan deleted!", nil)
}

// Subscribe enrolls the user in a subscription plan. The enrollment stays
// inactive until the payment webhook confirms payment; the response carries
// the hosted payment URL.
func Subscribe(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData := new(struct {
		SubscriptionPlanID uint `json:"subscriptionPlanId"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.SubscriptionPlanID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "subscriptionPlanId is required!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	var subscriptionPlan plan.SubscriptionPlan
	if err := db.Where("id = ?", reqData.SubscriptionPlanID).First(&subscriptionPlan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subscription plan not found!", nil)
	}

	// An active subscription must be canceled before a new one is created
	var active plan.UserSubscription
	if err := db.Where("user_id = ? AND status = ?", userId, plan.SubscriptionActive).First(&active).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "You must unsubscribe from your current subscription before creating a new one.", nil)
	}

	startDate := time.Now()
	endDate := startDate.AddDate(0, 0, subscriptionPlan.Days)

	var subscription plan.UserSubscription
	err := db.Where("user_id = ? AND status = ?", userId, plan.SubscriptionInactive).First(&subscription).Error
	if err != nil {
		subscription = plan.UserSubscription{
			UserID:             userId,
			SubscriptionPlanID: subscriptionPlan.ID,
			StartDate:          startDate,
			EndDate:            &endDate,
			Status:             plan.SubscriptionInactive,
			PaymentStatus:      false,
		}
		if err := db.Create(&subscription).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create subscription!", nil)
		}
	} else {
		// Reuse the lapsed enrollment row
		subscription.SubscriptionPlanID = subscriptionPlan.ID
		subscription.StartDate = startDate
		subscription.EndDate = &endDate
		subscription.Status = plan.SubscriptionInactive
		subscription.PaymentStatus = false
		if err := db.Save(&subscription).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update subscription!", nil)
		}
	}

	customerID, err := payments.EnsureCustomer(db, &user)
	if err != nil {
		log.Printf("Error creating billing customer: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create billing customer!", nil)
	}

	paymentURL, err := payments.Active.CreateSubscriptionSession(
		customerID,
		subscriptionPlan.Name,
		int64(subscriptionPlan.Price*100),
		map[string]string{
			"type":          "plan_subscription",
			"user_id":       strconv.FormatUint(uint64(userId), 10),
			"selected_plan": strconv.FormatUint(uint64(subscriptionPlan.ID), 10),
		},
	)
	if err != nil {
		log.Printf("Error creating subscription session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subscription created! Complete the payment to activate.", fiber.Map{
		"subscription": subscription,
		"paymentUrl":   paymentURL,
	})
}

// Unsubscribe flips the user's active subscription to inactive.
func Unsubscribe(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	db := database.Database.Db

	var subscription plan.UserSubscription
	if err := db.Where("user_id = ? AND status = ?", userId, plan.SubscriptionActive).First(&subscription).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No active subscription found.", nil)
	}

	subscription.Status = plan.SubscriptionInactive
	if err := db.Save(&subscription).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel subscription!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscription successfully canceled.", nil)
}

// ListSubscriptions returns the user's subscriptions; staff see all.
func ListSubscriptions(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
	}

	var subscriptions []plan.UserSubscription
	query := db.Preload("SubscriptionPlan").Order("created_at DESC")
	if !user.IsStaff {
		query = query.Where("user_id = ?", userId)
	}
	if err := query.Find(&subscriptions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subscriptions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subscriptions fetched!", subscriptions)
}
