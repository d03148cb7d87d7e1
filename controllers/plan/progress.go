package planController

import (
	"time"

	"shopfit/database"
	"shopfit/middleware"
	"shopfit/models/plan"

	"github.com/gofiber/fiber/v2"
)

// StartPlan creates a UserPlan and fans out one pending UserGoalProgress per
// goal, scheduled at start date + (day number - 1) days.
func StartPlan(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData := new(struct {
		PlanID    uint       `json:"planId"`
		StartDate *time.Time `json:"startDate"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.PlanID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "planId is required!", nil)
	}

	db := database.Database.Db

	var p plan.Plan
	if err := db.Preload("Goals").Where("id = ?", reqData.PlanID).First(&p).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
	}

	// Plans marked subscription-required need an active subscription
	if p.SubscriptionRequired {
		var subscription plan.UserSubscription
		if err := db.Where("user_id = ? AND status = ?", userId, plan.SubscriptionActive).First(&subscription).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "An active subscription is required for this plan!", nil)
		}
	}

	// One active run per plan per user
	var existing plan.UserPlan
	if err := db.Where("user_id = ? AND plan_id = ? AND status = ?", userId, reqData.PlanID, plan.UserPlanActive).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already started this plan!", nil)
	}

	startDate := time.Now().Truncate(24 * time.Hour)
	if reqData.StartDate != nil {
		startDate = *reqData.StartDate
	}
	endDate := startDate.AddDate(0, 0, p.DurationDays)

	tx := db.Begin()

	userPlan := plan.UserPlan{
		UserID:    userId,
		PlanID:    p.ID,
		StartDate: startDate,
		EndDate:   &endDate,
		Status:    plan.UserPlanActive,
	}
	if err := tx.Create(&userPlan).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start plan!", nil)
	}

	// Fan out one progress row per goal
	for _, goal := range p.Goals {
		progress := plan.UserGoalProgress{
			UserPlanID:    userPlan.ID,
			GoalID:        goal.ID,
			ScheduledDate: startDate.AddDate(0, 0, goal.DayNumber-1),
			Status:        plan.GoalPending,
		}
		if err := tx.Create(&progress).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create goal progress!", nil)
		}
	}

	tx.Commit()

	if err := db.Preload("UserGoals").Where("id = ?", userPlan.ID).First(&userPlan).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Plan started successfully!", userPlan)
}

// MarkGoalComplete completes one goal-progress row and, when no pending
// siblings remain, flips the whole UserPlan to completed.
func MarkGoalComplete(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	progressId := c.Params("id")

	db := database.Database.Db

	var progress plan.UserGoalProgress
	if err := db.
		Joins("JOIN user_plans ON user_plans.id = user_goal_progresses.user_plan_id").
		Where("user_goal_progresses.id = ? AND user_plans.user_id = ?", progressId, userId).
		First(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Goal progress not found!", nil)
	}

	tx := db.Begin()

	now := time.Now()
	progress.Status = plan.GoalCompleted
	progress.CompletionDate = &now
	if err := tx.Save(&progress).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update goal progress!", nil)
	}

	// Fan-in: no pending siblings left means the plan run is done
	var pending int64
	if err := tx.Model(&plan.UserGoalProgress{}).
		Where("user_plan_id = ? AND status = ?", progress.UserPlanID, plan.GoalPending).
		Count(&pending).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check plan completion!", nil)
	}

	planCompleted := false
	if pending == 0 {
		if err := tx.Model(&plan.UserPlan{}).
			Where("id = ?", progress.UserPlanID).
			Update("status", plan.UserPlanCompleted).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete plan!", nil)
		}
		planCompleted = true
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Goal marked as completed!", fiber.Map{
		"goalProgress":  progress,
		"planCompleted": planCompleted,
	})
}

// PlanStatus returns the user's plan runs with goal progress. ?id= filters
// by plan.
func PlanStatus(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	db := database.Database.Db

	planId := c.QueryInt("id", 0)
	if planId > 0 {
		var userPlan plan.UserPlan
		if err := db.Preload("Plan").Preload("UserGoals.Goal").
			Where("user_id = ? AND plan_id = ?", userId, planId).
			First(&userPlan).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User does not have this plan or the plan does not exist.", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "User plan found.", userPlan)
	}

	var userPlans []plan.UserPlan
	if err := db.Preload("Plan").Preload("UserGoals.Goal").
		Where("user_id = ?", userId).
		Find(&userPlans).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user plans!", nil)
	}

	if len(userPlans) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No plans found for the user.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User plans found.", userPlans)
}
