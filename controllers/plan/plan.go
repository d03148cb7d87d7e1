package planController

import (
	"shopfit/database"
	"shopfit/middleware"
	"shopfit/models/plan"

	"github.com/gofiber/fiber/v2"
)

// ListPlans returns all fitness plans (public)
func ListPlans(c *fiber.Ctx) error {
	var plans []plan.Plan
	if err := database.Database.Db.Preload("Goals").Order("created_at DESC").Find(&plans).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch plans!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plans fetched!", plans)
}

// GetPlan returns a single plan with its goals (public)
func GetPlan(c *fiber.Ctx) error {
	planId := c.Params("id")

	var p plan.Plan
	if err := database.Database.Db.Preload("Goals").Where("id = ?", planId).First(&p).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan fetched!", p)
}

// CreatePlan adds a fitness plan (staff only)
func CreatePlan(c *fiber.Ctx) error {
	reqData := new(struct {
		Name                 string `json:"name"`
		PlanType             string `json:"planType"`
		Description          string `json:"description"`
		DurationDays         int    `json:"durationDays"`
		SubscriptionRequired *bool  `json:"subscriptionRequired"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	subscriptionRequired := true
	if reqData.SubscriptionRequired != nil {
		subscriptionRequired = *reqData.SubscriptionRequired
	}

	p := plan.Plan{
		Name:                 reqData.Name,
		PlanType:             reqData.PlanType,
		Description:          reqData.Description,
		DurationDays:         reqData.DurationDays,
		SubscriptionRequired: subscriptionRequired,
	}

	if err := database.Database.Db.Create(&p).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Plan created!", p)
}

// UpdatePlan updates a fitness plan (staff only)
func UpdatePlan(c *fiber.Ctx) error {
	planId := c.Params("id")

	reqData := new(struct {
		Name                 string `json:"name"`
		PlanType             string `json:"planType"`
		Description          string `json:"description"`
		DurationDays         *int   `json:"durationDays"`
		SubscriptionRequired *bool  `json:"subscriptionRequired"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var p plan.Plan
	if err := db.Where("id = ?", planId).First(&p).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
	}

	if reqData.Name != "" {
		p.Name = reqData.Name
	}
	if reqData.PlanType != "" {
		p.PlanType = reqData.PlanType
	}
	if reqData.Description != "" {
		p.Description = reqData.Description
	}
	if reqData.DurationDays != nil {
		p.DurationDays = *reqData.DurationDays
	}
	if reqData.SubscriptionRequired != nil {
		p.SubscriptionRequired = *reqData.SubscriptionRequired
	}

	if err := db.Save(&p).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan updated!", p)
}

// DeletePlan removes a fitness plan (staff only)
func DeletePlan(c *fiber.Ctx) error {
	planId := c.Params("id")

	db := database.Database.Db

	var p plan.Plan
	if err := db.Where("id = ?", planId).First(&p).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
	}

	if err := db.Delete(&p).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan deleted!", nil)
}

// CreateGoals bulk-creates goals for a plan (staff only)
func CreateGoals(c *fiber.Ctx) error {
	var reqData []struct {
		PlanID      uint   `json:"planId"`
		Description string `json:"description"`
		DayNumber   int    `json:"dayNumber"`
	}
	if err := c.BodyParser(&reqData); err != nil || len(reqData) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	goals := []plan.Goal{}
	for _, g := range reqData {
		if g.PlanID == 0 || g.DayNumber < 1 || g.Description == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Each goal needs planId, description and dayNumber!", nil)
		}
		if err := db.Where("id = ?", g.PlanID).First(&plan.Plan{}).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
		}
		goals = append(goals, plan.Goal{
			PlanID:      g.PlanID,
			Description: g.Description,
			DayNumber:   g.DayNumber,
		})
	}

	if err := db.Create(&goals).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Duplicate day number within the plan!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Goals created!", goals)
}

// UpdateGoal updates a goal (staff only)
func UpdateGoal(c *fiber.Ctx) error {
	goalId := c.Params("id")

	reqData := new(struct {
		Description string `json:"description"`
		DayNumber   *int   `json:"dayNumber"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var goal plan.Goal
	if err := db.Where("id = ?", goalId).First(&goal).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Goal not found!", nil)
	}

	if reqData.Description != "" {
		goal.Description = reqData.Description
	}
	if reqData.DayNumber != nil {
		goal.DayNumber = *reqData.DayNumber
	}

	if err := db.Save(&goal).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update goal!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Goal updated!", goal)
}

// DeleteGoals bulk-deletes goals by id (staff only)
func DeleteGoals(c *fiber.Ctx) error {
	reqData := new(struct {
		IDs []uint `json:"ids"`
	})
	if err := c.BodyParser(reqData); err != nil || len(reqData.IDs) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "ids are required!", nil)
	}

	if err := database.Database.Db.Where("id IN ?", reqData.IDs).Delete(&plan.Goal{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete goals!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Goals deleted!", nil)
}

// ListGoalsByPlan returns a plan's goals ordered by day (public)
func ListGoalsByPlan(c *fiber.Ctx) error {
	planId := c.Params("id")

	var goals []plan.Goal
	if err := database.Database.Db.
		Where("plan_id = ?", planId).
		Order("day_number asc").
		Find(&goals).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch goals!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Goals fetched!", goals)
}
