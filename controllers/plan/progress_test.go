package planController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"shopfit/models/plan"
	"shopfit/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// createPlanWithGoals seeds a plan with one goal per day.
func createPlanWithGoals(t *testing.T, db *gorm.DB, name string, days int, subscriptionRequired bool) *plan.Plan {
	t.Helper()

	p := &plan.Plan{
		Name:                 name,
		PlanType:             plan.PlanTypeExercise,
		DurationDays:         days,
		SubscriptionRequired: subscriptionRequired,
	}
	require.NoError(t, db.Create(p).Error)
	for day := 1; day <= days; day++ {
		require.NoError(t, db.Create(&plan.Goal{
			PlanID:      p.ID,
			DayNumber:   day,
			Description: fmt.Sprintf("Day %d workout", day),
		}).Error)
	}
	return p
}

func activateSubscription(t *testing.T, db *gorm.DB, userID uint) {
	t.Helper()

	subscriptionPlan := createSubscriptionPlan(t, db, "Gold "+fmt.Sprint(userID), 9.99, 30)
	require.NoError(t, db.Create(&plan.UserSubscription{
		UserID:             userID,
		SubscriptionPlanID: subscriptionPlan.ID,
		Status:             plan.SubscriptionActive,
		PaymentStatus:      true,
	}).Error)
}

func TestStartPlanFansOutGoalProgress(t *testing.T) {
	app, db := setupPlanApp(t)

	user := testutil.CreateUser(t, db, "athlete@example.com", false)
	token := testutil.TokenFor(t, user)
	p := createPlanWithGoals(t, db, "5x5 Basics", 3, false)

	startDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	status, resp := testutil.DoRequest(t, app, http.MethodPost, "/plan/start", token,
		fiber.Map{"planId": p.ID, "startDate": startDate})
	require.Equal(t, http.StatusCreated, status)

	var userPlan plan.UserPlan
	require.NoError(t, json.Unmarshal(resp.Data, &userPlan))
	assert.Equal(t, plan.UserPlanActive, userPlan.Status)
	require.Len(t, userPlan.UserGoals, 3)

	// End date derives from the plan duration
	require.NotNil(t, userPlan.EndDate)
	assert.True(t, userPlan.EndDate.Equal(startDate.AddDate(0, 0, 3)))

	// Goal N is scheduled N-1 days after the start
	var rows []plan.UserGoalProgress
	require.NoError(t, db.Joins("Goal").Where("user_plan_id = ?", userPlan.ID).
		Order("\"Goal\".day_number asc").Find(&rows).Error)
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, plan.GoalPending, row.Status)
		assert.True(t, row.ScheduledDate.Equal(startDate.AddDate(0, 0, i)))
	}
}

func TestStartPlanRequiresActiveSubscription(t *testing.T) {
	app, db := setupPlanApp(t)

	user := testutil.CreateUser(t, db, "athlete@example.com", false)
	token := testutil.TokenFor(t, user)
	p := createPlanWithGoals(t, db, "Premium Shred", 2, true)

	status, resp := testutil.DoRequest(t, app, http.MethodPost, "/plan/start", token,
		fiber.Map{"planId": p.ID})
	require.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "An active subscription is required for this plan!", resp.Message)

	activateSubscription(t, db, user.ID)

	status, _ = testutil.DoRequest(t, app, http.MethodPost, "/plan/start", token,
		fiber.Map{"planId": p.ID})
	assert.Equal(t, http.StatusCreated, status)
}

func TestStartPlanRejectsSecondActiveRun(t *testing.T) {
	app, db := setupPlanApp(t)

	user := testutil.CreateUser(t, db, "athlete@example.com", false)
	token := testutil.TokenFor(t, user)
	p := createPlanWithGoals(t, db, "5x5 Basics", 2, false)

	status, _ := testutil.DoRequest(t, app, http.MethodPost, "/plan/start", token,
		fiber.Map{"planId": p.ID})
	require.Equal(t, http.StatusCreated, status)

	status, resp := testutil.DoRequest(t, app, http.MethodPost, "/plan/start", token,
		fiber.Map{"planId": p.ID})
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "You have already started this plan!", resp.Message)
}

func TestMarkGoalCompleteFansInToPlanCompletion(t *testing.T) {
	app, db := setupPlanApp(t)

	user := testutil.CreateUser(t, db, "athlete@example.com", false)
	token := testutil.TokenFor(t, user)
	p := createPlanWithGoals(t, db, "5x5 Basics", 2, false)

	status, _ := testutil.DoRequest(t, app, http.MethodPost, "/plan/start", token,
		fiber.Map{"planId": p.ID})
	require.Equal(t, http.StatusCreated, status)

	var rows []plan.UserGoalProgress
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 2)

	var data struct {
		PlanCompleted bool `json:"planCompleted"`
	}

	status, resp := testutil.DoRequest(t, app, http.MethodPatch,
		fmt.Sprintf("/goal-progress/%d/complete", rows[0].ID), token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.False(t, data.PlanCompleted)

	status, resp = testutil.DoRequest(t, app, http.MethodPatch,
		fmt.Sprintf("/goal-progress/%d/complete", rows[1].ID), token, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.True(t, data.PlanCompleted)

	var userPlan plan.UserPlan
	require.NoError(t, db.Where("user_id = ? AND plan_id = ?", user.ID, p.ID).First(&userPlan).Error)
	assert.Equal(t, plan.UserPlanCompleted, userPlan.Status)

	var completed plan.UserGoalProgress
	require.NoError(t, db.First(&completed, rows[0].ID).Error)
	assert.Equal(t, plan.GoalCompleted, completed.Status)
	assert.NotNil(t, completed.CompletionDate)
}

func TestMarkGoalCompleteRejectsForeignRows(t *testing.T) {
	app, db := setupPlanApp(t)

	owner := testutil.CreateUser(t, db, "owner@example.com", false)
	stranger := testutil.CreateUser(t, db, "stranger@example.com", false)
	p := createPlanWithGoals(t, db, "5x5 Basics", 1, false)

	status, _ := testutil.DoRequest(t, app, http.MethodPost, "/plan/start", testutil.TokenFor(t, owner),
		fiber.Map{"planId": p.ID})
	require.Equal(t, http.StatusCreated, status)

	var row plan.UserGoalProgress
	require.NoError(t, db.First(&row).Error)

	status, resp := testutil.DoRequest(t, app, http.MethodPatch,
		fmt.Sprintf("/goal-progress/%d/complete", row.ID), testutil.TokenFor(t, stranger), nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Goal progress not found!", resp.Message)
}

func TestPlanStatus(t *testing.T) {
	app, db := setupPlanApp(t)

	user := testutil.CreateUser(t, db, "athlete@example.com", false)
	token := testutil.TokenFor(t, user)

	status, resp := testutil.DoRequest(t, app, http.MethodGet, "/plan/status", token, nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No plans found for the user.", resp.Message)

	p := createPlanWithGoals(t, db, "5x5 Basics", 2, false)
	status, _ = testutil.DoRequest(t, app, http.MethodPost, "/plan/start", token,
		fiber.Map{"planId": p.ID})
	require.Equal(t, http.StatusCreated, status)

	status, resp = testutil.DoRequest(t, app, http.MethodGet,
		fmt.Sprintf("/plan/status?id=%d", p.ID), token, nil)
	require.Equal(t, http.StatusOK, status)

	var userPlan plan.UserPlan
	require.NoError(t, json.Unmarshal(resp.Data, &userPlan))
	assert.Equal(t, p.ID, userPlan.PlanID)
	assert.Len(t, userPlan.UserGoals, 2)

	status, _ = testutil.DoRequest(t, app, http.MethodGet, "/plan/status?id=999", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
