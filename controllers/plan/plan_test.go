package planController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopfit/models/plan"
	"shopfit/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanCrudRequiresStaff(t *testing.T) {
	app, db := setupPlanApp(t)

	member := testutil.CreateUser(t, db, "member@example.com", false)
	staff := testutil.CreateUser(t, db, "staff@example.com", true)

	body := fiber.Map{"name": "5x5 Basics", "planType": "exercise", "durationDays": 14, "subscriptionRequired": false}

	status, _ := testutil.DoRequest(t, app, http.MethodPost, "/plan", testutil.TokenFor(t, member), body)
	require.Equal(t, http.StatusForbidden, status)

	status, resp := testutil.DoRequest(t, app, http.MethodPost, "/plan", testutil.TokenFor(t, staff), body)
	require.Equal(t, http.StatusCreated, status)

	var created plan.Plan
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Equal(t, "5x5 Basics", created.Name)
	assert.False(t, created.SubscriptionRequired)

	// A free plan stays free after the round trip through the database
	var persisted plan.Plan
	require.NoError(t, db.First(&persisted, created.ID).Error)
	assert.False(t, persisted.SubscriptionRequired)

	// The list is public
	status, resp = testutil.DoRequest(t, app, http.MethodGet, "/plan", "", nil)
	require.Equal(t, http.StatusOK, status)
	var plans []plan.Plan
	require.NoError(t, json.Unmarshal(resp.Data, &plans))
	assert.Len(t, plans, 1)
}

func TestCreatePlanValidatesType(t *testing.T) {
	app, db := setupPlanApp(t)

	staff := testutil.CreateUser(t, db, "staff@example.com", true)

	status, _ := testutil.DoRequest(t, app, http.MethodPost, "/plan", testutil.TokenFor(t, staff),
		fiber.Map{"name": "Mystery", "planType": "yoga", "durationDays": 7})
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestCreateGoalsRejectsDuplicateDay(t *testing.T) {
	app, db := setupPlanApp(t)

	staff := testutil.CreateUser(t, db, "staff@example.com", true)
	token := testutil.TokenFor(t, staff)
	p := createPlanWithGoals(t, db, "5x5 Basics", 0, false)

	status, _ := testutil.DoRequest(t, app, http.MethodPost, "/goal", token, []fiber.Map{
		{"planId": p.ID, "dayNumber": 1, "description": "Squats"},
		{"planId": p.ID, "dayNumber": 2, "description": "Bench"},
	})
	require.Equal(t, http.StatusCreated, status)

	status, resp := testutil.DoRequest(t, app, http.MethodPost, "/goal", token, []fiber.Map{
		{"planId": p.ID, "dayNumber": 2, "description": "Deadlift"},
	})
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Duplicate day number within the plan!", resp.Message)
}

func TestListGoalsOrderedByDay(t *testing.T) {
	app, db := setupPlanApp(t)

	p := createPlanWithGoals(t, db, "5x5 Basics", 0, false)
	require.NoError(t, db.Create(&plan.Goal{PlanID: p.ID, DayNumber: 3, Description: "Deadlift"}).Error)
	require.NoError(t, db.Create(&plan.Goal{PlanID: p.ID, DayNumber: 1, Description: "Squats"}).Error)

	status, resp := testutil.DoRequest(t, app, http.MethodGet, fmt.Sprintf("/plan/%d/goals", p.ID), "", nil)
	require.Equal(t, http.StatusOK, status)

	var goals []plan.Goal
	require.NoError(t, json.Unmarshal(resp.Data, &goals))
	require.Len(t, goals, 2)
	assert.Equal(t, 1, goals[0].DayNumber)
	assert.Equal(t, 3, goals[1].DayNumber)
}

func postMultipart(t *testing.T, app *fiber.App, path, token, content string) (int, testutil.Envelope) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("content", content))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope testutil.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func TestCreatePostRequiresCompletedPlan(t *testing.T) {
	app, db := setupPlanApp(t)

	user := testutil.CreateUser(t, db, "athlete@example.com", false)
	token := testutil.TokenFor(t, user)
	p := createPlanWithGoals(t, db, "5x5 Basics", 1, false)

	// Not started yet
	status, resp := postMultipart(t, app, fmt.Sprintf("/post/%d", p.ID), token, "Crushed it!")
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "User has not completed the plan.", resp.Message)

	// Start and complete the single goal
	status, _ = testutil.DoRequest(t, app, http.MethodPost, "/plan/start", token,
		fiber.Map{"planId": p.ID})
	require.Equal(t, http.StatusCreated, status)

	var row plan.UserGoalProgress
	require.NoError(t, db.First(&row).Error)
	status, _ = testutil.DoRequest(t, app, http.MethodPatch,
		fmt.Sprintf("/goal-progress/%d/complete", row.ID), token, nil)
	require.Equal(t, http.StatusOK, status)

	status, resp = postMultipart(t, app, fmt.Sprintf("/post/%d", p.ID), token, "Crushed it!")
	require.Equal(t, http.StatusCreated, status)

	var post plan.Post
	require.NoError(t, json.Unmarshal(resp.Data, &post))
	assert.Equal(t, "Crushed it!", post.Content)
	assert.Equal(t, p.ID, post.PlanID)
}

func TestListPostsFiltersByUser(t *testing.T) {
	app, db := setupPlanApp(t)

	alice := testutil.CreateUser(t, db, "alice@example.com", false)
	bob := testutil.CreateUser(t, db, "bob@example.com", false)
	token := testutil.TokenFor(t, alice)
	p := createPlanWithGoals(t, db, "5x5 Basics", 0, false)

	require.NoError(t, db.Create(&plan.Post{UserID: alice.ID, PlanID: p.ID, Content: "Done!"}).Error)
	require.NoError(t, db.Create(&plan.Post{UserID: bob.ID, PlanID: p.ID, Content: "Me too!"}).Error)

	status, resp := testutil.DoRequest(t, app, http.MethodGet,
		fmt.Sprintf("/post?user=%d", alice.ID), token, nil)
	require.Equal(t, http.StatusOK, status)

	var posts []plan.Post
	require.NoError(t, json.Unmarshal(resp.Data, &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, alice.ID, posts[0].UserID)

	status, resp = testutil.DoRequest(t, app, http.MethodGet, "/post?user=999", token, nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No posts found.", resp.Message)
}
