package planController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopfit/models"
	"shopfit/models/plan"
	"shopfit/routers/planRoutes"
	"shopfit/routers/webhookRoutes"
	"shopfit/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
	"gorm.io/gorm"
)

const subscriptionWebhookSecret = "whsec_subscription_test"

func setupPlanApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := testutil.SetupDB(t)
	app := fiber.New()
	planRoutes.SetupPlanRoutes(app)
	webhookRoutes.SetupWebhookRoutes(app)
	return app, db
}

func createSubscriptionPlan(t *testing.T, db *gorm.DB, name string, price float64, days int) *plan.SubscriptionPlan {
	t.Helper()

	subscriptionPlan := &plan.SubscriptionPlan{Name: name, Price: price, Days: days}
	require.NoError(t, db.Create(subscriptionPlan).Error)
	return subscriptionPlan
}

func invoiceEvent(eventID string, userID uint, planID uint, amountPaid int64) []byte {
	return []byte(fmt.Sprintf(
		`{"id":%q,"api_version":%q,"type":"invoice.payment_succeeded","data":{"object":{"id":"in_test_1","amount_paid":%d,"metadata":{"type":"plan_subscription","user_id":"%d","selected_plan":"%d"}}}}`,
		eventID, stripe.APIVersion, amountPaid, userID, planID))
}

func postSignedWebhook(t *testing.T, app *fiber.App, path string, payload []byte, secret string) (int, testutil.Envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Stripe-Signature", testutil.SignWebhook(payload, secret))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope testutil.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func TestSubscribeCreatesInactiveEnrollment(t *testing.T) {
	app, db := setupPlanApp(t)
	gateway := testutil.UseFakeGateway(t)

	user := testutil.CreateUser(t, db, "member@example.com", false)
	token := testutil.TokenFor(t, user)
	subscriptionPlan := createSubscriptionPlan(t, db, "Gold", 9.99, 30)

	status, resp := testutil.DoRequest(t, app, http.MethodPost, "/subscription", token,
		fiber.Map{"subscriptionPlanId": subscriptionPlan.ID})
	require.Equal(t, http.StatusCreated, status)

	var data struct {
		Subscription plan.UserSubscription `json:"subscription"`
		PaymentURL   string                `json:"paymentUrl"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, plan.SubscriptionInactive, data.Subscription.Status)
	assert.False(t, data.Subscription.PaymentStatus)
	assert.Equal(t, "https://checkout.test/subscription", data.PaymentURL)
	assert.Equal(t, "plan_subscription", gateway.SubscriptionMetadata["type"])
	assert.Equal(t, fmt.Sprint(subscriptionPlan.ID), gateway.SubscriptionMetadata["selected_plan"])
}

func TestSubscribeRejectedWhileActive(t *testing.T) {
	app, db := setupPlanApp(t)
	testutil.UseFakeGateway(t)

	user := testutil.CreateUser(t, db, "member@example.com", false)
	token := testutil.TokenFor(t, user)
	subscriptionPlan := createSubscriptionPlan(t, db, "Gold", 9.99, 30)

	require.NoError(t, db.Create(&plan.UserSubscription{
		UserID:             user.ID,
		SubscriptionPlanID: subscriptionPlan.ID,
		Status:             plan.SubscriptionActive,
		PaymentStatus:      true,
	}).Error)

	status, resp := testutil.DoRequest(t, app, http.MethodPost, "/subscription", token,
		fiber.Map{"subscriptionPlanId": subscriptionPlan.ID})
	require.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "You must unsubscribe from your current subscription before creating a new one.", resp.Message)
}

func TestSubscribeReusesLapsedEnrollment(t *testing.T) {
	app, db := setupPlanApp(t)
	testutil.UseFakeGateway(t)

	user := testutil.CreateUser(t, db, "member@example.com", false)
	token := testutil.TokenFor(t, user)
	gold := createSubscriptionPlan(t, db, "Gold", 9.99, 30)
	silver := createSubscriptionPlan(t, db, "Silver", 4.99, 30)

	lapsed := plan.UserSubscription{
		UserID:             user.ID,
		SubscriptionPlanID: gold.ID,
		Status:             plan.SubscriptionInactive,
	}
	require.NoError(t, db.Create(&lapsed).Error)

	status, _ := testutil.DoRequest(t, app, http.MethodPost, "/subscription", token,
		fiber.Map{"subscriptionPlanId": silver.ID})
	require.Equal(t, http.StatusCreated, status)

	var count int64
	require.NoError(t, db.Model(&plan.UserSubscription{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var reloaded plan.UserSubscription
	require.NoError(t, db.First(&reloaded, lapsed.ID).Error)
	assert.Equal(t, silver.ID, reloaded.SubscriptionPlanID)
}

func TestSubscriptionWebhookActivatesEnrollment(t *testing.T) {
	app, db := setupPlanApp(t)
	testutil.UseFakeGateway(t)

	user := testutil.CreateUser(t, db, "member@example.com", false)
	subscriptionPlan := createSubscriptionPlan(t, db, "Gold", 9.99, 30)

	subscription := plan.UserSubscription{
		UserID:             user.ID,
		SubscriptionPlanID: subscriptionPlan.ID,
		Status:             plan.SubscriptionInactive,
	}
	require.NoError(t, db.Create(&subscription).Error)

	payload := invoiceEvent("evt_sub_1", user.ID, subscriptionPlan.ID, 999)
	status, resp := postSignedWebhook(t, app, "/webhook/subscription", payload, subscriptionWebhookSecret)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Subscription activated!", resp.Message)

	var reloaded plan.UserSubscription
	require.NoError(t, db.First(&reloaded, subscription.ID).Error)
	assert.Equal(t, plan.SubscriptionActive, reloaded.Status)
	assert.True(t, reloaded.PaymentStatus)

	var payment models.Payments
	require.NoError(t, db.Where("subscription_plan_id = ?", subscriptionPlan.ID).First(&payment).Error)
	assert.Equal(t, models.PaymentPaid, payment.Status)
	assert.Equal(t, 9.99, payment.Amount)
	assert.Nil(t, payment.OrderID)
}

func TestSubscriptionWebhookDuplicateDeliveryIsNoOp(t *testing.T) {
	app, db := setupPlanApp(t)
	testutil.UseFakeGateway(t)

	user := testutil.CreateUser(t, db, "member@example.com", false)
	subscriptionPlan := createSubscriptionPlan(t, db, "Gold", 9.99, 30)
	require.NoError(t, db.Create(&plan.UserSubscription{
		UserID:             user.ID,
		SubscriptionPlanID: subscriptionPlan.ID,
		Status:             plan.SubscriptionInactive,
	}).Error)

	payload := invoiceEvent("evt_sub_dup", user.ID, subscriptionPlan.ID, 999)
	status, _ := postSignedWebhook(t, app, "/webhook/subscription", payload, subscriptionWebhookSecret)
	require.Equal(t, http.StatusOK, status)

	status, resp := postSignedWebhook(t, app, "/webhook/subscription", payload, subscriptionWebhookSecret)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Event already processed.", resp.Message)

	var paymentCount int64
	require.NoError(t, db.Model(&models.Payments{}).Count(&paymentCount).Error)
	assert.Equal(t, int64(1), paymentCount)
}

func TestSubscriptionWebhookRejectsBadSignature(t *testing.T) {
	app, db := setupPlanApp(t)

	user := testutil.CreateUser(t, db, "member@example.com", false)
	payload := invoiceEvent("evt_sub_bad", user.ID, 1, 999)

	status, resp := postSignedWebhook(t, app, "/webhook/subscription", payload, "whsec_wrong")
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid payload or signature!", resp.Message)
}

func TestUnsubscribe(t *testing.T) {
	app, db := setupPlanApp(t)

	user := testutil.CreateUser(t, db, "member@example.com", false)
	token := testutil.TokenFor(t, user)
	subscriptionPlan := createSubscriptionPlan(t, db, "Gold", 9.99, 30)

	status, resp := testutil.DoRequest(t, app, http.MethodPatch, "/subscription/unsubscribe", token, nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No active subscription found.", resp.Message)

	subscription := plan.UserSubscription{
		UserID:             user.ID,
		SubscriptionPlanID: subscriptionPlan.ID,
		Status:             plan.SubscriptionActive,
		PaymentStatus:      true,
	}
	require.NoError(t, db.Create(&subscription).Error)

	status, _ = testutil.DoRequest(t, app, http.MethodPatch, "/subscription/unsubscribe", token, nil)
	require.Equal(t, http.StatusOK, status)

	var reloaded plan.UserSubscription
	require.NoError(t, db.First(&reloaded, subscription.ID).Error)
	assert.Equal(t, plan.SubscriptionInactive, reloaded.Status)
}
