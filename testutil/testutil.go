package testutil

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"shopfit/config"
	"shopfit/database"
	"shopfit/middleware"
	"shopfit/models"
	"shopfit/payments"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDB wires an isolated in-memory database into the global handle
// used by the controllers. Each call gets its own database.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:                            "8080",
		JWTKey:                          "test-jwt-secret",
		SaltRound:                       4,
		StripeSecretKey:                 "sk_test_dummy",
		StripeWebhookSecret:             "whsec_order_test",
		StripeSubscriptionWebhookSecret: "whsec_subscription_test",
		SuccessURL:                      "http://localhost/success",
		CancelURL:                       "http://localhost/cancel",
		SubscriptionSuccessURL:          "http://localhost/subscription/success",
		SubscriptionCancelURL:           "http://localhost/subscription/cancel",
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// A single connection keeps the shared in-memory database alive.
	sqlDb.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	t.Cleanup(func() {
		sqlDb.Close()
	})

	return db
}

// CreateUser inserts a user with the given password already hashed.
func CreateUser(t *testing.T, db *gorm.DB, email string, isStaff bool) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), 4)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: string(hashed),
		IsStaff:  isStaff,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

// CreateProduct inserts a product with a stocked inventory row.
func CreateProduct(t *testing.T, db *gorm.DB, name string, price, stock int) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:  name,
		Price: price,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	inventory := &models.ProductInventory{
		ProductID: product.ID,
		Quantity:  stock,
	}
	if err := db.Create(inventory).Error; err != nil {
		t.Fatalf("failed to create inventory: %v", err)
	}
	return product
}

// TokenFor returns a bearer token for the given user.
func TokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email, user.IsStaff)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

// FakeGateway is a payment gateway stub that records the sessions it was
// asked to create instead of calling out to the processor.
type FakeGateway struct {
	Customers            []string
	CheckoutMetadata     map[string]string
	SubscriptionMetadata map[string]string
	CheckoutItems        []payments.LineItem
	Err                  error
}

func (f *FakeGateway) CreateCustomer(email, name string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	id := "cus_test_" + uuid.New().String()[:8]
	f.Customers = append(f.Customers, id)
	return id, nil
}

func (f *FakeGateway) CreateCheckoutSession(customerID string, items []payments.LineItem, metadata map[string]string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	f.CheckoutItems = items
	f.CheckoutMetadata = metadata
	return "https://checkout.test/session", nil
}

func (f *FakeGateway) CreateSubscriptionSession(customerID, planName string, unitAmount int64, metadata map[string]string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	f.SubscriptionMetadata = metadata
	return "https://checkout.test/subscription", nil
}

// UseFakeGateway swaps the active gateway for the test and restores it after.
func UseFakeGateway(t *testing.T) *FakeGateway {
	t.Helper()

	fake := &FakeGateway{}
	previous := payments.Active
	payments.Active = fake
	t.Cleanup(func() {
		payments.Active = previous
	})
	return fake
}

// SignWebhook builds a Stripe-Signature header for the payload using the
// scheme the processor documents: v1 = HMAC-SHA256(secret, "<ts>.<payload>").
func SignWebhook(payload []byte, secret string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

// Envelope is the JSON response shape every handler returns.
type Envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DoRequest runs a JSON request against the app and decodes the envelope.
func DoRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, Envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var envelope Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.StatusCode, envelope
}
