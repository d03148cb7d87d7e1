package orderController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"shopfit/models"
	"shopfit/routers/catalogRoutes"
	"shopfit/routers/orderRoutes"
	"shopfit/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupReviewApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db := testutil.SetupDB(t)
	app := fiber.New()
	orderRoutes.SetupOrderRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	return app, db
}

// seedOrderItem creates a delivered order with one line item for the user.
func seedOrderItem(t *testing.T, db *gorm.DB, userID, productID uint) models.OrderItems {
	t.Helper()

	order := models.OrderDetails{UserID: userID, Status: models.OrderDelivered, TotalPrice: 10}
	require.NoError(t, db.Create(&order).Error)
	item := models.OrderItems{OrderID: order.ID, ProductID: productID, Quantity: 1, Price: 10}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func TestCreateReviewAndDuplicateRejected(t *testing.T) {
	app, db := setupReviewApp(t)

	user := testutil.CreateUser(t, db, "buyer@example.com", false)
	token := testutil.TokenFor(t, user)
	product := testutil.CreateProduct(t, db, "Protein Bar", 10, 5)
	item := seedOrderItem(t, db, user.ID, product.ID)

	status, resp := testutil.DoRequest(t, app, http.MethodPost, "/review", token,
		fiber.Map{"orderItemId": item.ID, "rating": 5, "comment": "Great!"})
	require.Equal(t, http.StatusCreated, status)
	require.True(t, resp.Status)

	status, resp = testutil.DoRequest(t, app, http.MethodPost, "/review", token,
		fiber.Map{"orderItemId": item.ID, "rating": 3, "comment": "Changed my mind"})
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "You have already reviewed this item!", resp.Message)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateReviewRequiresOwnOrderItem(t *testing.T) {
	app, db := setupReviewApp(t)

	owner := testutil.CreateUser(t, db, "owner@example.com", false)
	stranger := testutil.CreateUser(t, db, "stranger@example.com", false)
	product := testutil.CreateProduct(t, db, "Protein Bar", 10, 5)
	item := seedOrderItem(t, db, owner.ID, product.ID)

	status, resp := testutil.DoRequest(t, app, http.MethodPost, "/review", testutil.TokenFor(t, stranger),
		fiber.Map{"orderItemId": item.ID, "rating": 4, "comment": "Not mine"})
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Order item not found!", resp.Message)
}

func TestListProductReviewsMasksUser(t *testing.T) {
	app, db := setupReviewApp(t)

	user := testutil.CreateUser(t, db, "buyer@example.com", false)
	product := testutil.CreateProduct(t, db, "Protein Bar", 10, 5)
	item := seedOrderItem(t, db, user.ID, product.ID)

	require.NoError(t, db.Create(&models.Review{
		UserID: user.ID, OrderItemID: item.ID, Rating: 5, Comment: "Great!",
	}).Error)

	status, resp := testutil.DoRequest(t, app, http.MethodGet,
		fmt.Sprintf("/product/%d/reviews", product.ID), "", nil)
	require.Equal(t, http.StatusOK, status)

	var reviews []struct {
		Rating   int    `json:"rating"`
		Comment  string `json:"comment"`
		UserName string `json:"userName"`
		User     struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, "Test User", reviews[0].UserName)
	assert.Empty(t, reviews[0].User.Email)
}

func TestListEligibleOrderItemsExcludesReviewed(t *testing.T) {
	app, db := setupReviewApp(t)

	user := testutil.CreateUser(t, db, "buyer@example.com", false)
	token := testutil.TokenFor(t, user)
	product := testutil.CreateProduct(t, db, "Protein Bar", 10, 5)
	reviewed := seedOrderItem(t, db, user.ID, product.ID)
	pending := seedOrderItem(t, db, user.ID, product.ID)

	require.NoError(t, db.Create(&models.Review{
		UserID: user.ID, OrderItemID: reviewed.ID, Rating: 4,
	}).Error)

	status, resp := testutil.DoRequest(t, app, http.MethodGet,
		fmt.Sprintf("/review/eligible?productId=%d", product.ID), token, nil)
	require.Equal(t, http.StatusOK, status)

	var items []models.OrderItems
	require.NoError(t, json.Unmarshal(resp.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, pending.ID, items[0].ID)
}
