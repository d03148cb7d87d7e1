package categoryController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"shopfit/models"
	"shopfit/routers/catalogRoutes"
	"shopfit/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCategoryApp(t *testing.T) (*fiber.App, *gorm.DB, string) {
	db := testutil.SetupDB(t)
	app := fiber.New()
	catalogRoutes.SetupCatalogRoutes(app)

	staff := testutil.CreateUser(t, db, "staff@example.com", true)
	return app, db, testutil.TokenFor(t, staff)
}

func TestCategoryLifecycle(t *testing.T) {
	app, _, staffToken := setupCategoryApp(t)

	status, resp := testutil.DoRequest(t, app, http.MethodPost, "/category", staffToken,
		fiber.Map{"name": "Supplements", "description": "Powders and bars"})
	require.Equal(t, http.StatusCreated, status)

	var category models.Category
	require.NoError(t, json.Unmarshal(resp.Data, &category))
	assert.Equal(t, "Supplements", category.Name)

	status, resp = testutil.DoRequest(t, app, http.MethodPatch,
		fmt.Sprintf("/category/%d", category.ID), staffToken,
		fiber.Map{"description": "Everything nutrition"})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(resp.Data, &category))
	assert.Equal(t, "Everything nutrition", category.Description)

	status, resp = testutil.DoRequest(t, app, http.MethodGet, "/category", "", nil)
	require.Equal(t, http.StatusOK, status)
	var categories []models.Category
	require.NoError(t, json.Unmarshal(resp.Data, &categories))
	assert.Len(t, categories, 1)

	status, _ = testutil.DoRequest(t, app, http.MethodDelete,
		fmt.Sprintf("/category/%d", category.ID), staffToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = testutil.DoRequest(t, app, http.MethodGet,
		fmt.Sprintf("/category/%d", category.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	app, _, staffToken := setupCategoryApp(t)

	status, _ := testutil.DoRequest(t, app, http.MethodPost, "/category", staffToken,
		fiber.Map{"name": "Supplements"})
	require.Equal(t, http.StatusCreated, status)

	status, resp := testutil.DoRequest(t, app, http.MethodPost, "/category", staffToken,
		fiber.Map{"name": "Supplements"})
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Category already exists!", resp.Message)
}

func TestCreateCategoryRequiresStaff(t *testing.T) {
	app, db, _ := setupCategoryApp(t)

	member := testutil.CreateUser(t, db, "member@example.com", false)
	status, _ := testutil.DoRequest(t, app, http.MethodPost, "/category", testutil.TokenFor(t, member),
		fiber.Map{"name": "Supplements"})
	assert.Equal(t, http.StatusForbidden, status)
}
