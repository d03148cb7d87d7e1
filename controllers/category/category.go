package categoryController

import (
	"shopfit/database"
	"shopfit/middleware"
	"shopfit/models"

	"github.com/gofiber/fiber/v2"
)

// ListCategories returns all categories (public)
func ListCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.Database.Db.Order("name asc").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched!", categories)
}

// GetCategory returns a single category (public)
func GetCategory(c *fiber.Ctx) error {
	categoryId := c.Params("id")

	var category models.Category
	if err := database.Database.Db.Where("id = ?", categoryId).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category fetched!", category)
}

// CreateCategory adds a new category (staff only)
func CreateCategory(c *fiber.Ctx) error {
	reqData := new(struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Duplicate name check
	if err := db.Where("name = ?", reqData.Name).First(&models.Category{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Category already exists!", nil)
	}

	category := models.Category{
		Name:        reqData.Name,
		Description: reqData.Description,
	}

	if err := db.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

// UpdateCategory updates a category (staff only)
func UpdateCategory(c *fiber.Ctx) error {
	categoryId := c.Params("id")

	reqData := new(struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var category models.Category
	if err := db.Where("id = ?", categoryId).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	if reqData.Name != "" {
		category.Name = reqData.Name
	}
	if reqData.Description != "" {
		category.Description = reqData.Description
	}

	if err := db.Save(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

// DeleteCategory removes a category (staff only)
func DeleteCategory(c *fiber.Ctx) error {
	categoryId := c.Params("id")

	db := database.Database.Db

	var category models.Category
	if err := db.Where("id = ?", categoryId).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	if err := db.Delete(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}
