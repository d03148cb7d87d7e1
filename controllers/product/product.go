package productController

import (
	"log"

	"shopfit/database"
	"shopfit/middleware"
	"shopfit/models"
	"shopfit/utils"

	"github.com/gofiber/fiber/v2"
)

// ListProducts returns all products with categories, images and inventory (public)
func ListProducts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db

	var total int64
	db.Model(&models.Product{}).Count(&total)

	var products []models.Product
	if err := db.
		Preload("Categories").
		Preload("Images").
		Preload("Inventory").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch products!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Products fetched!", fiber.Map{
		"products": products,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetProduct returns a single product (public)
func GetProduct(c *fiber.Ctx) error {
	productId := c.Params("id")

	var product models.Product
	if err := database.Database.Db.
		Preload("Categories").
		Preload("Images").
		Preload("Inventory").
		Where("id = ?", productId).
		First(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product fetched!", product)
}

// CreateProduct adds a new product (staff only)
func CreateProduct(c *fiber.Ctx) error {
	reqData := new(struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Price       int    `json:"price"`
		CategoryIDs []uint `json:"categoryIds"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var categories []models.Category
	if len(reqData.CategoryIDs) > 0 {
		if err := db.Where("id IN ?", reqData.CategoryIDs).Find(&categories).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
		}
		if len(categories) != len(reqData.CategoryIDs) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "One or more categories not found!", nil)
		}
	}

	product := models.Product{
		Name:        reqData.Name,
		Description: reqData.Description,
		Price:       reqData.Price,
		Categories:  categories,
	}

	if err := db.Create(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create product!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Product created successfully!", product)
}

// UpdateProduct updates product fields (staff only)
func UpdateProduct(c *fiber.Ctx) error {
	productId := c.Params("id")

	reqData := new(struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Price       *int    `json:"price"`
		CategoryIDs *[]uint `json:"categoryIds"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var product models.Product
	if err := db.Where("id = ?", productId).First(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	if reqData.Name != "" {
		product.Name = reqData.Name
	}
	if reqData.Description != "" {
		product.Description = reqData.Description
	}
	if reqData.Price != nil {
		product.Price = *reqData.Price
	}

	if err := db.Save(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update product!", nil)
	}

	if reqData.CategoryIDs != nil {
		var categories []models.Category
		if err := db.Where("id IN ?", *reqData.CategoryIDs).Find(&categories).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
		}
		if err := db.Model(&product).Association("Categories").Replace(categories); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update categories!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product updated successfully!", product)
}

// DeleteProduct removes a product (staff only)
func DeleteProduct(c *fiber.Ctx) error {
	productId := c.Params("id")

	db := database.Database.Db

	var product models.Product
	if err := db.Where("id = ?", productId).First(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	if err := db.Delete(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete product!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Product deleted successfully!", nil)
}

// AddProductImage uploads an image to the image host and attaches it (staff only)
func AddProductImage(c *fiber.Ctx) error {
	productId := c.Params("id")

	db := database.Database.Db

	var product models.Product
	if err := db.Where("id = ?", productId).First(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}

	url, err := utils.UploadImage(file, "products")
	if err != nil {
		log.Printf("Error uploading product image: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload image!", nil)
	}

	image := models.ProductImage{
		ProductID: product.ID,
		URL:       url,
	}

	if err := db.Create(&image).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save image!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Image uploaded successfully!", image)
}

// SetPrimaryImage marks one of the product's images as primary (staff only)
func SetPrimaryImage(c *fiber.Ctx) error {
	productId := c.Params("id")

	reqData := new(struct {
		ImageID uint `json:"imageId"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.ImageID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "imageId is required!", nil)
	}

	db := database.Database.Db

	var product models.Product
	if err := db.Where("id = ?", productId).First(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	var image models.ProductImage
	if err := db.Where("id = ?", reqData.ImageID).First(&image).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Image not found!", nil)
	}

	if image.ProductID != product.ID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "The image does not belong to this product!", nil)
	}

	product.PrimaryImageID = &image.ID
	if err := db.Save(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to set primary image!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Primary image updated!", product)
}

// ListInventory returns inventory rows with products (staff only)
func ListInventory(c *fiber.Ctx) error {
	var inventory []models.ProductInventory
	if err := database.Database.Db.Order("product_id asc").Find(&inventory).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch inventory!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Inventory fetched!", inventory)
}

// UpsertInventory creates an inventory row or adds to its quantity (staff only)
func UpsertInventory(c *fiber.Ctx) error {
	reqData := new(struct {
		ProductID uint `json:"productId"`
		Quantity  int  `json:"quantity"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var product models.Product
	if err := db.Where("id = ?", reqData.ProductID).First(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	var inventory models.ProductInventory
	err := db.Where("product_id = ?", product.ID).First(&inventory).Error
	if err != nil {
		// New inventory row
		inventory = models.ProductInventory{
			ProductID: product.ID,
			Quantity:  reqData.Quantity,
		}
		if err := db.Create(&inventory).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create inventory!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Inventory created!", inventory)
	}

	inventory.Quantity += reqData.Quantity
	if err := db.Save(&inventory).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update inventory!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Inventory updated!", inventory)
}
