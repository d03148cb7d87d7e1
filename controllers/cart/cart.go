package cartController

import (
	"errors"

	"shopfit/database"
	"shopfit/middleware"
	"shopfit/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// recomputeSessionTotal sets the session total to
// sum(quantity * current product price) over its items.
func recomputeSessionTotal(tx *gorm.DB, session *models.ShoppingSession) error {
	var total int64
	err := tx.Model(&models.CartItem{}).
		Select("COALESCE(SUM(cart_items.quantity * products.price), 0)").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.session_id = ? AND cart_items.deleted_at IS NULL", session.ID).
		Scan(&total).Error
	if err != nil {
		return err
	}

	session.Total = int(total)
	return tx.Save(session).Error
}

// AddToCart adds a product to the user's cart, reserving inventory at
// cart-mutation time.
func AddToCart(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData := new(struct {
		ProductID uint `json:"productId"`
		Quantity  int  `json:"quantity"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Quantity < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quantity must be greater than 0!", nil)
	}

	db := database.Database.Db

	var product models.Product
	if err := db.Where("id = ?", reqData.ProductID).First(&product).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found!", nil)
	}

	tx := db.Begin()

	// Ensure the user has a shopping session
	var session models.ShoppingSession
	if err := tx.Where(models.ShoppingSession{UserID: userId}).FirstOrCreate(&session).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to open shopping session!", nil)
	}

	var inventory models.ProductInventory
	if err := tx.Where("product_id = ?", product.ID).First(&inventory).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product inventory not found!", nil)
	}

	if inventory.Quantity < reqData.Quantity {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient stock!", nil)
	}

	// Reserve stock at cart-mutation time
	inventory.Quantity -= reqData.Quantity
	if err := tx.Save(&inventory).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update inventory!", nil)
	}

	created := false
	var cartItem models.CartItem
	err := tx.Where("session_id = ? AND product_id = ?", session.ID, product.ID).First(&cartItem).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read cart!", nil)
		}
		cartItem = models.CartItem{
			SessionID: session.ID,
			ProductID: product.ID,
			Quantity:  reqData.Quantity,
		}
		if err := tx.Create(&cartItem).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add cart item!", nil)
		}
		created = true
	} else {
		cartItem.Quantity += reqData.Quantity
		if err := tx.Save(&cartItem).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update cart item!", nil)
		}
	}

	if err := recomputeSessionTotal(tx, &session); err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update cart total!", nil)
	}

	tx.Commit()

	statusCode := fiber.StatusOK
	message := "Cart item updated!"
	if created {
		statusCode = fiber.StatusCreated
		message = "Cart item added!"
	}

	return middleware.JsonResponse(c, statusCode, true, message, fiber.Map{
		"cartItem": cartItem,
		"total":    session.Total,
	})
}

// UpdateCartItem sets a new quantity for a product already in the cart,
// adjusting inventory by the delta.
func UpdateCartItem(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData := new(struct {
		ProductID uint `json:"productId"`
		Quantity  int  `json:"quantity"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Quantity < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quantity must be greater than 0!", nil)
	}

	db := database.Database.Db

	var session models.ShoppingSession
	if err := db.Where("user_id = ?", userId).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Shopping session not found!", nil)
	}

	tx := db.Begin()

	var cartItem models.CartItem
	if err := tx.Where("session_id = ? AND product_id = ?", session.ID, reqData.ProductID).First(&cartItem).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product not found in cart!", nil)
	}

	var inventory models.ProductInventory
	if err := tx.Where("product_id = ?", reqData.ProductID).First(&inventory).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product inventory not found!", nil)
	}

	delta := reqData.Quantity - cartItem.Quantity
	if delta > 0 {
		if inventory.Quantity < delta {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient stock!", nil)
		}
		inventory.Quantity -= delta
	} else {
		// Restore stock for the reduced quantity
		inventory.Quantity += -delta
	}

	if err := tx.Save(&inventory).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update inventory!", nil)
	}

	cartItem.Quantity = reqData.Quantity
	if err := tx.Save(&cartItem).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update cart item!", nil)
	}

	if err := recomputeSessionTotal(tx, &session); err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update cart total!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart item updated!", fiber.Map{
		"cartItem": cartItem,
		"total":    session.Total,
	})
}

// RemoveCartItem deletes a cart line and restores its reserved inventory.
func RemoveCartItem(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	itemId := c.Params("id")

	db := database.Database.Db

	var session models.ShoppingSession
	if err := db.Where("user_id = ?", userId).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Shopping session not found!", nil)
	}

	tx := db.Begin()

	var cartItem models.CartItem
	if err := tx.Where("id = ? AND session_id = ?", itemId, session.ID).First(&cartItem).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Cart item not found!", nil)
	}

	var inventory models.ProductInventory
	if err := tx.Where("product_id = ?", cartItem.ProductID).First(&inventory).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Product inventory not found!", nil)
	}

	// Every removal path restores the reserved stock
	inventory.Quantity += cartItem.Quantity
	if err := tx.Save(&inventory).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to restore inventory!", nil)
	}

	if err := tx.Unscoped().Delete(&cartItem).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove cart item!", nil)
	}

	if err := recomputeSessionTotal(tx, &session); err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update cart total!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart item removed!", fiber.Map{
		"total": session.Total,
	})
}

// ListCart returns the user's cart items and session total.
func ListCart(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	db := database.Database.Db

	var session models.ShoppingSession
	if err := db.Where("user_id = ?", userId).First(&session).Error; err != nil {
		// No session yet means an empty cart
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched!", fiber.Map{
			"items": []models.CartItem{},
			"total": 0,
		})
	}

	var items []models.CartItem
	if err := db.Preload("Product").Where("session_id = ?", session.ID).Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched!", fiber.Map{
		"items": items,
		"total": session.Total,
	})
}
