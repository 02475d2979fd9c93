package cartControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/models"
	"gorm.io/gorm"
)

type UpdateCartInput struct {
	// cart item id -> requested quantity; 0 removes the line
	Items map[uint]int `json:"items" binding:"required"`
}

// POST /cart/items/:productID
//
// Adds one unit of a product. An existing line is bumped by 1 but never past
// the current stock; in that case the call succeeds with a warning and the
// quantity stays put.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		productID, err := strconv.Atoi(c.Param("productID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		if product.Stock <= 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Product is out of stock!"})
			return
		}

		var item models.CartItem
		err = db.Where("user_id = ? AND product_id = ?", userID, product.ID).First(&item).Error
		switch {
		case err == nil:
			if item.Quantity >= product.Stock {
				c.JSON(http.StatusOK, gin.H{
					"warning": "You already added maximum available stock.",
					"item":    item,
				})
				return
			}
			item.Quantity++
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "Added to cart!", "item": item})

		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{UserID: userID, ProductID: product.ID, Quantity: 1}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
			c.JSON(http.StatusCreated, gin.H{"message": "Added to cart!", "item": item})

		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
		}
	}
}

// PUT /cart
//
// Batch quantity update. Quantity 0 deletes the line; a quantity above the
// product's current stock is clamped down to stock with a per-line warning.
// Everything commits in one transaction.
func UpdateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var input UpdateCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var warnings []string
		err := db.Transaction(func(tx *gorm.DB) error {
			for itemID, qty := range input.Items {
				if qty < 0 {
					qty = 0
				}

				var item models.CartItem
				if err := tx.Preload("Product").
					Where("id = ? AND user_id = ?", itemID, userID).
					First(&item).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						continue // not this user's line, skip
					}
					return err
				}

				if qty == 0 {
					if err := tx.Delete(&item).Error; err != nil {
						return err
					}
					continue
				}

				if qty > item.Product.Stock {
					qty = item.Product.Stock
					warnings = append(warnings, fmt.Sprintf(
						"Reduced quantity for %s due to limited stock.", item.Product.Name))
				}
				if err := tx.Model(&item).Update("quantity", qty).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart updated!", "warnings": warnings})
	}
}

// GET /cart
//
// The total is computed against current product prices, not a snapshot, so
// it can drift between views when prices change.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		var items []models.CartItem
		if err := db.Preload("Product").
			Where("user_id = ?", userID).
			Order("added_at").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		var total float64
		for _, item := range items {
			total += float64(item.Quantity) * item.Product.Price
		}

		c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.UserID(c)

		if err := db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
