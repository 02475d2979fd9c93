package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/models"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CheckoutRequest struct {
	AddressID     *uint  `json:"address_id"`
	PaymentMethod string `json:"payment_method"`
}

// -------- Errors --------

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrAddressNotFound = errors.New("address not found")
)

// InsufficientStockError names the offending product so the caller can fix
// their cart.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return "Not enough stock for " + e.ProductName
}

// -------- Core Logic --------

// PlaceOrder converts the user's cart into an order inside one transaction.
// Each line's stock is taken with a guarded decrement (stock >= qty in the
// WHERE clause), so two concurrent checkouts can never oversell: the loser's
// decrement matches zero rows and the whole transaction rolls back.
func PlaceOrder(db *gorm.DB, userID uint, req CheckoutRequest) (*models.Order, error) {
	var cartItems []models.CartItem
	if err := db.Preload("Product").Where("user_id = ?", userID).Find(&cartItems).Error; err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	method := req.PaymentMethod
	if method == "" {
		method = "COD"
	}

	// Optional shipping address must belong to the caller.
	if req.AddressID != nil {
		var addr models.Address
		if err := db.Where("id = ? AND user_id = ?", *req.AddressID, userID).
			First(&addr).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrAddressNotFound
			}
			return nil, err
		}
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var total float64
		var orderItems []models.OrderItem

		for _, item := range cartItems {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &InsufficientStockError{ProductName: item.Product.Name}
			}

			subtotal := float64(item.Quantity) * item.Product.Price
			total += subtotal

			productID := item.ProductID
			orderItems = append(orderItems, models.OrderItem{
				ProductID:   &productID,
				ProductName: item.Product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   item.Product.Price,
				Subtotal:    subtotal,
			})
		}

		order = models.Order{
			UserID:            userID,
			TotalAmount:       total,
			PaymentMethod:     method,
			PaymentStatus:     models.PaymentStatusPending,
			OrderStatus:       models.OrderStatusPending,
			ShippingAddressID: req.AddressID,
			Items:             orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		payment := models.Payment{
			OrderID:       order.ID,
			TransactionID: uuid.NewString(),
			Amount:        total,
			Mode:          method,
			Status:        models.PaymentStatusPending,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		// Clear the cart
		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// POST /orders/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		order, err := PlaceOrder(db, middleware.UserID(c), req)
		if err != nil {
			var stockErr *InsufficientStockError
			switch {
			case errors.Is(err, ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty."})
			case errors.Is(err, ErrAddressNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Shipping address not found"})
			case errors.As(err, &stockErr):
				c.JSON(http.StatusConflict, gin.H{"error": stockErr.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		BroadcastOrderEvent("order_placed", *order)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully!",
			"order":   order,
		})
	}
}

// GET /orders
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Where("user_id = ?", middleware.UserID(c)).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID — owner or admin only.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.Atoi(c.Param("orderID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var order models.Order
		if err := db.
			Preload("Items").
			Preload("Payments").
			Preload("ShippingAddress").
			First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}

		if order.UserID != middleware.UserID(c) && !c.GetBool("is_admin") {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
