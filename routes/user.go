package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/junaidrashid-git/storefront-api/controllers/cart"
	orderControllers "github.com/junaidrashid-git/storefront-api/controllers/order"
	reviewControllers "github.com/junaidrashid-git/storefront-api/controllers/review"
	userControllers "github.com/junaidrashid-git/storefront-api/controllers/user"
	wishlistControllers "github.com/junaidrashid-git/storefront-api/controllers/wishlist"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers every endpoint that needs a logged-in user.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/")
	userGroup.Use(middleware.RequireAuth)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(db))                        // GET /cart
			cartGroup.PUT("", cartControllers.UpdateCart(db))                     // PUT /cart
			cartGroup.POST("/items/:productID", cartControllers.AddToCart(db))    // POST /cart/items/:productID
			cartGroup.DELETE("", cartControllers.ClearCart(db))                   // DELETE /cart
		}

		// ──────────────── Orders ────────────────
		orderGroup := userGroup.Group("/orders")
		{
			orderGroup.POST("/checkout", orderControllers.CheckoutHandler(db))    // POST /orders/checkout
			orderGroup.GET("", orderControllers.GetMyOrdersHandler(db))           // GET /orders
			orderGroup.GET("/:orderID", orderControllers.GetOrderByIDHandler(db)) // GET /orders/:orderID
		}

		// ──────────────── Wishlist ────────────────
		wishGroup := userGroup.Group("/wishlist")
		{
			wishGroup.GET("", wishlistControllers.GetWishlist(db))
			wishGroup.POST("/:productID", wishlistControllers.AddToWishlist(db))
			wishGroup.DELETE("/:productID", wishlistControllers.RemoveFromWishlist(db))
		}

		// ──────────────── Reviews ────────────────
		userGroup.POST("/products/:id/reviews", reviewControllers.CreateReview(db))

		// ──────────────── Addresses ────────────────
		addrGroup := userGroup.Group("/addresses")
		{
			addrGroup.GET("", userControllers.GetAddresses(db))
			addrGroup.POST("", userControllers.CreateAddress(db))
			addrGroup.DELETE("/:id", userControllers.DeleteAddress(db))
		}
	}
}
