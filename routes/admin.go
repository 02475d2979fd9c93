package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/config"
	adminController "github.com/junaidrashid-git/storefront-api/controllers/admin"
	orderControllers "github.com/junaidrashid-git/storefront-api/controllers/order"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires a logged-in
// admin.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg config.App) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAuth, middleware.RequireAdmin)
	{
		adminGroup.GET("/dashboard", adminController.Dashboard(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", adminController.CreateProduct(db, cfg.UploadDir))
			productAdmin.PUT("/:id", adminController.UpdateProduct(db, cfg.UploadDir))
			productAdmin.DELETE("/:id", adminController.DeleteProduct(db))
			productAdmin.GET("/export", adminController.ExportProductsToExcel(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", adminController.GetOrders(db))
			orderAdmin.GET("/ws", orderControllers.OrderFeedHandler)
			orderAdmin.GET("/:orderID", adminController.GetOrderDetail(db))
			orderAdmin.PUT("/:orderID/status", adminController.UpdateOrderStatus(db))
		}
	}
}
