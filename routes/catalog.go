package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/junaidrashid-git/storefront-api/controllers/product"
	reviewControllers "github.com/junaidrashid-git/storefront-api/controllers/review"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the public browsing endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productcontroller.GetProducts(db))           // GET /products?q=&category=
	r.GET("/products/:id", productcontroller.GetProductByID(db))    // GET /products/:id
	r.GET("/products/:id/reviews", reviewControllers.GetReviews(db))
	r.GET("/categories", productcontroller.GetAllCategories(db))
}
