package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/config"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public catalog,
// Auth, User, and Admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.App) {
	// 1️⃣ Public catalog + auth routes (no middleware)
	SetupAuthRoutes(r, db, cfg)
	SetupCatalogRoutes(r, db)

	// 2️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// 3️⃣ Admin routes (JWT + admin flag)
	SetupAdminRoutes(r, db, cfg)
}
