package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/config"
	authControllers "github.com/junaidrashid-git/storefront-api/controllers/auth"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all “/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg config.App) {
	tokenTTL := time.Duration(cfg.JWTExpireHrs) * time.Hour

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(db))
		authGroup.POST("/login", authControllers.Login(db, tokenTTL))
		authGroup.GET("/me", middleware.RequireAuth, authControllers.Me(db))
	}
}
