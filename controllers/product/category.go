package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/models"
	"gorm.io/gorm"
)

// GetAllCategories lists every category, name-ordered.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// ResolveCategory returns the category with the given name, creating it if
// missing. Exact, case-sensitive match; first match wins.
func ResolveCategory(tx *gorm.DB, name string) (*models.Category, error) {
	if name == "" {
		name = "General"
	}
	var category models.Category
	err := tx.Where("name = ?", name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	category = models.Category{Name: name}
	if err := tx.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
