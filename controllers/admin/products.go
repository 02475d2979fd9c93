package adminController

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/junaidrashid-git/storefront-api/controllers/product"
	"github.com/junaidrashid-git/storefront-api/middleware"
	"github.com/junaidrashid-git/storefront-api/models"
	"gorm.io/gorm"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// saveProductImage stores an uploaded image under uploadDir with a
// sanitized, collision-free name. A disallowed extension is reported as a
// warning; the caller keeps going without a new image.
func saveProductImage(c *gin.Context, file *multipart.FileHeader, uploadDir string) (string, string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", "Invalid image type. Old image kept.", nil
	}

	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	filename := slug.Make(base) + "-" + uuid.NewString()[:8] + ext

	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return "", "", err
	}
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		return "", "", err
	}
	return filename, "", nil
}

// POST /admin/products
func CreateProduct(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		stockStr := c.PostForm("stock")
		if name == "" || priceStr == "" || stockStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, and stock are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
			return
		}

		var warnings []string
		var filename string
		if file, err := c.FormFile("image"); err == nil {
			var warning string
			filename, warning, err = saveProductImage(c, file, uploadDir)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
				return
			}
			if warning != "" {
				warnings = append(warnings, warning)
			}
		}

		var newProduct models.Product
		err = db.Transaction(func(tx *gorm.DB) error {
			category, err := productcontroller.ResolveCategory(tx, c.PostForm("category"))
			if err != nil {
				return err
			}
			newProduct = models.Product{
				Name:        name,
				Description: c.PostForm("description"),
				Price:       price,
				Stock:       stock,
				Image:       filename,
				CategoryID:  &category.ID,
			}
			return tx.Create(&newProduct).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		models.RecordAudit(db, middleware.UserID(c), "create_product", "product", newProduct.ID, name)

		c.JSON(http.StatusCreated, gin.H{
			"message":  "Product added successfully!",
			"product":  newProduct,
			"warnings": warnings,
		})
	}
}

// PUT /admin/products/:id
//
// A rejected image upload keeps the existing image and only adds a warning;
// the rest of the update still applies.
func UpdateProduct(db *gorm.DB, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		stockStr := c.PostForm("stock")
		if name == "" || priceStr == "" || stockStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, and stock are required"})
			return
		}
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		stock, err := strconv.Atoi(stockStr)
		if err != nil || stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
			return
		}

		var warnings []string
		if file, err := c.FormFile("image"); err == nil {
			filename, warning, err := saveProductImage(c, file, uploadDir)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
				return
			}
			if warning != "" {
				warnings = append(warnings, warning)
			} else {
				product.Image = filename
			}
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			category, err := productcontroller.ResolveCategory(tx, c.PostForm("category"))
			if err != nil {
				return err
			}
			product.Name = name
			product.Description = c.PostForm("description")
			product.Price = price
			product.Stock = stock
			product.CategoryID = &category.ID
			return tx.Save(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		models.RecordAudit(db, middleware.UserID(c), "update_product", "product", product.ID, name)

		c.JSON(http.StatusOK, gin.H{
			"message":  "Product updated.",
			"product":  product,
			"warnings": warnings,
		})
	}
}

// DELETE /admin/products/:id
//
// Cart, wishlist, review and image rows go with the product. Order items are
// detached instead: product_id is NULLed and the name/price snapshot keeps
// historical orders intact.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.OrderItem{}).
				Where("product_id = ?", product.ID).
				Update("product_id", nil).Error; err != nil {
				return err
			}
			for _, dependent := range []interface{}{
				&models.CartItem{}, &models.WishlistItem{}, &models.Review{}, &models.ProductImage{},
			} {
				if err := tx.Where("product_id = ?", product.ID).Delete(dependent).Error; err != nil {
					return err
				}
			}
			return tx.Delete(&product).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		models.RecordAudit(db, middleware.UserID(c), "delete_product", "product", product.ID, product.Name)

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted."})
	}
}
