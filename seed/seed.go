package seed

import (
	"log"

	"github.com/junaidrashid-git/storefront-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run drops everything, migrates the schema and inserts sample data: one
// admin account, three categories and four products.
func Run(db *gorm.DB) error {
	if err := db.Migrator().DropTable(
		&models.AuditLog{}, &models.Review{}, &models.WishlistItem{},
		&models.Payment{}, &models.OrderItem{}, &models.Order{},
		&models.CartItem{}, &models.ProductImage{}, &models.Product{},
		&models.Category{}, &models.Address{}, &models.User{},
	); err != nil {
		return err
	}
	if err := Migrate(db); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Phone:        "9999999999",
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	mobiles := models.Category{Name: "Mobiles"}
	laptops := models.Category{Name: "Laptops"}
	audio := models.Category{Name: "Audio"}
	for _, cat := range []*models.Category{&mobiles, &laptops, &audio} {
		if err := db.Create(cat).Error; err != nil {
			return err
		}
	}

	products := []models.Product{
		{Name: "iPhone 15", Description: "Apple iPhone 15 128GB 5G", Price: 79999, Stock: 15, CategoryID: &mobiles.ID, Image: "iphone15.jpg"},
		{Name: "Samsung Galaxy S23", Description: "Flagship Android phone with amazing camera", Price: 74999, Stock: 10, CategoryID: &mobiles.ID, Image: "s23.jpg"},
		{Name: "HP Pavilion 14", Description: "12th Gen Intel i5, 16GB RAM, 512GB SSD", Price: 65999, Stock: 8, CategoryID: &laptops.ID, Image: "hp_pavilion.jpg"},
		{Name: "Sony WH-1000XM5", Description: "Wireless Noise Cancelling Headphones", Price: 29999, Stock: 20, CategoryID: &audio.ID, Image: "sony_xm5.jpg"},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	log.Println("✅ Database reset and sample data inserted.")
	return nil
}

// Migrate creates or updates every table the app uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Product{},
		&models.ProductImage{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.WishlistItem{},
		&models.Review{},
		&models.AuditLog{},
	)
}
