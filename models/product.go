package models

import "time"

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"size:200;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Stock       int     `gorm:"not null;default:0" json:"stock"`
	Image       string  `gorm:"size:255" json:"image"`
	RatingAvg   float64 `gorm:"default:0" json:"rating_avg"`

	CategoryID *uint     `json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	Images        []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	CartItems     []CartItem     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	WishlistItems []WishlistItem `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews       []Review       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint   `gorm:"not null;index" json:"product_id"`
	ImagePath string `gorm:"size:255;not null" json:"image_path"`
	AltText   string `gorm:"size:200" json:"alt_text"`
	IsPrimary bool   `gorm:"default:false" json:"is_primary"`
}
