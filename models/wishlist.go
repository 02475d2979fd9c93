package models

import "time"

// WishlistItem links a user to a saved product. The pair is unique.
type WishlistItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:uq_wishlist_user_product" json:"user_id"`
	ProductID uint `gorm:"not null;uniqueIndex:uq_wishlist_user_product" json:"product_id"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
