package models

import "time"

// CartItem is one unpurchased line in a user's cart. The (user, product)
// pair is unique so repeated add-to-cart calls always mutate the same row.
type CartItem struct {
	ID        uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:uq_cart_user_product" json:"user_id"`
	ProductID uint `gorm:"not null;uniqueIndex:uq_cart_user_product" json:"product_id"`
	Quantity  int  `gorm:"not null;default:1" json:"quantity"`

	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	AddedAt time.Time `gorm:"autoCreateTime" json:"added_at"`
}
