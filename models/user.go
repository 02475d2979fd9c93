package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:120;unique;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`

	Addresses     []Address      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	CartItems     []CartItem     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders        []Order        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	WishlistItems []WishlistItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews       []Review       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

type Address struct {
	ID     uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`

	FullName    string `gorm:"size:100;not null" json:"full_name"`
	AddressLine string `gorm:"size:255;not null" json:"address_line"`
	City        string `gorm:"size:80;not null" json:"city"`
	State       string `gorm:"size:80;not null" json:"state"`
	Pincode     string `gorm:"size:15;not null" json:"pincode"`
	Country     string `gorm:"size:80;not null;default:India" json:"country"`
	IsDefault   bool   `gorm:"default:false" json:"is_default"`
}
