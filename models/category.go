package models

type Category struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"size:100;unique;not null" json:"name"`
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}
