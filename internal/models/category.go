package models

import "gorm.io/gorm"

// Category groups products. A category owns zero or more products.
type Category struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"uniqueIndex;type:varchar(50);not null" validate:"required,max=50"`
	Products   []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
	gorm.Model
}
