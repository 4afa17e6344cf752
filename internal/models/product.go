package models

import "gorm.io/gorm"

// Product represents a product in the catalog. An ID of 0 on an incoming
// product means "assign a new identity on create".
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Description string    `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Price       float64   `json:"price" gorm:"type:decimal(18,2)" validate:"gte=0"`
	ImageURL    string    `json:"image_url" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	Featured    bool      `json:"featured"`
	CategoryID  uint      `json:"category_id" gorm:"not null" validate:"required"`
	Category    *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
