package models

import "gorm.io/gorm"

// Customer is part of the data model but is not consumed by any service yet.
type Customer struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"type:varchar(50);not null" validate:"required,min=3,max=50"`
	gorm.Model
}
