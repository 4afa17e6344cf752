package repositories

import "sportsstore/internal/models"

// CategoryRepository defines the read-only interface for category access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
}
