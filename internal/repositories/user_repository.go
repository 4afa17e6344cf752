package repositories

import "sportsstore/internal/models"

// UserRepository defines the interface for back-office account access.
// GetByUsername loads the user's roles alongside the credential record.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}
