package repositories

import (
	"sportsstore/internal/models"
)

// ProductRepository defines the interface for product data access. Listing
// methods return products ordered by ID ascending so pagination windows stay
// deterministic and non-overlapping across calls.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	// List returns the window [offset, offset+limit) of products in the
	// given category, or of all products when category is empty.
	List(category string, offset, limit int) ([]models.Product, error)
	// Count returns the number of products matching the category filter,
	// before any pagination.
	Count(category string) (int64, error)
	// Filter narrows the catalog by the AND of the filter's set criteria.
	Filter(filter models.ProductFilter) ([]models.Product, error)
	// CategoryNames returns the distinct, sorted category names present in
	// the unfiltered catalog.
	CategoryNames() ([]string, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	// Delete removes the product and returns it, or ErrNotFound.
	Delete(id uint) (*models.Product, error)
}
