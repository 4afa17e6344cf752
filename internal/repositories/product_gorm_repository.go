package repositories

import (
	"fmt"
	"sportsstore/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// categoryScope narrows a product query to one category by name. An empty
// name leaves the query untouched.
func categoryScope(category string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if category == "" {
			return db
		}
		return db.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.name = ?", category)
	}
}

// GetAll retrieves all products ordered by ID.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := r.db.Preload("Category").Order("products.id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Category").First(&product, "products.id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// List returns one pagination window of products in the given category,
// ordered by ID ascending. Sorting happens before the offset/limit so pages
// never overlap.
func (r *GORMProductRepository) List(category string, offset, limit int) ([]models.Product, error) {
	// Non-nil so an empty page serializes as [] rather than null.
	products := make([]models.Product, 0, limit)
	err := r.db.Model(&models.Product{}).
		Scopes(categoryScope(category)).
		Preload("Category").
		Order("products.id ASC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Count returns the number of products matching the category filter.
func (r *GORMProductRepository) Count(category string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Scopes(categoryScope(category)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// Filter narrows the catalog by the AND of the filter's set criteria. Unset
// criteria impose no constraint. InStockOnly is intentionally not applied:
// the catalog carries no stock information.
func (r *GORMProductRepository) Filter(filter models.ProductFilter) ([]models.Product, error) {
	q := r.db.Model(&models.Product{}).
		Scopes(categoryScope(filter.Category)).
		Preload("Category")
	if filter.MinPrice != nil {
		q = q.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("products.price <= ?", *filter.MaxPrice)
	}

	products := make([]models.Product, 0)
	if err := q.Order("products.id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to filter products: %w", err)
	}
	return products, nil
}

// CategoryNames returns the distinct, sorted names of categories that have
// at least one product.
func (r *GORMProductRepository) CategoryNames() ([]string, error) {
	var names []string
	err := r.db.Model(&models.Product{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Distinct().
		Order("categories.name ASC").
		Pluck("categories.name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list category names: %w", err)
	}
	return names, nil
}

// Create creates a new product in the database. A zero ID lets the store
// assign the next identity.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update rewrites all columns of an existing product. Updates is used
// instead of Save because Save inserts when no row matches the primary key;
// a vanished row must surface as ErrNotFound instead.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Model(product).
		Select("*").
		Omit("id", "created_at", "Category").
		Updates(product)
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %d vanished before update: %w", product.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a product by its ID and returns the removed record.
func (r *GORMProductRepository) Delete(id uint) (*models.Product, error) {
	product, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("product %d vanished before delete: %w", id, ErrNotFound)
	}
	return product, nil
}
