package repositories

import (
	"fmt"
	"sort"
	"sync"

	"sportsstore/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// Products must carry their Category so the category filter and the distinct
// category listing work without a database.
type MockProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// sortedLocked returns products matching the category filter, ordered by ID.
// Callers must hold at least a read lock.
func (r *MockProductRepository) sortedLocked(category string) []models.Product {
	list := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if category != "" && categoryName(&p) != category {
			continue
		}
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func categoryName(p *models.Product) string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}

// GetAll returns all products ordered by ID.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked(""), nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return &product, nil
}

// List returns one pagination window of the category-filtered, ID-ordered
// product set.
func (r *MockProductRepository) List(category string, offset, limit int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.sortedLocked(category)
	if offset >= len(list) {
		return []models.Product{}, nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}

// Count returns the number of products matching the category filter.
func (r *MockProductRepository) Count(category string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.sortedLocked(category))), nil
}

// Filter narrows the product set by the AND of the filter's set criteria.
func (r *MockProductRepository) Filter(filter models.ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0)
	for _, p := range r.sortedLocked(filter.Category) {
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

// CategoryNames returns the distinct, sorted category names in the catalog.
func (r *MockProductRepository) CategoryNames() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	for _, p := range r.products {
		if name := categoryName(&p); name != "" {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Create adds a new product, assigning the next free identity when the
// incoming ID is 0. The lock guarantees concurrent creates never collide.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
	}
	if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product %d vanished before update: %w", product.ID, ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID and returns it.
func (r *MockProductRepository) Delete(id uint) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	delete(r.products, id)
	return &product, nil
}
