package services

import (
	"fmt"

	"sportsstore/internal/models"
	"sportsstore/internal/repositories"
)

// CatalogService handles the storefront side of the catalog: category
// filtered, paginated product listings and product detail lookups.
type CatalogService struct {
	repo     repositories.ProductRepository
	pageSize int
}

// NewCatalogService creates a new CatalogService. pageSize comes from
// startup configuration and is validated positive there.
func NewCatalogService(repo repositories.ProductRepository, pageSize int) *CatalogService {
	return &CatalogService{
		repo:     repo,
		pageSize: pageSize,
	}
}

// ListProducts returns one page of products for the given category (empty
// means all products), plus the pagination metadata the storefront renders.
// Page numbers are 1-based; a page beyond the last one yields an empty slice
// rather than an error.
func (s *CatalogService) ListProducts(category string, page int) (*models.ProductListing, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.repo.Count(category)
	if err != nil {
		return nil, fmt.Errorf("failed to count catalog: %w", err)
	}

	products, err := s.repo.List(category, (page-1)*s.pageSize, s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to page catalog: %w", err)
	}

	categories, err := s.repo.CategoryNames()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	label := category
	if label == "" {
		label = "All Products"
	}

	return &models.ProductListing{
		Products:        products,
		Categories:      categories,
		CurrentCategory: label,
		CurrentPage:     page,
		TotalItems:      total,
		PageSize:        s.pageSize,
	}, nil
}

// GetProduct retrieves a single product for the detail page.
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// FilterProducts narrows the catalog by the AND of the filter's set
// criteria. The filter is a per-request descriptor and is not mutated.
func (s *CatalogService) FilterProducts(filter models.ProductFilter) ([]models.Product, error) {
	return s.repo.Filter(filter)
}
