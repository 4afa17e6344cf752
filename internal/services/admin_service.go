package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"sportsstore/internal/models"
	"sportsstore/internal/repositories"
	"sportsstore/pkg/rabbitmq"
)

// ErrIDMismatch is returned when the identity in a route parameter and the
// identity in the request body disagree. The store is never touched in that
// case.
var ErrIDMismatch = errors.New("route ID and body ID do not match")

// ErrUnknownCategory is returned when a product's category reference does
// not resolve to an existing category. It is a validation failure, not a
// missing-product outcome.
var ErrUnknownCategory = errors.New("category does not exist")

// AdminProductService handles the back-office CRUD operations over products.
// Every mutation publishes a catalog event when a broker client is present.
type AdminProductService struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	mqClient     *rabbitmq.Client // nil disables event publishing
}

// NewAdminProductService creates a new AdminProductService.
func NewAdminProductService(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository, mqClient *rabbitmq.Client) *AdminProductService {
	return &AdminProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		mqClient:     mqClient,
	}
}

// ListProducts retrieves all products for the admin view.
func (s *AdminProductService) ListProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// GetProduct retrieves a single product by its ID.
func (s *AdminProductService) GetProduct(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// ListCategories returns all categories, ordered by name, for the
// back-office product form.
func (s *AdminProductService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// CreateProduct persists a new product and returns it with its assigned
// identity. The category reference must resolve to an existing category.
func (s *AdminProductService) CreateProduct(product *models.Product) (*models.Product, error) {
	if err := s.resolveCategory(product); err != nil {
		return nil, err
	}
	product.ID = 0 // let the store assign a fresh identity
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	s.publishEvent("product.created", product)
	return product, nil
}

// UpdateProduct saves an existing product. A mismatch between the route ID
// and the body ID is rejected before any store access. A record that
// vanished between read and write surfaces as not found, never as a retry.
func (s *AdminProductService) UpdateProduct(id uint, product *models.Product) error {
	if id != product.ID {
		return fmt.Errorf("route ID %d, body ID %d: %w", id, product.ID, ErrIDMismatch)
	}
	if err := s.resolveCategory(product); err != nil {
		return err
	}
	if err := s.productRepo.Update(product); err != nil {
		return err
	}
	s.publishEvent("product.updated", product)
	return nil
}

// DeleteProduct removes a product by its ID and returns the removed record.
// Deleting an absent identity reports not found and changes nothing.
func (s *AdminProductService) DeleteProduct(id uint) (*models.Product, error) {
	product, err := s.productRepo.Delete(id)
	if err != nil {
		return nil, err
	}
	s.publishEvent("product.deleted", product)
	return product, nil
}

// resolveCategory enforces the invariant that every product references an
// existing category.
func (s *AdminProductService) resolveCategory(product *models.Product) error {
	if _, err := s.categoryRepo.GetByID(product.CategoryID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("category %d: %w", product.CategoryID, ErrUnknownCategory)
		}
		return err
	}
	return nil
}

// publishEvent emits a catalog mutation event. Publishing is best effort:
// a broker failure is logged, never surfaced to the admin caller.
func (s *AdminProductService) publishEvent(eventType string, product *models.Product) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"event":      eventType,
		"product_id": product.ID,
		"name":       product.Name,
	})
	if err != nil {
		log.Printf("Failed to marshal catalog event: %v", err)
		return
	}
	if err := s.mqClient.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event for product %d: %v", eventType, product.ID, err)
	}
}
