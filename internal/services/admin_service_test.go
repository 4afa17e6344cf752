package services_test

import (
	"errors"
	"fmt"
	"testing"

	"sportsstore/internal/models"
	"sportsstore/internal/repositories"
	"sportsstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) List(category string, offset, limit int) ([]models.Product, error) {
	args := m.Called(category, offset, limit)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Count(category string) (int64, error) {
	args := m.Called(category)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Filter(filter models.ProductFilter) ([]models.Product, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) CategoryNames() ([]string, error) {
	args := m.Called()
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id uint) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func newAdminService() (*services.AdminProductService, *MockProductRepository, *MockCategoryRepository) {
	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	// nil broker client: event publishing is skipped
	return services.NewAdminProductService(productRepo, categoryRepo, nil), productRepo, categoryRepo
}

func TestAdminProductService_ListProducts(t *testing.T) {
	service, productRepo, _ := newAdminService()

	expected := []models.Product{
		{ID: 1, Name: "Match Ball", Price: 50.0, CategoryID: 1},
		{ID: 2, Name: "Pro Racket", Price: 150.0, CategoryID: 3},
	}
	productRepo.On("GetAll").Return(expected, nil).Once()

	products, err := service.ListProducts()
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	productRepo.AssertExpectations(t)
}

func TestAdminProductService_GetProduct(t *testing.T) {
	service, productRepo, _ := newAdminService()

	expected := &models.Product{ID: 1, Name: "Match Ball", Price: 50.0, CategoryID: 1}
	productRepo.On("GetByID", uint(1)).Return(expected, nil).Once()
	product, err := service.GetProduct(1)
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	productRepo.On("GetByID", uint(99)).Return(nil, fmt.Errorf("product 99: %w", repositories.ErrNotFound)).Once()
	product, err = service.GetProduct(99)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
	productRepo.AssertExpectations(t)
}

func TestAdminProductService_ListCategories(t *testing.T) {
	service, _, categoryRepo := newAdminService()

	expected := []models.Category{
		{ID: 2, Name: "Apparel"},
		{ID: 1, Name: "Soccer"},
	}
	categoryRepo.On("GetAll").Return(expected, nil).Once()

	categories, err := service.ListCategories()
	assert.NoError(t, err)
	assert.Equal(t, expected, categories)
	categoryRepo.AssertExpectations(t)
}

func TestAdminProductService_CreateProduct(t *testing.T) {
	service, productRepo, categoryRepo := newAdminService()

	categoryRepo.On("GetByID", uint(1)).Return(&models.Category{ID: 1, Name: "Soccer"}, nil).Once()
	productRepo.On("Create", mock.AnythingOfType("*models.Product")).
		Run(func(args mock.Arguments) {
			p := args.Get(0).(*models.Product)
			// The store receives the create sentinel and assigns a fresh id.
			assert.Equal(t, uint(0), p.ID)
			p.ID = 42
		}).
		Return(nil).Once()

	created, err := service.CreateProduct(&models.Product{ID: 7, Name: "Match Ball", Price: 50.0, CategoryID: 1})
	assert.NoError(t, err)
	assert.Equal(t, uint(42), created.ID)
	productRepo.AssertExpectations(t)
	categoryRepo.AssertExpectations(t)
}

func TestAdminProductService_CreateProduct_UnknownCategory(t *testing.T) {
	service, productRepo, categoryRepo := newAdminService()

	categoryRepo.On("GetByID", uint(9)).Return(nil, fmt.Errorf("category 9: %w", repositories.ErrNotFound)).Once()

	created, err := service.CreateProduct(&models.Product{Name: "Match Ball", Price: 50.0, CategoryID: 9})
	assert.Nil(t, created)
	assert.True(t, errors.Is(err, services.ErrUnknownCategory))
	// The store is never touched when the category does not resolve.
	productRepo.AssertNotCalled(t, "Create", mock.Anything)
	categoryRepo.AssertExpectations(t)
}

func TestAdminProductService_UpdateProduct_IDMismatch(t *testing.T) {
	service, productRepo, categoryRepo := newAdminService()

	err := service.UpdateProduct(1, &models.Product{ID: 2, Name: "Match Ball", Price: 50.0, CategoryID: 1})
	assert.True(t, errors.Is(err, services.ErrIDMismatch))
	// Rejected before any store access.
	productRepo.AssertNotCalled(t, "Update", mock.Anything)
	categoryRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestAdminProductService_UpdateProduct_Vanished(t *testing.T) {
	service, productRepo, categoryRepo := newAdminService()

	product := &models.Product{ID: 5, Name: "Match Ball", Price: 50.0, CategoryID: 1}
	categoryRepo.On("GetByID", uint(1)).Return(&models.Category{ID: 1, Name: "Soccer"}, nil).Once()
	// The record was deleted between the caller's read and this write:
	// reported as not found, not retried.
	productRepo.On("Update", product).Return(fmt.Errorf("product 5 vanished before update: %w", repositories.ErrNotFound)).Once()

	err := service.UpdateProduct(5, product)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
	productRepo.AssertExpectations(t)
	categoryRepo.AssertExpectations(t)
}

func TestAdminProductService_UpdateProduct(t *testing.T) {
	service, productRepo, categoryRepo := newAdminService()

	product := &models.Product{ID: 5, Name: "Match Ball", Price: 55.0, CategoryID: 1}
	categoryRepo.On("GetByID", uint(1)).Return(&models.Category{ID: 1, Name: "Soccer"}, nil).Once()
	productRepo.On("Update", product).Return(nil).Once()

	err := service.UpdateProduct(5, product)
	assert.NoError(t, err)
	productRepo.AssertExpectations(t)
	categoryRepo.AssertExpectations(t)
}

func TestAdminProductService_DeleteProduct(t *testing.T) {
	service, productRepo, _ := newAdminService()

	deleted := &models.Product{ID: 3, Name: "Pro Racket", Price: 150.0, CategoryID: 3}
	productRepo.On("Delete", uint(3)).Return(deleted, nil).Once()
	product, err := service.DeleteProduct(3)
	assert.NoError(t, err)
	assert.Equal(t, deleted, product)

	productRepo.On("Delete", uint(99)).Return(nil, fmt.Errorf("product 99: %w", repositories.ErrNotFound)).Once()
	product, err = service.DeleteProduct(99)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, repositories.ErrNotFound))
	productRepo.AssertExpectations(t)
}
