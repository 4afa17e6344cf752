package handlers

import (
	"errors"
	"fmt"
	"log"

	"sportsstore/internal/models"
	"sportsstore/internal/repositories"
	"sportsstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductsAPIHandler serves the admin JSON API for product CRUD. Routes are
// mounted behind the bearer-token and Admin-role guards.
type ProductsAPIHandler struct {
	service  *services.AdminProductService
	validate *validator.Validate
}

// NewProductsAPIHandler creates a new ProductsAPIHandler.
func NewProductsAPIHandler(service *services.AdminProductService) *ProductsAPIHandler {
	return &ProductsAPIHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the admin product routes.
func (h *ProductsAPIHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleList)
	router.Get("/:id", h.HandleGet)
	router.Post("/", h.HandleCreate)
	router.Put("/:id", h.HandleUpdate)
	router.Delete("/:id", h.HandleDelete)
}

// HandleList returns all products.
func (h *ProductsAPIHandler) HandleList(c *fiber.Ctx) error {
	products, err := h.service.ListProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
		})
	}
	return c.JSON(products)
}

// HandleCategories returns all categories for the back-office product form.
func (h *ProductsAPIHandler) HandleCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		log.Printf("Error getting categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve categories",
		})
	}
	return c.JSON(categories)
}

// HandleGet returns a single product or 404.
func (h *ProductsAPIHandler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product ID must be a positive integer",
		})
	}

	product, err := h.service.GetProduct(uint(id))
	if err != nil {
		return h.storeError(c, err, uint(id))
	}
	return c.JSON(product)
}

// HandleCreate persists a new product and returns it with its assigned
// identity.
func (h *ProductsAPIHandler) HandleCreate(c *fiber.Ctx) error {
	product, ok := h.parseProduct(c)
	if !ok {
		return nil
	}

	created, err := h.service.CreateProduct(product)
	if err != nil {
		if errors.Is(err, services.ErrUnknownCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Category does not exist",
			})
		}
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdate saves an existing product. The route ID must match the body
// ID; a record deleted concurrently surfaces as 404.
func (h *ProductsAPIHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product ID must be a positive integer",
		})
	}

	product, ok := h.parseProduct(c)
	if !ok {
		return nil
	}

	if err := h.service.UpdateProduct(uint(id), product); err != nil {
		if errors.Is(err, services.ErrIDMismatch) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Route ID and body ID do not match",
			})
		}
		if errors.Is(err, services.ErrUnknownCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Category does not exist",
			})
		}
		return h.storeError(c, err, uint(id))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDelete removes a product or reports 404. The delete is idempotent at
// the store: a miss changes nothing.
func (h *ProductsAPIHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Product ID must be a positive integer",
		})
	}

	if _, err := h.service.DeleteProduct(uint(id)); err != nil {
		return h.storeError(c, err, uint(id))
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseProduct decodes and validates a product body. On failure it writes
// the 400 response and returns ok=false.
func (h *ProductsAPIHandler) parseProduct(c *fiber.Ctx) (*models.Product, bool) {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
		return nil, false
	}

	if err := h.validate.Struct(product); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
		return nil, false
	}
	return &product, true
}

func (h *ProductsAPIHandler) storeError(c *fiber.Ctx, err error, id uint) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
		})
	}
	log.Printf("Store error for product %d: %v", id, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal error",
	})
}
