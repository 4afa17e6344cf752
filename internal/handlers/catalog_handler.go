package handlers

import (
	"errors"
	"log"
	"strconv"

	"sportsstore/internal/models"
	"sportsstore/internal/repositories"
	"sportsstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the public storefront endpoints: the paginated
// category listing, the product detail page, and the filter endpoint.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// RegisterRoutes registers the storefront routes. The bare ":category"
// routes are catch-alls and must be registered after every other GET route;
// Fiber matches routes in registration order, so the first registration of
// a pattern wins.
func (h *CatalogHandler) RegisterRoutes(app fiber.Router) {
	app.Get("/product/chi-tiet/:id", h.HandleDetail)
	app.Get("/products/filter", h.HandleFilter)
	app.Get("/", h.HandleList)
	app.Get("/page/:page", h.HandleList)
	app.Get("/:category/page/:page", h.HandleList)
	app.Get("/:category", h.HandleList)
}

// HandleList serves one page of the catalog, optionally narrowed to a
// category. Missing or malformed page numbers default to page 1.
func (h *CatalogHandler) HandleList(c *fiber.Ctx) error {
	category := c.Params("category")
	page, err := strconv.Atoi(c.Params("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	listing, err := h.service.ListProducts(category, page)
	if err != nil {
		log.Printf("Error listing catalog page %d (category %q): %v", page, category, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
		})
	}
	return c.JSON(listing)
}

// HandleDetail serves a single product or 404.
func (h *CatalogHandler) HandleDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
		})
	}

	product, err := h.service.GetProduct(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
		})
	}
	return c.JSON(product)
}

// HandleFilter narrows the catalog by the query's filter criteria. Absent
// parameters impose no constraint.
func (h *CatalogHandler) HandleFilter(c *fiber.Ctx) error {
	filter := models.ProductFilter{
		Category:    c.Query("category"),
		InStockOnly: c.QueryBool("in_stock"),
	}
	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "min_price must be a number",
			})
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "max_price must be a number",
			})
		}
		filter.MaxPrice = &v
	}

	products, err := h.service.FilterProducts(filter)
	if err != nil {
		log.Printf("Error filtering products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not filter products",
		})
	}
	return c.JSON(products)
}
