package products

import (
	"errors"
	"strconv"

	"deposit-desk/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for the product catalog.
type Handler struct {
	service      *Service
	sellerHeader string
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, sellerHeader string) *Handler {
	return &Handler{service: service, sellerHeader: sellerHeader}
}

// RegisterRoutes registers the product routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/products")
	group.Get("/", h.HandleListProducts)
	group.Post("/", h.HandleCreateProduct)
	group.Get("/:id", h.HandleGetProduct)
	group.Put("/:id", h.HandleUpdateProduct)
	group.Delete("/:id", h.HandleDeleteProduct)
}

func (h *Handler) seller(c *fiber.Ctx) string {
	return c.Get(h.sellerHeader)
}

func productID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// HandleListProducts returns the seller's catalog.
// @Summary List Products
// @Description List the seller's product catalog.
// @Tags products
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Success 200 {array} models.Product
// @Router /products [get]
func (h *Handler) HandleListProducts(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	products, err := h.service.List(c.Context(), sellerID)
	if err != nil {
		l := logger.WithSeller(logger.WithRayID(h.service.logger, c), sellerID)
		l.Error("Product listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(products)
}

// HandleCreateProduct stores a new product.
// @Summary Create Product
// @Description Add a product to the seller's catalog.
// @Tags products
// @Accept json
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Param product body CreateInput true "Product fields"
// @Success 201 {object} models.Product
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /products [post]
func (h *Handler) HandleCreateProduct(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	var in CreateInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	product, err := h.service.Create(c.Context(), sellerID, in)
	if err != nil {
		l := logger.WithSeller(logger.WithRayID(h.service.logger, c), sellerID)
		l.Warn("Product creation rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleGetProduct returns a single product.
// @Summary Get Product
// @Description Get one product by ID.
// @Tags products
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string "Not found"
// @Router /products/{id} [get]
func (h *Handler) HandleGetProduct(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	id, err := productID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	product, err := h.service.Get(c.Context(), sellerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}
		l := logger.WithSeller(logger.WithRayID(h.service.logger, c), sellerID)
		l.Error("Product lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(product)
}

// HandleUpdateProduct modifies a product.
// @Summary Update Product
// @Description Update a product's fields.
// @Tags products
// @Accept json
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Param id path int true "Product ID"
// @Param product body UpdateInput true "Fields to change"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string "Not found"
// @Router /products/{id} [put]
func (h *Handler) HandleUpdateProduct(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	id, err := productID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	var in UpdateInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	product, err := h.service.Update(c.Context(), sellerID, id, in)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}
		l := logger.WithSeller(logger.WithRayID(h.service.logger, c), sellerID)
		l.Warn("Product update rejected", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(product)
}

// HandleDeleteProduct removes a product.
// @Summary Delete Product
// @Description Remove a product from the catalog.
// @Tags products
// @Produce json
// @Param X-Seller-ID header string true "Seller scope"
// @Param id path int true "Product ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not found"
// @Router /products/{id} [delete]
func (h *Handler) HandleDeleteProduct(c *fiber.Ctx) error {
	sellerID := h.seller(c)
	if sellerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing seller scope"})
	}

	id, err := productID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	if err := h.service.Delete(c.Context(), sellerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
		}
		l := logger.WithSeller(logger.WithRayID(h.service.logger, c), sellerID)
		l.Error("Product deletion failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
